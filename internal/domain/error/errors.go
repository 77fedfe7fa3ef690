package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidQuantity    = 4001
	CodeIncompatibleUnits  = 4002
	CodeNegativeResult     = 4003
	CodeDivisionByZero     = 4004
	CodeAmountOutOfRange   = 4005
	CodeDurationOverflow   = 4006
	CodeUnknownUnit        = 4007
	CodeInvalidDate        = 4008
	CodeInvalidRequest     = 4009
	CodeDurationNotFound   = 4040
	CodeDuplicateDuration  = 4090
	CodeConstraintViolated = 4220

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrInvalidQuantity is returned when a duration is constructed with a negative quantity
	ErrInvalidQuantity = errors.New("quantity must be zero or positive")

	// ErrIncompatibleUnits is returned when two durations belong to different base-unit groups
	ErrIncompatibleUnits = errors.New("units are not convertible")

	// ErrNegativeResult is returned when a subtraction would produce a negative duration
	ErrNegativeResult = errors.New("result would be negative")

	// ErrDivisionByZero is returned when dividing by a duration with a zero base amount
	ErrDivisionByZero = errors.New("division by zero duration")

	// ErrAmountOutOfRange is returned when a calendar or epoch amount cannot be represented
	ErrAmountOutOfRange = errors.New("amount is out of range")

	// ErrDurationOverflow is returned when a base-unit amount does not fit in 64 bits
	ErrDurationOverflow = errors.New("duration is too large and would overflow")

	// ErrUnknownUnit is returned when a unit name or value is not part of the unit catalog
	ErrUnknownUnit = errors.New("unknown time unit")

	// ErrInvalidDate is returned when a calendar date does not exist
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDurationNotFound is returned when a saved duration doesn't exist
	ErrDurationNotFound = errors.New("duration not found")

	// ErrDuplicateDuration is returned when a saved duration with the same name already exists
	ErrDuplicateDuration = errors.New("duration with this name already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidQuantity):
		return CodeInvalidQuantity
	case errors.Is(err, ErrIncompatibleUnits):
		return CodeIncompatibleUnits
	case errors.Is(err, ErrNegativeResult):
		return CodeNegativeResult
	case errors.Is(err, ErrDivisionByZero):
		return CodeDivisionByZero
	case errors.Is(err, ErrAmountOutOfRange):
		return CodeAmountOutOfRange
	case errors.Is(err, ErrDurationOverflow):
		return CodeDurationOverflow
	case errors.Is(err, ErrUnknownUnit):
		return CodeUnknownUnit
	case errors.Is(err, ErrInvalidDate):
		return CodeInvalidDate
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrDurationNotFound):
		return CodeDurationNotFound
	case errors.Is(err, ErrDuplicateDuration):
		return CodeDuplicateDuration
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolated
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// DurationError represents a failed duration operation together with its operands
type DurationError struct {
	Operation string
	Left      string
	Right     string
	Err       error
}

// Error implements the error interface for DurationError
func (e *DurationError) Error() string {
	if e.Right == "" {
		return fmt.Sprintf("%s failed for %q: %v", e.Operation, e.Left, e.Err)
	}
	return fmt.Sprintf("%s failed for %q and %q: %v", e.Operation, e.Left, e.Right, e.Err)
}

// Unwrap returns the underlying error
func (e *DurationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *DurationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "duration_error",
		"operation":  e.Operation,
		"left":       e.Left,
		"right":      e.Right,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewDurationError creates a detailed duration error
func NewDurationError(operation, left, right string, err error) error {
	return &DurationError{
		Operation: operation,
		Left:      left,
		Right:     right,
		Err:       err,
	}
}

// IsIncompatibleUnitsError checks if the error is caused by mixing unit groups
func IsIncompatibleUnitsError(err error) bool {
	return errors.Is(err, ErrIncompatibleUnits)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrDurationNotFound)
}

// IsClientError reports whether the error was caused by caller input
func IsClientError(err error) bool {
	code := ErrorCode(err)
	return code >= 4000 && code < 5000
}
