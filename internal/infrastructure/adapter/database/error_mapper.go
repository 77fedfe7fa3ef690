package database

import (
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeSavedDuration represents a named saved duration
	EntityTypeSavedDuration EntityType = "saved_duration"
	// EntityTypeMigration represents a schema version record
	EntityTypeMigration EntityType = "migration"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrDurationNotFound
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		return domainErr.ErrDuplicateDuration

	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "not-null constraint"):
		return fmt.Errorf("%w: %s", domainErr.ErrConstraintViolation, operation)

	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset"):
		return domainErr.ErrDatabaseConnection

	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	default:
		return fmt.Errorf("%w: %s failed", domainErr.ErrInternalServer, operation)
	}
}

// MapEntityNotFoundError maps record-not-found to the entity's not-found error and
// everything else through MapError
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeSavedDuration:
			return domainErr.ErrDurationNotFound
		default:
			return fmt.Errorf("%w: %s not found", domainErr.ErrInternalServer, entityType)
		}
	}

	return m.MapError(err, string(entityType))
}
