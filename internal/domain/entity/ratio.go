package entity

import (
	"fmt"

	errs "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Ratio is an exact quotient of two base-unit amounts.
// It is kept unreduced so the operands of a division stay visible.
type Ratio struct {
	numerator   int64
	denominator int64
}

// NewRatio creates a ratio, rejecting a zero denominator
func NewRatio(numerator, denominator int64) (Ratio, error) {
	if denominator == 0 {
		return Ratio{}, errs.ErrDivisionByZero
	}
	return Ratio{numerator: numerator, denominator: denominator}, nil
}

// Numerator returns the dividend
func (r Ratio) Numerator() int64 {
	return r.numerator
}

// Denominator returns the divisor
func (r Ratio) Denominator() int64 {
	return r.denominator
}

// DecimalValue returns the quotient rounded half away from zero to the given number of places
func (r Ratio) DecimalValue(places int32) decimal.Decimal {
	return decimal.NewFromInt(r.numerator).DivRound(decimal.NewFromInt(r.denominator), places)
}

// Equal reports whether both ratios denote the same rational value
func (r Ratio) Equal(other Ratio) bool {
	return decimal.NewFromInt(r.numerator).Mul(decimal.NewFromInt(other.denominator)).
		Equal(decimal.NewFromInt(other.numerator).Mul(decimal.NewFromInt(r.denominator)))
}

// String renders the ratio as "numerator/denominator"
func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.numerator, r.denominator)
}
