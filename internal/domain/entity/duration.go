package entity

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	errs "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
)

// Duration is an immutable, non-negative quantity of a TimeUnit.
// The zero value is None.
type Duration struct {
	quantity int64
	unit     TimeUnit
}

// None is the zero duration
var None = Duration{quantity: 0, unit: Millisecond}

// NewDuration creates a duration of quantity units
func NewDuration(quantity int64, unit TimeUnit) (Duration, error) {
	if !unit.IsValid() {
		return Duration{}, fmt.Errorf("%w: %d", errs.ErrUnknownUnit, uint8(unit))
	}
	if quantity < 0 {
		return Duration{}, fmt.Errorf("%w: %d %s", errs.ErrInvalidQuantity, quantity, unit)
	}
	if quantity > math.MaxInt64/unit.Factor() {
		return Duration{}, fmt.Errorf("%w: %s", errs.ErrDurationOverflow, unit.Format(quantity))
	}
	return Duration{quantity: quantity, unit: unit}, nil
}

// Must returns d and panics if err is not nil
func Must(d Duration, err error) Duration {
	if err != nil {
		panic(err)
	}
	return d
}

// Milliseconds creates a duration in milliseconds
func Milliseconds(howMany int64) (Duration, error) { return NewDuration(howMany, Millisecond) }

// Seconds creates a duration in seconds
func Seconds(howMany int64) (Duration, error) { return NewDuration(howMany, Second) }

// Minutes creates a duration in minutes
func Minutes(howMany int64) (Duration, error) { return NewDuration(howMany, Minute) }

// Hours creates a duration in hours
func Hours(howMany int64) (Duration, error) { return NewDuration(howMany, Hour) }

// Days creates a duration in days
func Days(howMany int64) (Duration, error) { return NewDuration(howMany, Day) }

// Weeks creates a duration in weeks
func Weeks(howMany int64) (Duration, error) { return NewDuration(howMany, Week) }

// Months creates a duration in months
func Months(howMany int64) (Duration, error) { return NewDuration(howMany, Month) }

// Quarters creates a duration in quarters
func Quarters(howMany int64) (Duration, error) { return NewDuration(howMany, Quarter) }

// Years creates a duration in years
func Years(howMany int64) (Duration, error) { return NewDuration(howMany, Year) }

// DaysHoursMinutesSecondsMilliseconds sums the components into a single duration
// expressed in milliseconds
func DaysHoursMinutesSecondsMilliseconds(days, hours, minutes, seconds, milliseconds int64) (Duration, error) {
	result, err := Days(days)
	if err != nil {
		return Duration{}, err
	}

	components := []struct {
		quantity int64
		unit     TimeUnit
	}{
		{hours, Hour},
		{minutes, Minute},
		{seconds, Second},
		{milliseconds, Millisecond},
	}
	for _, c := range components {
		if c.quantity == 0 {
			continue
		}
		part, err := NewDuration(c.quantity, c.unit)
		if err != nil {
			return Duration{}, err
		}
		if result, err = result.Plus(part); err != nil {
			return Duration{}, err
		}
	}

	return NewDuration(result.InBaseUnits(), Millisecond)
}

// Quantity returns the number of units
func (d Duration) Quantity() int64 {
	return d.quantity
}

// Unit returns the unit the duration was expressed in
func (d Duration) Unit() TimeUnit {
	return d.unit
}

// BaseUnit returns the base unit of the duration's convertibility group
func (d Duration) BaseUnit() TimeUnit {
	return d.unit.BaseUnit()
}

// InBaseUnits returns the quantity converted to milliseconds or months
func (d Duration) InBaseUnits() int64 {
	return d.quantity * d.unit.Factor()
}

// IsZero reports whether the duration spans no time
func (d Duration) IsZero() bool {
	return d.quantity == 0
}

// IsConvertibleTo reports whether d and other can be combined and compared
func (d Duration) IsConvertibleTo(other Duration) bool {
	return d.unit.IsConvertibleTo(other.unit)
}

// Plus returns the sum of d and other in the shared base unit
func (d Duration) Plus(other Duration) (Duration, error) {
	if err := d.checkConvertible("plus", other); err != nil {
		return Duration{}, err
	}
	a, b := d.InBaseUnits(), other.InBaseUnits()
	if a > math.MaxInt64-b {
		return Duration{}, errs.NewDurationError("plus", d.String(), other.String(), errs.ErrDurationOverflow)
	}
	return Duration{quantity: a + b, unit: d.BaseUnit()}, nil
}

// Minus returns d less other in the shared base unit; other must not exceed d
func (d Duration) Minus(other Duration) (Duration, error) {
	if err := d.checkConvertible("minus", other); err != nil {
		return Duration{}, err
	}
	if d.InBaseUnits() < other.InBaseUnits() {
		return Duration{}, errs.NewDurationError("minus", d.String(), other.String(), errs.ErrNegativeResult)
	}
	return Duration{quantity: d.InBaseUnits() - other.InBaseUnits(), unit: d.BaseUnit()}, nil
}

// DividedBy returns the exact ratio of the base amounts of d and divisor
func (d Duration) DividedBy(divisor Duration) (Ratio, error) {
	if err := d.checkConvertible("dividedBy", divisor); err != nil {
		return Ratio{}, err
	}
	if divisor.InBaseUnits() == 0 {
		return Ratio{}, errs.NewDurationError("dividedBy", d.String(), divisor.String(), errs.ErrDivisionByZero)
	}
	return NewRatio(d.InBaseUnits(), divisor.InBaseUnits())
}

// Compare returns -1, 0 or +1 depending on whether d is shorter than, equal to or
// longer than other. Two zero durations compare equal whatever their units.
func (d Duration) Compare(other Duration) (int, error) {
	if d.IsZero() && other.IsZero() {
		return 0, nil
	}
	if err := d.checkConvertible("compare", other); err != nil {
		return 0, err
	}
	a, b := d.InBaseUnits(), other.InBaseUnits()
	switch {
	case a > b:
		return 1, nil
	case a < b:
		return -1, nil
	default:
		return 0, nil
	}
}

// IsGreaterThan reports whether d is longer than other
func (d Duration) IsGreaterThan(other Duration) (bool, error) {
	c, err := d.Compare(other)
	return c > 0, err
}

// IsLessThan reports whether d is shorter than other
func (d Duration) IsLessThan(other Duration) (bool, error) {
	c, err := d.Compare(other)
	return c < 0, err
}

// IsGreaterThanOrEqualTo reports whether d is at least as long as other
func (d Duration) IsGreaterThanOrEqualTo(other Duration) (bool, error) {
	c, err := d.Compare(other)
	return err == nil && c >= 0, err
}

// IsLessThanOrEqualTo reports whether d is at most as long as other
func (d Duration) IsLessThanOrEqualTo(other Duration) (bool, error) {
	c, err := d.Compare(other)
	return err == nil && c <= 0, err
}

// Equal reports whether d and other span the same time. Durations from different
// groups are never equal unless both are zero.
func (d Duration) Equal(other Duration) bool {
	c, err := d.Compare(other)
	return err == nil && c == 0
}

// NormalizedUnit returns the coarsest unit of d's group that represents d exactly
func (d Duration) NormalizedUnit() TimeUnit {
	base := d.InBaseUnits()
	for _, u := range d.unit.DescendingUnits() {
		if base%u.Factor() == 0 {
			return u
		}
	}
	// unreachable: the base unit has factor 1
	return d.BaseUnit()
}

// NormalizedQuantity returns the quantity of d expressed in NormalizedUnit
func (d Duration) NormalizedQuantity() int64 {
	return d.InBaseUnits() / d.NormalizedUnit().Factor()
}

// ToNormalizedString decomposes d over every unit of its group, e.g. "1 week, 2 days, 3 hours"
func (d Duration) ToNormalizedString() string {
	return d.toNormalizedString(d.unit.DescendingUnits())
}

// String decomposes d over the display units of its group, e.g. "9 days, 3 hours"
func (d Duration) String() string {
	return d.toNormalizedString(d.unit.DescendingUnitsForDisplay())
}

// toNormalizedString renders zero as "0" of the finest unit
func (d Duration) toNormalizedString(units []TimeUnit) string {
	remainder := d.InBaseUnits()
	if remainder == 0 {
		return units[len(units)-1].Format(0)
	}

	parts := make([]string, 0, len(units))
	for _, u := range units {
		portion := remainder / u.Factor()
		if portion > 0 {
			parts = append(parts, u.Format(portion))
		}
		remainder %= u.Factor()
	}
	return strings.Join(parts, ", ")
}

// AddedTo returns point moved forward by d
func (d Duration) AddedTo(point TimePoint) (TimePoint, error) {
	return d.addAmountToTimePoint(d.InBaseUnits(), point)
}

// SubtractedFrom returns point moved backward by d
func (d Duration) SubtractedFrom(point TimePoint) (TimePoint, error) {
	return d.addAmountToTimePoint(-d.InBaseUnits(), point)
}

// AddedToDate returns day moved forward by d. Durations finer than a day leave the date unchanged.
func (d Duration) AddedToDate(day CalendarDate) (CalendarDate, error) {
	return d.addToDate(day, 1)
}

// SubtractedFromDate returns day moved backward by d. Durations finer than a day leave the date unchanged.
func (d Duration) SubtractedFromDate(day CalendarDate) (CalendarDate, error) {
	return d.addToDate(day, -1)
}

func (d Duration) addAmountToTimePoint(amount int64, point TimePoint) (TimePoint, error) {
	if !d.unit.IsCalendarVariable() {
		millis, err := offsetMilliseconds(point.MillisecondsFromEpoch(), amount)
		if err != nil {
			return TimePoint{}, err
		}
		return TimePointFromMilliseconds(millis), nil
	}

	c := calendarFromTimePoint(point)
	if err := d.addAmountToCalendar(amount, c); err != nil {
		return TimePoint{}, err
	}
	return c.timePoint(), nil
}

func (d Duration) addToDate(day CalendarDate, sign int64) (CalendarDate, error) {
	if d.unit.Compare(Day) < 0 {
		return day, nil
	}

	c := calendarFromDate(day)
	if d.unit == Day {
		days, err := calendarFieldAmount(sign * d.quantity)
		if err != nil {
			return CalendarDate{}, err
		}
		c.addDays(days)
		return c.date(), nil
	}

	if err := d.addAmountToCalendar(sign*d.InBaseUnits(), c); err != nil {
		return CalendarDate{}, err
	}
	return c.date(), nil
}

func (d Duration) addAmountToCalendar(amount int64, c *calendar) error {
	if !d.unit.IsCalendarVariable() {
		return c.addMilliseconds(amount)
	}
	months, err := calendarFieldAmount(amount)
	if err != nil {
		return err
	}
	c.addMonths(months)
	return nil
}

func (d Duration) checkConvertible(operation string, other Duration) error {
	if !other.unit.IsConvertibleTo(d.unit) {
		return errs.NewDurationError(operation, d.String(), other.String(), errs.ErrIncompatibleUnits)
	}
	return nil
}

// calendarFieldAmount narrows amount to the 32-bit range accepted by field addition
func calendarFieldAmount(amount int64) (int32, error) {
	if amount < math.MinInt32 || amount > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d does not fit a calendar field", errs.ErrAmountOutOfRange, amount)
	}
	return int32(amount), nil
}

type durationJSON struct {
	Quantity int64     `json:"quantity"`
	Unit     *TimeUnit `json:"unit"`
}

// MarshalJSON encodes the canonical (quantity, unit) form
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(durationJSON{Quantity: d.quantity, Unit: &d.unit})
}

// UnmarshalJSON decodes and revalidates the canonical (quantity, unit) form
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw durationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Unit == nil {
		return fmt.Errorf("%w: missing unit", errs.ErrUnknownUnit)
	}
	parsed, err := NewDuration(raw.Quantity, *raw.Unit)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
