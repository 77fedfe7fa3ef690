package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
)

// TimeUnit identifies one of the units a Duration can be expressed in.
// Values are ordered by how much time one instance conceptually spans.
type TimeUnit uint8

// Time units, finest first
const (
	Millisecond TimeUnit = iota
	Second
	Minute
	Hour
	Day
	Week
	Month
	Quarter
	Year
)

// unitDescriptor holds the fixed catalog data for a unit
type unitDescriptor struct {
	name             string
	factor           int64
	base             TimeUnit
	calendarVariable bool
	displayed        bool
}

// unitTable is indexed by TimeUnit and must stay in span order
var unitTable = [...]unitDescriptor{
	Millisecond: {name: "millisecond", factor: 1, base: Millisecond, displayed: true},
	Second:      {name: "second", factor: 1000, base: Millisecond, displayed: true},
	Minute:      {name: "minute", factor: 60 * 1000, base: Millisecond, displayed: true},
	Hour:        {name: "hour", factor: 60 * 60 * 1000, base: Millisecond, displayed: true},
	Day:         {name: "day", factor: 24 * 60 * 60 * 1000, base: Millisecond, displayed: true},
	Week:        {name: "week", factor: 7 * 24 * 60 * 60 * 1000, base: Millisecond},
	Month:       {name: "month", factor: 1, base: Month, calendarVariable: true, displayed: true},
	Quarter:     {name: "quarter", factor: 3, base: Month, calendarVariable: true},
	Year:        {name: "year", factor: 12, base: Month, calendarVariable: true, displayed: true},
}

// Units returns every unit in ascending span order
func Units() []TimeUnit {
	units := make([]TimeUnit, len(unitTable))
	for i := range unitTable {
		units[i] = TimeUnit(i)
	}
	return units
}

// IsValid reports whether u is part of the unit catalog
func (u TimeUnit) IsValid() bool {
	return int(u) < len(unitTable)
}

// descriptor returns the catalog entry for u. A unit outside the catalog gets a
// zero factor and is its own base, so it converts to nothing.
func (u TimeUnit) descriptor() unitDescriptor {
	if !u.IsValid() {
		return unitDescriptor{base: u}
	}
	return unitTable[u]
}

// Factor returns the multiplier that converts one u into its base unit
func (u TimeUnit) Factor() int64 {
	return u.descriptor().factor
}

// BaseUnit returns Millisecond for fixed-length units and Month for calendar-variable units
func (u TimeUnit) BaseUnit() TimeUnit {
	return u.descriptor().base
}

// IsCalendarVariable reports whether u must be applied through calendar field arithmetic
func (u TimeUnit) IsCalendarVariable() bool {
	return u.descriptor().calendarVariable
}

// IsConvertibleTo reports whether u and other share a base unit
func (u TimeUnit) IsConvertibleTo(other TimeUnit) bool {
	if !u.IsValid() || !other.IsValid() {
		return false
	}
	return u.BaseUnit() == other.BaseUnit()
}

// IsConvertibleToMilliseconds reports whether u has a fixed length
func (u TimeUnit) IsConvertibleToMilliseconds() bool {
	return u.IsConvertibleTo(Millisecond)
}

// Compare orders units by span: -1 if u is finer than other, +1 if coarser, 0 if equal
func (u TimeUnit) Compare(other TimeUnit) int {
	switch {
	case u < other:
		return -1
	case u > other:
		return 1
	default:
		return 0
	}
}

// DescendingUnits returns the units of u's group from coarsest to finest
func (u TimeUnit) DescendingUnits() []TimeUnit {
	return u.descending(false)
}

// DescendingUnitsForDisplay is like DescendingUnits but skips units hidden from
// default rendering (week and quarter)
func (u TimeUnit) DescendingUnitsForDisplay() []TimeUnit {
	return u.descending(true)
}

func (u TimeUnit) descending(displayOnly bool) []TimeUnit {
	base := u.BaseUnit()
	units := make([]TimeUnit, 0, len(unitTable))
	for i := len(unitTable) - 1; i >= 0; i-- {
		d := unitTable[i]
		if d.base != base || (displayOnly && !d.displayed) {
			continue
		}
		units = append(units, TimeUnit(i))
	}
	return units
}

// String returns the singular unit name
func (u TimeUnit) String() string {
	if !u.IsValid() {
		return "TimeUnit(" + strconv.Itoa(int(u)) + ")"
	}
	return u.descriptor().name
}

// Format renders quantity with this unit, pluralizing when quantity != 1
// For example: 1 becomes "1 day", 3 becomes "3 days"
func (u TimeUnit) Format(quantity int64) string {
	name := u.String()
	if quantity != 1 {
		name += "s"
	}
	return strconv.FormatInt(quantity, 10) + " " + name
}

// ParseTimeUnit resolves a singular or plural unit name, ignoring case and surrounding whitespace
func ParseTimeUnit(name string) (TimeUnit, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, d := range unitTable {
		if normalized == d.name || normalized == d.name+"s" {
			return TimeUnit(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errs.ErrUnknownUnit, name)
}

// MarshalText implements encoding.TextMarshaler
func (u TimeUnit) MarshalText() ([]byte, error) {
	if !u.IsValid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownUnit, uint8(u))
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (u *TimeUnit) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
