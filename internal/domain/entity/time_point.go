package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
)

// referenceZone is the fixed calendar zone used for field arithmetic
var referenceZone = time.UTC

// TimePoint is an instant on the time line with millisecond precision
type TimePoint struct {
	millisecondsFromEpoch int64
}

// TimePointFromMilliseconds creates a TimePoint from milliseconds since the Unix epoch
func TimePointFromMilliseconds(milliseconds int64) TimePoint {
	return TimePoint{millisecondsFromEpoch: milliseconds}
}

// TimePointFromTime truncates t to millisecond precision
func TimePointFromTime(t time.Time) TimePoint {
	return TimePoint{millisecondsFromEpoch: t.UnixMilli()}
}

// TimePointAt builds a TimePoint from calendar fields in the reference zone
func TimePointAt(year int, month time.Month, day, hour, minute, second, millisecond int) TimePoint {
	t := time.Date(year, month, day, hour, minute, second, millisecond*int(time.Millisecond), referenceZone)
	return TimePointFromTime(t)
}

// MillisecondsFromEpoch returns the number of milliseconds since the Unix epoch
func (p TimePoint) MillisecondsFromEpoch() int64 {
	return p.millisecondsFromEpoch
}

// Time returns the instant as a time.Time in the reference zone
func (p TimePoint) Time() time.Time {
	return time.UnixMilli(p.millisecondsFromEpoch).In(referenceZone)
}

// Before reports whether p is earlier than other
func (p TimePoint) Before(other TimePoint) bool {
	return p.millisecondsFromEpoch < other.millisecondsFromEpoch
}

// After reports whether p is later than other
func (p TimePoint) After(other TimePoint) bool {
	return p.millisecondsFromEpoch > other.millisecondsFromEpoch
}

// Equal reports whether p and other denote the same instant
func (p TimePoint) Equal(other TimePoint) bool {
	return p.millisecondsFromEpoch == other.millisecondsFromEpoch
}

// String formats the instant as RFC 3339 with milliseconds
func (p TimePoint) String() string {
	return p.Time().Format("2006-01-02T15:04:05.000Z07:00")
}

// CalendarDate is a day on the calendar without a time of day
type CalendarDate struct {
	year  int
	month time.Month
	day   int
}

// CalendarDateLayout is the ISO 8601 layout used to parse and format dates
const CalendarDateLayout = "2006-01-02"

// NewCalendarDate creates a date, rejecting fields that do not name an existing day
func NewCalendarDate(year int, month time.Month, day int) (CalendarDate, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, referenceZone)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return CalendarDate{}, fmt.Errorf("%w: %04d-%02d-%02d", errs.ErrInvalidDate, year, int(month), day)
	}
	return CalendarDate{year: year, month: month, day: day}, nil
}

// ParseCalendarDate parses a date in YYYY-MM-DD form
func ParseCalendarDate(value string) (CalendarDate, error) {
	t, err := time.ParseInLocation(CalendarDateLayout, value, referenceZone)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %s", errs.ErrInvalidDate, err.Error())
	}
	return calendarDateFromTime(t), nil
}

func calendarDateFromTime(t time.Time) CalendarDate {
	year, month, day := t.Date()
	return CalendarDate{year: year, month: month, day: day}
}

// Year returns the year field
func (d CalendarDate) Year() int { return d.year }

// Month returns the month field
func (d CalendarDate) Month() time.Month { return d.month }

// Day returns the day-of-month field
func (d CalendarDate) Day() int { return d.day }

// StartOfDay returns midnight of the date in the reference zone
func (d CalendarDate) StartOfDay() TimePoint {
	return TimePointFromTime(time.Date(d.year, d.month, d.day, 0, 0, 0, 0, referenceZone))
}

// String formats the date as YYYY-MM-DD
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}
