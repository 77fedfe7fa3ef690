package entity

import (
	"fmt"
	"math"
	"time"

	errs "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
)

// calendar is a mutable field accumulator in the reference zone.
// It lives for a single operation and is never stored or shared.
type calendar struct {
	t time.Time
}

func calendarFromTimePoint(p TimePoint) *calendar {
	return &calendar{t: p.Time()}
}

func calendarFromDate(d CalendarDate) *calendar {
	return &calendar{t: time.Date(d.year, d.month, d.day, 0, 0, 0, 0, referenceZone)}
}

// addMilliseconds moves the instant on the time line, independent of calendar fields
func (c *calendar) addMilliseconds(amount int64) error {
	millis, err := offsetMilliseconds(c.t.UnixMilli(), amount)
	if err != nil {
		return err
	}
	c.t = time.UnixMilli(millis).In(referenceZone)
	return nil
}

func (c *calendar) addDays(amount int32) {
	c.t = c.t.AddDate(0, 0, int(amount))
}

// addMonths rolls the month field and clamps the day to the length of the target month,
// so Jan 31 plus one month is the last day of February
func (c *calendar) addMonths(amount int32) {
	year, month, day := c.t.Date()
	hour, minute, second := c.t.Clock()

	total := int64(month) - 1 + int64(amount)
	yearDelta := total / 12
	monthIndex := total % 12
	if monthIndex < 0 {
		monthIndex += 12
		yearDelta--
	}

	targetYear := year + int(yearDelta)
	targetMonth := time.Month(monthIndex + 1)
	if last := daysIn(targetYear, targetMonth); day > last {
		day = last
	}

	c.t = time.Date(targetYear, targetMonth, day, hour, minute, second, c.t.Nanosecond(), referenceZone)
}

func (c *calendar) timePoint() TimePoint {
	return TimePointFromTime(c.t)
}

func (c *calendar) date() CalendarDate {
	return calendarDateFromTime(c.t)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, referenceZone).Day()
}

// offsetMilliseconds adds amount to an epoch offset without wrapping around
func offsetMilliseconds(current, amount int64) (int64, error) {
	if (amount > 0 && current > math.MaxInt64-amount) || (amount < 0 && current < math.MinInt64-amount) {
		return 0, fmt.Errorf("%w: %d milliseconds from %d", errs.ErrAmountOutOfRange, amount, current)
	}
	return current + amount, nil
}
