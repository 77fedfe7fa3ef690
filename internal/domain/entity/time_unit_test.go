package entity

import (
	"encoding/json"
	"testing"

	errs "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeUnitCatalog(t *testing.T) {
	testCases := []struct {
		unit             TimeUnit
		factor           int64
		base             TimeUnit
		calendarVariable bool
	}{
		{Millisecond, 1, Millisecond, false},
		{Second, 1000, Millisecond, false},
		{Minute, 60000, Millisecond, false},
		{Hour, 3600000, Millisecond, false},
		{Day, 86400000, Millisecond, false},
		{Week, 604800000, Millisecond, false},
		{Month, 1, Month, true},
		{Quarter, 3, Month, true},
		{Year, 12, Month, true},
	}

	for _, tc := range testCases {
		t.Run(tc.unit.String(), func(t *testing.T) {
			assert.Equal(t, tc.factor, tc.unit.Factor())
			assert.Equal(t, tc.base, tc.unit.BaseUnit())
			assert.Equal(t, tc.calendarVariable, tc.unit.IsCalendarVariable())
			assert.Equal(t, !tc.calendarVariable, tc.unit.IsConvertibleToMilliseconds())
			assert.True(t, tc.unit.IsValid())
		})
	}
}

func TestTimeUnitOutsideCatalog(t *testing.T) {
	unknown := TimeUnit(99)

	assert.False(t, unknown.IsValid())
	assert.NotPanics(t, func() {
		assert.Equal(t, int64(0), unknown.Factor())
		assert.Equal(t, unknown, unknown.BaseUnit())
		assert.False(t, unknown.IsCalendarVariable())
		assert.False(t, unknown.IsConvertibleTo(unknown))
		assert.False(t, unknown.IsConvertibleToMilliseconds())
		assert.False(t, Millisecond.IsConvertibleTo(unknown))
		assert.Empty(t, unknown.DescendingUnits())
	})
	assert.Equal(t, "TimeUnit(99)", unknown.String())

	_, err := NewDuration(1, unknown)
	assert.ErrorIs(t, err, errs.ErrUnknownUnit)
}

func TestTimeUnitConvertibility(t *testing.T) {
	assert.True(t, Week.IsConvertibleTo(Millisecond))
	assert.True(t, Hour.IsConvertibleTo(Day))
	assert.True(t, Year.IsConvertibleTo(Quarter))
	assert.False(t, Day.IsConvertibleTo(Month))
	assert.False(t, Year.IsConvertibleTo(Week))
}

func TestTimeUnitOrdering(t *testing.T) {
	units := Units()
	require.Len(t, units, 9)
	for i := 1; i < len(units); i++ {
		assert.Equal(t, 1, units[i].Compare(units[i-1]), "%s should span more than %s", units[i], units[i-1])
		assert.Equal(t, -1, units[i-1].Compare(units[i]))
	}
	assert.Equal(t, 0, Day.Compare(Day))
}

func TestDescendingUnits(t *testing.T) {
	t.Run("Fixed-length group", func(t *testing.T) {
		expected := []TimeUnit{Week, Day, Hour, Minute, Second, Millisecond}
		assert.Equal(t, expected, Hour.DescendingUnits())
		assert.Equal(t, expected, Millisecond.DescendingUnits())
	})

	t.Run("Calendar-variable group", func(t *testing.T) {
		assert.Equal(t, []TimeUnit{Year, Quarter, Month}, Month.DescendingUnits())
	})

	t.Run("Display skips week and quarter", func(t *testing.T) {
		assert.Equal(t, []TimeUnit{Day, Hour, Minute, Second, Millisecond}, Week.DescendingUnitsForDisplay())
		assert.Equal(t, []TimeUnit{Year, Month}, Quarter.DescendingUnitsForDisplay())
	})
}

func TestTimeUnitFormat(t *testing.T) {
	testCases := []struct {
		unit     TimeUnit
		quantity int64
		expected string
	}{
		{Day, 1, "1 day"},
		{Day, 3, "3 days"},
		{Millisecond, 0, "0 milliseconds"},
		{Quarter, 1, "1 quarter"},
		{Year, 12, "12 years"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.unit.Format(tc.quantity))
		})
	}
}

func TestParseTimeUnit(t *testing.T) {
	t.Run("Valid names", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected TimeUnit
		}{
			{"day", Day},
			{"Days", Day},
			{"  hour ", Hour},
			{"MILLISECONDS", Millisecond},
			{"quarter", Quarter},
			{"years", Year},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				unit, err := ParseTimeUnit(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, unit)
			})
		}
	})

	t.Run("Unknown names", func(t *testing.T) {
		for _, input := range []string{"", "fortnight", "dayss", "ms"} {
			t.Run(input, func(t *testing.T) {
				_, err := ParseTimeUnit(input)
				assert.ErrorIs(t, err, errs.ErrUnknownUnit)
			})
		}
	})
}

func TestTimeUnitText(t *testing.T) {
	data, err := json.Marshal(map[string]TimeUnit{"unit": Quarter})
	require.NoError(t, err)
	assert.JSONEq(t, `{"unit":"quarter"}`, string(data))

	var decoded map[string]TimeUnit
	require.NoError(t, json.Unmarshal([]byte(`{"unit":"weeks"}`), &decoded))
	assert.Equal(t, Week, decoded["unit"])

	err = json.Unmarshal([]byte(`{"unit":"eon"}`), &decoded)
	assert.ErrorIs(t, err, errs.ErrUnknownUnit)

	_, err = TimeUnit(42).MarshalText()
	assert.ErrorIs(t, err, errs.ErrUnknownUnit)
	assert.Equal(t, "TimeUnit(42)", TimeUnit(42).String())
}
