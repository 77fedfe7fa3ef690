package duration

import (
	"context"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
	"github.com/amirhossein-jamali/duration-engine/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyToTime(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 1, 31, 10, 30, 0, 0, time.UTC)

	t.Run("Defaults to now", func(t *testing.T) {
		service, _, mockTime, _ := newTestService(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		result, err := service.ApplyToTime(ctx, usecase.ApplyToTimeRequest{
			Duration: usecase.DurationSpec{Quantity: 1, Unit: "month"},
		})
		require.NoError(t, err)
		assert.Equal(t, fixedTime, result.Start)
		assert.Equal(t, time.Date(2024, 2, 29, 10, 30, 0, 0, time.UTC), result.Result)
	})

	t.Run("Explicit instant and subtraction", func(t *testing.T) {
		service, _, _, _ := newTestService(t)
		at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

		result, err := service.ApplyToTime(ctx, usecase.ApplyToTimeRequest{
			Duration:  usecase.DurationSpec{Quantity: 36, Unit: "hours"},
			At:        &at,
			Direction: usecase.DirectionSubtract,
		})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 2, 28, 12, 0, 0, 0, time.UTC), result.Result)
	})

	t.Run("Unsupported direction", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.ApplyToTime(ctx, usecase.ApplyToTimeRequest{
			Duration:  usecase.DurationSpec{Quantity: 1, Unit: "day"},
			Direction: "sideways",
		})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestApplyToDate(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		spec      usecase.DurationSpec
		date      string
		direction usecase.Direction
		expected  string
	}{
		{"Days forward", usecase.DurationSpec{Quantity: 10, Unit: "days"}, "2024-02-25", usecase.DirectionAdd, "2024-03-06"},
		{"Quarter clamps day", usecase.DurationSpec{Quantity: 1, Unit: "quarter"}, "2023-11-30", usecase.DirectionAdd, "2024-02-29"},
		{"Year backward", usecase.DurationSpec{Quantity: 1, Unit: "year"}, "2024-02-29", usecase.DirectionSubtract, "2023-02-28"},
		{"Hours leave date unchanged", usecase.DurationSpec{Quantity: 23, Unit: "hours"}, "2024-05-05", usecase.DirectionAdd, "2024-05-05"},
		{"Week forward", usecase.DurationSpec{Quantity: 1, Unit: "week"}, "2024-12-28", usecase.DirectionAdd, "2025-01-04"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, _, _, _ := newTestService(t)

			result, err := service.ApplyToDate(ctx, usecase.ApplyToDateRequest{
				Duration:  tc.spec,
				Date:      tc.date,
				Direction: tc.direction,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.date, result.Start)
			assert.Equal(t, tc.expected, result.Result)
		})
	}

	t.Run("Invalid date", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.ApplyToDate(ctx, usecase.ApplyToDateRequest{
			Duration: usecase.DurationSpec{Quantity: 1, Unit: "day"},
			Date:     "2023-02-29",
		})
		assert.ErrorIs(t, err, errs.ErrInvalidDate)
	})

	t.Run("Month amount out of range", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.ApplyToDate(ctx, usecase.ApplyToDateRequest{
			Duration: usecase.DurationSpec{Quantity: 200000000, Unit: "years"},
			Date:     "2024-01-01",
		})
		assert.ErrorIs(t, err, errs.ErrAmountOutOfRange)
	})
}
