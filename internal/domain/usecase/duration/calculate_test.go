package duration

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/duration-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
	"github.com/amirhossein-jamali/duration-engine/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/duration-engine/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/duration-engine/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *persistencemocks.MockDurationRepository, *coremocks.MockTimeProvider, *coremocks.MockLogger) {
	mockRepo := persistencemocks.NewMockDurationRepository(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockLogger := coremocks.NewMockLogger(t)

	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return NewDurationService(mockRepo, mockTime, mockLogger, Options{}), mockRepo, mockTime, mockLogger
}

func TestNormalize(t *testing.T) {
	ctx := context.Background()
	service, _, _, _ := newTestService(t)

	t.Run("Mixed units", func(t *testing.T) {
		view, err := service.Normalize(ctx, usecase.DurationSpec{Quantity: 90, Unit: "minutes"})
		require.NoError(t, err)
		assert.Equal(t, entity.Minute, view.Unit)
		assert.Equal(t, entity.Millisecond, view.BaseUnit)
		assert.Equal(t, int64(5400000), view.InBaseUnits)
		assert.Equal(t, entity.Minute, view.NormalizedUnit)
		assert.Equal(t, int64(90), view.NormalizedQuantity)
		assert.Equal(t, "1 hour, 30 minutes", view.Display)
	})

	t.Run("Weeks are hidden from display", func(t *testing.T) {
		view, err := service.Normalize(ctx, usecase.DurationSpec{Quantity: 9, Unit: "day"})
		require.NoError(t, err)
		assert.Equal(t, "1 week, 2 days", view.Normalized)
		assert.Equal(t, "9 days", view.Display)
	})

	t.Run("Unknown unit", func(t *testing.T) {
		_, err := service.Normalize(ctx, usecase.DurationSpec{Quantity: 1, Unit: "fortnight"})
		assert.ErrorIs(t, err, errs.ErrUnknownUnit)
	})

	t.Run("Negative quantity", func(t *testing.T) {
		_, err := service.Normalize(ctx, usecase.DurationSpec{Quantity: -1, Unit: "day"})
		assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
	})
}

func TestCombine(t *testing.T) {
	ctx := context.Background()
	service, _, _, _ := newTestService(t)

	spec := func(quantity int64, unit string) usecase.DurationSpec {
		return usecase.DurationSpec{Quantity: quantity, Unit: unit}
	}

	t.Run("Plus", func(t *testing.T) {
		result, err := service.Combine(ctx, usecase.CombineRequest{
			Left:      spec(1, "day"),
			Right:     spec(3, "hours"),
			Operation: usecase.OperationPlus,
		})
		require.NoError(t, err)
		require.NotNil(t, result.Duration)
		assert.Nil(t, result.Comparison)
		assert.Nil(t, result.Ratio)
		assert.Equal(t, entity.Millisecond, result.Duration.Unit)
		assert.Equal(t, int64(97200000), result.Duration.Quantity)
		assert.Equal(t, "1 day, 3 hours", result.Duration.Display)
	})

	t.Run("Minus", func(t *testing.T) {
		result, err := service.Combine(ctx, usecase.CombineRequest{
			Left:      spec(1, "year"),
			Right:     spec(1, "quarter"),
			Operation: usecase.OperationMinus,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.Month, result.Duration.Unit)
		assert.Equal(t, int64(9), result.Duration.Quantity)
	})

	t.Run("Minus below zero", func(t *testing.T) {
		_, err := service.Combine(ctx, usecase.CombineRequest{
			Left:      spec(1, "hour"),
			Right:     spec(1, "day"),
			Operation: usecase.OperationMinus,
		})
		assert.ErrorIs(t, err, errs.ErrNegativeResult)
	})

	t.Run("Compare", func(t *testing.T) {
		result, err := service.Combine(ctx, usecase.CombineRequest{
			Left:      spec(2, "weeks"),
			Right:     spec(14, "days"),
			Operation: usecase.OperationCompare,
		})
		require.NoError(t, err)
		require.NotNil(t, result.Comparison)
		assert.Equal(t, 0, *result.Comparison)
	})

	t.Run("Divide", func(t *testing.T) {
		result, err := service.Combine(ctx, usecase.CombineRequest{
			Left:      spec(1, "hour"),
			Right:     spec(40, "minutes"),
			Operation: usecase.OperationDivide,
		})
		require.NoError(t, err)
		require.NotNil(t, result.Ratio)
		assert.Equal(t, int64(3600000), result.Ratio.Numerator)
		assert.Equal(t, int64(2400000), result.Ratio.Denominator)
		assert.Equal(t, "1.5", result.Ratio.Decimal)
	})

	t.Run("Divide by zero", func(t *testing.T) {
		_, err := service.Combine(ctx, usecase.CombineRequest{
			Left:      spec(1, "hour"),
			Right:     spec(0, "minutes"),
			Operation: usecase.OperationDivide,
		})
		assert.ErrorIs(t, err, errs.ErrDivisionByZero)
	})

	t.Run("Incompatible units", func(t *testing.T) {
		_, err := service.Combine(ctx, usecase.CombineRequest{
			Left:      spec(1, "month"),
			Right:     spec(30, "days"),
			Operation: usecase.OperationPlus,
		})
		assert.True(t, errs.IsIncompatibleUnitsError(err))
	})

	t.Run("Unsupported operation", func(t *testing.T) {
		_, err := service.Combine(ctx, usecase.CombineRequest{
			Left:      spec(1, "day"),
			Right:     spec(1, "day"),
			Operation: "multiply",
		})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestCombineLogsDurationErrorFields(t *testing.T) {
	mockRepo := persistencemocks.NewMockDurationRepository(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockLogger := coremocks.NewMockLogger(t)

	mockLogger.EXPECT().Warn("Duration operation rejected", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["operation"] == "minus" &&
			fields["left"] == "1 hour" &&
			fields["right"] == "1 day" &&
			fields["error_code"] == errs.CodeNegativeResult
	})).Once()

	service := NewDurationService(mockRepo, mockTime, mockLogger, Options{})
	_, err := service.Combine(context.Background(), usecase.CombineRequest{
		Left:      usecase.DurationSpec{Quantity: 1, Unit: "hour"},
		Right:     usecase.DurationSpec{Quantity: 1, Unit: "day"},
		Operation: usecase.OperationMinus,
	})
	assert.ErrorIs(t, err, errs.ErrNegativeResult)
}

func TestComposite(t *testing.T) {
	ctx := context.Background()
	service, _, _, _ := newTestService(t)

	view, err := service.Composite(ctx, usecase.CompositeRequest{Days: 1, Hours: 2, Minutes: 3, Seconds: 4, Milliseconds: 5})
	require.NoError(t, err)
	assert.Equal(t, entity.Millisecond, view.Unit)
	assert.Equal(t, int64(93784005), view.Quantity)
	assert.Equal(t, "1 day, 2 hours, 3 minutes, 4 seconds, 5 milliseconds", view.Display)

	_, err = service.Composite(ctx, usecase.CompositeRequest{Hours: -1})
	assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
}
