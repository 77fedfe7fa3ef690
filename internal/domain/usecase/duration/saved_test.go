package duration

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/amirhossein-jamali/duration-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
	"github.com/amirhossein-jamali/duration-engine/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/duration-engine/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/duration-engine/mocks/port/persistence"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSaveDuration(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	spec := usecase.DurationSpec{Quantity: 2, Unit: "weeks"}

	t.Run("Successful save", func(t *testing.T) {
		service, mockRepo, mockTime, _ := newTestService(t)

		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockRepo.EXPECT().GetByName(mock.Anything, "sprint").Return(nil, errs.ErrDurationNotFound).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(saved *entity.SavedDuration) bool {
			return saved.Name == "sprint" && saved.Duration.Equal(entity.Must(entity.Days(14)))
		}), int64(0)).Return(nil).Once()

		saved, err := service.SaveDuration(ctx, "sprint", spec)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, saved.ID)
		assert.Equal(t, fixedTime, saved.CreatedAt)
		assert.Equal(t, entity.Week, saved.Duration.Unit())
	})

	t.Run("Duplicate name", func(t *testing.T) {
		service, mockRepo, mockTime, _ := newTestService(t)

		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockRepo.EXPECT().GetByName(mock.Anything, "sprint").Return(&entity.SavedDuration{Name: "sprint"}, nil).Once()

		saved, err := service.SaveDuration(ctx, "sprint", spec)
		assert.Nil(t, saved)
		assert.Equal(t, errs.ErrDuplicateDuration, err)
	})

	t.Run("Invalid duration is rejected before storage", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.SaveDuration(ctx, "sprint", usecase.DurationSpec{Quantity: -2, Unit: "weeks"})
		assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
	})

	t.Run("Limit reached", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockDurationRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)
		service := NewDurationService(mockRepo, mockTime, mockLogger, Options{MaxSavedDurations: 3})

		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockRepo.EXPECT().GetByName(mock.Anything, "sprint").Return(nil, errs.ErrDurationNotFound).Once()
		limitErr := fmt.Errorf("%w: at most 3 saved durations", errs.ErrConstraintViolation)
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything, int64(3)).Return(limitErr).Once()
		mockLogger.EXPECT().Warn("Duration could not be saved", mock.Anything).Once()

		_, err := service.SaveDuration(ctx, "sprint", spec)
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})

	t.Run("Repository failure", func(t *testing.T) {
		service, mockRepo, mockTime, _ := newTestService(t)
		databaseError := errors.New("database insert error")

		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockRepo.EXPECT().GetByName(mock.Anything, "sprint").Return(nil, errs.ErrDurationNotFound).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything, int64(0)).Return(databaseError).Once()

		_, err := service.SaveDuration(ctx, "sprint", spec)
		assert.Equal(t, databaseError, err)
	})
}

func TestListSavedDurations(t *testing.T) {
	ctx := context.Background()

	t.Run("Default page size", func(t *testing.T) {
		service, mockRepo, _, _ := newTestService(t)
		items := []*entity.SavedDuration{{Name: "a"}, {Name: "b"}}

		mockRepo.EXPECT().Count(mock.Anything).Return(int64(2), nil).Once()
		mockRepo.EXPECT().List(mock.Anything, 0, DefaultListLimit).Return(items, nil).Once()

		result, total, err := service.ListSavedDurations(ctx, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, items, result)
	})

	t.Run("Page size is capped", func(t *testing.T) {
		service, mockRepo, _, _ := newTestService(t)

		mockRepo.EXPECT().Count(mock.Anything).Return(int64(0), nil).Once()
		mockRepo.EXPECT().List(mock.Anything, 10, MaxListLimit).Return(nil, nil).Once()

		_, _, err := service.ListSavedDurations(ctx, 10, MaxListLimit+1)
		require.NoError(t, err)
	})

	t.Run("Negative offset", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, _, err := service.ListSavedDurations(ctx, -1, 10)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestGetAndDeleteSavedDuration(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("Get", func(t *testing.T) {
		service, mockRepo, _, _ := newTestService(t)
		stored := &entity.SavedDuration{ID: id, Name: "sprint", Duration: entity.Must(entity.Weeks(2))}
		mockRepo.EXPECT().GetByID(mock.Anything, id).Return(stored, nil).Once()

		saved, err := service.GetSavedDuration(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, stored, saved)
	})

	t.Run("Delete missing", func(t *testing.T) {
		service, mockRepo, _, _ := newTestService(t)
		mockRepo.EXPECT().Delete(mock.Anything, id).Return(errs.ErrDurationNotFound).Once()

		err := service.DeleteSavedDuration(ctx, id)
		assert.True(t, errs.IsNotFoundError(err))
	})

	t.Run("Delete", func(t *testing.T) {
		service, mockRepo, _, mockLogger := newTestService(t)
		mockRepo.EXPECT().Delete(mock.Anything, id).Return(nil).Once()
		mockLogger.EXPECT().Info("Saved duration deleted", mock.Anything).Maybe()

		require.NoError(t, service.DeleteSavedDuration(ctx, id))
	})
}
