package repository

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/duration-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
	"github.com/amirhossein-jamali/duration-engine/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/duration-engine/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/duration-engine/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelConversion(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	saved := savedDuration("quarter-close", entity.Must(entity.Quarters(1)), createdAt)

	row := entityToModel(saved)
	assert.Equal(t, saved.ID, row.ID)
	assert.Equal(t, int64(1), row.Quantity)
	assert.Equal(t, "quarter", row.Unit)

	back, err := modelToEntity(row)
	require.NoError(t, err)
	assert.Equal(t, saved.Duration, back.Duration)
	assert.Equal(t, createdAt, back.CreatedAt)

	t.Run("Corrupt rows", func(t *testing.T) {
		_, err := modelToEntity(&model.SavedDuration{ID: uuid.New(), Name: "x", Quantity: 1, Unit: "fortnight"})
		assert.ErrorIs(t, err, errs.ErrInternalServer)

		_, err = modelToEntity(&model.SavedDuration{ID: uuid.New(), Name: "x", Quantity: -1, Unit: "day"})
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}

func TestDurationRepositoryIntegration(t *testing.T) {
	database.SkipWithoutTestDatabase(t)

	log := logger.NewNoopLogger()
	testDB := database.NewTestDBManager(t, log)
	testDB.Connect(t)
	defer testDB.Close(t)
	testDB.SetupTestDB(t)

	repo := NewDurationRepository(testDB.Manager, log)
	ctx := context.Background()

	saved, err := entity.NewSavedDuration("standup", entity.Must(entity.Minutes(15)), testDB.TimeProvider)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, saved, 0))

	got, err := repo.GetByName(ctx, "standup")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.True(t, got.Duration.Equal(saved.Duration))

	dup, err := entity.NewSavedDuration("standup", entity.Must(entity.Minutes(30)), testDB.TimeProvider)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, dup, 0), errs.ErrDuplicateDuration)

	extra, err := entity.NewSavedDuration("retro", entity.Must(entity.Hours(1)), testDB.TimeProvider)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, extra, 1), errs.ErrConstraintViolation)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	list, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, saved.ID))
	_, err = repo.GetByID(ctx, saved.ID)
	assert.ErrorIs(t, err, errs.ErrDurationNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, saved.ID), errs.ErrDurationNotFound)
}
