package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/duration-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/duration-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/duration-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/duration-engine/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/duration-engine/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ persistence.DurationRepository = (*DurationRepository)(nil)

// DurationRepository implements persistence.DurationRepository using GORM
type DurationRepository struct {
	manager     *database.Manager
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
	metrics     *database.MetricsCollector
	retryConfig database.RetryConfig
}

// NewDurationRepository creates a repository on a connected database manager
func NewDurationRepository(manager *database.Manager, logger coreport.Logger) *DurationRepository {
	return &DurationRepository{
		manager:     manager,
		logger:      logger,
		errorMapper: manager.ErrorMapper(),
		metrics:     manager.Metrics(),
		retryConfig: database.DefaultRetryConfig(),
	}
}

// modelToEntity rebuilds and revalidates a saved duration read from the database
func modelToEntity(m *model.SavedDuration) (*entity.SavedDuration, error) {
	unit, err := entity.ParseTimeUnit(m.Unit)
	if err != nil {
		return nil, fmt.Errorf("%w: stored duration %s has unit %q", errs.ErrInternalServer, m.ID, m.Unit)
	}
	d, err := entity.NewDuration(m.Quantity, unit)
	if err != nil {
		return nil, fmt.Errorf("%w: stored duration %s is invalid: %s", errs.ErrInternalServer, m.ID, err.Error())
	}

	return &entity.SavedDuration{
		ID:        m.ID,
		Name:      m.Name,
		Duration:  d,
		CreatedAt: m.CreatedAt,
	}, nil
}

func entityToModel(saved *entity.SavedDuration) *model.SavedDuration {
	return &model.SavedDuration{
		ID:        saved.ID,
		Name:      saved.Name,
		Quantity:  saved.Duration.Quantity(),
		Unit:      saved.Duration.Unit().String(),
		CreatedAt: saved.CreatedAt,
	}
}

// run times fn under the query timeout, retries it on transient failures and maps
// the final error to a domain error
func (r *DurationRepository) run(ctx context.Context, operation string, fn func(db *gorm.DB) (int64, error)) error {
	err := database.RetryOnTransientError(ctx, r.retryConfig, func() error {
		queryCtx, cancel := r.manager.WithTimeout(ctx)
		defer cancel()

		_, err := r.metrics.MeasureQuery(queryCtx, operation, func() (int64, error) {
			return fn(r.manager.DB().WithContext(queryCtx))
		})
		return err
	}, r.logger)

	if err != nil {
		mapped := r.errorMapper.MapEntityNotFoundError(err, database.EntityTypeSavedDuration)
		if !errs.IsNotFoundError(mapped) {
			r.logger.Error("Database error on saved durations", map[string]any{
				"operation": operation,
				"error":     err.Error(),
			})
		}
		return mapped
	}
	return nil
}

// savedDurationsLockKey serializes limited inserts through a transaction-scoped advisory lock
const savedDurationsLockKey int64 = 0x6475726174696f6e

// Create inserts a new saved duration. With a positive limit the row count is
// checked under an advisory lock in the same transaction as the insert.
func (r *DurationRepository) Create(ctx context.Context, saved *entity.SavedDuration, limit int64) error {
	row := entityToModel(saved)
	var limitReached bool
	err := r.run(ctx, "create_saved_duration", func(db *gorm.DB) (int64, error) {
		limitReached = false
		var affected int64
		txErr := db.Transaction(func(tx *gorm.DB) error {
			if limit > 0 {
				if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", savedDurationsLockKey).Error; err != nil {
					return err
				}
				var count int64
				if err := tx.Model(&model.SavedDuration{}).Count(&count).Error; err != nil {
					return err
				}
				if count >= limit {
					limitReached = true
					return nil
				}
			}
			result := tx.Create(row)
			affected = result.RowsAffected
			return result.Error
		})
		return affected, txErr
	})
	if err != nil {
		return err
	}
	if limitReached {
		return fmt.Errorf("%w: at most %d saved durations", errs.ErrConstraintViolation, limit)
	}
	return nil
}

// GetByID retrieves a saved duration by ID
func (r *DurationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SavedDuration, error) {
	var row model.SavedDuration
	err := r.run(ctx, "get_saved_duration", func(db *gorm.DB) (int64, error) {
		result := db.Where("id = ?", id).First(&row)
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return nil, err
	}
	return modelToEntity(&row)
}

// GetByName retrieves a saved duration by its unique name
func (r *DurationRepository) GetByName(ctx context.Context, name string) (*entity.SavedDuration, error) {
	var row model.SavedDuration
	err := r.run(ctx, "get_saved_duration_by_name", func(db *gorm.DB) (int64, error) {
		result := db.Where("name = ?", name).First(&row)
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return nil, err
	}
	return modelToEntity(&row)
}

// List returns saved durations oldest first
func (r *DurationRepository) List(ctx context.Context, offset, limit int) ([]*entity.SavedDuration, error) {
	var rows []model.SavedDuration
	err := r.run(ctx, "list_saved_durations", func(db *gorm.DB) (int64, error) {
		result := db.Order("created_at ASC, name ASC").Offset(offset).Limit(limit).Find(&rows)
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return nil, err
	}

	saved := make([]*entity.SavedDuration, 0, len(rows))
	for i := range rows {
		s, err := modelToEntity(&rows[i])
		if err != nil {
			return nil, err
		}
		saved = append(saved, s)
	}
	return saved, nil
}

// Delete removes a saved duration by ID
func (r *DurationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var affected int64
	err := r.run(ctx, "delete_saved_duration", func(db *gorm.DB) (int64, error) {
		result := db.Where("id = ?", id).Delete(&model.SavedDuration{})
		affected = result.RowsAffected
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrDurationNotFound
	}
	return nil
}

// Count returns the number of saved durations
func (r *DurationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.run(ctx, "count_saved_durations", func(db *gorm.DB) (int64, error) {
		result := db.Model(&model.SavedDuration{}).Count(&count)
		return result.RowsAffected, result.Error
	})
	return count, err
}
