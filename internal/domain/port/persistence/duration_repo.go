package persistence

import (
	"context"

	"github.com/amirhossein-jamali/duration-engine/internal/domain/entity"
	"github.com/google/uuid"
)

// DurationRepository stores named durations in their canonical (quantity, unit) form
type DurationRepository interface {
	// Create saves a new named duration. A positive limit caps how many durations
	// may be stored; the count and the insert happen atomically.
	//
	// Possible errors:
	// - ErrDuplicateDuration: If a duration with the same name already exists
	// - ErrConstraintViolation: If limit durations are already stored
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, saved *entity.SavedDuration, limit int64) error

	// GetByID retrieves a saved duration by identifier
	//
	// Possible errors:
	// - ErrDurationNotFound: If nothing is stored under id
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SavedDuration, error)

	// GetByName retrieves a saved duration by its unique name
	//
	// Possible errors:
	// - ErrDurationNotFound: If nothing is stored under name
	GetByName(ctx context.Context, name string) (*entity.SavedDuration, error)

	// List returns saved durations ordered by creation time, oldest first
	List(ctx context.Context, offset, limit int) ([]*entity.SavedDuration, error)

	// Delete removes a saved duration
	//
	// Possible errors:
	// - ErrDurationNotFound: If nothing is stored under id
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of saved durations
	Count(ctx context.Context) (int64, error)
}
