package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/amirhossein-jamali/duration-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
	"github.com/amirhossein-jamali/duration-engine/internal/domain/port/persistence"
	"github.com/google/uuid"
)

var _ persistence.DurationRepository = (*MemoryDurationRepository)(nil)

// MemoryDurationRepository keeps saved durations in process memory.
// It is used when no database is configured.
type MemoryDurationRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]entity.SavedDuration
	byName map[string]uuid.UUID
}

// NewMemoryDurationRepository creates an empty repository
func NewMemoryDurationRepository() *MemoryDurationRepository {
	return &MemoryDurationRepository{
		byID:   make(map[uuid.UUID]entity.SavedDuration),
		byName: make(map[string]uuid.UUID),
	}
}

// Create stores saved unless its name or ID is taken or limit durations are already held
func (r *MemoryDurationRepository) Create(ctx context.Context, saved *entity.SavedDuration, limit int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[saved.Name]; exists {
		return errs.ErrDuplicateDuration
	}
	if _, exists := r.byID[saved.ID]; exists {
		return errs.ErrDuplicateDuration
	}
	if limit > 0 && int64(len(r.byID)) >= limit {
		return fmt.Errorf("%w: at most %d saved durations", errs.ErrConstraintViolation, limit)
	}

	r.byID[saved.ID] = *saved
	r.byName[saved.Name] = saved.ID
	return nil
}

// GetByID returns a copy of the duration stored under id
func (r *MemoryDurationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SavedDuration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	saved, ok := r.byID[id]
	if !ok {
		return nil, errs.ErrDurationNotFound
	}
	return &saved, nil
}

// GetByName returns a copy of the duration stored under name
func (r *MemoryDurationRepository) GetByName(ctx context.Context, name string) (*entity.SavedDuration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[name]
	if !ok {
		return nil, errs.ErrDurationNotFound
	}
	saved := r.byID[id]
	return &saved, nil
}

// List returns saved durations oldest first, ties broken by name
func (r *MemoryDurationRepository) List(ctx context.Context, offset, limit int) ([]*entity.SavedDuration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	all := make([]entity.SavedDuration, 0, len(r.byID))
	for _, saved := range r.byID {
		all = append(all, saved)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].Name < all[j].Name
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []*entity.SavedDuration{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	page := make([]*entity.SavedDuration, 0, end-offset)
	for i := offset; i < end; i++ {
		page = append(page, &all[i])
	}
	return page, nil
}

// Delete removes the duration stored under id and frees its name
func (r *MemoryDurationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	saved, ok := r.byID[id]
	if !ok {
		return errs.ErrDurationNotFound
	}
	delete(r.byID, id)
	delete(r.byName, saved.Name)
	return nil
}

// Count returns the number of stored durations
func (r *MemoryDurationRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.byID)), nil
}
