package duration

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/duration-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
	"github.com/amirhossein-jamali/duration-engine/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// SaveDuration stores a validated duration under a unique name
func (s *Service) SaveDuration(ctx context.Context, name string, spec usecase.DurationSpec) (*entity.SavedDuration, error) {
	d, err := parseSpec(spec)
	if err != nil {
		return nil, err
	}

	saved, err := entity.NewSavedDuration(name, d, s.timeProvider)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(ctx, saved.Name)
	if err != nil && !errors.Is(err, errs.ErrDurationNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.ErrDuplicateDuration
	}

	if err := s.repo.Create(ctx, saved, s.options.MaxSavedDurations); err != nil {
		if errs.IsClientError(err) {
			s.logFailure("Duration could not be saved", err, map[string]any{"name": saved.Name})
			return nil, err
		}
		s.logger.Error("Failed to save duration", map[string]any{
			"name":  saved.Name,
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Duration saved", map[string]any{
		"id":       saved.ID.String(),
		"name":     saved.Name,
		"duration": d.String(),
	})
	return saved, nil
}

// GetSavedDuration retrieves a saved duration by identifier
func (s *Service) GetSavedDuration(ctx context.Context, id uuid.UUID) (*entity.SavedDuration, error) {
	return s.repo.GetByID(ctx, id)
}

// ListSavedDurations returns a page of saved durations and the total count
func (s *Service) ListSavedDurations(ctx context.Context, offset, limit int) ([]*entity.SavedDuration, int64, error) {
	if offset < 0 {
		return nil, 0, fmt.Errorf("%w: offset must not be negative", errs.ErrInvalidRequest)
	}
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	items, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// DeleteSavedDuration removes a saved duration
func (s *Service) DeleteSavedDuration(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Saved duration deleted", map[string]any{"id": id.String()})
	return nil
}
