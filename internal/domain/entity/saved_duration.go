package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/duration-engine/internal/domain/port/core"
	"github.com/google/uuid"
)

// MaxSavedDurationNameLength bounds the name column
const MaxSavedDurationNameLength = 100

// SavedDuration is a named duration kept for later reuse
type SavedDuration struct {
	ID        uuid.UUID
	Name      string
	Duration  Duration
	CreatedAt time.Time
}

// NewSavedDuration creates a saved duration with a fresh identifier
func NewSavedDuration(name string, d Duration, timeProvider coreport.TimeProvider) (*SavedDuration, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxSavedDurationNameLength {
		return nil, fmt.Errorf("%w: name must be 1 to %d characters", errs.ErrInvalidRequest, MaxSavedDurationNameLength)
	}

	return &SavedDuration{
		ID:        uuid.New(),
		Name:      name,
		Duration:  d,
		CreatedAt: timeProvider.Now().UTC(),
	}, nil
}
