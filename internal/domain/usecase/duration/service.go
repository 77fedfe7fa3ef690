package duration

import (
	"errors"

	errs "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/duration-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/duration-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/duration-engine/internal/domain/port/usecase"
)

const (
	// DefaultRatioPlaces is used when no decimal precision is configured
	DefaultRatioPlaces int32 = 6
	// DefaultListLimit caps a page of saved durations when the caller gives none
	DefaultListLimit = 50
	// MaxListLimit is the largest page size accepted
	MaxListLimit = 500
)

// Options tunes the service
type Options struct {
	// MaxSavedDurations limits how many durations may be stored; zero means unlimited
	MaxSavedDurations int64
	// RatioPlaces is the number of decimal places reported for divide results
	RatioPlaces int32
}

// Service implements the duration use cases on top of the entity engine
type Service struct {
	repo         persistence.DurationRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	options      Options
}

var _ usecase.DurationUseCase = (*Service)(nil)

// NewDurationService creates a new duration service
func NewDurationService(
	repo persistence.DurationRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	options Options,
) *Service {
	if options.RatioPlaces <= 0 {
		options.RatioPlaces = DefaultRatioPlaces
	}
	return &Service{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
		options:      options,
	}
}

// logFailure reports a rejected operation at warn level
func (s *Service) logFailure(message string, err error, fields map[string]any) {
	logFields := map[string]any{}
	var durationErr *errs.DurationError
	if errors.As(err, &durationErr) {
		for k, v := range durationErr.LogFields() {
			logFields[k] = v
		}
	} else {
		logFields["error"] = err.Error()
		logFields["error_code"] = errs.ErrorCode(err)
	}
	for k, v := range fields {
		logFields[k] = v
	}
	s.logger.Warn(message, logFields)
}
