package duration

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/duration-engine/internal/domain/entity"
	"github.com/amirhossein-jamali/duration-engine/internal/domain/port/usecase"
)

// ApplyToTime moves an instant by a duration. A missing instant means now.
func (s *Service) ApplyToTime(ctx context.Context, req usecase.ApplyToTimeRequest) (*usecase.ApplyToTimeResult, error) {
	sign, err := directionSign(req.Direction)
	if err != nil {
		return nil, err
	}
	d, err := parseSpec(req.Duration)
	if err != nil {
		return nil, err
	}

	var at time.Time
	if req.At != nil {
		at = *req.At
	} else {
		at = s.timeProvider.Now()
	}
	start := entity.TimePointFromTime(at)

	var result entity.TimePoint
	if sign > 0 {
		result, err = d.AddedTo(start)
	} else {
		result, err = d.SubtractedFrom(start)
	}
	if err != nil {
		s.logFailure("Duration could not be applied to time point", err, map[string]any{
			"duration": d.String(),
			"start":    start.String(),
		})
		return nil, err
	}

	s.logger.Debug("Duration applied to time point", map[string]any{
		"duration":  d.String(),
		"direction": string(req.Direction),
		"start":     start.String(),
		"result":    result.String(),
	})
	return &usecase.ApplyToTimeResult{Start: start.Time(), Result: result.Time()}, nil
}

// ApplyToDate moves a calendar date by a duration
func (s *Service) ApplyToDate(ctx context.Context, req usecase.ApplyToDateRequest) (*usecase.ApplyToDateResult, error) {
	sign, err := directionSign(req.Direction)
	if err != nil {
		return nil, err
	}
	d, err := parseSpec(req.Duration)
	if err != nil {
		return nil, err
	}
	start, err := entity.ParseCalendarDate(req.Date)
	if err != nil {
		return nil, err
	}

	var result entity.CalendarDate
	if sign > 0 {
		result, err = d.AddedToDate(start)
	} else {
		result, err = d.SubtractedFromDate(start)
	}
	if err != nil {
		s.logFailure("Duration could not be applied to date", err, map[string]any{
			"duration": d.String(),
			"start":    start.String(),
		})
		return nil, err
	}

	s.logger.Debug("Duration applied to date", map[string]any{
		"duration":  d.String(),
		"direction": string(req.Direction),
		"start":     start.String(),
		"result":    result.String(),
	})
	return &usecase.ApplyToDateResult{Start: start.String(), Result: result.String()}, nil
}
