package duration

import (
	"context"

	"github.com/amirhossein-jamali/duration-engine/internal/domain/entity"
	"github.com/amirhossein-jamali/duration-engine/internal/domain/port/usecase"
)

// Normalize validates spec and describes it
func (s *Service) Normalize(ctx context.Context, spec usecase.DurationSpec) (*usecase.DurationView, error) {
	d, err := parseSpec(spec)
	if err != nil {
		s.logFailure("Invalid duration", err, map[string]any{"quantity": spec.Quantity, "unit": spec.Unit})
		return nil, err
	}

	view := describe(d)
	s.logger.Debug("Duration normalized", map[string]any{
		"duration":        view.Normalized,
		"normalized_unit": view.NormalizedUnit.String(),
	})
	return view, nil
}

// Combine runs a binary operation over two durations
func (s *Service) Combine(ctx context.Context, req usecase.CombineRequest) (*usecase.CombineResult, error) {
	if err := validateOperation(req.Operation); err != nil {
		return nil, err
	}

	left, err := parseSpec(req.Left)
	if err != nil {
		return nil, err
	}
	right, err := parseSpec(req.Right)
	if err != nil {
		return nil, err
	}

	result := &usecase.CombineResult{Operation: req.Operation}
	switch req.Operation {
	case usecase.OperationPlus:
		var sum entity.Duration
		if sum, err = left.Plus(right); err == nil {
			result.Duration = describe(sum)
		}
	case usecase.OperationMinus:
		var difference entity.Duration
		if difference, err = left.Minus(right); err == nil {
			result.Duration = describe(difference)
		}
	case usecase.OperationCompare:
		var comparison int
		if comparison, err = left.Compare(right); err == nil {
			result.Comparison = &comparison
		}
	case usecase.OperationDivide:
		var ratio entity.Ratio
		if ratio, err = left.DividedBy(right); err == nil {
			result.Ratio = &usecase.RatioView{
				Numerator:   ratio.Numerator(),
				Denominator: ratio.Denominator(),
				Decimal:     ratio.DecimalValue(s.options.RatioPlaces).String(),
			}
		}
	}

	if err != nil {
		s.logFailure("Duration operation rejected", err, nil)
		return nil, err
	}

	s.logger.Debug("Duration operation completed", map[string]any{
		"operation": string(req.Operation),
		"left":      left.String(),
		"right":     right.String(),
	})
	return result, nil
}

// Composite sums day/hour/minute/second/millisecond components into milliseconds
func (s *Service) Composite(ctx context.Context, req usecase.CompositeRequest) (*usecase.DurationView, error) {
	d, err := entity.DaysHoursMinutesSecondsMilliseconds(req.Days, req.Hours, req.Minutes, req.Seconds, req.Milliseconds)
	if err != nil {
		s.logFailure("Composite duration rejected", err, map[string]any{
			"days":         req.Days,
			"hours":        req.Hours,
			"minutes":      req.Minutes,
			"seconds":      req.Seconds,
			"milliseconds": req.Milliseconds,
		})
		return nil, err
	}

	s.logger.Debug("Composite duration built", map[string]any{"duration": d.String()})
	return describe(d), nil
}
