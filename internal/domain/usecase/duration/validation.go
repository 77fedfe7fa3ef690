package duration

import (
	"fmt"

	"github.com/amirhossein-jamali/duration-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
	"github.com/amirhossein-jamali/duration-engine/internal/domain/port/usecase"
)

// parseSpec turns the (quantity, unit name) form into a validated duration
func parseSpec(spec usecase.DurationSpec) (entity.Duration, error) {
	unit, err := entity.ParseTimeUnit(spec.Unit)
	if err != nil {
		return entity.Duration{}, err
	}
	return entity.NewDuration(spec.Quantity, unit)
}

func validateOperation(op usecase.Operation) error {
	switch op {
	case usecase.OperationPlus, usecase.OperationMinus, usecase.OperationCompare, usecase.OperationDivide:
		return nil
	default:
		return fmt.Errorf("%w: unsupported operation %q", errs.ErrInvalidRequest, op)
	}
}

// directionSign maps a direction to +1 or -1; an empty direction means add
func directionSign(direction usecase.Direction) (int, error) {
	switch direction {
	case usecase.DirectionAdd, "":
		return 1, nil
	case usecase.DirectionSubtract:
		return -1, nil
	default:
		return 0, fmt.Errorf("%w: unsupported direction %q", errs.ErrInvalidRequest, direction)
	}
}

func describe(d entity.Duration) *usecase.DurationView {
	return &usecase.DurationView{
		Quantity:           d.Quantity(),
		Unit:               d.Unit(),
		BaseUnit:           d.BaseUnit(),
		InBaseUnits:        d.InBaseUnits(),
		NormalizedUnit:     d.NormalizedUnit(),
		NormalizedQuantity: d.NormalizedQuantity(),
		Normalized:         d.ToNormalizedString(),
		Display:            d.String(),
	}
}
