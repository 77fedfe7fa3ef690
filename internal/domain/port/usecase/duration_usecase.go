package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/duration-engine/internal/domain/entity"
	"github.com/google/uuid"
)

// Operation names a binary duration operation
type Operation string

const (
	OperationPlus    Operation = "plus"
	OperationMinus   Operation = "minus"
	OperationCompare Operation = "compare"
	OperationDivide  Operation = "divide"
)

// Direction says whether a duration moves a point forward or backward
type Direction string

const (
	DirectionAdd      Direction = "add"
	DirectionSubtract Direction = "subtract"
)

// DurationSpec is the canonical (quantity, unit name) input form of a duration
type DurationSpec struct {
	Quantity int64
	Unit     string
}

// DurationView describes a duration in every form the engine can render
type DurationView struct {
	Quantity           int64
	Unit               entity.TimeUnit
	BaseUnit           entity.TimeUnit
	InBaseUnits        int64
	NormalizedUnit     entity.TimeUnit
	NormalizedQuantity int64
	Normalized         string
	Display            string
}

// RatioView is an exact quotient plus its rounded decimal value
type RatioView struct {
	Numerator   int64
	Denominator int64
	Decimal     string
}

// CombineRequest applies Operation to Left and Right
type CombineRequest struct {
	Left      DurationSpec
	Right     DurationSpec
	Operation Operation
}

// CombineResult holds exactly one of Duration, Comparison or Ratio depending on the operation
type CombineResult struct {
	Operation  Operation
	Duration   *DurationView
	Comparison *int
	Ratio      *RatioView
}

// ApplyToTimeRequest moves a point on the time line. A nil At means now.
type ApplyToTimeRequest struct {
	Duration  DurationSpec
	At        *time.Time
	Direction Direction
}

// ApplyToTimeResult is the start and resulting instants in UTC
type ApplyToTimeResult struct {
	Start  time.Time
	Result time.Time
}

// ApplyToDateRequest moves a calendar date given as YYYY-MM-DD
type ApplyToDateRequest struct {
	Duration  DurationSpec
	Date      string
	Direction Direction
}

// ApplyToDateResult is the start and resulting dates in YYYY-MM-DD form
type ApplyToDateResult struct {
	Start  string
	Result string
}

// CompositeRequest sums day/hour/minute/second/millisecond components
type CompositeRequest struct {
	Days         int64
	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
}

// DurationUseCase defines the duration calculation and saved-duration operations
type DurationUseCase interface {
	// Normalize validates spec and describes it in normalized and display forms
	Normalize(ctx context.Context, spec DurationSpec) (*DurationView, error)

	// Combine runs plus, minus, compare or divide over two durations
	Combine(ctx context.Context, req CombineRequest) (*CombineResult, error)

	// ApplyToTime adds or subtracts a duration from an instant
	ApplyToTime(ctx context.Context, req ApplyToTimeRequest) (*ApplyToTimeResult, error)

	// ApplyToDate adds or subtracts a duration from a calendar date
	ApplyToDate(ctx context.Context, req ApplyToDateRequest) (*ApplyToDateResult, error)

	// Composite builds a millisecond duration from its components
	Composite(ctx context.Context, req CompositeRequest) (*DurationView, error)

	// SaveDuration stores spec under a unique name
	SaveDuration(ctx context.Context, name string, spec DurationSpec) (*entity.SavedDuration, error)

	// GetSavedDuration retrieves a saved duration by identifier
	GetSavedDuration(ctx context.Context, id uuid.UUID) (*entity.SavedDuration, error)

	// ListSavedDurations returns a page of saved durations and the total count
	ListSavedDurations(ctx context.Context, offset, limit int) ([]*entity.SavedDuration, int64, error)

	// DeleteSavedDuration removes a saved duration
	DeleteSavedDuration(ctx context.Context, id uuid.UUID) error
}
