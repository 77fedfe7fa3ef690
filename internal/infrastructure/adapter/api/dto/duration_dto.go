package dto

import (
	"time"

	"github.com/amirhossein-jamali/duration-engine/internal/domain/entity"
	"github.com/amirhossein-jamali/duration-engine/internal/domain/port/usecase"
)

// TimestampLayout renders instants with millisecond precision in UTC
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// DurationRequest is a duration in canonical (quantity, unit) form
type DurationRequest struct {
	Quantity *int64 `json:"quantity" binding:"required"`
	Unit     string `json:"unit" binding:"required"`
}

// ToSpec converts the request into the use case input form
func (r DurationRequest) ToSpec() usecase.DurationSpec {
	var quantity int64
	if r.Quantity != nil {
		quantity = *r.Quantity
	}
	return usecase.DurationSpec{Quantity: quantity, Unit: r.Unit}
}

// CombineRequest represents the request body for POST /durations/combine
type CombineRequest struct {
	Left      DurationRequest `json:"left"`
	Right     DurationRequest `json:"right"`
	Operation string          `json:"operation" binding:"required"`
}

// ApplyToTimeRequest represents the request body for POST /durations/apply/time
type ApplyToTimeRequest struct {
	Duration  DurationRequest `json:"duration"`
	At        *time.Time      `json:"at"`
	Direction string          `json:"direction"`
}

// ApplyToDateRequest represents the request body for POST /durations/apply/date
type ApplyToDateRequest struct {
	Duration  DurationRequest `json:"duration"`
	Date      string          `json:"date" binding:"required"`
	Direction string          `json:"direction"`
}

// CompositeRequest represents the request body for POST /durations/composite
type CompositeRequest struct {
	Days         int64 `json:"days"`
	Hours        int64 `json:"hours"`
	Minutes      int64 `json:"minutes"`
	Seconds      int64 `json:"seconds"`
	Milliseconds int64 `json:"milliseconds"`
}

// SaveDurationRequest represents the request body for POST /durations/saved
type SaveDurationRequest struct {
	Name     string          `json:"name" binding:"required"`
	Duration DurationRequest `json:"duration"`
}

// DurationResponse describes a duration in every rendered form
type DurationResponse struct {
	Quantity           int64  `json:"quantity"`
	Unit               string `json:"unit"`
	BaseUnit           string `json:"baseUnit"`
	InBaseUnits        int64  `json:"inBaseUnits"`
	NormalizedUnit     string `json:"normalizedUnit"`
	NormalizedQuantity int64  `json:"normalizedQuantity"`
	Normalized         string `json:"normalized"`
	Display            string `json:"display"`
}

// NewDurationResponse converts a use case view
func NewDurationResponse(v *usecase.DurationView) *DurationResponse {
	return &DurationResponse{
		Quantity:           v.Quantity,
		Unit:               v.Unit.String(),
		BaseUnit:           v.BaseUnit.String(),
		InBaseUnits:        v.InBaseUnits,
		NormalizedUnit:     v.NormalizedUnit.String(),
		NormalizedQuantity: v.NormalizedQuantity,
		Normalized:         v.Normalized,
		Display:            v.Display,
	}
}

// RatioResponse is an exact quotient with its decimal rendering
type RatioResponse struct {
	Numerator   int64  `json:"numerator"`
	Denominator int64  `json:"denominator"`
	Decimal     string `json:"decimal"`
}

// CombineResponse carries the one result field matching the operation
type CombineResponse struct {
	Operation  string            `json:"operation"`
	Duration   *DurationResponse `json:"duration,omitempty"`
	Comparison *int              `json:"comparison,omitempty"`
	Ratio      *RatioResponse    `json:"ratio,omitempty"`
}

// NewCombineResponse converts a use case result
func NewCombineResponse(r *usecase.CombineResult) *CombineResponse {
	resp := &CombineResponse{
		Operation:  string(r.Operation),
		Comparison: r.Comparison,
	}
	if r.Duration != nil {
		resp.Duration = NewDurationResponse(r.Duration)
	}
	if r.Ratio != nil {
		resp.Ratio = &RatioResponse{
			Numerator:   r.Ratio.Numerator,
			Denominator: r.Ratio.Denominator,
			Decimal:     r.Ratio.Decimal,
		}
	}
	return resp
}

// ApplyToTimeResponse holds both instants in UTC
type ApplyToTimeResponse struct {
	Start  string `json:"start"`
	Result string `json:"result"`
}

// NewApplyToTimeResponse converts a use case result
func NewApplyToTimeResponse(r *usecase.ApplyToTimeResult) *ApplyToTimeResponse {
	return &ApplyToTimeResponse{
		Start:  r.Start.UTC().Format(TimestampLayout),
		Result: r.Result.UTC().Format(TimestampLayout),
	}
}

// ApplyToDateResponse holds both dates in YYYY-MM-DD form
type ApplyToDateResponse struct {
	Start  string `json:"start"`
	Result string `json:"result"`
}

// SavedDurationResponse represents a stored named duration
type SavedDurationResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	Unit      string `json:"unit"`
	Display   string `json:"display"`
	CreatedAt string `json:"createdAt"`
}

// NewSavedDurationResponse converts a saved duration entity
func NewSavedDurationResponse(s *entity.SavedDuration) *SavedDurationResponse {
	return &SavedDurationResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Quantity:  s.Duration.Quantity(),
		Unit:      s.Duration.Unit().String(),
		Display:   s.Duration.String(),
		CreatedAt: s.CreatedAt.UTC().Format(TimestampLayout),
	}
}

// SavedDurationListResponse is one page of saved durations
type SavedDurationListResponse struct {
	Items  []*SavedDurationResponse `json:"items"`
	Total  int64                    `json:"total"`
	Offset int                      `json:"offset"`
	Count  int                      `json:"count"`
}
