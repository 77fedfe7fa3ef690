package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	domainerr "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/duration-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/duration-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/duration-engine/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/duration-engine/internal/infrastructure/adapter/codec"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DurationHandler handles duration calculation and saved-duration HTTP requests
type DurationHandler struct {
	durationUseCase usecase.DurationUseCase
	logger          coreport.Logger
}

// NewDurationHandler creates a new duration handler instance
func NewDurationHandler(durationUseCase usecase.DurationUseCase, logger coreport.Logger) *DurationHandler {
	return &DurationHandler{
		durationUseCase: durationUseCase,
		logger:          logger,
	}
}

// Normalize handles POST /durations/normalize
func (h *DurationHandler) Normalize(c *gin.Context) {
	var req dto.DurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, h.logger, err)
		return
	}

	view, err := h.durationUseCase.Normalize(c.Request.Context(), req.ToSpec())
	if err != nil {
		writeError(c, h.logger, "Normalize failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDurationResponse(view))
}

// Combine handles POST /durations/combine
func (h *DurationHandler) Combine(c *gin.Context) {
	var req dto.CombineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, h.logger, err)
		return
	}

	result, err := h.durationUseCase.Combine(c.Request.Context(), usecase.CombineRequest{
		Left:      req.Left.ToSpec(),
		Right:     req.Right.ToSpec(),
		Operation: usecase.Operation(strings.ToLower(req.Operation)),
	})
	if err != nil {
		writeError(c, h.logger, "Combine failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCombineResponse(result))
}

// ApplyToTime handles POST /durations/apply/time
func (h *DurationHandler) ApplyToTime(c *gin.Context) {
	var req dto.ApplyToTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, h.logger, err)
		return
	}

	result, err := h.durationUseCase.ApplyToTime(c.Request.Context(), usecase.ApplyToTimeRequest{
		Duration:  req.Duration.ToSpec(),
		At:        req.At,
		Direction: usecase.Direction(strings.ToLower(req.Direction)),
	})
	if err != nil {
		writeError(c, h.logger, "Apply to time failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewApplyToTimeResponse(result))
}

// ApplyToDate handles POST /durations/apply/date
func (h *DurationHandler) ApplyToDate(c *gin.Context) {
	var req dto.ApplyToDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, h.logger, err)
		return
	}

	result, err := h.durationUseCase.ApplyToDate(c.Request.Context(), usecase.ApplyToDateRequest{
		Duration:  req.Duration.ToSpec(),
		Date:      req.Date,
		Direction: usecase.Direction(strings.ToLower(req.Direction)),
	})
	if err != nil {
		writeError(c, h.logger, "Apply to date failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.ApplyToDateResponse{Start: result.Start, Result: result.Result})
}

// Composite handles POST /durations/composite
func (h *DurationHandler) Composite(c *gin.Context) {
	var req dto.CompositeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, h.logger, err)
		return
	}

	view, err := h.durationUseCase.Composite(c.Request.Context(), usecase.CompositeRequest{
		Days:         req.Days,
		Hours:        req.Hours,
		Minutes:      req.Minutes,
		Seconds:      req.Seconds,
		Milliseconds: req.Milliseconds,
	})
	if err != nil {
		writeError(c, h.logger, "Composite failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDurationResponse(view))
}

// Save handles POST /durations/saved
func (h *DurationHandler) Save(c *gin.Context) {
	if c.ContentType() == codec.ContentTypeCBOR {
		h.saveCBOR(c)
		return
	}

	var req dto.SaveDurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, h.logger, err)
		return
	}

	h.save(c, req.Name, req.Duration.ToSpec())
}

// saveCBOR stores a record exported by Get under a fresh ID and timestamp
func (h *DurationHandler) saveCBOR(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		writeError(c, h.logger, "Reading request body failed", fmt.Errorf("%w: %v", domainerr.ErrInvalidRequest, err))
		return
	}
	record, err := codec.DecodeSavedDuration(body)
	if err != nil {
		writeError(c, h.logger, "Decoding saved duration failed", err)
		return
	}

	h.save(c, record.Name, usecase.DurationSpec{
		Quantity: record.Duration.Quantity(),
		Unit:     record.Duration.Unit().String(),
	})
}

func (h *DurationHandler) save(c *gin.Context, name string, spec usecase.DurationSpec) {
	saved, err := h.durationUseCase.SaveDuration(c.Request.Context(), name, spec)
	if err != nil {
		writeError(c, h.logger, "Save duration failed", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSavedDurationResponse(saved))
}

// List handles GET /durations/saved?offset=&limit=
func (h *DurationHandler) List(c *gin.Context) {
	offset, err := queryInt(c, "offset")
	if err != nil {
		writeError(c, h.logger, "Invalid offset", err)
		return
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		writeError(c, h.logger, "Invalid limit", err)
		return
	}

	items, total, err := h.durationUseCase.ListSavedDurations(c.Request.Context(), offset, limit)
	if err != nil {
		writeError(c, h.logger, "List saved durations failed", err)
		return
	}

	resp := dto.SavedDurationListResponse{
		Items:  make([]*dto.SavedDurationResponse, 0, len(items)),
		Total:  total,
		Offset: offset,
		Count:  len(items),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.NewSavedDurationResponse(item))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /durations/saved/:id and answers CBOR when the client accepts it
func (h *DurationHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	saved, err := h.durationUseCase.GetSavedDuration(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, "Get saved duration failed", err)
		return
	}

	if strings.Contains(c.GetHeader("Accept"), codec.ContentTypeCBOR) {
		data, err := codec.EncodeSavedDuration(saved)
		if err != nil {
			writeError(c, h.logger, "Encoding saved duration failed", err)
			return
		}
		c.Data(http.StatusOK, codec.ContentTypeCBOR, data)
		return
	}

	c.JSON(http.StatusOK, dto.NewSavedDurationResponse(saved))
}

// Delete handles DELETE /durations/saved/:id
func (h *DurationHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.durationUseCase.DeleteSavedDuration(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, "Delete saved duration failed", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *DurationHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidRequest,
			Message: "Invalid saved duration ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domainerr.ErrInvalidRequest, key)
	}
	return value, nil
}
