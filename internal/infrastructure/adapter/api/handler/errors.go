package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/duration-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/duration-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/duration-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// statusFor maps a domain error to its HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrDurationNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrDuplicateDuration):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrConstraintViolation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerr.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	case domainerr.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and writes the standard error body.
// Server-side failures never leak their message.
func writeError(c *gin.Context, logger coreport.Logger, message string, err error) {
	status := statusFor(err)
	fields := map[string]any{
		"path":       c.Request.URL.Path,
		"status":     status,
		"error":      err.Error(),
		"error_code": domainerr.ErrorCode(err),
	}

	body := dto.ErrorResponse{Code: domainerr.ErrorCode(err), Message: err.Error()}
	if status >= http.StatusInternalServerError {
		logger.Error(message, fields)
		body.Message = "Internal server error"
		if status == http.StatusServiceUnavailable {
			body.Message = "Service temporarily unavailable"
		}
	} else {
		logger.Warn(message, fields)
	}

	c.JSON(status, body)
}

// writeBindError answers a request body that could not be decoded or validated
func writeBindError(c *gin.Context, logger coreport.Logger, err error) {
	logger.Warn("Invalid request format", map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	})
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.CodeInvalidRequest,
		Message: "Invalid request format: " + err.Error(),
	})
}
