package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/duration-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// HealthHandler reports service health. A nil databaseHealthy means the service runs without a database.
type HealthHandler struct {
	databaseHealthy func() bool
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(databaseHealthy func() bool) *HealthHandler {
	return &HealthHandler{databaseHealthy: databaseHealthy}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if h.databaseHealthy == nil {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
		return
	}

	if !h.databaseHealthy() {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: "down"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "up"})
}
