package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"molpredict/internal/service"
)

// HealthHandler handles liveness and readiness probes.
type HealthHandler struct {
	statsService service.StatsService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(statsService service.StatsService) *HealthHandler {
	return &HealthHandler{statsService: statsService}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if !h.statsService.Health().ModelsLoaded {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "models not loaded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
