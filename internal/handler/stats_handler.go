package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"molpredict/internal/service"
)

// StatsHandler handles the informational endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats handles GET /api/v1/stats
// @Summary Get dataset and model statistics
// @Description Reports the reference dataset snapshot, the loaded classifier cascade and system uptime.
// @Tags stats
// @Produce json
// @Success 200 {object} domain.Stats "Aggregate statistics"
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.statsService.Stats())
}

// GetHealth handles GET /api/v1/health
// @Summary Health check with capability report
// @Description Always reports healthy while the process runs; the payload states which capabilities (models, dataset, descriptor engine) are available.
// @Tags stats
// @Produce json
// @Success 200 {object} domain.Health "Health report"
// @Router /health [get]
func (h *StatsHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.statsService.Health())
}

// GetModels handles GET /api/v1/models
// @Summary Get classifier cascade information
// @Description Describes the two cascade levels, the declared functional groups and the model release.
// @Tags stats
// @Produce json
// @Success 200 {object} domain.ModelsInfo "Model information"
// @Router /models [get]
func (h *StatsHandler) GetModels(c *gin.Context) {
	c.JSON(http.StatusOK, h.statsService.Models())
}
