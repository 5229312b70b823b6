package handlers

import (
	"net/http"

	"github.com/boomchecker/users-api/internal/models"
	"github.com/boomchecker/users-api/internal/services"
	"github.com/gin-gonic/gin"
)

// HealthHandler handles the health check endpoints
type HealthHandler struct {
	healthService *services.HealthService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(healthService *services.HealthService) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

// Health handles GET /health
// @Summary Aggregate health
// @Description Returns the readiness and liveness checks
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthSummaryResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthSummaryResponse{
		Status: models.HealthStatusUp,
		Checks: h.healthService.Checks(),
	})
}

// Readiness handles GET /health/ready
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthCheckResponse
// @Router /health/ready [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthCheckResponse{
		Status: models.HealthStatusUp,
		Check:  h.healthService.Readiness(),
	})
}

// Liveness handles GET /health/live
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthCheckResponse
// @Router /health/live [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthCheckResponse{
		Status: models.HealthStatusUp,
		Check:  h.healthService.Liveness(),
	})
}
