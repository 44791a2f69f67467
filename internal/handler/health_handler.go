// internal/handler/health_handler.go
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fiscal-service/internal/config"
	"fiscal-service/internal/database"
	"fiscal-service/internal/service"
	"fiscal-service/internal/utils"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	db             *database.DB
	config         *config.Config
	printerService *service.PrinterService
	logger         *zap.Logger
	startTime      time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.DB, cfg *config.Config, printerService *service.PrinterService, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:             db,
		config:         cfg,
		printerService: printerService,
		logger:         logger,
		startTime:      time.Now(),
	}
}

// RegisterRoutes registers health check routes
func (h *HealthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", h.HealthCheck)
	router.GET("/health/db", h.DatabaseHealthCheck)
	router.GET("/ready", h.ReadinessCheck)
	router.GET("/live", h.LivenessCheck)
}

// HealthCheck returns overall service health
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	data := gin.H{
		"service":           h.config.App.Name,
		"version":           h.config.App.Version,
		"environment":       h.config.App.Environment,
		"uptime":            time.Since(h.startTime).String(),
		"printer_connected": h.printerService.IsConnected(),
		"health_metrics":    h.printerService.GetHealthMetrics(),
	}

	utils.SuccessResponse(c, http.StatusOK, "Service is healthy", data)
}

// DatabaseHealthCheck verifies the journal database connection
// @Summary Database health
// @Tags health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /health/db [get]
func (h *HealthHandler) DatabaseHealthCheck(c *gin.Context) {
	if h.db == nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "Database not configured", nil)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "Database unreachable", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Database is healthy", nil)
}

// ReadinessCheck reports whether the service can accept printer work
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	if !h.printerService.IsConnected() {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "Printer not connected", nil)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ready", nil)
}

// LivenessCheck reports process liveness
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Alive", nil)
}
