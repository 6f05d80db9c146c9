package controllers

import (
	"log/slog"
	"net/http"

	"github.com/blogem/ipgate/services"
)

// DashboardController handles dashboard-related requests
type DashboardController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(services *services.Services, logger *slog.Logger) *DashboardController {
	return &DashboardController{
		services: services,
		logger:   logger,
	}
}

// Stats handles GET /api/stats
func (c *DashboardController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.services.Stats.GetDashboardStats(r.Context())
	if err != nil {
		writeServiceError(w, c.logger, "Failed to fetch dashboard statistics", err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
