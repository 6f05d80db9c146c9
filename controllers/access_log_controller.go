package controllers

import (
	"log/slog"
	"net/http"

	"github.com/blogem/ipgate/models"
	"github.com/blogem/ipgate/services"
)

// AccessLogController handles audit log queries
type AccessLogController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewAccessLogController creates a new access log controller
func NewAccessLogController(services *services.Services, logger *slog.Logger) *AccessLogController {
	return &AccessLogController{
		services: services,
		logger:   logger,
	}
}

// Index handles GET /api/access-logs?eventType=&status=
func (c *AccessLogController) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.AccessLogFilter{
		EventType: models.EventType(query.Get("eventType")),
		Status:    models.AccessStatus(query.Get("status")),
	}

	entries, err := c.services.AccessLog.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, c.logger, "Failed to fetch access logs", err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
