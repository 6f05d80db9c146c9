package controllers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/blogem/ipgate/repositories"
	"github.com/blogem/ipgate/services"
	"github.com/blogem/ipgate/userctx"
)

// VIPController serves the newest VIP script to whitelisted clients
type VIPController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewVIPController creates a new VIP script controller
func NewVIPController(services *services.Services, logger *slog.Logger) *VIPController {
	return &VIPController{
		services: services,
		logger:   logger,
	}
}

func writeScriptComment(w http.ResponseWriter, status int, comment string) {
	w.Header().Set("Content-Type", "application/javascript")
	w.WriteHeader(status)
	io.WriteString(w, "// "+comment)
}

// Preflight handles OPTIONS /VIP.js
func (c *VIPController) Preflight(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Max-Age", "86400")
	w.WriteHeader(http.StatusOK)
}

// Serve handles GET /VIP.js behind the access gate
func (c *VIPController) Serve(w http.ResponseWriter, r *http.Request) {
	file, err := c.services.Files.LatestVIP(r.Context())
	if errors.Is(err, repositories.ErrNotFound) {
		writeScriptComment(w, http.StatusNotFound, "VIP.js file not found")
		return
	}
	if err != nil {
		c.logger.Error("failed to find vip script", slog.Any("error", err))
		writeScriptComment(w, http.StatusInternalServerError, "Error loading VIP.js file")
		return
	}

	content, err := c.services.Files.Open(file)
	if errors.Is(err, services.ErrFileMissing) {
		writeScriptComment(w, http.StatusNotFound, "VIP.js file not found on disk")
		return
	}
	if err != nil {
		c.logger.Error("failed to open vip script", slog.Int64("file_id", file.ID), slog.Any("error", err))
		writeScriptComment(w, http.StatusInternalServerError, "Error loading VIP.js file")
		return
	}
	defer content.Close()

	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/javascript")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, content); err != nil {
		c.logger.Warn("vip script delivery interrupted", slog.Int64("file_id", file.ID), slog.Any("error", err))
		return
	}

	ip := userctx.GetClientIP(r.Context())
	if err := c.services.Gate.RecordServed(r.Context(), ip, &file.ID, "VIP.js accessed: "+file.OriginalFilename); err != nil {
		c.logger.Error("failed to record vip script access", slog.Int64("file_id", file.ID), slog.Any("error", err))
	}
}
