package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/blogem/ipgate/models"
	"github.com/blogem/ipgate/repositories"
	"github.com/blogem/ipgate/services"
	"github.com/blogem/ipgate/userctx"
)

// WhitelistController handles IP whitelist management requests
type WhitelistController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewWhitelistController creates a new whitelist controller
func NewWhitelistController(services *services.Services, logger *slog.Logger) *WhitelistController {
	return &WhitelistController{
		services: services,
		logger:   logger,
	}
}

// whitelistRequest is the body of POST /api/ip-whitelist
type whitelistRequest struct {
	IPAddress   string  `json:"ipAddress"`
	Description string  `json:"description"`
	ExpiresAt   *string `json:"expiresAt"`
}

// Index handles GET /api/ip-whitelist
func (c *WhitelistController) Index(w http.ResponseWriter, r *http.Request) {
	entries, err := c.services.Whitelist.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, c.logger, "Failed to fetch IP whitelist", err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// Create handles POST /api/ip-whitelist
func (c *WhitelistController) Create(w http.ResponseWriter, r *http.Request) {
	var req whitelistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	form := &models.WhitelistForm{
		IPAddress:   req.IPAddress,
		Description: req.Description,
	}
	if req.ExpiresAt != nil {
		expiry, err := models.ParseExpiry(*req.ExpiresAt)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":   "Invalid request data",
				"details": models.ValidationErrors{{Field: "expiresAt", Message: err.Error()}},
			})
			return
		}
		form.ExpiresAt = expiry
	}
	if user, ok := userctx.GetUser(r.Context()); ok {
		form.CreatedBy = &user.ID
	}

	entry, err := c.services.Whitelist.Create(r.Context(), form)
	if errors.Is(err, repositories.ErrDuplicateKey) {
		writeError(w, http.StatusConflict, "IP address already whitelisted")
		return
	}
	if err != nil {
		writeServiceError(w, c.logger, "Failed to add IP to whitelist", err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// Update handles PUT /api/ip-whitelist/{id}
func (c *WhitelistController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid IP whitelist ID")
		return
	}

	var update models.WhitelistUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	entry, err := c.services.Whitelist.Update(r.Context(), id, &update)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusNotFound, "IP whitelist entry not found")
		return
	}
	if err != nil {
		writeServiceError(w, c.logger, "Failed to update IP whitelist", err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Delete handles DELETE /api/ip-whitelist/{id}
func (c *WhitelistController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid IP whitelist ID")
		return
	}

	err := c.services.Whitelist.Delete(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusNotFound, "IP whitelist entry not found")
		return
	}
	if err != nil {
		writeServiceError(w, c.logger, "Failed to delete IP whitelist entry", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "IP whitelist entry deleted successfully"})
}

// AddMyIP handles POST /api/add-my-ip for any signed-in user
func (c *WhitelistController) AddMyIP(w http.ResponseWriter, r *http.Request) {
	user, _ := userctx.GetUser(r.Context())
	ip := userctx.GetClientIP(r.Context())

	entry, created, err := c.services.Whitelist.EnsureEntry(r.Context(), ip, "Added by user: "+user.Username, &user.ID)
	if err != nil {
		writeServiceError(w, c.logger, "Failed to add IP to whitelist", err)
		return
	}

	if !created {
		writeJSON(w, http.StatusOK, map[string]any{
			"success":       true,
			"message":       "Your IP address is already whitelisted",
			"ipAddress":     entry.IPAddress,
			"alreadyExists": true,
		})
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}
