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

// UserController handles account management requests
type UserController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewUserController creates a new user controller
func NewUserController(services *services.Services, logger *slog.Logger) *UserController {
	return &UserController{
		services: services,
		logger:   logger,
	}
}

// Index handles GET /api/users
func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := c.services.Users.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, c.logger, "Failed to fetch users", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// Create handles POST /api/users
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.UserForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input data")
		return
	}

	user, err := c.services.Users.Create(r.Context(), &form)
	if errors.Is(err, repositories.ErrDuplicateKey) {
		writeError(w, http.StatusConflict, "Username already exists")
		return
	}
	if err != nil {
		writeServiceError(w, c.logger, "Failed to create user", err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Update handles PUT /api/users/{id}
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var form models.UserUpdateForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input data")
		return
	}

	user, err := c.services.Users.Update(r.Context(), id, &form)
	switch {
	case errors.Is(err, repositories.ErrDuplicateKey):
		writeError(w, http.StatusConflict, "Username already exists")
	case errors.Is(err, repositories.ErrNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case err != nil:
		writeServiceError(w, c.logger, "Failed to update user", err)
	default:
		writeJSON(w, http.StatusOK, user)
	}
}

// Delete handles DELETE /api/users/{id}
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	actor, _ := userctx.GetUser(r.Context())
	err := c.services.Users.Delete(r.Context(), actor.ID, id)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		writeServiceError(w, c.logger, "Failed to delete user", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
