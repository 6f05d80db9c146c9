package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/ipgate/authenticator"
	"github.com/blogem/ipgate/models"
	"github.com/blogem/ipgate/repositories"
	"github.com/blogem/ipgate/services"
	"github.com/blogem/ipgate/storage"
)

// writeJSON encodes body as the JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError writes {"error": message}
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps service and store errors onto HTTP statuses.
// Anything unrecognised, including ErrStoreUnavailable, is a 500 carrying
// fallback; the details stay in the log.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, fallback string, err error) {
	var ve models.ValidationErrors
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Invalid request data",
			"details": ve,
		})
	case errors.Is(err, repositories.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repositories.ErrDuplicateKey):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrAdminLimit):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidFile):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
	default:
		logger.Error(fallback, slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

// decodeJSON decodes the request body into dst
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// parseID reads the numeric {id} route parameter
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Controllers holds all controller instances
type Controllers struct {
	Auth      *AuthController
	Dashboard *DashboardController
	Files     *FileController
	VIP       *VIPController
	Whitelist *WhitelistController
	Users     *UserController
	AccessLog *AccessLogController
}

// NewControllers creates and initializes all controller instances.
// sso may be nil when single sign-on is not configured.
func NewControllers(services *services.Services, sso authenticator.Provider, logger *slog.Logger) *Controllers {
	return &Controllers{
		Auth:      NewAuthController(services, sso, logger),
		Dashboard: NewDashboardController(services, logger),
		Files:     NewFileController(services, logger),
		VIP:       NewVIPController(services, logger),
		Whitelist: NewWhitelistController(services, logger),
		Users:     NewUserController(services, logger),
		AccessLog: NewAccessLogController(services, logger),
	}
}
