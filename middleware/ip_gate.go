package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/ipgate/services"
	"github.com/blogem/ipgate/userctx"
)

// RequireWhitelistedIP runs the access gate before a protected resource.
// The file id is taken from the {id} route parameter when present. Denials
// are answered with 403 and already audited by the gate; a failed lookup is
// a 500 and never a denial. Must run after ClientIP.
func RequireWhitelistedIP(gate services.AccessGate, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := userctx.GetClientIP(r.Context())

			var fileID *int64
			if raw := chi.URLParam(r, "id"); raw != "" {
				if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
					fileID = &id
				}
			}

			decision, err := gate.Check(r.Context(), ip, fileID)
			if err != nil {
				logger.Error("ip verification failed", slog.String("ip", ip), slog.Any("error", err))
				writeJSON(w, http.StatusInternalServerError, map[string]string{
					"error":   "Internal Server Error",
					"message": "Failed to verify IP address",
				})
				return
			}

			if decision != services.Allow {
				writeJSON(w, http.StatusForbidden, map[string]string{
					"error":     "Access denied",
					"message":   "Your IP address is not authorized to access this file",
					"ipAddress": services.NormalizeIP(ip),
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
