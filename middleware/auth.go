package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/ipgate/models"
	"github.com/blogem/ipgate/repositories"
	"github.com/blogem/ipgate/userctx"
)

// Session keys written on login
const (
	SessionUserID   = "user_id"
	SessionUsername = "username"
	SessionRole     = "role"
)

// SignIn records user in the request's session
func SignIn(r *http.Request, user *models.User) {
	sess := session.GetSession(r)
	sess.Set(SessionUserID, user.ID)
	sess.Set(SessionUsername, user.Username)
	sess.Set(SessionRole, string(user.Role))
}

// SignOut clears every value of the request's session
func SignOut(r *http.Request) error {
	return session.GetSession(r).Flush()
}

// CurrentUser reads the signed-in user from the session
func CurrentUser(r *http.Request) (*userctx.SessionUser, bool) {
	sess := session.GetSession(r)

	id, ok := sess.Get(SessionUserID).(int64)
	if !ok {
		return nil, false
	}
	username, _ := sess.Get(SessionUsername).(string)
	role, _ := sess.Get(SessionRole).(string)

	return &userctx.SessionUser{ID: id, Username: username, Role: models.Role(role)}, true
}

// UserLookup loads the stored state of a signed-in account
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// RequireAuth ensures the session belongs to an existing account.
// Role and username come from the store, not the session, so deleted
// accounts lose access immediately. Unauthenticated API calls get 401.
func RequireAuth(users UserLookup, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current, ok := CurrentUser(r)
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			account, err := users.GetByID(r.Context(), current.ID)
			if errors.Is(err, repositories.ErrNotFound) {
				if err := SignOut(r); err != nil {
					logger.Error("failed to clear stale session", slog.Int64("user_id", current.ID), slog.Any("error", err))
				}
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if err != nil {
				logger.Error("failed to load session user", slog.Int64("user_id", current.ID), slog.Any("error", err))
				writeJSONError(w, http.StatusInternalServerError, "Failed to verify session")
				return
			}

			// Add user to request context for use in handlers
			ctx := userctx.SetUser(r.Context(), &userctx.SessionUser{
				ID:       account.ID,
				Username: account.Username,
				Role:     account.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin ensures the authenticated user holds the admin role.
// Must run after RequireAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := userctx.GetUser(r.Context())
		if !ok || !user.IsAdmin() {
			writeJSONError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireMainAdmin restricts a route to the main administrator account.
// Must run after RequireAuth.
func RequireMainAdmin(mainAdmin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := userctx.GetUser(r.Context())
			if !ok || !user.IsAdmin() || user.Username != mainAdmin {
				writeJSONError(w, http.StatusForbidden, "Only the main administrator can manage users")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
