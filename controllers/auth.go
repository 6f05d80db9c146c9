package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/ipgate/authenticator"
	"github.com/blogem/ipgate/middleware"
	"github.com/blogem/ipgate/models"
	"github.com/blogem/ipgate/repositories"
	"github.com/blogem/ipgate/services"
	"github.com/blogem/ipgate/userctx"
)

const ssoStateKey = "sso_state"

// AuthController handles sign-in, sign-out and session status
type AuthController struct {
	services *services.Services
	sso      authenticator.Provider
	logger   *slog.Logger
}

// NewAuthController creates a new auth controller
func NewAuthController(services *services.Services, sso authenticator.Provider, logger *slog.Logger) *AuthController {
	return &AuthController{
		services: services,
		sso:      sso,
		logger:   logger,
	}
}

// authenticate decodes the login form and checks the credentials for role.
// It writes the error response itself and returns nil on failure.
func (c *AuthController) authenticate(w http.ResponseWriter, r *http.Request, role models.Role, event models.EventType, denied string) *models.User {
	var form models.LoginForm
	if err := decodeJSON(r, &form); err != nil || form.Validate() != nil {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return nil
	}

	user, err := c.services.Users.Authenticate(r.Context(), form.Username, form.Password, role)
	if errors.Is(err, services.ErrInvalidCredentials) {
		if event != "" {
			c.services.AccessLog.Record(r.Context(), userctx.GetClientIP(r.Context()), nil, event, models.StatusDenied,
				"Failed login for "+form.Username)
		}
		writeError(w, http.StatusUnauthorized, denied)
		return nil
	}
	if err != nil {
		writeServiceError(w, c.logger, "Login failed", err)
		return nil
	}

	return user
}

// AdminLogin handles POST /api/auth/admin-login
func (c *AuthController) AdminLogin(w http.ResponseWriter, r *http.Request) {
	user := c.authenticate(w, r, models.RoleAdmin, models.EventAdminLogin, "Invalid admin credentials")
	if user == nil {
		return
	}

	if err := c.services.AccessLog.Record(r.Context(), userctx.GetClientIP(r.Context()), nil, models.EventAdminLogin,
		models.StatusSuccessful, "Admin "+user.Username+" logged in"); err != nil {
		writeServiceError(w, c.logger, "Admin login failed", err)
		return
	}

	middleware.SignIn(r, user)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Admin login successful"})
}

// UserLogin handles POST /api/auth/user-login and whitelists the caller's IP
func (c *AuthController) UserLogin(w http.ResponseWriter, r *http.Request) {
	user := c.authenticate(w, r, models.RoleUser, models.EventUserLogin, "Invalid user credentials")
	if user == nil {
		return
	}

	ip := userctx.GetClientIP(r.Context())
	_, created, err := c.services.Whitelist.EnsureEntry(r.Context(), ip, "Auto-added for user: "+user.Username, &user.ID)
	if err != nil {
		writeServiceError(w, c.logger, "User login failed", err)
		return
	}

	if err := c.services.AccessLog.Record(r.Context(), ip, nil, models.EventUserLogin, models.StatusSuccessful,
		"User "+user.Username+" logged in, IP automatically whitelisted"); err != nil {
		writeServiceError(w, c.logger, "User login failed", err)
		return
	}

	middleware.SignIn(r, user)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "User login successful",
		"ipAdded": created,
		"userIp":  ip,
	})
}

// Login handles POST /api/auth/login for either role
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	user := c.authenticate(w, r, "", "", "Invalid credentials")
	if user == nil {
		return
	}

	middleware.SignIn(r, user)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Login successful"})
}

// Status handles GET /api/auth/status
func (c *AuthController) Status(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.CurrentUser(r)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	user, err := c.services.Users.GetByID(r.Context(), current.ID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			c.logger.Error("failed to load session user", slog.Int64("user_id", current.ID), slog.Any("error", err))
		}
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"userId":        user.ID,
		"username":      user.Username,
		"role":          user.Role,
		"isMainAdmin":   c.services.Users.IsMainAdmin(user),
	})
}

// Logout handles POST /api/auth/logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := middleware.SignOut(r); err != nil {
		c.logger.Error("failed to clear session", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Could not log out")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Logged out successfully"})
}

// SSOLogin handles GET /api/auth/sso/login
func (c *AuthController) SSOLogin(w http.ResponseWriter, r *http.Request) {
	if c.sso == nil {
		writeError(w, http.StatusNotFound, "Single sign-on is not configured")
		return
	}

	state, err := authenticator.GenerateState()
	if err != nil {
		writeServiceError(w, c.logger, "Failed to start single sign-on", err)
		return
	}

	// Save the state in the session to validate in callback
	session.GetSession(r).Set(ssoStateKey, state)
	http.Redirect(w, r, c.sso.GetAuthURL(state), http.StatusTemporaryRedirect)
}

// SSOCallback handles GET /api/auth/sso/callback. Only existing admin
// accounts whose username matches the asserted identity may sign in.
func (c *AuthController) SSOCallback(w http.ResponseWriter, r *http.Request) {
	if c.sso == nil {
		writeError(w, http.StatusNotFound, "Single sign-on is not configured")
		return
	}

	sess := session.GetSession(r)
	storedState, _ := sess.Get(ssoStateKey).(string)
	sess.Delete(ssoStateKey)
	if storedState == "" || r.URL.Query().Get("state") != storedState {
		writeError(w, http.StatusBadRequest, "Invalid state parameter")
		return
	}

	token, err := c.sso.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		c.logger.Warn("sso code exchange failed", slog.Any("error", err))
		writeError(w, http.StatusUnauthorized, "Failed to exchange authorization code")
		return
	}

	claims, err := c.sso.GetClaims(r.Context(), token)
	if err != nil {
		c.logger.Warn("sso token verification failed", slog.Any("error", err))
		writeError(w, http.StatusUnauthorized, "Failed to verify ID token")
		return
	}

	ip := userctx.GetClientIP(r.Context())
	username := claims.Username()
	user, err := c.services.Users.GetByUsername(r.Context(), username)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		writeServiceError(w, c.logger, "Single sign-on failed", err)
		return
	}
	if user == nil || !user.IsAdmin() {
		c.services.AccessLog.Record(r.Context(), ip, nil, models.EventAdminLogin, models.StatusDenied,
			"SSO identity is not an admin: "+username)
		writeError(w, http.StatusForbidden, "Admin access required")
		return
	}

	if err := c.services.AccessLog.Record(r.Context(), ip, nil, models.EventAdminLogin, models.StatusSuccessful,
		"Admin "+user.Username+" logged in via SSO"); err != nil {
		writeServiceError(w, c.logger, "Single sign-on failed", err)
		return
	}

	middleware.SignIn(r, user)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
