package userctx

import (
	"context"

	"github.com/blogem/ipgate/models"
)

// Context key type
type contextKey string

const sessionUserKey contextKey = "session_user"
const clientIPKey contextKey = "client_ip"

// SessionUser is the signed-in account as recorded in the session
type SessionUser struct {
	ID       int64
	Username string
	Role     models.Role
}

// IsAdmin reports whether the session belongs to an administrator
func (u *SessionUser) IsAdmin() bool {
	return u != nil && u.Role == models.RoleAdmin
}

// SetUser adds the signed-in user to request context
func SetUser(ctx context.Context, user *SessionUser) context.Context {
	return context.WithValue(ctx, sessionUserKey, user)
}

// GetUser retrieves the signed-in user from request context
func GetUser(ctx context.Context) (*SessionUser, bool) {
	user, ok := ctx.Value(sessionUserKey).(*SessionUser)
	return user, ok && user != nil
}

// SetClientIP adds the resolved client address to request context
func SetClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// GetClientIP retrieves the client address from request context
func GetClientIP(ctx context.Context) string {
	ip, ok := ctx.Value(clientIPKey).(string)
	if !ok || ip == "" {
		return "unknown"
	}
	return ip
}
