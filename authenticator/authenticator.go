package authenticator

import (
	"context"
	"crypto/rand"
	"encoding/base64"
)

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Username returns the account name the identity provider asserts:
// preferred_username, falling back to email
func (c Claims) Username() string {
	for _, key := range []string{"preferred_username", "email"} {
		if v, ok := c[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}

// GenerateState generates a random state value for CSRF protection
func GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
