package authenticator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaimsUsername(t *testing.T) {
	assert.Equal(t, "admin", Claims{"preferred_username": "admin", "email": "a@example.com"}.Username())
	assert.Equal(t, "a@example.com", Claims{"preferred_username": "", "email": "a@example.com"}.Username())
	assert.Equal(t, "", Claims{"sub": "123"}.Username())
}

func TestOpenIDConfigValidate(t *testing.T) {
	full := OpenIDConfig{Domain: "login.example.com", ClientID: "id", ClientSecret: "secret", CallbackURL: "http://localhost/cb"}
	assert.NoError(t, full.Validate())

	missing := full
	missing.ClientSecret = ""
	assert.ErrorContains(t, missing.Validate(), "client secret")
}

func TestGenerateState(t *testing.T) {
	a, err := GenerateState()
	assert.NoError(t, err)
	b, err := GenerateState()
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 43)
}
