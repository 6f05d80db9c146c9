package config

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoad(t *testing.T) {
	t.Run("Default Values", func(t *testing.T) {
		cfg, err := Load(testLogger())
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "ipgate.db", cfg.DatabasePath)
		assert.Equal(t, int64(50*1024*1024), cfg.MaxUploadBytes)
		assert.Equal(t, 3, cfg.MaxAdmins)
		assert.False(t, cfg.TrustProxy)
		assert.False(t, cfg.OIDCEnabled())
	})

	t.Run("Environment Variables", func(t *testing.T) {
		t.Setenv("PORT", "9999")
		t.Setenv("TRUST_PROXY", "true")
		t.Setenv("MAX_ADMINS", "5")

		cfg, err := Load(testLogger())
		require.NoError(t, err)
		assert.Equal(t, "9999", cfg.Port)
		assert.True(t, cfg.TrustProxy)
		assert.Equal(t, 5, cfg.MaxAdmins)
	})

	t.Run("Invalid Port", func(t *testing.T) {
		t.Setenv("PORT", "http")

		_, err := Load(testLogger())
		assert.ErrorContains(t, err, "PORT")
	})

	t.Run("Partial OIDC Block", func(t *testing.T) {
		t.Setenv("OIDC_DOMAIN", "login.example.com")

		_, err := Load(testLogger())
		assert.ErrorContains(t, err, "OIDC")
	})
}
