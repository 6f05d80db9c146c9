package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runtime settings read from the environment
type Config struct {
	Port            string `mapstructure:"PORT"`
	DatabasePath    string `mapstructure:"DATABASE_PATH"`
	UploadsDir      string `mapstructure:"UPLOADS_DIR"`
	MaxUploadBytes  int64  `mapstructure:"MAX_UPLOAD_BYTES"`
	UseHTTPS        bool   `mapstructure:"USE_HTTPS"`
	SessionLifetime int64  `mapstructure:"SESSION_LIFETIME"`
	TrustProxy      bool   `mapstructure:"TRUST_PROXY"`

	AdminUsername string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
	MaxAdmins     int    `mapstructure:"MAX_ADMINS"`

	LoginRatePerMinute int `mapstructure:"LOGIN_RATE_PER_MINUTE"`
	LoginRateBurst     int `mapstructure:"LOGIN_RATE_BURST"`

	OIDCDomain       string `mapstructure:"OIDC_DOMAIN"`
	OIDCClientID     string `mapstructure:"OIDC_CLIENT_ID"`
	OIDCClientSecret string `mapstructure:"OIDC_CLIENT_SECRET"`
	OIDCCallbackURL  string `mapstructure:"OIDC_CALLBACK_URL"`
}

// DefaultAdminPassword is the seeded password used when none is configured
const DefaultAdminPassword = "password"

var defaults = map[string]any{
	"PORT":                  "8080",
	"DATABASE_PATH":         "ipgate.db",
	"UPLOADS_DIR":           "uploads",
	"MAX_UPLOAD_BYTES":      50 * 1024 * 1024,
	"USE_HTTPS":             false,
	"SESSION_LIFETIME":      3600,
	"TRUST_PROXY":           false,
	"ADMIN_USERNAME":        "admin",
	"ADMIN_PASSWORD":        DefaultAdminPassword,
	"MAX_ADMINS":            3,
	"LOGIN_RATE_PER_MINUTE": 10,
	"LOGIN_RATE_BURST":      5,
	"OIDC_DOMAIN":           "",
	"OIDC_CLIENT_ID":        "",
	"OIDC_CLIENT_SECRET":    "",
	"OIDC_CALLBACK_URL":     "",
}

// Load reads an optional .env file and the process environment
func Load(logger *slog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", slog.String("reason", err.Error()))
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings for consistency
func (c *Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.Port); err != nil || port <= 0 || port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be a valid port number, got %q", c.Port))
	}
	if c.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("MAX_UPLOAD_BYTES must be positive"))
	}
	if c.SessionLifetime <= 0 {
		errs = append(errs, errors.New("SESSION_LIFETIME must be positive"))
	}
	if c.MaxAdmins <= 0 {
		errs = append(errs, errors.New("MAX_ADMINS must be positive"))
	}
	if c.LoginRatePerMinute <= 0 || c.LoginRateBurst <= 0 {
		errs = append(errs, errors.New("LOGIN_RATE_PER_MINUTE and LOGIN_RATE_BURST must be positive"))
	}
	if c.AdminUsername == "" {
		errs = append(errs, errors.New("ADMIN_USERNAME is required"))
	}

	oidcSet := 0
	for _, v := range []string{c.OIDCDomain, c.OIDCClientID, c.OIDCClientSecret, c.OIDCCallbackURL} {
		if v != "" {
			oidcSet++
		}
	}
	if oidcSet != 0 && oidcSet != 4 {
		errs = append(errs, errors.New("OIDC_DOMAIN, OIDC_CLIENT_ID, OIDC_CLIENT_SECRET and OIDC_CALLBACK_URL must be set together"))
	}

	return errors.Join(errs...)
}

// OIDCEnabled reports whether single sign-on is configured
func (c *Config) OIDCEnabled() bool {
	return c.OIDCDomain != ""
}
