package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/blogem/ipgate/authenticator"
	"github.com/blogem/ipgate/config"
	"github.com/blogem/ipgate/controllers"
	"github.com/blogem/ipgate/database"
	gatemiddleware "github.com/blogem/ipgate/middleware"
	"github.com/blogem/ipgate/repositories"
	"github.com/blogem/ipgate/services"
	"github.com/blogem/ipgate/storage"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("ipgate stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(logger)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database
	db, err := database.InitializeDatabase(cfg.DatabasePath, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	store, err := storage.NewFileStore(cfg.UploadsDir, cfg.MaxUploadBytes)
	if err != nil {
		return err
	}

	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos, store, services.Options{
		MainAdmin: cfg.AdminUsername,
		MaxAdmins: cfg.MaxAdmins,
	}, logger)

	if err := seed(ctx, srvs, cfg, logger); err != nil {
		return err
	}

	var sso authenticator.Provider
	if cfg.OIDCEnabled() {
		sso, err = authenticator.NewOpenIDProvider(ctx, authenticator.OpenIDConfig{
			Domain:       cfg.OIDCDomain,
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			CallbackURL:  cfg.OIDCCallbackURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize single sign-on: %w", err)
		}
	}

	ctrl := controllers.NewControllers(srvs, sso, logger)

	r, err := setupRouter(ctrl, srvs, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to setup router: %w", err)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("ipgate starting",
			slog.String("port", cfg.Port),
			slog.String("database", cfg.DatabasePath),
			slog.String("uploads", cfg.UploadsDir),
			slog.Bool("sso", sso != nil),
		)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// seed creates the main administrator and whitelists localhost on first start
func seed(ctx context.Context, srvs *services.Services, cfg *config.Config, logger *slog.Logger) error {
	admin, created, err := srvs.Users.EnsureMainAdmin(ctx, cfg.AdminPassword)
	if err != nil {
		return err
	}
	if created {
		logger.Info("main administrator created", slog.String("username", admin.Username))
		if cfg.AdminPassword == config.DefaultAdminPassword {
			logger.Warn("main administrator uses the default password, set ADMIN_PASSWORD")
		}
	}

	if _, created, err := srvs.Whitelist.EnsureEntry(ctx, "127.0.0.1", "Localhost", nil); err != nil {
		return fmt.Errorf("failed to whitelist localhost: %w", err)
	} else if created {
		logger.Info("localhost whitelisted")
	}

	return nil
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, srvs *services.Services, cfg *config.Config, logger *slog.Logger) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks and uploads
	r.Use(gatemiddleware.Metrics)
	r.Use(gatemiddleware.ClientIP(cfg.TrustProxy))

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "ipgate_session",
		Secure:         cfg.UseHTTPS, // Set to true when USE_HTTPS=true (production)
		Gclifetime:     cfg.SessionLifetime,
		Maxlifetime:    cfg.SessionLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	ipGate := gatemiddleware.RequireWhitelistedIP(srvs.Gate, logger)
	loginLimiter := gatemiddleware.NewIPRateLimiter(cfg.LoginRatePerMinute, cfg.LoginRateBurst)

	// PUBLIC ROUTES (no authentication required)
	r.Options("/VIP.js", ctrl.VIP.Preflight)
	r.With(ipGate).Get("/VIP.js", ctrl.VIP.Serve)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "ipgate"}`)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(gatemiddleware.RateLimit(loginLimiter))
			r.Post("/admin-login", ctrl.Auth.AdminLogin)
			r.Post("/user-login", ctrl.Auth.UserLogin)
			r.Post("/login", ctrl.Auth.Login)
		})
		r.Get("/status", ctrl.Auth.Status)
		r.Post("/logout", ctrl.Auth.Logout)
		r.Get("/sso/login", ctrl.Auth.SSOLogin)
		r.Get("/sso/callback", ctrl.Auth.SSOCallback)
	})

	r.Get("/api/files", ctrl.Files.Index)

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(gatemiddleware.RequireAuth(srvs.Users, logger))

		r.Get("/api/stats", ctrl.Dashboard.Stats)
		r.Get("/api/ip-whitelist", ctrl.Whitelist.Index)
		r.Post("/api/add-my-ip", ctrl.Whitelist.AddMyIP)

		// The gate runs before the role check so every outside download attempt is audited
		r.With(ipGate, gatemiddleware.RequireAdmin).Get("/api/files/{id}/download", ctrl.Files.Download)

		// Administrator routes
		r.Group(func(r chi.Router) {
			r.Use(gatemiddleware.RequireAdmin)

			r.Post("/api/files/upload", ctrl.Files.Upload)
			r.Delete("/api/files/{id}", ctrl.Files.Delete)

			r.Post("/api/ip-whitelist", ctrl.Whitelist.Create)
			r.Put("/api/ip-whitelist/{id}", ctrl.Whitelist.Update)
			r.Delete("/api/ip-whitelist/{id}", ctrl.Whitelist.Delete)

			r.Get("/api/access-logs", ctrl.AccessLog.Index)
			r.Post("/api/users", ctrl.Users.Create)
		})

		// Main administrator routes
		r.Group(func(r chi.Router) {
			r.Use(gatemiddleware.RequireMainAdmin(cfg.AdminUsername))

			r.Get("/api/users", ctrl.Users.Index)
			r.Put("/api/users/{id}", ctrl.Users.Update)
			r.Delete("/api/users/{id}", ctrl.Users.Delete)
		})
	})

	return r, nil
}
