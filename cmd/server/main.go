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

	"github.com/rohits-web03/passvault/internal/api"
	"github.com/rohits-web03/passvault/internal/api/services"
	"github.com/rohits-web03/passvault/internal/auth"
	"github.com/rohits-web03/passvault/internal/config"
	"github.com/rohits-web03/passvault/internal/logging"
	"github.com/rohits-web03/passvault/internal/repositories"
	"github.com/rohits-web03/passvault/internal/vault"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// @title passvault API
// @version 1.0
// @description Password manager backend with Google sign-in and server-side sessions.
// @BasePath /
func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repositories.ConnectDatabase(cfg.DatabaseURL)
	if err != nil {
		return err
	}

	sessions, reaper, err := newSessionStore(ctx, cfg.Session, db)
	if err != nil {
		return err
	}

	verifier, err := auth.NewGoogleVerifier(ctx, cfg.Google.ClientID)
	if err != nil {
		return err
	}

	key, err := cfg.VaultKeyBytes()
	if err != nil {
		return err
	}
	sealer, err := vault.NewSealer(key)
	if err != nil {
		return err
	}
	slog.Info("secret protection", "level", sealer.Protection())

	users := repositories.NewUserRepository(db)
	passwords := vault.NewPasswordService(repositories.NewPasswordRepository(db), sealer)

	deps := api.Dependencies{
		Auth:        auth.NewAuthenticator(verifier, users, sessions, cfg.Session.TTL),
		Cookies:     auth.NewSessionCookie(cfg.Session.Secret, cfg.IsProduction()),
		Passwords:   passwords,
		Families:    vault.NewFamilyService(repositories.NewFamilyRepository(db), users, passwords),
		CORS:        cfg.CorsConfig(),
		FrontendURL: cfg.FrontendURL,
		Production:  cfg.IsProduction(),
	}
	if cfg.Google.ClientSecret != "" {
		deps.Exchanger = services.GoogleCodeExchanger{Config: services.NewGoogleOAuthConfig(cfg.Google)}
	}
	if cfg.R2.Enabled() {
		store := repositories.NewObjectStore(
			repositories.R2Endpoint(cfg.R2.AccountID),
			cfg.R2.AccessKeyID,
			cfg.R2.SecretAccessKey,
			cfg.R2.BucketName,
			cfg.R2.Region,
		)
		deps.Exporter = vault.NewExporter(passwords, store)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.SetupRouter(deps),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Starting passvault server", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
		}
		return nil
	})

	if reaper != nil {
		g.Go(func() error {
			auth.RunReaper(gctx, reaper, cfg.Session.CleanupInterval)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newSessionStore picks the configured backend. Only the relational store
// needs a reaper; redis expires keys itself.
func newSessionStore(ctx context.Context, cfg config.SessionConfig, db *gorm.DB) (repositories.SessionStore, repositories.SessionReaper, error) {
	switch cfg.Store {
	case "redis":
		client, err := repositories.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("using redis session store", "addr", cfg.RedisAddr)
		return repositories.NewRedisSessionStore(client), nil, nil
	default:
		store := repositories.NewGormSessionStore(db)
		return store, store, nil
	}
}
