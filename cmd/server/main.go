// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/tomtom215/artwalk/docs" // Import generated swagger docs
	"github.com/tomtom215/artwalk/internal/api"
	"github.com/tomtom215/artwalk/internal/auth"
	"github.com/tomtom215/artwalk/internal/config"
	"github.com/tomtom215/artwalk/internal/database"
	"github.com/tomtom215/artwalk/internal/geo"
	"github.com/tomtom215/artwalk/internal/logging"
	"github.com/tomtom215/artwalk/internal/metrics"
	"github.com/tomtom215/artwalk/internal/supervisor"
	"github.com/tomtom215/artwalk/internal/supervisor/services"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.Warn().Err(err).Msg("Failed to read .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logging.Error().Err(err).Msg("Server exited with error")
		stop()
		os.Exit(1)
	}
	logging.Info().Msg("Application stopped gracefully")
}

//nolint:gocyclo // sequential startup steps
func run(ctx context.Context, cfg *config.Config) error {
	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("denylist_backend", cfg.Denylist.Backend).
		Msg("Starting Artwalk with supervisor tree")
	metrics.SetAppInfo(version)

	db, err := database.Open(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if cfg.Database.MigrateOnStart {
		if err := database.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return fmt.Errorf("migrate database: %w", err)
		}
		logging.Info().Msg("Database migrations applied")
	}
	store := database.NewStore(db, database.NewBreaker(&cfg.Database))
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	denylist, err := auth.NewDenylist(&cfg.Denylist)
	if err != nil {
		return fmt.Errorf("initialize token denylist: %w", err)
	}
	defer func() {
		if err := denylist.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing token denylist")
		}
	}()

	codec, err := auth.NewTokenCodec([]byte(cfg.Security.JWTSecret), cfg.Security.TokenTTL, denylist)
	if err != nil {
		return fmt.Errorf("initialize token codec: %w", err)
	}
	throttle := auth.NewLoginThrottle(cfg.Security.LoginRate, cfg.Security.LoginBurst)

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	for _, origin := range cfg.Security.CORSOrigins {
		if origin == "*" {
			logging.Warn().Msg("CORS is configured with wildcard origin; set explicit origins in production")
			break
		}
	}

	handler := api.NewHandler(api.HandlerDeps{
		Users:        store.Users(),
		Attractions:  store.Attractions(),
		Authors:      store.Authors(),
		Styles:       store.Styles(),
		Techniques:   store.Techniques(),
		Materials:    store.Materials(),
		Categories:   store.Categories(),
		MacAddresses: store.MacAddresses(),
		Tokens:       codec,
		Throttle:     throttle,
		Ranker:       geo.NewRanker(cfg.Proximity.RadiusKm, cfg.Proximity.Limit),
		DB:           store,
		BcryptCost:   cfg.Security.BcryptCost,
	})
	router := api.NewRouter(
		handler,
		auth.NewGate(codec),
		api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)),
	)
	server := newHTTPServer(&cfg.Server, router.Setup())

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddMaintenanceService(services.NewAuthJanitorService(denylist, throttle, cfg.Denylist.CleanupInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if errors.Is(serveErr, context.Canceled) {
		serveErr = nil
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}
	return serveErr
}

func newHTTPServer(cfg *config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Address(),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}
