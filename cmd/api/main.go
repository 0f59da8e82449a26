// Copyright (c) 2026 Alor Foundation. All rights reserved.

// Command api is the entry point for the Alor Foundation HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/alorfdn/alor/internal/api"
	"github.com/alorfdn/alor/internal/contact/message"
	"github.com/alorfdn/alor/internal/content/blog"
	"github.com/alorfdn/alor/internal/content/program"
	"github.com/alorfdn/alor/internal/content/team"
	"github.com/alorfdn/alor/internal/dashboard"
	"github.com/alorfdn/alor/internal/gallery"
	"github.com/alorfdn/alor/internal/platform/config"
	"github.com/alorfdn/alor/internal/platform/constants"
	"github.com/alorfdn/alor/internal/platform/mailer"
	"github.com/alorfdn/alor/internal/platform/metrics"
	"github.com/alorfdn/alor/internal/platform/migration"
	pgstore "github.com/alorfdn/alor/internal/platform/postgres"
	redisstore "github.com/alorfdn/alor/internal/platform/redis"
	"github.com/alorfdn/alor/internal/platform/respond"
	"github.com/alorfdn/alor/internal/platform/sec"
	"github.com/alorfdn/alor/internal/upload/imgbb"
	"github.com/alorfdn/alor/internal/users/account"
	"github.com/alorfdn/alor/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Alor] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	respond.Init(cfg.IsDevelopment())

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Application-lifetime context for background routines inside the
	// middleware chain. Cancelled when main exits.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(appCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Shared Services ────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	mail := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}, collector, log)

	uploader := imgbb.NewClient(cfg.ImgBBAPIKey, collector, log)

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewPostgresRepository(pool)
	resetTokenRepository := auth.NewResetTokenRepository(rdb)
	authService := auth.NewService(userRepository, resetTokenRepository, jwtSvc, mail)
	authHandler := auth.NewHandler(authService)

	accountRepository := account.NewPostgresRepository(pool)
	accountHandler := account.NewHandler(account.NewService(accountRepository, log))

	messageRepository := message.NewPostgresRepository(pool)
	messageHandler := message.NewHandler(message.NewService(messageRepository, mail, cfg.AdminNotifyEmail, log))

	galleryRepository := gallery.NewPostgresRepository(pool)
	galleryHandler := gallery.NewHandler(gallery.NewService(galleryRepository, uploader, log))

	blogRepository := blog.NewPostgresRepository(pool)
	blogHandler := blog.NewHandler(blog.NewService(blogRepository, log))

	teamRepository := team.NewPostgresRepository(pool)
	teamHandler := team.NewHandler(team.NewService(teamRepository, uploader, log))

	programRepository := program.NewPostgresRepository(pool)
	programHandler := program.NewHandler(program.NewService(programRepository, uploader, log))

	dashboardRepository := dashboard.NewPostgresRepository(pool)
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(dashboardRepository, log))

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Metrics:   metrics.Handler(registry),
		Auth:      authHandler,
		Account:   accountHandler,
		Message:   messageHandler,
		Gallery:   galleryHandler,
		Blog:      blogHandler,
		Team:      teamHandler,
		Program:   programHandler,
		Dashboard: dashboardHandler,
	}

	server := api.NewServer(appCtx, cfg, log, jwtSvc, userRepository, collector, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
