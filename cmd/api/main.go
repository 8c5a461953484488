package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github-webhook-events/config"
	eventRepo "github-webhook-events/internal/event/repository/postgre"
	eventUC "github-webhook-events/internal/event/usecase"
	"github-webhook-events/internal/httpserver"
	"github-webhook-events/internal/webhook"
	"github-webhook-events/pkg/log"
)

// @title       GitHub Webhook Events API
// @description Receives GitHub push/pull_request webhooks, normalizes them into canonical events, and serves the recent-events feed.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting GitHub webhook events service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := openPostgres(ctx, logger, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Postgres: %v", err)
		return
	}
	defer db.Close()

	if err := eventRepo.Migrate(ctx, db); err != nil {
		logger.Errorf(ctx, "Failed to migrate events schema: %v", err)
		return
	}

	// 4. Event domain
	repo := eventRepo.New(db, logger)
	uc := eventUC.New(repo, logger)

	// 5. Webhook ingestion
	webhookHandler := webhook.NewHandler(uc, webhook.SecurityConfig{
		Secret:          cfg.Webhook.Secret,
		AllowedIPs:      cfg.Webhook.AllowedIPs,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	}, logger)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		EventUC:        uc,
		WebhookHandler: webhookHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// openPostgres opens the connection pool and verifies connectivity with a
// small retry loop so the service survives a database that is still
// starting up alongside it.
func openPostgres(ctx context.Context, logger log.Logger, cfg config.PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.URI)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleSecs) * time.Second)

	retries := cfg.ConnectRetries
	if retries < 1 {
		retries = 1
	}
	delay := time.Duration(cfg.RetryDelaySecs) * time.Second

	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = db.PingContext(pingCtx)
		cancel()
		if err == nil {
			logger.Infof(ctx, "Connected to Postgres (attempt %d/%d)", attempt, retries)
			return db, nil
		}

		logger.Warnf(ctx, "Postgres connection attempt %d/%d failed: %v", attempt, retries, err)
		if attempt >= retries {
			db.Close()
			return nil, err
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		}
	}
}
