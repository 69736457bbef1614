package main

import (
	"context"
	"log"

	"github.com/rekarton-ge/client-crm/internal/bootstrap"
	"github.com/rekarton-ge/client-crm/internal/config"
	"github.com/rekarton-ge/client-crm/internal/observability"
	"github.com/rekarton-ge/client-crm/internal/server"
)

func main() {
	// Load configuration from the environment and env.local
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	// Log to stdout, or to a rotated file when one is configured
	logger := observability.NewLogger()
	if cfg.Log.File != "" {
		logger = observability.NewFileLogger(cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// Open the store and Redis, then build processors and handlers
	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}

	// Set up routes and start serving
	srv := server.New(cfg, deps, logger)
	srv.Setup()

	if err := srv.Start(ctx); err != nil {
		logger.Fatal(ctx, "failed to start server", err)
	}

	// Block until SIGINT or SIGTERM, then drain requests and clean up
	if err := srv.WaitForShutdown(ctx); err != nil {
		logger.Fatal(ctx, "failed to shut down cleanly", err)
	}
}
