package main

import (
	"context"
	"log"

	"call-server/internal/bootstrap"
	"call-server/internal/config"
	"call-server/internal/observability"
	"call-server/internal/server"
)

func main() {
	ctx := context.Background()
	logger := observability.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()

	if err := srv.Start(ctx); err != nil {
		logger.Fatal(ctx, "failed to start server", err)
	}
	if err := srv.WaitForShutdown(ctx); err != nil {
		logger.Fatal(ctx, "server shutdown failed", err)
	}
}
