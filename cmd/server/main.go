package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"solana-patterns/internal/config"
	"solana-patterns/internal/content"
	"solana-patterns/internal/logger"
	"solana-patterns/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	ds, err := content.Load()
	if err != nil {
		log.Fatal("failed to load patterns", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg, ds, log); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
