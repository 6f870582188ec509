package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"bulk-trafficker/internal/adapter/cli"
	"bulk-trafficker/internal/config"
)

// main loads .env and environment configuration, builds the logger and
// hands over to the cobra command tree. SIGINT and SIGTERM cancel the
// command context; a batch stops before its next row.
func main() {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := cli.NewRootCmd(&cli.App{Config: cfg, Logger: logger})
	if err = rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("command failed", slog.Any("error", err))
		cancel()
		os.Exit(1)
	}
}
