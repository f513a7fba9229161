// Package main implements the entry point for the ask relay server, which
// accepts plain-HTTP questions from constrained devices and answers them
// with a Gemini model.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/phrazzld/ask-relay/internal/config"
)

// main is the entry point for the relay server.
// It loads an optional .env file, initializes configuration and logging,
// builds the application and serves until SIGINT or SIGTERM.
func main() {
	envErr := godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], envErr); err != nil {
		log.Fatalf("Failed to run relay server: %v", err)
	}
}

// run wires the application from command-line args and serves until ctx is
// canceled. envErr is the result of loading the .env file.
func run(ctx context.Context, args []string, envErr error) error {
	cfg, err := loadAppConfig(args)
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	switch {
	case envErr == nil:
		logger.Debug("Loaded environment from .env file")
	case errors.Is(envErr, fs.ErrNotExist):
		logger.Debug("No .env file found")
	default:
		logger.Warn("Failed to read .env file", "error", envErr)
	}

	logConfig(logger, cfg)

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// logConfig logs the effective configuration without secrets.
func logConfig(logger *slog.Logger, cfg *config.Config) {
	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"log_format", cfg.Server.LogFormat,
		"metrics_enabled", cfg.Server.MetricsEnabled,
		"model", cfg.LLM.ModelName)

	logger.Debug("LLM configuration",
		"api_key_present", !cfg.UsesPlaceholderKey(),
		"timeout", cfg.LLM.Timeout.String())
}
