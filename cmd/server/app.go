package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/ask-relay/internal/config"
	"github.com/phrazzld/ask-relay/internal/generation"
	"github.com/phrazzld/ask-relay/internal/metrics"
	"github.com/phrazzld/ask-relay/internal/platform/gemini"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// generator is the single provider client shared by all requests.
	generator generation.Generator

	// metrics is nil when metrics are disabled.
	metrics *metrics.Metrics
}

// newApplication creates a new application instance with all dependencies initialized.
// The Gemini client is created once here and reused for every request.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	generator, err := gemini.NewGeminiGenerator(
		ctx,
		logger.With("component", "llm_generator"),
		cfg.LLM,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized successfully", "model", generator.Model())

	return newApplicationWithGenerator(cfg, logger, generator), nil
}

// newApplicationWithGenerator assembles an application around an existing
// generator.
func newApplicationWithGenerator(
	cfg *config.Config,
	logger *slog.Logger,
	generator generation.Generator,
) *application {
	app := &application{
		config:    cfg,
		logger:    logger,
		generator: generator,
	}
	if cfg.Server.MetricsEnabled {
		app.metrics = metrics.New()
	}
	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns when ctx is canceled and the server has shut down, or when the
// server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
