package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/ask-relay/internal/config"
)

// stubGenerator answers every question with a fixed result.
type stubGenerator struct {
	GenerateAnswerFn func(ctx context.Context, question string) (string, error)
}

func (s *stubGenerator) GenerateAnswer(ctx context.Context, question string) (string, error) {
	if s.GenerateAnswerFn != nil {
		return s.GenerateAnswerFn(ctx, question)
	}
	return "stub answer", nil
}

func newTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:            5000,
			LogLevel:        "debug",
			LogFormat:       "json",
			MetricsEnabled:  true,
			ShutdownTimeout: 2 * time.Second,
		},
		LLM: config.LLMConfig{
			GeminiAPIKey: "test-api-key",
			ModelName:    config.DefaultModelName,
		},
	}
}

func newTestApp(t *testing.T, cfg *config.Config, gen *stubGenerator) *application {
	t.Helper()
	if cfg == nil {
		cfg = newTestConfig()
	}
	if gen == nil {
		gen = &stubGenerator{}
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return newApplicationWithGenerator(cfg, logger, gen)
}
