package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/ask-relay/internal/config"
	"github.com/phrazzld/ask-relay/internal/generation"
)

// validateConfig checks the LLM configuration before a client is created.
// A placeholder API key is accepted with a warning: the Gemini API rejects it
// on the first call, which surfaces as a provider error on /ask.
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if cfg.GeminiAPIKey == "" {
		logger.ErrorContext(ctx, "Missing Gemini API key",
			"error", "GeminiAPIKey is empty")
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		logger.ErrorContext(ctx, "Missing model name",
			"error", "ModelName is empty")
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.Timeout < 0 {
		return fmt.Errorf("%w: timeout cannot be negative", generation.ErrInvalidConfig)
	}

	if cfg.GeminiAPIKey == config.PlaceholderAPIKey {
		logger.WarnContext(ctx, "GEMINI_API_KEY is not set; using placeholder key, every question will fail until a real key is configured")
	}

	return nil
}
