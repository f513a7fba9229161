package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/ask-relay/internal/config"
	"github.com/phrazzld/ask-relay/internal/generation"
	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models the generator uses.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API to answer questions.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// models is the genai model service shared by all requests
	models contentGenerator

	// model is the name of the Gemini model to use
	model string

	// timeout bounds each call when positive
	timeout time.Duration
}

var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a new instance of GeminiGenerator with the provided dependencies.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - config: LLM configuration containing API key, model name, and timeout
//
// Returns:
//   - A properly initialized GeminiGenerator or an error if initialization fails
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, config config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateConfig(ctx, logger, config); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return newGeminiGenerator(logger, client.Models, config), nil
}

func newGeminiGenerator(logger *slog.Logger, models contentGenerator, config config.LLMConfig) *GeminiGenerator {
	return &GeminiGenerator{
		logger:  logger,
		models:  models,
		model:   config.ModelName,
		timeout: config.Timeout,
	}
}

// Model returns the name of the model questions are sent to.
func (g *GeminiGenerator) Model() string {
	return g.model
}

// GenerateAnswer sends question to Gemini as a single user turn and returns
// the generated text.
func (g *GeminiGenerator) GenerateAnswer(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", generation.ErrEmptyQuestion
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: question}},
		},
	}

	g.logger.DebugContext(ctx, "Making Gemini API call",
		"model", g.model,
		"question_length", len(question))

	start := time.Now()
	resp, err := g.models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call error",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return "", generation.NewProviderError(err)
	}

	text, err := extractText(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "Gemini API returned no usable answer",
			"error", err)
		return "", err
	}

	g.logger.DebugContext(ctx, "Gemini API call successful",
		"answer_length", len(text),
		"duration_ms", time.Since(start).Milliseconds())

	return text, nil
}

// extractText returns the concatenated text of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)",
			generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: no text in response", generation.ErrInvalidResponse)
	}

	return sb.String(), nil
}
