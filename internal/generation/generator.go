package generation

import "context"

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks github.com/phrazzld/ask-relay/internal/generation Generator

// Generator defines the interface for answering a question with generated text.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type Generator interface {
	// GenerateAnswer sends question to the language model and returns the
	// generated text.
	//
	// Implementations block until the provider responds and must be safe for
	// concurrent use. Errors are one of the values in errors.go, a
	// *ProviderError, or a wrapped context error.
	GenerateAnswer(ctx context.Context, question string) (string, error)
}
