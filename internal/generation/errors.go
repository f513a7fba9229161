package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrEmptyQuestion is returned when there is no question text to send.
	ErrEmptyQuestion = errors.New("question cannot be empty")

	// ErrProviderFailed matches every *ProviderError via errors.Is.
	ErrProviderFailed = errors.New("language model request failed")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// ProviderError wraps a failure reported by the provider or its transport
// (network failure, rejected credential, exhausted quota). Its message is the
// provider's own message, unchanged, so it can be forwarded to callers.
type ProviderError struct {
	Err error
}

// NewProviderError wraps err. A nil err yields nil.
func NewProviderError(err error) error {
	if err == nil {
		return nil
	}
	return &ProviderError{Err: err}
}

func (e *ProviderError) Error() string {
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is reports ErrProviderFailed as a match so callers need not know the
// concrete type.
func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderFailed
}

// IsProviderError reports whether err came from the provider call itself
// rather than from validating its input or output.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
