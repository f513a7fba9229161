package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/ask-relay/internal/generation"
)

// NoQuestionMessage is the client-facing error for any unusable /ask body.
const NoQuestionMessage = `No question provided. Send JSON with "question" field.`

// ErrMissingQuestion is returned when the body parses but carries no usable
// question field.
var ErrMissingQuestion = errors.New("request has no question field")

// MapErrorToStatusCode maps errors from request parsing and generation to HTTP
// status codes. Everything that is not a client mistake is a 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrMissingQuestion),
		errors.Is(err, generation.ErrEmptyQuestion):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorMessage returns the message sent to the client for err. Client
// mistakes get the fixed guidance message; every other error is forwarded
// with its own message.
func ErrorMessage(err error) string {
	if MapErrorToStatusCode(err) == http.StatusBadRequest {
		return NoQuestionMessage
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
