package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/phrazzld/ask-relay/internal/api/shared"
)

// answerPreviewRunes bounds the answer text written to the log.
const answerPreviewRunes = 100

// parseAskRequest reads the /ask body and extracts the question field.
//
// Any body that is not a JSON object carrying a non-null, non-empty
// "question" value is rejected with an error wrapping ErrMissingQuestion.
// Fields other than "question" are ignored.
func parseAskRequest(r *http.Request) (*AskRequest, error) {
	var body map[string]json.RawMessage
	if err := shared.DecodeJSON(r, &body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingQuestion, err)
	}

	raw, ok := body["question"]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, ErrMissingQuestion
	}

	question, err := questionText(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingQuestion, err)
	}

	req := &AskRequest{Raw: raw, Question: question}
	if err := shared.ValidateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingQuestion, err)
	}
	return req, nil
}

// questionText returns the prompt for a raw question value. Strings are
// unquoted; numbers, booleans, arrays and objects are used as their JSON text.
func questionText(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	return string(trimmed), nil
}

// answerPreview returns at most n runes of s, marking truncation with "...".
func answerPreview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
