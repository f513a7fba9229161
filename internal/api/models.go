package api

import "encoding/json"

// AskRequest is the validated body of POST /ask.
type AskRequest struct {
	// Raw is the question value exactly as the client sent it. It is echoed
	// back unchanged in the response.
	Raw json.RawMessage `json:"-"`

	// Question is the prompt text given to the generator: the string itself
	// for JSON strings, the JSON text for any other value.
	Question string `json:"-" validate:"required"`
}

// AskResponse is the success body of POST /ask.
type AskResponse struct {
	Success  bool            `json:"success"`
	Question json.RawMessage `json:"question"`
	Answer   string          `json:"answer"`
}

// StatusResponse is the body of GET /.
type StatusResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}
