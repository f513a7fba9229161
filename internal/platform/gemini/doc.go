// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API for answering questions.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the relay's request handling to Google's external Gemini AI service.
// It translates between plain question/answer strings and the Gemini API
// without exposing the details of the external service to the rest of the
// application.
//
// Key components:
//
// 1. GeminiGenerator:
//   - Implements the generation.Generator interface
//   - Owns the process-wide genai client, created once and shared by all requests
//   - Sends each question as a single user turn to the configured model
//
// 2. Response Processing:
//   - Concatenates the text parts of the first candidate
//   - Treats prompt blocks and SAFETY finish reasons as generation.ErrContentBlocked
//   - Reports missing candidates or empty text as generation.ErrInvalidResponse
//
// 3. Error Handling:
//   - Wraps transport, authentication and quota failures in generation.ProviderError,
//     keeping the provider's message intact
//   - Never retries; a failed call is reported to the caller immediately
//
// The package depends on Google's google.golang.org/genai client library.
package gemini
