// Package generation defines the boundary between the relay and the external
// AI/LLM service that answers questions. The Generator interface abstracts the
// details of the Gemini integration so the HTTP layer can be exercised with a
// fake provider, and the error values here are the vocabulary both sides use to
// describe a failed generation.
package generation
