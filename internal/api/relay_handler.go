package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/ask-relay/internal/api/shared"
	"github.com/phrazzld/ask-relay/internal/generation"
	"github.com/phrazzld/ask-relay/internal/metrics"
	"github.com/phrazzld/ask-relay/internal/platform/logger"
	"github.com/phrazzld/ask-relay/internal/redact"
)

const (
	statusOnline  = "online"
	statusMessage = "Gemini relay API is running!"
)

// RelayHandler serves the status and ask endpoints.
type RelayHandler struct {
	generator generation.Generator
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewRelayHandler creates a RelayHandler. m may be nil when metrics are
// disabled.
func NewRelayHandler(generator generation.Generator, m *metrics.Metrics, logger *slog.Logger) *RelayHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RelayHandler{
		generator: generator,
		metrics:   m,
		logger:    logger,
	}
}

// Status handles GET / requests.
func (h *RelayHandler) Status(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{
		Status:  statusOnline,
		Message: statusMessage,
		Endpoints: map[string]string{
			"/ask": "POST - Send question to get AI response",
		},
	})
}

// Ask handles POST /ask requests. Each request makes exactly one call to the
// generator and never touches state shared with other requests, so a failed
// request does not affect the next one.
func (h *RelayHandler) Ask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, err := parseAskRequest(r)
	if err != nil {
		h.metrics.ObserveAsk(metrics.OutcomeInvalidRequest)
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, NoQuestionMessage, err)
		return
	}

	log.InfoContext(r.Context(), "question received",
		"question", redact.String(req.Question))

	// The provider call is finished even if the client goes away.
	ctx := context.WithoutCancel(r.Context())

	start := time.Now()
	answer, err := h.generator.GenerateAnswer(ctx, req.Question)
	elapsed := time.Since(start)
	h.metrics.ObserveProvider(elapsed)

	if err != nil {
		status := MapErrorToStatusCode(err)
		h.metrics.ObserveAsk(failureOutcome(err))
		log.ErrorContext(ctx, "answer generation failed",
			"error", redact.Error(err),
			"duration_ms", elapsed.Milliseconds())
		shared.RespondWithJSON(w, r, status, shared.ErrorResponse{
			Success: false,
			Error:   ErrorMessage(err),
		})
		return
	}

	h.metrics.ObserveAsk(metrics.OutcomeSuccess)
	log.InfoContext(ctx, "answer generated",
		"answer_preview", answerPreview(answer, answerPreviewRunes),
		"duration_ms", elapsed.Milliseconds())

	shared.RespondWithJSON(w, r, http.StatusOK, AskResponse{
		Success:  true,
		Question: req.Raw,
		Answer:   answer,
	})
}

// failureOutcome labels a failed generation for the ask counter.
func failureOutcome(err error) string {
	switch {
	case MapErrorToStatusCode(err) == http.StatusBadRequest:
		return metrics.OutcomeInvalidRequest
	case generation.IsProviderError(err):
		return metrics.OutcomeProviderError
	default:
		return metrics.OutcomeNoAnswer
	}
}
