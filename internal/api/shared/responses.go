package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/ask-relay/internal/platform/logger"
	"github.com/phrazzld/ask-relay/internal/redact"
)

// ErrorResponse defines the standard error envelope: {"success":false,"error":...}.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error envelope with the given status code and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logger.FromContextOrDefault(r.Context(), slog.Default()).Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{Success: false, Error: message})
}

// RespondWithErrorAndLog writes a JSON error envelope carrying message and
// logs err with credentials redacted.
//
// Log level strategy:
// - 5xx errors: logged at ERROR level
// - 4xx errors: logged at DEBUG level
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	message string,
	err error,
) {
	logAttrs := []slog.Attr{
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	logger.FromContextOrDefault(r.Context(), slog.Default()).
		LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{Success: false, Error: message})
}
