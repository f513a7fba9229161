package shared

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is the type for values this package stores in contexts.
type ContextKey string

// Context keys for various values
const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDHeader is the response header carrying the trace ID
	TraceIDHeader = "X-Trace-ID"
)

// SetTraceID adds a new random trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, uuid.NewString())
}

// WithTraceID stores an existing trace ID in the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
