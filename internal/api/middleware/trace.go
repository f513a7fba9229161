package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/ask-relay/internal/api/shared"
	"github.com/phrazzld/ask-relay/internal/platform/logger"
)

// maxTraceIDLength caps client-supplied trace IDs.
const maxTraceIDLength = 64

// NewTraceMiddleware returns middleware that assigns every request a trace ID.
// A trace ID sent by the client in X-Trace-ID is reused; otherwise a new one
// is generated. The ID is echoed in the response header and attached to a
// request-scoped logger stored in the context.
// This middleware should be applied early in the middleware chain to ensure
// that all subsequent handlers have access to the trace ID.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if incoming := r.Header.Get(shared.TraceIDHeader); incoming != "" && len(incoming) <= maxTraceIDLength {
				ctx = shared.WithTraceID(ctx, incoming)
			} else {
				ctx = shared.SetTraceID(ctx)
			}

			traceID := shared.GetTraceID(ctx)
			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			w.Header().Set(shared.TraceIDHeader, traceID)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(ctx))

			log.Debug("request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)))
		})
	}
}
