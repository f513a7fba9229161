package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/ask-relay/internal/api/shared"
	"github.com/phrazzld/ask-relay/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	logBuf, base := logger.SetupTestLogger(t)

	var seenTraceID string
	var seenLogger bool
	handler := NewTraceMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		seenLogger = logger.FromContext(r.Context()) != nil
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seenTraceID)
	assert.True(t, seenLogger)
	assert.Equal(t, seenTraceID, w.Header().Get(shared.TraceIDHeader))

	entry, ok := logBuf.FindEntry("inside handler")
	require.True(t, ok)
	assert.Equal(t, seenTraceID, entry["trace_id"])

	done, ok := logBuf.FindEntry("request completed")
	require.True(t, ok)
	assert.Equal(t, float64(http.StatusTeapot), done["status"])
}

func TestTraceMiddlewareReusesClientTraceID(t *testing.T) {
	_, base := logger.SetupTestLogger(t)
	var seen string
	handler := NewTraceMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(shared.TraceIDHeader, "esp32-0001")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "esp32-0001", seen)
	assert.Equal(t, "esp32-0001", w.Header().Get(shared.TraceIDHeader))
}

func TestTraceMiddlewareIgnoresOversizedTraceID(t *testing.T) {
	var seen string
	handler := NewTraceMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(shared.TraceIDHeader, strings.Repeat("x", maxTraceIDLength+1))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.NotEmpty(t, seen)
	assert.Len(t, seen, 36, "a fresh UUID replaces the oversized value")
}
