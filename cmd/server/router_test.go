package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/ask-relay/internal/api/shared"
	"github.com/phrazzld/ask-relay/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterStatus(t *testing.T) {
	srv := httptest.NewServer(newTestApp(t, nil, nil).setupRouter())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get(shared.TraceIDHeader))
	assert.JSONEq(t, `{
		"status": "online",
		"message": "Gemini relay API is running!",
		"endpoints": {"/ask": "POST - Send question to get AI response"}
	}`, string(body))
}

func TestRouterAsk(t *testing.T) {
	gen := &stubGenerator{GenerateAnswerFn: func(_ context.Context, q string) (string, error) {
		switch q {
		case "What is 2+2?":
			return "4", nil
		default:
			return "", generation.NewProviderError(errors.New("quota exceeded"))
		}
	}}
	srv := httptest.NewServer(newTestApp(t, nil, gen).setupRouter())
	defer srv.Close()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "answered",
			body:       `{"question":"What is 2+2?"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"question":"What is 2+2?","answer":"4"}`,
		},
		{
			name:       "missing question",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"error":"No question provided. Send JSON with \"question\" field."}`,
		},
		{
			name:       "provider failure",
			body:       `{"question":"anything else"}`,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"error":"quota exceeded"}`,
		},
		{
			name:       "served after a failure",
			body:       `{"question":"What is 2+2?"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"question":"What is 2+2?","answer":"4"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/ask", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, string(body))
		})
	}
}

func TestRouterTraceIDIsEchoed(t *testing.T) {
	srv := httptest.NewServer(newTestApp(t, nil, nil).setupRouter())
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/", nil)
	require.NoError(t, err)
	req.Header.Set(shared.TraceIDHeader, "device-42")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, "device-42", resp.Header.Get(shared.TraceIDHeader))
}

func TestRouterHealth(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestApp(t, nil, nil).setupRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestRouterUnknownRoutes(t *testing.T) {
	router := newTestApp(t, nil, nil).setupRouter()

	t.Run("unknown path", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"success":false,"error":"Not found"}`, rr.Body.String())
	})

	t.Run("wrong method", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ask", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}

func TestRouterMetrics(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		router := newTestApp(t, nil, nil).setupRouter()

		ask := httptest.NewRecorder()
		router.ServeHTTP(ask, httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question":"hi"}`)))
		require.Equal(t, http.StatusOK, ask.Code)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `relay_ask_total{outcome="success"} 1`)
		assert.Contains(t, rr.Body.String(), `relay_http_requests_total{method="POST",route="/ask",status="200"} 1`)
	})

	t.Run("recovered panics are counted", func(t *testing.T) {
		gen := &stubGenerator{GenerateAnswerFn: func(context.Context, string) (string, error) {
			panic("generator exploded")
		}}
		router := newTestApp(t, nil, gen).setupRouter()

		ask := httptest.NewRecorder()
		router.ServeHTTP(ask, httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question":"hi"}`)))
		require.Equal(t, http.StatusInternalServerError, ask.Code)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Contains(t, rr.Body.String(), `relay_http_requests_total{method="POST",route="/ask",status="500"} 1`)
	})

	t.Run("disabled", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Server.MetricsEnabled = false
		rr := httptest.NewRecorder()

		newTestApp(t, cfg, nil).setupRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRouterCORS(t *testing.T) {
	cfg := newTestConfig()
	cfg.Server.CORSAllowedOrigins = []string{"http://dashboard.local"}
	router := newTestApp(t, cfg, nil).setupRouter()

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://dashboard.local")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, "http://dashboard.local", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("other origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://elsewhere.local")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rr.Code, "devices without an Origin header are unaffected")
	})
}
