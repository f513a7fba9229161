package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/ask-relay/internal/api"
	apiMiddleware "github.com/phrazzld/ask-relay/internal/api/middleware"
	"github.com/phrazzld/ask-relay/internal/api/shared"
	"github.com/rs/cors"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	if app.metrics != nil {
		r.Use(apiMiddleware.NewMetricsMiddleware(app.metrics))
	}
	r.Use(middleware.Recoverer)

	relayHandler := api.NewRelayHandler(app.generator, app.metrics, app.logger)

	r.Get("/", relayHandler.Status)
	r.Post("/ask", relayHandler.Ask)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	if app.metrics != nil {
		r.Method(http.MethodGet, "/metrics", app.metrics.Handler())
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	if origins := app.config.Server.CORSAllowedOrigins; len(origins) > 0 {
		return cors.New(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"*"},
			ExposedHeaders: []string{shared.TraceIDHeader},
		}).Handler(r)
	}

	return r
}
