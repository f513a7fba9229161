// Package metrics exposes Prometheus collectors for relay traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Ask outcomes recorded by ObserveAsk.
const (
	OutcomeSuccess        = "success"
	OutcomeInvalidRequest = "invalid_request"
	OutcomeProviderError  = "provider_error"
	// OutcomeNoAnswer counts replies that carried no usable text, such as
	// blocked or empty candidates.
	OutcomeNoAnswer = "no_answer"
)

// Metrics owns a registry and the relay's collectors. The zero value is not
// usable; use New. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry         *prometheus.Registry
	httpRequests     *prometheus.CounterVec
	asks             *prometheus.CounterVec
	providerDuration prometheus.Histogram
}

// New creates the collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "relay_http_requests_total",
			Help: "HTTP requests handled, by route, method and status code",
		}, []string{"route", "method", "status"}),
		asks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "relay_ask_total",
			Help: "Questions handled by /ask, by outcome",
		}, []string{"outcome"}),
		providerDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "relay_provider_duration_seconds",
			Help:    "Latency of calls to the generative-text provider",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		}),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.asks,
		m.providerDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveHTTP counts one finished HTTP request.
func (m *Metrics) ObserveHTTP(route, method string, status int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

// ObserveAsk counts one /ask outcome.
func (m *Metrics) ObserveAsk(outcome string) {
	if m == nil {
		return
	}
	m.asks.WithLabelValues(outcome).Inc()
}

// ObserveProvider records the duration of one provider call.
func (m *Metrics) ObserveProvider(d time.Duration) {
	if m == nil {
		return
	}
	m.providerDuration.Observe(d.Seconds())
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
