// Package metrics exposes Prometheus instrumentation for the gateway.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the gateway's Prometheus collectors. A nil *Metrics is valid
// and drops all observations, so components can be tested without a registry.
type Metrics struct {
	registry *prometheus.Registry

	fetchAttempts    *prometheus.CounterVec
	providerRequests *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New creates a Metrics instance backed by its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		fetchAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "streamhub_fetch_attempts_total",
			Help: "Upstream fetch attempts by outcome.",
		}, []string{"outcome"}),
		providerRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "streamhub_provider_requests_total",
			Help: "Provider calls per capability by outcome.",
		}, []string{"capability", "provider", "outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "streamhub_http_requests_total",
			Help: "Inbound HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "streamhub_http_request_duration_seconds",
			Help:    "Inbound HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(m.fetchAttempts, m.providerRequests, m.httpRequests, m.httpDuration)
	return m
}

// Handler returns the /metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// FetchAttempt records one upstream fetch attempt. Outcome is "ok" or "error".
func (m *Metrics) FetchAttempt(outcome string) {
	if m == nil {
		return
	}
	m.fetchAttempts.WithLabelValues(outcome).Inc()
}

// ProviderRequest records one provider call within a fallback chain.
func (m *Metrics) ProviderRequest(capability, provider, outcome string) {
	if m == nil {
		return
	}
	m.providerRequests.WithLabelValues(capability, provider, outcome).Inc()
}

// HTTPRequest records a completed inbound request.
func (m *Metrics) HTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(seconds)
}
