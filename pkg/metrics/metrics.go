// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "relay_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// UpstreamDuration tracks upstream run-creation call duration.
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "relay_upstream_duration_seconds",
			Help:    "Upstream run call duration in seconds",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10, 30, 60, 90, 120},
		},
		[]string{"target", "outcome"},
	)

	// UpstreamCallsTotal tracks upstream calls by outcome.
	UpstreamCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_upstream_calls_total",
			Help: "Total upstream run calls",
		},
		[]string{"target", "outcome"},
	)

	// AccessDeniedTotal tracks inbound calls rejected by the access gate.
	AccessDeniedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_access_denied_total",
			Help: "Inbound calls rejected for a missing or wrong caller key",
		},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordUpstreamCall records metrics for one upstream run call.
// target is "agents" or "workflows"; outcome is "succeeded",
// "upstream_error" or "transport_error".
func RecordUpstreamCall(target, outcome string, duration float64) {
	UpstreamDuration.WithLabelValues(target, outcome).Observe(duration)
	UpstreamCallsTotal.WithLabelValues(target, outcome).Inc()
}
