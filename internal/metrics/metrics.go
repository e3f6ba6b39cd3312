// Package metrics holds the Prometheus collectors for the HTTP API and the
// content generators.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "creator_toolkit"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generator",
			Name:      "generations_total",
			Help:      "Total number of generation requests by generator kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "generator",
			Name:      "generation_duration_seconds",
			Help:      "Time from accepted request to result, including the simulated delay",
			Buckets:   []float64{.01, .05, .1, .5, 1, 2, 2.5, 3, 5, 10},
		},
		[]string{"kind"},
	)

	GenerationsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "generator",
			Name:      "generations_in_flight",
			Help:      "Number of generations currently waiting for a result",
		},
		[]string{"kind"},
	)
)

// StartGeneration increments the in-flight gauge for kind
func StartGeneration(kind string) {
	GenerationsInFlight.WithLabelValues(kind).Inc()
}

// EndGeneration decrements the in-flight gauge and records the outcome.
// Duration is observed only for requests that produced a result.
func EndGeneration(kind, outcome string, duration time.Duration, produced bool) {
	GenerationsInFlight.WithLabelValues(kind).Dec()
	ObserveGeneration(kind, outcome)
	if produced {
		GenerationDuration.WithLabelValues(kind).Observe(duration.Seconds())
	}
}

// ObserveGeneration counts a request that never reached the generator,
// such as a skipped or conflicting one.
func ObserveGeneration(kind, outcome string) {
	GenerationsTotal.WithLabelValues(kind, outcome).Inc()
}
