// Package server - Prometheus instrumentation.
package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics bundles the per-server collectors so tests can run isolated
// registries instead of fighting over the global one.
type metrics struct {
	registry *prometheus.Registry

	solveTotal    *prometheus.CounterVec
	solveDuration *prometheus.HistogramVec
	generateTotal prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		solveTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mces",
			Name:      "solve_requests_total",
			Help:      "Solve requests by algorithm and outcome.",
		}, []string{"algorithm", "status"}),
		solveDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mces",
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock solve duration by algorithm.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"algorithm"}),
		generateTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mces",
			Name:      "generate_requests_total",
			Help:      "Graph generation requests served.",
		}),
	}
	m.registry.MustRegister(m.solveTotal, m.solveDuration, m.generateTotal)

	return m
}
