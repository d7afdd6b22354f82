// Package metrics exposes configurator and BOM counters to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shadequote"

// Metrics holds every application metric on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	BOMBuildsTotal   *prometheus.CounterVec
	BOMBuildDuration *prometheus.HistogramVec
	SessionsTotal    *prometheus.CounterVec
	QuoteLinesTotal  prometheus.Counter
}

// New creates a new Metrics instance.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.BOMBuildsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bom_builds_total",
			Help:      "Total number of bill of materials builds",
		},
		[]string{"product_type", "outcome"},
	)

	m.BOMBuildDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bom_build_seconds",
			Help:      "Bill of materials build duration in seconds",
			Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"product_type"},
	)

	m.SessionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "Configurator session events",
		},
		[]string{"event"},
	)

	m.QuoteLinesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_lines_total",
			Help:      "Total number of quote lines written by completed sessions",
		},
	)

	registry.MustRegister(m.BOMBuildsTotal, m.BOMBuildDuration, m.SessionsTotal, m.QuoteLinesTotal)
	return m
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry returns the prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordBOMBuild records one BOM build.
func (m *Metrics) RecordBOMBuild(productType string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "error"
	}
	m.BOMBuildsTotal.WithLabelValues(productType, outcome).Inc()
	m.BOMBuildDuration.WithLabelValues(productType).Observe(duration.Seconds())
}

// RecordSessionEvent counts a session lifecycle event such as "created" or
// "completed".
func (m *Metrics) RecordSessionEvent(event string) {
	m.SessionsTotal.WithLabelValues(event).Inc()
}

// RecordQuoteLine counts a persisted quote line.
func (m *Metrics) RecordQuoteLine() {
	m.QuoteLinesTotal.Inc()
}
