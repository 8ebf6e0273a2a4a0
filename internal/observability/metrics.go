// Package observability exposes prometheus metrics for conversion runs.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JonMunkholm/griptip/internal/core"
)

// Run sources.
const (
	SourceCLI    = "cli"
	SourceServer = "server"
	SourceWatch  = "watch"
)

// Metrics holds the collectors for conversion runs on a dedicated registry.
type Metrics struct {
	registry *prometheus.Registry

	RunsTotal   *prometheus.CounterVec
	RowsTotal   *prometheus.CounterVec
	RunDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the conversion collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "griptip_runs_total",
				Help: "Conversion runs by source and outcome",
			},
			[]string{"source", "status"},
		),
		RowsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "griptip_rows_total",
				Help: "Sheet rows by outcome: written, blank or inactive",
			},
			[]string{"outcome"},
		),
		RunDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "griptip_run_duration_seconds",
				Help:    "Duration of conversion runs",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
	}

	m.registry.MustRegister(m.RunsTotal, m.RowsTotal, m.RunDuration)
	return m
}

// RecordRun records one conversion. Row counts are only added for
// successful runs.
func (m *Metrics) RecordRun(source string, stats core.Stats, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}

	m.RunsTotal.WithLabelValues(source, status).Inc()
	m.RunDuration.WithLabelValues(source).Observe(elapsed.Seconds())

	if err != nil {
		return
	}
	m.RowsTotal.WithLabelValues("written").Add(float64(stats.Products))
	m.RowsTotal.WithLabelValues("blank").Add(float64(stats.BlankRows))
	m.RowsTotal.WithLabelValues("inactive").Add(float64(stats.InactiveRows))
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
