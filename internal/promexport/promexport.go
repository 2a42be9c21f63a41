// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

// Package promexport exposes metric records and render pass statistics in
// the Prometheus exposition format.
package promexport

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Mars303004/kpiboard/internal/layout"
	"github.com/Mars303004/kpiboard/internal/registry"
)

const namespace = "kpiboard"

// Render pass statuses.
const (
	StatusOK      = "ok"
	StatusPartial = "partial"
	StatusFailed  = "failed"
)

// Exporter owns a private Prometheus registry so several exporters (and
// tests) never collide on the global default registry.
type Exporter struct {
	registry *prometheus.Registry

	value    *prometheus.GaugeVec
	target   *prometheus.GaugeVec
	progress *prometheus.GaugeVec
	change   *prometheus.GaugeVec

	passes       *prometheus.CounterVec
	widgetErrors *prometheus.CounterVec
	duration     prometheus.Histogram
}

// New creates an exporter with the kpiboard collectors plus Go runtime and
// process collectors registered.
func New() *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		value: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "metric_value",
			Help:      "Current value of each metric; the mean for time series.",
		}, []string{"metric", "unit"}),
		target: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "metric_target",
			Help:      "Target value of each metric that has one.",
		}, []string{"metric"}),
		progress: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "metric_progress_ratio",
			Help:      "Value over target, clamped to [0, 1].",
		}, []string{"metric"}),
		change: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "metric_change_percent",
			Help:      "Period-over-period change in percent.",
		}, []string{"metric"}),
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_passes_total",
			Help:      "Render passes by outcome.",
		}, []string{"status"}), // status: ok, partial, failed
		widgetErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "widget_errors_total",
			Help:      "Widgets rendered as placeholders, by error class.",
		}, []string{"class"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Duration of a render pass in seconds.",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		}),
	}
	e.registry.MustRegister(
		e.value, e.target, e.progress, e.change,
		e.passes, e.widgetErrors, e.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return e
}

// Registry returns the underlying Prometheus registry.
func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}

// ObserveRegistry replaces the per-metric gauges with the records in reg.
// Metrics absent from reg disappear from the next scrape.
func (e *Exporter) ObserveRegistry(reg *registry.Registry) {
	e.value.Reset()
	e.target.Reset()
	e.progress.Reset()
	e.change.Reset()
	for _, rec := range reg.All() {
		e.value.WithLabelValues(rec.Name, string(rec.Unit)).Set(rec.Value.Current())
		if rec.Target != nil {
			e.target.WithLabelValues(rec.Name).Set(*rec.Target)
		}
		if f, ok := rec.ProgressFraction(); ok {
			e.progress.WithLabelValues(rec.Name).Set(f)
		}
		if rec.ChangePercent != nil {
			e.change.WithLabelValues(rec.Name).Set(*rec.ChangePercent)
		}
	}
}

// ObservePage records a completed render pass. A page with placeholders
// counts as partial, and each placeholder increments its error class.
func (e *Exporter) ObservePage(page *layout.Page, elapsed time.Duration) {
	errs := page.Errors()
	status := StatusOK
	if len(errs) > 0 {
		status = StatusPartial
	}
	e.passes.WithLabelValues(status).Inc()
	for _, t := range errs {
		e.widgetErrors.WithLabelValues(string(layout.Classify(t.Err))).Inc()
	}
	e.duration.Observe(elapsed.Seconds())
}

// ObserveFailure records a render pass that produced no page.
func (e *Exporter) ObserveFailure(elapsed time.Duration) {
	e.passes.WithLabelValues(StatusFailed).Inc()
	e.duration.Observe(elapsed.Seconds())
}

// Handler returns an http.Handler serving the exporter's registry.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
