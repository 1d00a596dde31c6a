// Package metrics exposes Prometheus instrumentation for the app.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SplitsComputed counts successful fee-split calculations.
	SplitsComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cricfees_splits_computed_total",
		Help: "Number of fee splits computed successfully.",
	})

	// SplitRejections counts validation rejections by reason.
	SplitRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cricfees_split_rejections_total",
		Help: "Number of fee-split submissions rejected, by reason.",
	}, []string{"reason"})

	// ExportsGenerated counts export documents produced.
	ExportsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cricfees_exports_generated_total",
		Help: "Number of match summaries exported.",
	})

	// HTTPDuration observes request latency per route and method.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cricfees_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method", "status"})
)
