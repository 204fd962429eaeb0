// Package metrics provides Prometheus metrics for the task assistant.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ModelRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskassist_model_requests_total",
			Help: "Total number of model calls by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)
	ModelRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "taskassist_model_request_duration_seconds",
			Help:    "Model call latency in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"operation"},
	)
	NormalizerRepairsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskassist_normalizer_repairs_total",
			Help: "Total number of fields repaired after extraction",
		},
		[]string{"field", "reason"},
	)
	CombinerFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "taskassist_combiner_fallbacks_total",
			Help: "Total number of due timestamps that fell back to today 09:00",
		},
	)
	SummaryCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskassist_summary_cache_total",
			Help: "Summary cache lookups by result",
		},
		[]string{"result"},
	)
	TasksAnalyzed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "taskassist_tasks_analyzed",
			Help:    "Number of tasks per analytics request",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskassist_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "taskassist_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "taskassist_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)
