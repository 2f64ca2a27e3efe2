package utils

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ReqCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sproutly_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ReqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "sproutly_request_duration_seconds",
			Help: "Request duration seconds",
		},
		[]string{"method", "path"},
	)

	ProgressRuns = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sproutly_progress_runs_total",
			Help: "Accumulator runs",
		},
	)

	StoreFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sproutly_stats_store_fallbacks_total",
			Help: "Stats writes/reads that fell back to the local store",
		},
		[]string{"op"},
	)
)

func InitMetrics() {
	prometheus.MustRegister(ReqCount, ReqDuration, ProgressRuns, StoreFallbacks)
}
