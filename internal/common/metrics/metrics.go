// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecordsNormalized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_records_normalized_total",
			Help: "Total number of raw records accepted by the normalizer",
		},
		[]string{"record_type"},
	)

	RecordsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_records_rejected_total",
			Help: "Total number of raw records rejected for schema mismatch",
		},
		[]string{"record_type"},
	)

	TranslationMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_translation_misses_total",
			Help: "Total number of keys absent from both active and fallback catalogs",
		},
		[]string{"language"},
	)

	QueriesExecuted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_queries_executed_total",
			Help: "Total number of filter/paginate passes over a collection",
		},
		[]string{"record_type"},
	)

	BackendCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_backend_calls_total",
			Help: "Total number of backend API calls",
		},
		[]string{"endpoint", "outcome"},
	)

	BackendCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "dashboard_backend_call_duration_seconds",
			Help: "Duration of backend API calls in seconds",
		},
		[]string{"endpoint"},
	)

	StaleResponsesDiscarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_stale_responses_discarded_total",
			Help: "Total number of late fetch responses dropped by the ignore-late-arrival policy",
		},
		[]string{"record_type"},
	)
)
