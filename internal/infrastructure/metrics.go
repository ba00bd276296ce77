package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus collectors for the HTTP surface and the report pipelines.
// Registered on the default registry so promhttp can serve them directly.
var (
	// HTTPRequestsTotal counts completed HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gstpro_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method and path
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gstpro_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// ReportsProcessed counts pipeline runs by report type and outcome
	// (success, load_error, missing_column)
	ReportsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gstpro_reports_processed_total",
			Help: "Total number of report pipeline runs by outcome",
		},
		[]string{"report", "outcome"},
	)

	// WorkbooksGenerated counts successfully produced output workbooks
	WorkbooksGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gstpro_workbooks_generated_total",
			Help: "Total number of output workbooks generated",
		},
	)
)
