package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Upload outcomes
	UploadCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_upload_count",
			Help: "Total number of spreadsheet uploads",
		},
		[]string{"status"}, // status: success, failed
	)

	// Rows parsed out of uploads
	UploadRows = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dashboard_upload_rows",
			Help:    "Rows parsed per uploaded spreadsheet",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8), // 1 to ~16k rows
		},
	)

	// Full view recompute latency (seconds)
	BuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dashboard_build_duration_seconds",
			Help:    "Timeline view build duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		},
	)

	// Export outcomes per format
	ExportCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_export_count",
			Help: "Total number of exports",
		},
		[]string{"format", "status"}, // format: csv, xlsx, html, png
	)

	// Session store operations
	SessionStoreOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_session_store_ops",
			Help: "Session store operations",
		},
		[]string{"op", "status"}, // op: create, get, set_options, delete
	)
)

// RecordHTTPRequestDuration records HTTP request latency.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementUpload counts an upload attempt by outcome.
func IncrementUpload(status string) {
	UploadCount.WithLabelValues(status).Inc()
}

// IncrementExport counts an export attempt by format and outcome.
func IncrementExport(format, status string) {
	ExportCount.WithLabelValues(format, status).Inc()
}

// IncrementSessionOp counts a session store operation by outcome.
func IncrementSessionOp(op, status string) {
	SessionStoreOps.WithLabelValues(op, status).Inc()
}
