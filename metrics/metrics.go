package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "envdash_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "envdash_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Alert metrics
	AlertsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "envdash_alerts_created_total",
			Help: "Total number of threshold alerts created",
		},
		[]string{"type"},
	)

	AlertValidationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "envdash_alert_validation_errors_total",
			Help: "Total number of rejected alert payloads",
		},
		[]string{"error_type"},
	)

	AlertsTriggeredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "envdash_alerts_triggered_total",
			Help: "Total number of alert evaluations that crossed a threshold",
		},
		[]string{"type", "severity"},
	)

	// Snapshot metrics
	SnapshotRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "envdash_snapshot_requests_total",
			Help: "Total number of environmental snapshot lookups",
		},
		[]string{"category", "status"}, // status: ok, not_found
	)

	// Realtime metrics
	StreamClientsConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "envdash_stream_clients_connected",
			Help: "Current number of connected websocket clients",
		},
	)
)
