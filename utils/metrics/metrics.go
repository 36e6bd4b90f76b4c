package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classifieds_http_requests_total",
			Help: "Total HTTP requests by route and status.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "classifieds_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ImageOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classifieds_image_operations_total",
			Help: "Image store operations by kind and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	OrphanedImagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classifieds_orphaned_images_total",
			Help: "Image files left behind after a failed best-effort delete.",
		},
		[]string{"scope"},
	)
)

func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, statusClass(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordImageOperation(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	ImageOperationsTotal.WithLabelValues(operation, outcome).Inc()
}

func RecordOrphanedImage(scope string) {
	OrphanedImagesTotal.WithLabelValues(scope).Inc()
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
