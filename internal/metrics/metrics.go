package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cogedon_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cogedon_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	ReportsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cogedon_reports_submitted_total",
			Help: "Total number of persisted reports",
		},
		[]string{"with_image"},
	)

	UploadFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cogedon_upload_failures_total",
			Help: "Total number of report images that could not be stored",
		},
	)

	// SessionFallbacks counts reports attributed through the global
	// last-login slot instead of a session token.
	SessionFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cogedon_session_fallback_total",
			Help: "Total number of owner lookups served by the most recent login",
		},
	)
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, endpoint string, status int, duration time.Duration) {
	HTTPRequests.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordReportSubmitted counts a persisted report.
func RecordReportSubmitted(withImage bool) {
	ReportsSubmitted.WithLabelValues(strconv.FormatBool(withImage)).Inc()
}
