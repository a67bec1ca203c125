package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Standard HTTP metrics - recorded by middleware
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method"},
	)

	WebhookOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_outcomes_total",
			Help: "Webhook intake outcomes by terminal state",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(WebhookOutcomesTotal)
}
