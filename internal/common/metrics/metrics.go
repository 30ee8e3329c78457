package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BlueprintsPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "publisher_blueprints_published_total",
			Help: "Total number of blueprints published as products",
		},
	)

	BlueprintsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "publisher_blueprints_skipped_total",
			Help: "Total number of blueprints skipped, by reason",
		},
		[]string{"reason"},
	)

	BlueprintsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "publisher_blueprints_failed_total",
			Help: "Total number of blueprints that failed, by error code",
		},
		[]string{"error_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "publisher_api_request_duration_seconds",
			Help: "Duration of vendor API requests in seconds",
		},
		[]string{"endpoint"},
	)
)
