package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fdc_client",
			Name:      "requests_total",
			Help:      "Requests sent to FoodData Central by endpoint and HTTP status (\"error\" for transport failures).",
		},
		[]string{"endpoint", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fdc_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency including body read.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)
