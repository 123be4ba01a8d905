package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fdc_client",
			Name:      "cache_hits_total",
			Help:      "Requests answered from the response cache.",
		},
	)

	cacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fdc_client",
			Name:      "cache_misses_total",
			Help:      "Cacheable requests that went to the network.",
		},
	)
)
