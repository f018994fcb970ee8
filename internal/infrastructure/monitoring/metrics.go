// Package monitoring exposes the Prometheus metrics shared across the
// pipeline. Metrics are registered on the default registry and served by
// the /metrics endpoint.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FetchesTotal counts product page fetches by site and outcome
	// (ok, blocked, timeout, error, parse_error).
	FetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "techadvisor",
		Subsystem: "scraper",
		Name:      "fetches_total",
		Help:      "Product page fetches by site and outcome.",
	}, []string{"site", "status"})

	// SearchRequestsTotal counts web-search calls by outcome
	// (ok, rate_limited, error).
	SearchRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "techadvisor",
		Subsystem: "search",
		Name:      "requests_total",
		Help:      "Web search requests by outcome.",
	}, []string{"status"})

	// CacheLookupsTotal counts result cache lookups by outcome (hit, miss).
	CacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "techadvisor",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Result cache lookups by outcome.",
	}, []string{"outcome"})

	// PipelineDuration tracks end-to-end candidate gathering latency.
	// Cold runs are dominated by scraping, so buckets reach a minute.
	PipelineDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "techadvisor",
		Subsystem: "pipeline",
		Name:      "duration_seconds",
		Help:      "End-to-end candidate pipeline latency.",
		Buckets:   []float64{0.01, 0.1, 0.5, 1, 2.5, 5, 10, 20, 30, 45, 60},
	})
)
