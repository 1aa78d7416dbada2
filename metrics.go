package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	metricsRegistry *prometheus.Registry

	// HTTP request rate per route and status class.
	httpRequestsTotal *prometheus.CounterVec

	// HTTP request latency per route.
	httpRequestDuration *prometheus.HistogramVec

	// Upstream METAR fetches by outcome.
	metarFetchesTotal *prometheus.CounterVec

	// Upstream fetch latency. Watch for p95 > 2s (upstream degradation).
	metarFetchDuration prometheus.Histogram

	// Decode volume; invalid counts the empty-input case only, since the
	// decoder has no other failure mode.
	decodesTotal *prometheus.CounterVec

	// Cache hits per backend.
	cacheHitsTotal *prometheus.CounterVec

	// Rate limit denials (429s).
	rateLimitDeniedTotal prometheus.Counter
)

func init() {
	metricsRegistry = prometheus.NewRegistry()

	metricsRegistry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "httpRequestsTotal",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "statusCode"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "httpRequestDurationSeconds",
			Help:    "HTTP request latency in seconds (per request)",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	metarFetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metarFetchesTotal",
			Help: "Total number of upstream METAR fetches",
		},
		[]string{"status"},
	)
	metarFetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "metarFetchDurationSeconds",
			Help:    "Upstream METAR fetch latency in seconds (per request)",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		},
	)
	decodesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metarDecodesTotal",
			Help: "Total number of METAR decodes",
		},
		[]string{"result"},
	)
	cacheHitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cacheHitsTotal",
			Help: "Total number of raw-METAR cache hits",
		},
		[]string{"cacheType"},
	)
	rateLimitDeniedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rateLimitDeniedTotal",
			Help: "Total number of requests denied by rate limiter (429)",
		},
	)

	metricsRegistry.MustRegister(
		httpRequestsTotal, httpRequestDuration,
		metarFetchesTotal, metarFetchDuration,
		decodesTotal, cacheHitsTotal, rateLimitDeniedTotal,
	)
}

// metricsHandler returns an http.Handler that serves application and runtime metrics.
func metricsHandler() http.Handler {
	return promhttp.HandlerFor(metricsRegistry, promhttp.HandlerOpts{})
}
