// Package metrics exposes Prometheus collectors for the jobs service.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	scrapePagesTotal           *prometheus.CounterVec
	scrapeCyclesTotal          *prometheus.CounterVec
	scrapeCycleDurationSeconds prometheus.Histogram
	cachedJobs                 prometheus.Gauge
	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDurationSeconds *prometheus.HistogramVec

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		scrapePagesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jobs_scrape_pages_total",
				Help: "Total number of source pages scraped, labeled by source and status.",
			},
			[]string{"source", "status"},
		)

		scrapeCyclesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jobs_scrape_cycles_total",
				Help: "Total number of refresh cycles run, labeled by result.",
			},
			[]string{"result"},
		)

		scrapeCycleDurationSeconds = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "jobs_scrape_cycle_duration_seconds",
				Help:    "Histogram of full refresh cycle durations.",
				Buckets: []float64{5, 15, 30, 60, 120, 300, 600},
			},
		)

		cachedJobs = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "jobs_cached_total",
				Help: "Number of job records currently held in the cache.",
			},
		)

		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests, labeled by method and code.",
			},
			[]string{"method", "code"},
		)

		httpRequestDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies, labeled by method and route.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method", "route"},
		)
	})
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObservePage increments the per-page scrape counter.
func ObservePage(source, status string) {
	scrapePagesTotal.WithLabelValues(source, status).Inc()
}

// ObserveCycle records one completed refresh cycle.
func ObserveCycle(result string, duration time.Duration) {
	scrapeCyclesTotal.WithLabelValues(result).Inc()
	scrapeCycleDurationSeconds.Observe(duration.Seconds())
}

// SetCachedJobs updates the cached jobs gauge.
func SetCachedJobs(n int) {
	cachedJobs.Set(float64(n))
}

// ObserveHTTPRequest increments the HTTP request metrics.
func ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}
