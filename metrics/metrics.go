package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	CalculationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculations_total",
			Help: "Calculator invocations by tool and outcome",
		},
		[]string{"tool", "outcome"},
	)

	RenderCacheLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "render_cache_lookups_total",
			Help: "Chart and PDF cache lookups by result",
		},
		[]string{"kind", "result"},
	)

	RateLimitedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_limited_requests_total",
			Help: "Requests rejected by the rate limiter",
		},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		CalculationsTotal,
		RenderCacheLookupsTotal,
		RateLimitedTotal,
	)
}

// ObserveHTTPRequest records metrics for a finished HTTP request.
func ObserveHTTPRequest(method, path string, status int, d time.Duration) {
	s := strconv.Itoa(status)
	HTTPRequestsTotal.WithLabelValues(method, path, s).Inc()
	HTTPRequestDurationSeconds.WithLabelValues(method, path, s).Observe(d.Seconds())
}

// ObserveCalculation counts one calculator run.
func ObserveCalculation(tool string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "rejected"
	}
	CalculationsTotal.WithLabelValues(tool, outcome).Inc()
}

// ObserveCacheLookup counts a render cache hit or miss.
func ObserveCacheLookup(kind string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	RenderCacheLookupsTotal.WithLabelValues(kind, result).Inc()
}
