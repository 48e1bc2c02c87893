package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcomes tracked by LookupsTotal.
const (
	LookupOutcomeFound       = "found"
	LookupOutcomeNotFound    = "not_found"
	LookupOutcomeZipMismatch = "zip_mismatch"
)

var (
	// HTTPRequestsTotal counts served HTTP requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method, route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// LookupsTotal counts order lookups by outcome.
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_lookups_total",
			Help: "Total number of order lookups by outcome.",
		},
		[]string{"outcome"},
	)
)

// Middleware records request count and latency for every handled route.
// The registered route pattern is used as the path label so that order
// numbers do not explode the cardinality.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			}
		}

		path := c.Route().Path
		method := c.Method()
		statusLabel := strconv.Itoa(status)

		HTTPRequestsTotal.WithLabelValues(method, path, statusLabel).Inc()
		HTTPRequestDuration.WithLabelValues(method, path, statusLabel).Observe(time.Since(start).Seconds())

		return err
	}
}
