package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	logMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "log_messages_total",
			Help: "Log messages ingested, by transport and level.",
		},
		[]string{"transport", "level"},
	)

	logMessagesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "log_messages_dropped_total",
			Help: "Log messages rejected by the per-origin rate limit.",
		},
	)
)

// Middleware records request counts and latency per route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		requestsTotal.WithLabelValues(
			c.Request.Method, route, strconv.Itoa(c.Writer.Status()),
		).Inc()
		requestDuration.WithLabelValues(c.Request.Method, route).
			Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// CountLogMessage records an accepted log message.
func CountLogMessage(transport, level string) {
	logMessagesTotal.WithLabelValues(transport, level).Inc()
}

// CountDroppedLogMessage records a rate-limited log message.
func CountDroppedLogMessage() {
	logMessagesDropped.Inc()
}
