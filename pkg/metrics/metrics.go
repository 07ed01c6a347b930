package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credit_bank_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "credit_bank_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ListTotalRows is the total row count a list query reported, per
	// resource.
	ListTotalRows = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "credit_bank_list_query_total_rows",
			Help:    "Matching rows reported by list queries",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
		[]string{"resource"},
	)

	ListErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credit_bank_list_query_errors_total",
			Help: "List queries that failed, by resource and kind",
		},
		[]string{"resource", "kind"},
	)
)

// Middleware records request count and latency labelled by the matched
// route template, not the raw path.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		RequestTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
