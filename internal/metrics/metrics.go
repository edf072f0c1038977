package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus metrics for monitoring service health and import activity.
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method"},
	)

	TicketsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tickets_created_total",
			Help: "Total number of tickets created",
		},
	)

	ImportItemsAcceptedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_items_accepted_total",
			Help: "Total number of bulk import items accepted",
		},
		[]string{"kind"},
	)

	ImportItemsRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_items_rejected_total",
			Help: "Total number of bulk import items rejected",
		},
		[]string{"kind"},
	)
)

// Register registers all collectors with the default registry.
func Register() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(TicketsCreatedTotal)
	prometheus.MustRegister(ImportItemsAcceptedTotal)
	prometheus.MustRegister(ImportItemsRejectedTotal)
}

// Middleware records request count and duration per route. The route
// template (not the raw path) is used as the handler label to keep
// cardinality bounded.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		handler := c.FullPath()
		if handler == "" {
			handler = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(handler, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(handler, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
