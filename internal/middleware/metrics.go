package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// Business counters, incremented by the service layer.

	OdemelerToplam = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_odemeler_toplam",
		Help: "Total payments recorded",
	})

	SiparislerToplam = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_siparisler_toplam",
		Help: "Total orders created",
	})

	StokHareketleriToplam = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_stok_hareketleri_toplam",
		Help: "Total stock movements by type",
	}, []string{"hareket_tipi"})
)

// Metrics records request counts and latency per route. Uses the route
// template (FullPath) rather than the raw URL to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
	}
}
