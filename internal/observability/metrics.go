package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crm_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crm_http_requests_in_flight",
			Help: "HTTP requests currently being served",
		},
	)

	recomputeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_recompute_total",
			Help: "Derived-value recomputations by kind",
		},
		[]string{"kind"},
	)
)

// Recompute kinds reported by RecordRecompute.
const (
	RecomputeCampaignStatistics = "campaign_statistics"
	RecomputeAnalyticsRates     = "analytics_rates"
	RecomputeEngagementScore    = "engagement_score"
)

// MetricsMiddleware records request counts and latency per route template.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// RecordRecompute counts n recomputations of the given kind.
func RecordRecompute(kind string, n int) {
	recomputeTotal.WithLabelValues(kind).Add(float64(n))
}
