// Package metrics provides Prometheus metrics collection for the pricing service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pricing"

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// QuotesTotal counts bulk price quotes by outcome.
	QuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_total",
			Help:      "Total number of bulk price quotes",
		},
		[]string{"status", "tier"},
	)

	// QuoteDuration tracks time spent computing a quote.
	QuoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_duration_seconds",
			Help:      "Bulk price quote duration in seconds",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	// DeliveryFeesTotal counts delivery fee calculations by outcome.
	DeliveryFeesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_fees_total",
			Help:      "Total number of delivery fee calculations",
		},
		[]string{"result"},
	)

	// SurgeMultiplier observes the multipliers handed out.
	SurgeMultiplier = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "surge_multiplier",
			Help:      "Distribution of surge multipliers",
			Buckets:   []float64{1.0, 1.2, 1.3, 1.4, 1.5, 2.0, 2.5, 3.0, 4.0, 5.0},
		},
	)

	// TierConfigWritesTotal counts tier configuration writes.
	TierConfigWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tier_config_writes_total",
			Help:      "Total number of tier configuration writes",
		},
		[]string{"status"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size per named cache.
	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
		[]string{"cache"},
	)

	// CacheCapacity tracks cache capacity per named cache.
	CacheCapacity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
		[]string{"cache"},
	)

	// RateLimitedTotal counts requests rejected by the rate limiter.
	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Total number of requests rejected by the rate limiter",
		},
		[]string{"scope"},
	)

	// IdempotentReplaysTotal counts responses served from the idempotency store.
	IdempotentReplaysTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "idempotent_replays_total",
			Help:      "Total number of replayed idempotent responses",
		},
	)

	// CircuitBreakerState reports 0 closed, 1 half-open, 2 open per breaker.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(time.Since(start).Seconds())
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordQuote records a bulk price quote. tier is "base" when no tier applied.
func RecordQuote(duration time.Duration, status, tier string) {
	QuoteDuration.Observe(duration.Seconds())
	QuotesTotal.WithLabelValues(status, tier).Inc()
}

// RecordDeliveryFee records a delivery fee outcome: free, paid, surged or error.
func RecordDeliveryFee(result string) {
	DeliveryFeesTotal.WithLabelValues(result).Inc()
}

// RecordSurge records a computed surge multiplier.
func RecordSurge(multiplier float64) {
	SurgeMultiplier.Observe(multiplier)
}

// RecordTierConfigWrite records a tier configuration write.
func RecordTierConfigWrite(status string) {
	TierConfigWritesTotal.WithLabelValues(status).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates the size and capacity of a named cache.
func UpdateCacheMetrics(name string, size, capacity int) {
	CacheSize.WithLabelValues(name).Set(float64(size))
	CacheCapacity.WithLabelValues(name).Set(float64(capacity))
}

// SetCircuitBreakerState publishes a breaker state.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordRateLimited records a rejected request. scope is "ip" or "user".
func RecordRateLimited(scope string) {
	RateLimitedTotal.WithLabelValues(scope).Inc()
}

// RecordIdempotentReplay records a replayed response.
func RecordIdempotentReplay() {
	IdempotentReplaysTotal.Inc()
}
