package service

import (
	"context"
	"time"

	"github.com/guttosm/pricing-service/internal/metrics"
	"github.com/guttosm/pricing-service/internal/service/cache"
)

// MetricsSource is any cache that reports its counters.
type MetricsSource interface {
	Metrics() cache.Metrics
}

// ReportCacheMetrics publishes the size and capacity of each named cache
// every interval until ctx is done.
func ReportCacheMetrics(ctx context.Context, interval time.Duration, caches map[string]MetricsSource) {
	publish := func() {
		for name, c := range caches {
			m := c.Metrics()
			metrics.UpdateCacheMetrics(name, m.Size, m.Capacity)
		}
	}

	publish()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			publish()
		case <-ctx.Done():
			return
		}
	}
}
