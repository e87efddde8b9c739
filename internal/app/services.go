// Package app provides service initialization.
package app

import (
	"encoding/json"
	"fmt"

	"github.com/guttosm/pricing-service/config"
	"github.com/guttosm/pricing-service/internal/domain/model"
	"github.com/guttosm/pricing-service/internal/middleware"
	"github.com/guttosm/pricing-service/internal/pricing"
	"github.com/guttosm/pricing-service/internal/repository"
	"github.com/guttosm/pricing-service/internal/service"
)

const cacheShards = 16

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Calculator  *service.PricingCalculatorService
	TierConfigs *service.TierConfigServiceImpl

	QuoteCache       *service.ShardedCache[model.Quote]
	ActiveTierCache  *service.ShardedCache[repository.TierConfig]
	IdempotencyStore *service.ShardedCache[middleware.CachedResponse]
}

// InitializeServices builds the calculators and the tier configuration
// service. repo may be nil when tier storage is disabled.
func InitializeServices(cfg config.Config, repo repository.TierConfigRepositoryInterface) (*ServiceComponents, error) {
	loc, err := cfg.Pricing.Location()
	if err != nil {
		return nil, err
	}

	deliveryOpts, err := deliveryOptions(cfg.Pricing)
	if err != nil {
		return nil, err
	}
	delivery := pricing.NewCalculator(deliveryOpts...)
	if err := pricing.ValidateDeliveryRates(delivery.Rates()); err != nil {
		return nil, fmt.Errorf("delivery rates: %w", err)
	}

	components := &ServiceComponents{}
	opts := []service.Option{
		service.WithDeliveryCalculator(delivery),
		service.WithFreeThreshold(cfg.Pricing.FreeDeliveryThreshold),
		service.WithLocation(loc),
	}
	var tierOpts []service.TierConfigOption

	if cfg.Cache.Size > 0 {
		components.QuoteCache = service.NewShardedCache[model.Quote](cfg.Cache.Size, cfg.Cache.TTL, cacheShards)
		components.ActiveTierCache = service.NewShardedCache[repository.TierConfig](cfg.Cache.Size, cfg.Cache.TTL, cacheShards)
		components.IdempotencyStore = service.NewShardedCache[middleware.CachedResponse](cfg.Cache.Size, cfg.Cache.TTL, cacheShards)

		opts = append(opts, service.WithCacheInterface(components.QuoteCache))
		tierOpts = append(tierOpts, service.WithActiveCache(components.ActiveTierCache))
	}

	components.Calculator = service.NewPricingCalculatorService(opts...)

	// Stored tiers feed cached quotes, so a save drops them.
	tierOpts = append(tierOpts, service.WithOnChange(func(string) {
		components.Calculator.InvalidateCache()
	}))
	components.TierConfigs = service.NewTierConfigService(repo, tierOpts...)

	return components, nil
}

// deliveryOptions turns the pricing config into calculator options.
// Custom fee tables and bands are checked by ValidateDeliveryRates afterwards.
func deliveryOptions(p config.PricingConfig) ([]pricing.Option, error) {
	opts := []pricing.Option{
		pricing.WithFallbackFee(p.FallbackDeliveryFee),
		pricing.WithCloseWindow(p.CloseToFreeWindow),
	}
	if p.DeliveryFeeTable != "" {
		var table []model.FeeTier
		if err := json.Unmarshal([]byte(p.DeliveryFeeTable), &table); err != nil {
			return nil, fmt.Errorf("parse DELIVERY_FEE_TABLE: %w", err)
		}
		opts = append(opts, pricing.WithFeeTable(table))
	}
	if p.DistanceBands != "" {
		var bands []model.DistanceBand
		if err := json.Unmarshal([]byte(p.DistanceBands), &bands); err != nil {
			return nil, fmt.Errorf("parse DISTANCE_BANDS: %w", err)
		}
		opts = append(opts, pricing.WithDistanceBands(bands))
	}
	return opts, nil
}

// caches returns the named caches for metrics reporting.
func (s *ServiceComponents) caches() map[string]service.MetricsSource {
	out := make(map[string]service.MetricsSource, 3)
	if s.QuoteCache != nil {
		out["quotes"] = s.QuoteCache
	}
	if s.ActiveTierCache != nil {
		out["tier_configs"] = s.ActiveTierCache
	}
	if s.IdempotencyStore != nil {
		out["idempotency"] = s.IdempotencyStore
	}
	return out
}

// Stop releases the cache cleanup goroutines.
func (s *ServiceComponents) Stop() {
	s.Calculator.Stop()
	if s.ActiveTierCache != nil {
		s.ActiveTierCache.Stop()
	}
	if s.IdempotencyStore != nil {
		s.IdempotencyStore.Stop()
	}
}
