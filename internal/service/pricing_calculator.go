package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/pricing-service/internal/domain/model"
	"github.com/guttosm/pricing-service/internal/logger"
	"github.com/guttosm/pricing-service/internal/metrics"
	"github.com/guttosm/pricing-service/internal/pricing"
	"github.com/guttosm/pricing-service/internal/service/cache"
)

// DeliveryRequest is a delivery fee question from the storefront.
type DeliveryRequest struct {
	CartSubtotal int64
	DistanceKm   float64
	// FreeThreshold overrides the configured threshold when set.
	FreeThreshold *int64
	Surge         *model.SurgeContext
}

// PricingCalculator defines the pricing operations exposed to the HTTP layer.
type PricingCalculator interface {
	Quote(quantity int, basePricePerUnit int64, tiers []model.PriceTier) (model.Quote, error)
	DeliveryFee(req DeliveryRequest) (model.DeliveryQuote, error)
	Surge(sc model.SurgeContext) model.SurgeQuote
	// InvalidateCache clears cached quotes (used when tier configurations change)
	InvalidateCache()
}

// Option configures a PricingCalculatorService.
type Option func(*PricingCalculatorService)

// PricingCalculatorService implements PricingCalculator on top of the pure
// pricing package, adding defaults, caching and metrics.
type PricingCalculatorService struct {
	delivery      pricing.Calculator
	freeThreshold int64
	location      *time.Location
	clock         func() time.Time
	cache         cache.Cache[model.Quote]
}

// NewPricingCalculatorService creates a PricingCalculatorService with the given options.
func NewPricingCalculatorService(opts ...Option) *PricingCalculatorService {
	s := &PricingCalculatorService{
		delivery:      pricing.NewCalculator(),
		freeThreshold: pricing.FreeDeliveryThreshold,
		location:      time.UTC,
		clock:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithDeliveryCalculator replaces the delivery rate schedule.
func WithDeliveryCalculator(c pricing.Calculator) Option {
	return func(s *PricingCalculatorService) {
		s.delivery = c
	}
}

// WithFreeThreshold sets the default free-delivery threshold.
func WithFreeThreshold(threshold int64) Option {
	return func(s *PricingCalculatorService) {
		if threshold >= 0 {
			s.freeThreshold = threshold
		}
	}
}

// WithLocation sets the market time zone surge rules are evaluated in.
func WithLocation(loc *time.Location) Option {
	return func(s *PricingCalculatorService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithClock sets the time source used when a surge context carries no time.
func WithClock(clock func() time.Time) Option {
	return func(s *PricingCalculatorService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithCache enables quote caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *PricingCalculatorService) {
		if capacity > 0 {
			s.cache = newTTLCache[model.Quote](capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache[model.Quote]) Option {
	return func(s *PricingCalculatorService) {
		s.cache = c
	}
}

// Quote prices a bulk order and attaches the next-tier upsell.
// Cached quotes are shared and must be treated as read-only.
func (s *PricingCalculatorService) Quote(quantity int, basePricePerUnit int64, tiers []model.PriceTier) (model.Quote, error) {
	start := time.Now()

	key := quoteKey(quantity, basePricePerUnit, tiers)
	if s.cache != nil {
		if q, ok := s.cache.Get(key); ok {
			metrics.RecordQuote(time.Since(start), "cached", tierLabel(q.Result))
			return q, nil
		}
	}

	result, err := pricing.CalculateBulkPrice(quantity, basePricePerUnit, tiers)
	if err != nil {
		metrics.RecordQuote(time.Since(start), "error", "none")
		return model.Quote{}, err
	}
	upsell, err := pricing.NextTierUpsell(quantity, basePricePerUnit, tiers)
	if err != nil {
		metrics.RecordQuote(time.Since(start), "error", "none")
		return model.Quote{}, err
	}

	q := model.Quote{
		Result:        result,
		Upsell:        upsell,
		UpsellMessage: pricing.UpsellMessage(upsell),
	}
	if s.cache != nil {
		s.cache.Set(key, q)
	}
	metrics.RecordQuote(time.Since(start), "success", tierLabel(result))
	return q, nil
}

// DeliveryFee computes the fee, free-delivery progress and banner for a cart.
func (s *PricingCalculatorService) DeliveryFee(req DeliveryRequest) (model.DeliveryQuote, error) {
	threshold := s.freeThreshold
	if req.FreeThreshold != nil {
		threshold = *req.FreeThreshold
	}

	var surge *model.SurgeContext
	if req.Surge != nil {
		sc := s.localize(*req.Surge)
		surge = &sc
	}

	result, err := s.delivery.CalculateDeliveryFeeWithSurge(model.DeliveryFeeContext{
		CartSubtotal:  req.CartSubtotal,
		DistanceKm:    req.DistanceKm,
		FreeThreshold: threshold,
	}, surge)
	if err != nil {
		metrics.RecordDeliveryFee("error")
		return model.DeliveryQuote{}, err
	}

	progress, err := pricing.DeliveryProgressPercentage(req.CartSubtotal, threshold)
	if err != nil {
		metrics.RecordDeliveryFee("error")
		return model.DeliveryQuote{}, err
	}

	switch {
	case result.IsFree:
		metrics.RecordDeliveryFee("free")
	case result.SurgeMultiplier > 1:
		metrics.RecordDeliveryFee("surged")
		metrics.RecordSurge(result.SurgeMultiplier)
	default:
		metrics.RecordDeliveryFee("paid")
	}

	return model.DeliveryQuote{
		DeliveryFeeResult:  result,
		ProgressPercentage: progress,
		Banner:             s.delivery.Banner(result),
		Breakdown:          s.delivery.Breakdown(req.CartSubtotal),
	}, nil
}

// Surge evaluates the surge rules for a zone in the market time zone.
func (s *PricingCalculatorService) Surge(sc model.SurgeContext) model.SurgeQuote {
	sc = s.localize(sc)
	multiplier := pricing.CalculateSurgeMultiplier(sc)
	metrics.RecordSurge(multiplier)

	if multiplier > 1 {
		l := logger.Logger()
		l.Debug().
			Str("zone", sc.Zone).
			Float64("multiplier", multiplier).
			Time("at", sc.Time).
			Msg("Surge pricing active")
	}

	return model.SurgeQuote{
		Zone:       sc.Zone,
		Multiplier: multiplier,
		Reason:     pricing.SurgeReason(sc, multiplier),
	}
}

// InvalidateCache clears all cached quotes.
func (s *PricingCalculatorService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// Stop releases the cache's background goroutine.
func (s *PricingCalculatorService) Stop() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

// localize fills a missing time from the clock and moves it into the market zone.
func (s *PricingCalculatorService) localize(sc model.SurgeContext) model.SurgeContext {
	if sc.Time.IsZero() {
		sc.Time = s.clock()
	}
	sc.Time = sc.Time.In(s.location)
	return sc
}

// quoteKey builds a canonical cache key. Tier order is kept because it
// decides ties between tiers sharing a MinQty.
func quoteKey(quantity int, base int64, tiers []model.PriceTier) string {
	var b strings.Builder
	b.Grow(16 + len(tiers)*24)
	b.WriteString(strconv.Itoa(quantity))
	b.WriteByte('|')
	b.WriteString(strconv.FormatInt(base, 10))
	for _, t := range tiers {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(t.MinQty))
		b.WriteByte(':')
		if t.MaxQty != nil {
			b.WriteString(strconv.Itoa(*t.MaxQty))
		} else {
			b.WriteByte('*')
		}
		b.WriteByte(':')
		b.WriteString(strconv.FormatInt(t.PricePerUnit, 10))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(t.DiscountPercent))
	}
	return b.String()
}

func tierLabel(r model.PricingResult) string {
	if r.AppliedTier == nil {
		return "base"
	}
	return "tiered"
}
