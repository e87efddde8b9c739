package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/guttosm/pricing-service/internal/circuitbreaker"
	"github.com/guttosm/pricing-service/internal/domain/model"
	"github.com/guttosm/pricing-service/internal/logger"
	"github.com/guttosm/pricing-service/internal/metrics"
	"github.com/guttosm/pricing-service/internal/pricing"
	"github.com/guttosm/pricing-service/internal/repository"
	"github.com/guttosm/pricing-service/internal/service/cache"
)

var (
	// ErrRepositoryNotConfigured is returned when the service runs without storage.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrTierConfigNotFound is returned when a product has no active configuration.
	ErrTierConfigNotFound = errors.New("tier configuration not found")
	// ErrInvalidProductID is returned for blank product ids.
	ErrInvalidProductID = errors.New("product id must not be blank")
)

// TierSource tells where the tiers used for a quote came from.
type TierSource string

const (
	// TierSourceRequest means the caller supplied the tiers.
	TierSourceRequest TierSource = "request"
	// TierSourceStored means the product's active configuration was used.
	TierSourceStored TierSource = "stored"
	// TierSourceDefault means the product has no configuration yet.
	TierSourceDefault TierSource = "default"
	// TierSourceFallback means storage was unavailable and defaults were used.
	TierSourceFallback TierSource = "fallback"
	// TierSourceNone means no tiers were given and the base price applies.
	TierSourceNone TierSource = "none"
)

// TierConfigService manages per-product tier configurations.
type TierConfigService interface {
	GetActive(ctx context.Context, productID string) (*repository.TierConfig, error)
	Save(ctx context.Context, productID string, basePricePerUnit int64, tiers []model.PriceTier, editor string) (*repository.TierConfig, error)
	History(ctx context.Context, productID string, limit int) ([]repository.TierConfig, error)
	Validate(basePricePerUnit int64, tiers []model.PriceTier) error
	TiersFor(ctx context.Context, productID string, basePricePerUnit int64) ([]model.PriceTier, TierSource, error)
}

// TierConfigOption configures a TierConfigServiceImpl.
type TierConfigOption func(*TierConfigServiceImpl)

// WithActiveCache caches active configurations by product id.
func WithActiveCache(c cache.Cache[repository.TierConfig]) TierConfigOption {
	return func(s *TierConfigServiceImpl) {
		s.active = c
	}
}

// WithOnChange registers a callback run after every successful save.
func WithOnChange(fn func(productID string)) TierConfigOption {
	return func(s *TierConfigServiceImpl) {
		if fn != nil {
			s.onChange = append(s.onChange, fn)
		}
	}
}

// TierConfigServiceImpl implements TierConfigService.
type TierConfigServiceImpl struct {
	repo     repository.TierConfigRepositoryInterface
	active   cache.Cache[repository.TierConfig]
	onChange []func(productID string)
}

// NewTierConfigService creates a tier configuration service. A nil repository
// yields a service that still validates and serves default tiers.
func NewTierConfigService(repo repository.TierConfigRepositoryInterface, opts ...TierConfigOption) *TierConfigServiceImpl {
	s := &TierConfigServiceImpl{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetActive returns the active configuration of a product.
func (s *TierConfigServiceImpl) GetActive(ctx context.Context, productID string) (*repository.TierConfig, error) {
	productID, err := cleanProductID(productID)
	if err != nil {
		return nil, err
	}
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	if s.active != nil {
		if cfg, ok := s.active.Get(productID); ok {
			return &cfg, nil
		}
	}

	cfg, err := s.repo.GetActive(ctx, productID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s", ErrTierConfigNotFound, productID)
	}
	if s.active != nil {
		s.active.Set(productID, *cfg)
	}
	return cfg, nil
}

// Save normalizes and validates tiers, then stores them as the product's new
// active revision.
func (s *TierConfigServiceImpl) Save(ctx context.Context, productID string, basePricePerUnit int64, tiers []model.PriceTier, editor string) (*repository.TierConfig, error) {
	productID, err := cleanProductID(productID)
	if err != nil {
		metrics.RecordTierConfigWrite("invalid")
		return nil, err
	}

	normalized := pricing.NormalizeTiers(basePricePerUnit, tiers)
	if err := pricing.ValidateTiers(basePricePerUnit, normalized); err != nil {
		metrics.RecordTierConfigWrite("invalid")
		return nil, err
	}
	if s.repo == nil {
		metrics.RecordTierConfigWrite("error")
		return nil, ErrRepositoryNotConfigured
	}

	cfg, err := s.repo.Create(ctx, productID, basePricePerUnit, normalized, editor)
	if err != nil {
		status := "error"
		if errors.Is(err, repository.ErrVersionConflict) {
			status = "conflict"
		}
		metrics.RecordTierConfigWrite(status)
		return nil, err
	}

	if s.active != nil {
		s.active.Invalidate(productID)
	}
	for _, fn := range s.onChange {
		fn(productID)
	}

	metrics.RecordTierConfigWrite("success")
	l := logger.WithComponent("tier-configs")
	l.Info().
		Str("product_id", productID).
		Int("version", cfg.Version).
		Str("revision_id", cfg.RevisionID).
		Str("editor", editor).
		Msg("Tier configuration saved")
	return cfg, nil
}

// History returns a product's revisions, newest first.
func (s *TierConfigServiceImpl) History(ctx context.Context, productID string, limit int) ([]repository.TierConfig, error) {
	productID, err := cleanProductID(productID)
	if err != nil {
		return nil, err
	}
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx, productID, limit)
}

// Validate checks tiers against the configuration rules after normalization.
func (s *TierConfigServiceImpl) Validate(basePricePerUnit int64, tiers []model.PriceTier) error {
	return pricing.ValidateTiers(basePricePerUnit, pricing.NormalizeTiers(basePricePerUnit, tiers))
}

// TiersFor returns the tiers to price a product with. Missing configurations
// and unavailable storage both fall back to the default ladder for the base price.
func (s *TierConfigServiceImpl) TiersFor(ctx context.Context, productID string, basePricePerUnit int64) ([]model.PriceTier, TierSource, error) {
	cfg, err := s.GetActive(ctx, productID)
	switch {
	case err == nil:
		return cfg.Tiers, TierSourceStored, nil
	case errors.Is(err, ErrInvalidProductID):
		return nil, "", err
	case errors.Is(err, ErrTierConfigNotFound), errors.Is(err, ErrRepositoryNotConfigured):
		return pricing.DefaultTiers(basePricePerUnit), TierSourceDefault, nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, "", err
	default:
		l := logger.WithComponent("tier-configs")
		event := l.Warn().Err(err).Str("product_id", productID)
		if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
			event = event.Bool("circuit_open", true)
		}
		event.Msg("Tier storage unavailable, pricing with default tiers")
		return pricing.DefaultTiers(basePricePerUnit), TierSourceFallback, nil
	}
}

func cleanProductID(productID string) (string, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return "", ErrInvalidProductID
	}
	return productID, nil
}
