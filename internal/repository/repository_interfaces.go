package repository

import (
	"context"

	"github.com/guttosm/pricing-service/internal/domain/model"
)

// TierConfigRepositoryInterface defines the interface for tier configuration storage.
type TierConfigRepositoryInterface interface {
	GetActive(ctx context.Context, productID string) (*TierConfig, error)
	Create(ctx context.Context, productID string, basePricePerUnit int64, tiers []model.PriceTier, createdBy string) (*TierConfig, error)
	List(ctx context.Context, productID string, limit int) ([]TierConfig, error)
}

var (
	_ TierConfigRepositoryInterface = (*TierConfigRepository)(nil)
	_ TierConfigRepositoryInterface = (*TierConfigRepositoryWithCircuitBreaker)(nil)
)
