package repository

import (
	"context"
	"errors"

	"github.com/guttosm/pricing-service/internal/circuitbreaker"
	"github.com/guttosm/pricing-service/internal/domain/model"
)

// IsStoreFailure reports whether err means the store is unhealthy. Caller
// cancellation and write conflicts say nothing about the database.
func IsStoreFailure(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, ErrVersionConflict)
}

// TierConfigRepositoryWithCircuitBreaker wraps TierConfigRepository with circuit breaker protection.
type TierConfigRepositoryWithCircuitBreaker struct {
	repo           TierConfigRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewTierConfigRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewTierConfigRepositoryWithCircuitBreaker(repo TierConfigRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *TierConfigRepositoryWithCircuitBreaker {
	return &TierConfigRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active configuration. An open circuit surfaces as
// circuitbreaker.ErrCircuitOpen so callers can degrade.
func (r *TierConfigRepositoryWithCircuitBreaker) GetActive(ctx context.Context, productID string) (*TierConfig, error) {
	return circuitbreaker.Do(ctx, r.circuitBreaker, func() (*TierConfig, error) {
		return r.repo.GetActive(ctx, productID)
	})
}

// Create stores a new revision with circuit breaker protection.
func (r *TierConfigRepositoryWithCircuitBreaker) Create(ctx context.Context, productID string, basePricePerUnit int64, tiers []model.PriceTier, createdBy string) (*TierConfig, error) {
	return circuitbreaker.Do(ctx, r.circuitBreaker, func() (*TierConfig, error) {
		return r.repo.Create(ctx, productID, basePricePerUnit, tiers, createdBy)
	})
}

// List returns revisions with circuit breaker protection.
func (r *TierConfigRepositoryWithCircuitBreaker) List(ctx context.Context, productID string, limit int) ([]TierConfig, error) {
	return circuitbreaker.Do(ctx, r.circuitBreaker, func() ([]TierConfig, error) {
		return r.repo.List(ctx, productID, limit)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *TierConfigRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
