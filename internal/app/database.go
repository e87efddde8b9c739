// Package app provides database initialization and setup.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/pricing-service/config"
	"github.com/guttosm/pricing-service/internal/circuitbreaker"
	"github.com/guttosm/pricing-service/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB             *repository.MongoDB
	TierConfigRepo repository.TierConfigRepositoryInterface
	CircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the tier configuration
// repository behind a circuit breaker. It returns nil when storage is
// disabled or unreachable; pricing then runs on default tiers.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without tier storage")
		return nil
	}
	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	return newDatabaseComponents(db, repository.NewTierConfigRepository(db), cfg)
}

func newDatabaseComponents(db *repository.MongoDB, repo repository.TierConfigRepositoryInterface, cfg config.DatabaseConfig) *DatabaseComponents {
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-tier-configs",
		IsFailure:        repository.IsStoreFailure,
	})

	return &DatabaseComponents{
		DB:             db,
		TierConfigRepo: repository.NewTierConfigRepositoryWithCircuitBreaker(repo, cb),
		CircuitBreaker: cb,
	}
}
