// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/pricing-service/config"
	"github.com/guttosm/pricing-service/internal/http"
	"github.com/guttosm/pricing-service/internal/repository"
	"github.com/guttosm/pricing-service/internal/service"
)

// cacheMetricsInterval is how often cache sizes are published.
const cacheMetricsInterval = 15 * time.Second

// App is the wired application. Close releases what InitializeApp started.
type App struct {
	Router *gin.Engine

	services      *ServiceComponents
	database      *DatabaseComponents
	routerConfig  http.RouterConfig
	stopReporting context.CancelFunc
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Server)

	db := InitializeDatabase(cfg.Database)
	var repo repository.TierConfigRepositoryInterface
	if db != nil {
		repo = db.TierConfigRepo
	}

	services, err := InitializeServices(cfg, repo)
	if err != nil {
		closeDatabase(db)
		return nil, fmt.Errorf("initialize services: %w", err)
	}

	rc := InitializeRouter(services, db, cfg)
	router, err := http.NewRouter(rc.Handler, rc.TierConfigHandler, rc.HealthHandler, rc.Config)
	if err != nil {
		if rc.Config.Limiter != nil {
			rc.Config.Limiter.Stop()
		}
		services.Stop()
		closeDatabase(db)
		return nil, fmt.Errorf("initialize router: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go service.ReportCacheMetrics(ctx, cacheMetricsInterval, services.caches())

	log.Info().
		Bool("tier_storage", db != nil).
		Bool("auth", cfg.Auth.Enabled).
		Str("market_timezone", cfg.Pricing.MarketTimezone).
		Msg("Application initialized")

	return &App{
		Router:        router,
		services:      services,
		database:      db,
		routerConfig:  rc.Config,
		stopReporting: cancel,
	}, nil
}

// Close stops background work and disconnects from MongoDB.
func (a *App) Close(ctx context.Context) error {
	a.stopReporting()
	if a.routerConfig.Limiter != nil {
		a.routerConfig.Limiter.Stop()
	}
	a.services.Stop()

	var errs []error
	if a.database != nil {
		if err := a.database.DB.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("close mongodb: %w", err))
		}
	}
	return errors.Join(errs...)
}

func closeDatabase(db *DatabaseComponents) {
	if db == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to close MongoDB")
	}
}
