// Package app provides router configuration.
package app

import (
	"time"

	"github.com/guttosm/pricing-service/config"
	"github.com/guttosm/pricing-service/internal/http"
	"github.com/guttosm/pricing-service/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler           *http.Handler
	TierConfigHandler *http.TierConfigHandler
	HealthHandler     *http.HealthHandler
	Config            http.RouterConfig
}

// InitializeRouter builds the handlers and router configuration. db may be
// nil when tier storage is disabled.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	if db != nil {
		// Quotes fall back to default tiers, so storage never makes the service unready.
		healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(db.DB.HealthCheck), false)
		healthHandler.RegisterCircuitBreaker("mongodb_tier_configs", db.CircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		EnableAuth:     cfg.Auth.Enabled,
		APIKeys:        cfg.Auth.APIKeys,
		JWT: middleware.JWTConfig{
			Secret: []byte(cfg.Auth.JWTSecret),
			Issuer: cfg.Auth.JWTIssuer,
			Leeway: 30 * time.Second,
		},
		EditorRoles: cfg.Auth.EditorRoles,
		CORSOrigins: cfg.Server.CORSOrigins,
		SwaggerUser: cfg.Server.SwaggerUser,
		SwaggerPass: cfg.Server.SwaggerPass,
	}
	if services.IdempotencyStore != nil {
		routerCfg.IdempotencyStore = services.IdempotencyStore
	}
	if routerCfg.RateLimit > 0 {
		routerCfg.Limiter = middleware.NewRateLimiter(routerCfg.RateLimit, routerCfg.RateWindow)
	}

	return &RouterComponents{
		Handler:           http.NewHandler(services.Calculator, services.TierConfigs),
		TierConfigHandler: http.NewTierConfigHandler(services.TierConfigs),
		HealthHandler:     healthHandler,
		Config:            routerCfg,
	}
}
