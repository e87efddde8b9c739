package http

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/guttosm/pricing-service/internal/domain/dto"
	"github.com/guttosm/pricing-service/internal/metrics"
	"github.com/guttosm/pricing-service/internal/middleware"
	"github.com/guttosm/pricing-service/internal/service/cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	// Limiter is used instead of building one from RateLimit, so the caller can stop it.
	Limiter *middleware.RateLimiter

	EnableAuth  bool
	APIKeys     []string
	JWT         middleware.JWTConfig
	EditorRoles []string

	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string

	// IdempotencyStore enables Idempotency-Key replay when set.
	IdempotencyStore cache.Cache[middleware.CachedResponse]
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: middleware.DefaultTimeout,
		EditorRoles:    []string{"pricing_editor", "admin"},
	}
}

var registerFieldNames sync.Once

// NewRouter creates and configures the Gin router for the pricing service.
// tierHandler may be nil when tier storage is disabled.
func NewRouter(handler *Handler, tierHandler *TierConfigHandler, healthHandler *HealthHandler, cfg RouterConfig) (*gin.Engine, error) {
	registerFieldNames.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			dto.RegisterJSONFieldNames(v)
		}
	})

	router := gin.New()
	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	var editor []gin.HandlerFunc
	if cfg.EnableAuth {
		jwtAuth, err := middleware.JWTAuth(cfg.JWT)
		if err != nil {
			return nil, fmt.Errorf("configure tier editor auth: %w", err)
		}
		editor = []gin.HandlerFunc{jwtAuth, middleware.RequireRole(cfg.EditorRoles...)}
	}

	// Idempotency runs per route, after authentication, so a replay never skips a guard.
	var idempotent gin.HandlerFunc
	if cfg.IdempotencyStore != nil {
		idempotent = middleware.Idempotency(middleware.IdempotencyConfig{Store: cfg.IdempotencyStore})
	}

	groups := []RouteGroup{NewPricingRoutes(handler, idempotent)}
	if tierHandler != nil {
		groups = append(groups, NewTierRoutes(tierHandler, editor, idempotent))
	}
	for _, g := range groups {
		g.RegisterRoutes(api)
	}

	return router, nil
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language",
			"Authorization", "X-API-Key", "Idempotency-Key", "X-Request-ID",
		},
		ExposeHeaders: []string{
			middleware.RequestIDHeader, middleware.IdempotencyReplayedHeader,
			"X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After",
		},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression("/metrics"),
		middleware.RequestLogger("/healthz", "/readyz", "/metrics"),
		middleware.ErrorHandler(ClassifyError),
	)

	limiter := cfg.Limiter
	if limiter == nil && cfg.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	}
	if limiter != nil {
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	api.Use(middleware.Timeout(cfg.RequestTimeout))

	if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}
}
