// Package main is the entry point for the pricing-service application.
//
// @title           Pricing Service API
// @version         1.0.0
// @description     Tiered bulk pricing, delivery fees and surge multipliers for storefront checkout.
//
//	Amounts are integer paise. Tier ladders can be stored per product and are
//	validated before they are accepted.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/pricing-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 "Bearer <jwt>" with an editor role. Required for tier writes when authentication is enabled.
//
// @tag.name        Pricing
// @tag.description Bulk quote operations
//
// @tag.name        Delivery
// @tag.description Delivery fee and surge operations
//
// @tag.name        Tiers
// @tag.description Tier configuration management
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"time"
	_ "time/tzdata" // market timezone on minimal images

	"github.com/rs/zerolog/log"

	_ "github.com/guttosm/pricing-service/docs" // swagger docs

	"github.com/guttosm/pricing-service/config"
	"github.com/guttosm/pricing-service/internal/app"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load .env")
	}
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server.Port, cfg.Server.RequestTimeout)
	runErr := server.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := application.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Shutdown cleanup failed")
	}
	cancel()

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}
