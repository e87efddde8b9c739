// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model. Binding tags reject
// malformed input with 400; domain rules on tiers are checked by the pricing
// package and reported with 422.
package dto

import (
	"time"

	"github.com/guttosm/pricing-service/internal/domain/model"
)

// QuoteRequest is the body of POST /api/pricing/quote.
//
// Tiers take precedence over ProductID. With neither, the base price applies.
//
// @Description Bulk price quote request
// @Example {"quantity": 60, "base_price_per_unit": 10000, "product_id": "sku-123"}
type QuoteRequest struct {
	Quantity         int               `json:"quantity" binding:"required,gt=0" example:"60" minimum:"1"`
	BasePricePerUnit int64             `json:"base_price_per_unit" binding:"gte=0" example:"10000"`
	Tiers            []model.PriceTier `json:"tiers,omitempty"`
	ProductID        string            `json:"product_id,omitempty" binding:"omitempty,max=64" example:"sku-123"`
} // @name QuoteRequest

// SurgeRequest carries the surge signals of a delivery zone.
//
// @Description Surge signals for a zone
// @Example {"zone": "blr-koramangala", "weather": "rain", "demand": 85}
type SurgeRequest struct {
	Zone string `json:"zone" binding:"max=64" example:"blr-koramangala"`
	// Time defaults to the server clock
	Time    *time.Time `json:"time,omitempty" example:"2026-10-16T19:30:00+05:30"`
	Weather string     `json:"weather,omitempty" binding:"omitempty,oneof=none rain extreme_heat" example:"rain"`
	// Demand is a 0-100 load signal
	Demand *int `json:"demand,omitempty" binding:"omitempty,gte=0,lte=100" example:"85"`
} // @name SurgeRequest

// Context converts the request into a surge context. A zero Time means "now".
func (r SurgeRequest) Context() model.SurgeContext {
	sc := model.SurgeContext{
		Zone:    r.Zone,
		Weather: model.Weather(r.Weather),
		Demand:  r.Demand,
	}
	if sc.Weather == "" {
		sc.Weather = model.WeatherNone
	}
	if r.Time != nil {
		sc.Time = *r.Time
	}
	return sc
}

// DeliveryFeeRequest is the body of POST /api/delivery/fee.
//
// @Description Delivery fee request
// @Example {"cart_subtotal": 450000, "distance_km": 3.2}
type DeliveryFeeRequest struct {
	CartSubtotal int64   `json:"cart_subtotal" binding:"gte=0" example:"450000"`
	DistanceKm   float64 `json:"distance_km" binding:"gte=0" example:"3.2"`
	// FreeThreshold overrides the configured free-delivery threshold
	FreeThreshold *int64        `json:"free_threshold,omitempty" binding:"omitempty,gte=0" example:"500000"`
	Surge         *SurgeRequest `json:"surge,omitempty"`
} // @name DeliveryFeeRequest

// ValidateTiersRequest is the body of POST /api/tiers/validate.
//
// @Description Tier configuration to check
type ValidateTiersRequest struct {
	BasePricePerUnit int64             `json:"base_price_per_unit" binding:"gte=0" example:"10000"`
	Tiers            []model.PriceTier `json:"tiers" binding:"required"`
} // @name ValidateTiersRequest

// TierConfigRequest is the body of PUT /api/products/{id}/tiers.
//
// @Description New tier configuration for a product
type TierConfigRequest struct {
	BasePricePerUnit int64             `json:"base_price_per_unit" binding:"required,gt=0" example:"10000"`
	Tiers            []model.PriceTier `json:"tiers" binding:"required,min=1"`
} // @name TierConfigRequest

// HistoryQuery holds the query string of GET /api/products/{id}/tiers/history.
type HistoryQuery struct {
	Limit int `form:"limit" binding:"omitempty,gte=1,lte=100"`
}

// DefaultHistoryLimit is used when the limit query parameter is absent.
const DefaultHistoryLimit = 20
