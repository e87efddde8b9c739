package model

import "time"

// DeliveryFeeContext holds the inputs of a delivery fee calculation.
type DeliveryFeeContext struct {
	CartSubtotal  int64
	DistanceKm    float64
	FreeThreshold int64
}

// DeliveryFeeResult is the outcome of a delivery fee calculation.
//
// @Description Delivery fee with free-delivery progress data
// @Example {"fee": 8000, "is_free": false, "amount_needed_for_free": 50000}
type DeliveryFeeResult struct {
	Fee                 int64 `json:"fee" example:"8000"`
	IsFree              bool  `json:"is_free" example:"false"`
	AmountNeededForFree int64 `json:"amount_needed_for_free" example:"50000"`

	BaseFee         int64   `json:"base_fee" example:"5000"`
	DistanceFee     int64   `json:"distance_fee" example:"3000"`
	SurgeMultiplier float64 `json:"surge_multiplier,omitempty" example:"1.5"`
	SurgeReason     string  `json:"surge_reason,omitempty" example:"Peak hours"`
}

// FeeTier is one row of the order-value delivery fee table.
// MaxOrderValue nil means no upper bound.
type FeeTier struct {
	MinOrderValue int64  `json:"min_order_value" bson:"min_order_value"`
	MaxOrderValue *int64 `json:"max_order_value,omitempty" bson:"max_order_value,omitempty"`
	Fee           int64  `json:"fee" bson:"fee"`
}

// Contains reports whether subtotal falls inside the row.
func (t FeeTier) Contains(subtotal int64) bool {
	if subtotal < t.MinOrderValue {
		return false
	}
	return t.MaxOrderValue == nil || subtotal <= *t.MaxOrderValue
}

// DistanceBand charges Surcharge for distances up to MaxKm.
// MaxKm zero marks the open-ended last band.
type DistanceBand struct {
	MaxKm     float64 `json:"max_km"`
	Surcharge int64   `json:"surcharge"`
}

// FeeBreakdown locates a subtotal inside the fee table.
type FeeBreakdown struct {
	CurrentTier      *FeeTier `json:"current_tier"`
	NextTier         *FeeTier `json:"next_tier,omitempty"`
	AmountToNextTier int64    `json:"amount_to_next_tier"`
}

// BannerTier selects the free-delivery banner template.
type BannerTier string

const (
	BannerFree     BannerTier = "free"
	BannerClose    BannerTier = "close"
	BannerStandard BannerTier = "standard"
)

// Banner is a rendered free-delivery message.
type Banner struct {
	Tier    BannerTier `json:"tier" example:"close"`
	Kind    string     `json:"kind" example:"info"`
	Message string     `json:"message" example:"Add ₹500 more to get FREE delivery!"`
}

// DeliveryQuote is the full answer returned to storefront clients.
type DeliveryQuote struct {
	DeliveryFeeResult
	ProgressPercentage float64      `json:"progress_percentage" example:"90"`
	Banner             Banner       `json:"banner"`
	Breakdown          FeeBreakdown `json:"breakdown"`
}

// Weather is the weather signal of a surge context.
type Weather string

const (
	WeatherNone        Weather = "none"
	WeatherRain        Weather = "rain"
	WeatherExtremeHeat Weather = "extreme_heat"
)

// Severe reports whether the weather triggers the surge weather rule.
func (w Weather) Severe() bool {
	return w == WeatherRain || w == WeatherExtremeHeat
}

// SurgeContext holds the surge signals for a delivery zone at an instant.
type SurgeContext struct {
	Zone    string
	Time    time.Time
	Weather Weather
	// Demand is a 0-100 load signal; nil when unknown.
	Demand *int
}

// SurgeQuote is the multiplier and its explanation.
type SurgeQuote struct {
	Zone       string  `json:"zone" example:"blr-koramangala"`
	Multiplier float64 `json:"multiplier" example:"2.7"`
	Reason     string  `json:"reason" example:"Peak hours + Rain + High demand"`
}
