// Package model defines the core domain entities for the pricing service.
//
// All currency amounts are int64 minor units (paise).
package model

// PriceTier represents one bulk-pricing bracket.
//
// @Description Quantity bracket with its own flat per-unit price
// @Example {"min_qty": 10, "max_qty": 49, "price_per_unit": 9300, "discount_percent": 7}
type PriceTier struct {
	// MinQty is the inclusive lower bound of the bracket
	MinQty int `json:"min_qty" bson:"min_qty" example:"10"`
	// MaxQty is the inclusive upper bound; nil means "and above"
	MaxQty *int `json:"max_qty,omitempty" bson:"max_qty,omitempty" example:"49"`
	// PricePerUnit is the flat unit price inside this bracket
	PricePerUnit int64 `json:"price_per_unit" bson:"price_per_unit" example:"9300"`
	// DiscountPercent is display-only, never used for repricing
	DiscountPercent int `json:"discount_percent" bson:"discount_percent" example:"7"`
}

// Contains reports whether quantity falls inside the tier's range.
func (t PriceTier) Contains(quantity int) bool {
	if quantity < t.MinQty {
		return false
	}
	return t.MaxQty == nil || quantity <= *t.MaxQty
}

// Unbounded reports whether the tier has no upper bound.
func (t PriceTier) Unbounded() bool {
	return t.MaxQty == nil
}

// PricingResult is the outcome of a bulk price calculation.
//
// @Description Bulk price calculation result
// @Example {"unit_price": 80, "total_price": 4800, "savings": 1200, "savings_percent": 20}
type PricingResult struct {
	// AppliedTier is nil when the base price applies
	AppliedTier    *PriceTier `json:"applied_tier"`
	UnitPrice      int64      `json:"unit_price" example:"80"`
	TotalPrice     int64      `json:"total_price" example:"4800"`
	Savings        int64      `json:"savings" example:"1200"`
	SavingsPercent int        `json:"savings_percent" example:"20"`
}

// Upsell describes the next cheaper tier above the current quantity.
type Upsell struct {
	NextTier        PriceTier `json:"next_tier"`
	TierRange       string    `json:"tier_range" example:"50-99 units"`
	UnitsNeeded     int       `json:"units_needed" example:"40"`
	PerUnitSaving   int64     `json:"per_unit_saving" example:"10"`
	DiscountPercent int       `json:"discount_percent" example:"20"`
}

// Quote bundles a pricing result with its upsell hint.
type Quote struct {
	Result        PricingResult `json:"result"`
	Upsell        *Upsell       `json:"upsell,omitempty"`
	UpsellMessage string        `json:"upsell_message,omitempty"`
}
