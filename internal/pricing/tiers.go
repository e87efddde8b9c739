package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/guttosm/pricing-service/internal/domain/model"
)

// MaxTiers is the largest tier list a product may carry.
const MaxTiers = 5

// Tier validation rule identifiers.
const (
	RuleMaxTiers        = "max_tiers"
	RuleMinQty          = "min_qty"
	RuleNegativePrice   = "negative_price"
	RuleDiscountRange   = "discount_range"
	RuleMaxBelowMin     = "max_below_min"
	RuleAscendingQty    = "ascending_min_qty"
	RuleDescendingPrice = "descending_price"
	RuleOverlap         = "overlap"
	RuleAboveBase       = "price_above_base"
)

// ValidateTiers checks a tier list in the order it was submitted and reports
// every broken rule at once. A basePrice of zero skips the base comparison.
// The returned error is a *ValidationError.
func ValidateTiers(basePrice int64, tiers []model.PriceTier) error {
	verr := &ValidationError{Subject: "tier configuration"}

	if len(tiers) > MaxTiers {
		verr.add(-1, "tiers", RuleMaxTiers, "at most %d tiers are allowed, got %d", MaxTiers, len(tiers))
	}

	for i, t := range tiers {
		if t.MinQty < 1 {
			verr.add(i, "min_qty", RuleMinQty, "tier %d: minimum quantity must be at least 1", i+1)
		}
		if t.PricePerUnit < 0 {
			verr.add(i, "price_per_unit", RuleNegativePrice, "tier %d: price must not be negative", i+1)
		}
		if t.DiscountPercent < 0 || t.DiscountPercent > 100 {
			verr.add(i, "discount_percent", RuleDiscountRange, "tier %d: discount must be between 0 and 100", i+1)
		}
		if t.MaxQty != nil && *t.MaxQty < t.MinQty {
			verr.add(i, "max_qty", RuleMaxBelowMin, "tier %d: maximum quantity must not be below minimum quantity", i+1)
		}
		if basePrice > 0 && t.PricePerUnit > basePrice {
			verr.add(i, "price_per_unit", RuleAboveBase, "tier %d: price must not exceed the base price", i+1)
		}

		if i == 0 {
			continue
		}
		prev := tiers[i-1]
		if t.MinQty <= prev.MinQty {
			verr.add(i, "min_qty", RuleAscendingQty, "tier %d: minimum quantity must be greater than tier %d", i+1, i)
		}
		if t.PricePerUnit >= prev.PricePerUnit {
			verr.add(i, "price_per_unit", RuleDescendingPrice, "tier %d: price must be lower than tier %d", i+1, i)
		}
		if prev.MaxQty != nil && *prev.MaxQty >= t.MinQty {
			verr.add(i, "min_qty", RuleOverlap, "tier %d overlaps tier %d", i+1, i)
		}
	}

	return verr.errOrNil()
}

// NormalizeTiers fills the derived fields of a tier list: a missing MaxQty
// becomes the next tier's MinQty-1 when the next tier starts higher (the last
// tier stays unbounded), and a zero DiscountPercent is derived from basePrice.
// It never reorders, so out-of-order input keeps its ordering violations only.
func NormalizeTiers(basePrice int64, tiers []model.PriceTier) []model.PriceTier {
	out := make([]model.PriceTier, len(tiers))
	for i, t := range tiers {
		if t.MaxQty == nil && i < len(tiers)-1 && tiers[i+1].MinQty > t.MinQty {
			upper := tiers[i+1].MinQty - 1
			t.MaxQty = &upper
		}
		if t.DiscountPercent == 0 {
			t.DiscountPercent = DiscountPercent(basePrice, t.PricePerUnit)
		}
		out[i] = t
	}
	return out
}

// DefaultTiers is the starter tier ladder offered to partners for a new product.
func DefaultTiers(basePrice int64) []model.PriceTier {
	ladder := []struct {
		min, max int
		pct      int64
	}{
		{1, 9, 100},
		{10, 49, 93},
		{50, 99, 87},
		{100, 0, 80},
	}

	tiers := make([]model.PriceTier, 0, len(ladder))
	for _, step := range ladder {
		price := decimal.NewFromInt(basePrice).Mul(decimal.NewFromInt(step.pct)).
			DivRound(hundred, 0).IntPart()
		t := model.PriceTier{
			MinQty:          step.min,
			PricePerUnit:    price,
			DiscountPercent: int(100 - step.pct),
		}
		if step.max > 0 {
			upper := step.max
			t.MaxQty = &upper
		}
		tiers = append(tiers, t)
	}
	return tiers
}

// FormatTierRange renders a tier's range as "10-49 units" or "100+ units".
func FormatTierRange(t model.PriceTier) string {
	if t.Unbounded() {
		return fmt.Sprintf("%d+ units", t.MinQty)
	}
	return fmt.Sprintf("%d-%d units", t.MinQty, *t.MaxQty)
}
