package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/guttosm/pricing-service/internal/domain/model"
)

var hundred = decimal.NewFromInt(100)

// CalculateBulkPrice prices quantity units against the tier list.
//
// Savings are clamped at zero. A tier priced above base still applies, with
// its higher total and zero savings; ValidateTiers rejects such tiers on
// write with RuleAboveBase, so only unvalidated input reaches this path.
func CalculateBulkPrice(quantity int, basePricePerUnit int64, tiers []model.PriceTier) (model.PricingResult, error) {
	if err := checkAmount("base price", basePricePerUnit); err != nil {
		return model.PricingResult{}, err
	}
	tier, err := ResolveTier(quantity, tiers)
	if err != nil {
		return model.PricingResult{}, err
	}

	regular, err := multiply(basePricePerUnit, quantity)
	if err != nil {
		return model.PricingResult{}, fmt.Errorf("regular total: %w", err)
	}
	if tier == nil {
		return model.PricingResult{
			UnitPrice:  basePricePerUnit,
			TotalPrice: regular,
		}, nil
	}

	if err := checkAmount("tier price", tier.PricePerUnit); err != nil {
		return model.PricingResult{}, err
	}
	total, err := multiply(tier.PricePerUnit, quantity)
	if err != nil {
		return model.PricingResult{}, fmt.Errorf("tier total: %w", err)
	}

	savings := max(regular-total, 0)
	return model.PricingResult{
		AppliedTier:    tier,
		UnitPrice:      tier.PricePerUnit,
		TotalPrice:     total,
		Savings:        savings,
		SavingsPercent: percentOf(savings, regular),
	}, nil
}

// percentOf returns part/whole as a whole percentage rounded half up, in [0, 100].
func percentOf(part, whole int64) int {
	if whole <= 0 || part <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(part).Mul(hundred).DivRound(decimal.NewFromInt(whole), 0).IntPart()
	return int(min(pct, 100))
}

// DiscountPercent derives the display discount of price against base.
func DiscountPercent(base, price int64) int {
	return percentOf(base-price, base)
}

// NextTierUpsell finds the closest tier above quantity that lowers the unit
// price. It returns nil when no tiers are configured or quantity already sits
// in the best reachable tier.
func NextTierUpsell(quantity int, basePricePerUnit int64, tiers []model.PriceTier) (*model.Upsell, error) {
	if err := checkAmount("base price", basePricePerUnit); err != nil {
		return nil, err
	}
	current, err := ResolveTier(quantity, tiers)
	if err != nil {
		return nil, err
	}

	unitPrice := basePricePerUnit
	if current != nil {
		unitPrice = current.PricePerUnit
	}

	for _, t := range sortedAscending(tiers) {
		if t.MinQty <= quantity || t.PricePerUnit >= unitPrice {
			continue
		}
		discount := t.DiscountPercent
		if discount == 0 {
			discount = DiscountPercent(basePricePerUnit, t.PricePerUnit)
		}
		return &model.Upsell{
			NextTier:        t,
			TierRange:       FormatTierRange(t),
			UnitsNeeded:     t.MinQty - quantity,
			PerUnitSaving:   unitPrice - t.PricePerUnit,
			DiscountPercent: discount,
		}, nil
	}
	return nil, nil
}

// UpsellMessage renders the upsell hint shown next to the quantity picker.
func UpsellMessage(u *model.Upsell) string {
	if u == nil {
		return ""
	}
	return fmt.Sprintf("Add %d more to save %s/unit (%d%% off)", u.UnitsNeeded, FormatINR(u.PerUnitSaving), u.DiscountPercent)
}
