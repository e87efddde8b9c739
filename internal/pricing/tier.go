package pricing

import (
	"cmp"
	"math"
	"slices"

	"github.com/guttosm/pricing-service/internal/domain/model"
)

// ResolveTier returns the tier that applies to quantity, or nil when the base
// price applies. Tiers may arrive in any order; the highest MinQty whose range
// contains quantity wins, and tiers sharing a MinQty keep their input order.
func ResolveTier(quantity int, tiers []model.PriceTier) (*model.PriceTier, error) {
	if err := checkQuantity(quantity); err != nil {
		return nil, err
	}
	for _, t := range sortedDescending(tiers) {
		if t.Contains(quantity) {
			tier := t
			return &tier, nil
		}
	}
	return nil, nil
}

func sortedDescending(tiers []model.PriceTier) []model.PriceTier {
	sorted := slices.Clone(tiers)
	slices.SortStableFunc(sorted, func(a, b model.PriceTier) int {
		return cmp.Compare(b.MinQty, a.MinQty)
	})
	return sorted
}

func sortedAscending(tiers []model.PriceTier) []model.PriceTier {
	sorted := slices.Clone(tiers)
	slices.SortStableFunc(sorted, func(a, b model.PriceTier) int {
		return cmp.Compare(a.MinQty, b.MinQty)
	})
	return sorted
}

// multiply returns price*quantity, failing instead of wrapping around.
func multiply(price int64, quantity int) (int64, error) {
	q := int64(quantity)
	if price != 0 && q > math.MaxInt64/price {
		return 0, ErrAmountOverflow
	}
	return price * q, nil
}
