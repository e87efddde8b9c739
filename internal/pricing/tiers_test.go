package pricing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pricing-service/internal/domain/model"
)

func rulesOf(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	rules := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		rules = append(rules, v.Rule)
	}
	return rules
}

func TestValidateTiers_Valid(t *testing.T) {
	tests := []struct {
		name  string
		base  int64
		tiers []model.PriceTier
	}{
		{name: "empty list", base: 100},
		{name: "open-ended tiers", base: 100, tiers: scenarioTiers},
		{name: "default ladder", base: 10000, tiers: DefaultTiers(10000)},
		{name: "no base comparison", base: 0, tiers: scenarioTiers},
		{
			name: "explicit ranges",
			base: 100,
			tiers: []model.PriceTier{
				{MinQty: 1, MaxQty: intPtr(9), PricePerUnit: 100},
				{MinQty: 10, MaxQty: intPtr(49), PricePerUnit: 90},
				{MinQty: 50, PricePerUnit: 80},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, ValidateTiers(tt.base, tt.tiers))
		})
	}
}

func TestValidateTiers_Violations(t *testing.T) {
	tests := []struct {
		name      string
		base      int64
		tiers     []model.PriceTier
		wantRules []string
	}{
		{
			name:      "too many tiers",
			tiers:     []model.PriceTier{{MinQty: 1, PricePerUnit: 60}, {MinQty: 2, PricePerUnit: 50}, {MinQty: 3, PricePerUnit: 40}, {MinQty: 4, PricePerUnit: 30}, {MinQty: 5, PricePerUnit: 20}, {MinQty: 6, PricePerUnit: 10}},
			wantRules: []string{RuleMaxTiers},
		},
		{
			name:      "negative price",
			tiers:     []model.PriceTier{{MinQty: 1, PricePerUnit: -1}},
			wantRules: []string{RuleNegativePrice},
		},
		{
			name:      "max below min",
			tiers:     []model.PriceTier{{MinQty: 10, MaxQty: intPtr(5), PricePerUnit: 90}},
			wantRules: []string{RuleMaxBelowMin},
		},
		{
			name: "overlapping ranges",
			tiers: []model.PriceTier{
				{MinQty: 1, MaxQty: intPtr(20), PricePerUnit: 100},
				{MinQty: 10, PricePerUnit: 90},
			},
			wantRules: []string{RuleOverlap},
		},
		{
			name: "price rises with quantity",
			tiers: []model.PriceTier{
				{MinQty: 10, PricePerUnit: 80},
				{MinQty: 50, PricePerUnit: 90},
			},
			wantRules: []string{RuleDescendingPrice},
		},
		{
			name: "equal prices",
			tiers: []model.PriceTier{
				{MinQty: 10, PricePerUnit: 80},
				{MinQty: 50, PricePerUnit: 80},
			},
			wantRules: []string{RuleDescendingPrice},
		},
		{
			name: "unsorted input",
			tiers: []model.PriceTier{
				{MinQty: 50, PricePerUnit: 80},
				{MinQty: 10, PricePerUnit: 90},
			},
			wantRules: []string{RuleAscendingQty, RuleDescendingPrice},
		},
		{
			name: "every rule reported at once",
			base: 110,
			tiers: []model.PriceTier{
				{MinQty: 0, PricePerUnit: 100},
				{MinQty: 0, PricePerUnit: 120, DiscountPercent: 150},
			},
			wantRules: []string{
				RuleMinQty,
				RuleMinQty,
				RuleDiscountRange,
				RuleAboveBase,
				RuleAscendingQty,
				RuleDescendingPrice,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTiers(tt.base, tt.tiers)
			require.Error(t, err)
			assert.Equal(t, tt.wantRules, rulesOf(t, err))
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := ValidateTiers(0, []model.PriceTier{{MinQty: 0, PricePerUnit: -1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tier configuration")
	assert.Contains(t, err.Error(), "tier 1: minimum quantity must be at least 1")
	assert.Contains(t, err.Error(), "tier 1: price must not be negative")
}

func TestNormalizeTiers(t *testing.T) {
	got := NormalizeTiers(100, scenarioTiers)

	require.Len(t, got, 2)
	require.NotNil(t, got[0].MaxQty)
	assert.Equal(t, 49, *got[0].MaxQty)
	assert.Nil(t, got[1].MaxQty)
	assert.Equal(t, 10, got[0].DiscountPercent)
	assert.Equal(t, 20, got[1].DiscountPercent)

	assert.Nil(t, scenarioTiers[0].MaxQty, "input must not be modified")
}

func TestNormalizeTiers_OutOfOrder(t *testing.T) {
	tiers := []model.PriceTier{
		{MinQty: 50, PricePerUnit: 80},
		{MinQty: 10, PricePerUnit: 90},
	}

	got := NormalizeTiers(100, tiers)

	assert.Nil(t, got[0].MaxQty, "no upper bound is derived from a lower next tier")
	assert.Equal(t, []string{RuleAscendingQty, RuleDescendingPrice}, rulesOf(t, ValidateTiers(100, got)))
}

func TestNormalizeTiers_KeepsExplicitValues(t *testing.T) {
	tiers := []model.PriceTier{
		{MinQty: 1, MaxQty: intPtr(4), PricePerUnit: 100, DiscountPercent: 5},
		{MinQty: 10, PricePerUnit: 90},
	}

	got := NormalizeTiers(100, tiers)

	assert.Equal(t, 4, *got[0].MaxQty)
	assert.Equal(t, 5, got[0].DiscountPercent)
}

func TestDefaultTiers(t *testing.T) {
	tiers := DefaultTiers(10000)

	require.Len(t, tiers, 4)
	assert.Equal(t, []int64{10000, 9300, 8700, 8000}, []int64{
		tiers[0].PricePerUnit, tiers[1].PricePerUnit, tiers[2].PricePerUnit, tiers[3].PricePerUnit,
	})
	assert.Equal(t, []int{0, 7, 13, 20}, []int{
		tiers[0].DiscountPercent, tiers[1].DiscountPercent, tiers[2].DiscountPercent, tiers[3].DiscountPercent,
	})
	assert.True(t, tiers[3].Unbounded())
	assert.Equal(t, 99, *tiers[2].MaxQty)
}

func TestFormatTierRange(t *testing.T) {
	assert.Equal(t, "10-49 units", FormatTierRange(model.PriceTier{MinQty: 10, MaxQty: intPtr(49)}))
	assert.Equal(t, "100+ units", FormatTierRange(model.PriceTier{MinQty: 100}))
}

func TestDiscountPercent(t *testing.T) {
	assert.Equal(t, 20, DiscountPercent(100, 80))
	assert.Equal(t, 0, DiscountPercent(0, 80))
	assert.Equal(t, 0, DiscountPercent(100, 120))
	assert.Equal(t, 33, DiscountPercent(300, 200))
}
