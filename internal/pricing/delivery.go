package pricing

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/guttosm/pricing-service/internal/domain/model"
)

// Delivery defaults, in paise.
const (
	FreeDeliveryThreshold int64 = 500000
	CloseToFreeWindow     int64 = 100000
	FallbackDeliveryFee   int64 = 5000
)

// DeliveryRates is the fee schedule a Calculator charges from.
type DeliveryRates struct {
	// FeeTable maps order value to a base fee, ascending by MinOrderValue.
	FeeTable []model.FeeTier
	// DistanceBands add a surcharge by distance, ascending by MaxKm.
	DistanceBands []model.DistanceBand
	// FallbackFee applies when no FeeTable row matches.
	FallbackFee int64
	// CloseWindow is the shortfall under which the "almost free" banner shows.
	CloseWindow int64
}

func bound(v int64) *int64 { return &v }

// DefaultDeliveryRates returns the storefront's standard fee schedule.
func DefaultDeliveryRates() DeliveryRates {
	return DeliveryRates{
		FeeTable: []model.FeeTier{
			{MinOrderValue: 0, MaxOrderValue: bound(99999), Fee: 8000},
			{MinOrderValue: 100000, MaxOrderValue: bound(249999), Fee: 5000},
			{MinOrderValue: 250000, MaxOrderValue: bound(499999), Fee: 3000},
			{MinOrderValue: 500000, Fee: 0},
		},
		DistanceBands: []model.DistanceBand{
			{MaxKm: 5, Surcharge: 0},
			{MaxKm: 10, Surcharge: 3000},
			{MaxKm: 20, Surcharge: 7000},
			{Surcharge: 15000},
		},
		FallbackFee: FallbackDeliveryFee,
		CloseWindow: CloseToFreeWindow,
	}
}

// Calculator computes delivery fees against a fixed rate schedule.
// It is a value type and safe for concurrent use.
type Calculator struct {
	rates DeliveryRates
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithFeeTable replaces the order-value fee table.
func WithFeeTable(table []model.FeeTier) Option {
	return func(c *Calculator) {
		c.rates.FeeTable = slices.Clone(table)
	}
}

// WithDistanceBands replaces the distance surcharge bands.
func WithDistanceBands(bands []model.DistanceBand) Option {
	return func(c *Calculator) {
		c.rates.DistanceBands = slices.Clone(bands)
	}
}

// WithFallbackFee sets the fee charged when no table row matches.
func WithFallbackFee(fee int64) Option {
	return func(c *Calculator) {
		c.rates.FallbackFee = fee
	}
}

// WithCloseWindow sets the "almost free" banner window.
func WithCloseWindow(window int64) Option {
	return func(c *Calculator) {
		c.rates.CloseWindow = window
	}
}

// NewCalculator builds a Calculator on the default rates.
func NewCalculator(opts ...Option) Calculator {
	c := Calculator{rates: DefaultDeliveryRates()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Rates returns the schedule the calculator charges from.
func (c Calculator) Rates() DeliveryRates {
	return c.rates
}

// CalculateDeliveryFee computes the fee for a cart. Orders at or above
// freeThreshold ship free.
func (c Calculator) CalculateDeliveryFee(cartSubtotal int64, distanceKm float64, freeThreshold int64) (model.DeliveryFeeResult, error) {
	if err := checkAmount("cart subtotal", cartSubtotal); err != nil {
		return model.DeliveryFeeResult{}, err
	}
	if err := checkAmount("free threshold", freeThreshold); err != nil {
		return model.DeliveryFeeResult{}, err
	}
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return model.DeliveryFeeResult{}, fmt.Errorf("%w: got %v", ErrInvalidDistance, distanceKm)
	}

	if cartSubtotal >= freeThreshold {
		return model.DeliveryFeeResult{IsFree: true}, nil
	}

	base := c.BaseFee(cartSubtotal)
	distance := c.DistanceSurcharge(distanceKm)
	return model.DeliveryFeeResult{
		Fee:                 base + distance,
		AmountNeededForFree: freeThreshold - cartSubtotal,
		BaseFee:             base,
		DistanceFee:         distance,
	}, nil
}

// CalculateDeliveryFeeWithSurge computes the fee and, when sc is given,
// scales a non-free fee by the surge multiplier.
func (c Calculator) CalculateDeliveryFeeWithSurge(fc model.DeliveryFeeContext, sc *model.SurgeContext) (model.DeliveryFeeResult, error) {
	result, err := c.CalculateDeliveryFee(fc.CartSubtotal, fc.DistanceKm, fc.FreeThreshold)
	if err != nil || sc == nil || result.IsFree {
		return result, err
	}

	multiplier := CalculateSurgeMultiplier(*sc)
	result.SurgeMultiplier = multiplier
	result.SurgeReason = SurgeReason(*sc, multiplier)
	result.Fee = ApplySurge(result.Fee, multiplier)
	return result, nil
}

// BaseFee returns the order-value fee for subtotal.
func (c Calculator) BaseFee(subtotal int64) int64 {
	for _, row := range c.rates.FeeTable {
		if row.Contains(subtotal) {
			return row.Fee
		}
	}
	return c.rates.FallbackFee
}

// DistanceSurcharge returns the surcharge of the first band covering km.
// Distances beyond the last bounded band pay the last band's surcharge.
func (c Calculator) DistanceSurcharge(km float64) int64 {
	bands := c.rates.DistanceBands
	for _, band := range bands {
		if band.MaxKm <= 0 || km <= band.MaxKm {
			return band.Surcharge
		}
	}
	if len(bands) == 0 {
		return 0
	}
	return bands[len(bands)-1].Surcharge
}

// Breakdown locates subtotal in the fee table and reports how far the next
// cheaper row is.
func (c Calculator) Breakdown(subtotal int64) model.FeeBreakdown {
	var out model.FeeBreakdown
	table := slices.Clone(c.rates.FeeTable)
	slices.SortStableFunc(table, func(a, b model.FeeTier) int {
		return cmp.Compare(a.MinOrderValue, b.MinOrderValue)
	})

	current := c.rates.FallbackFee
	for i := range table {
		if table[i].Contains(subtotal) {
			row := table[i]
			out.CurrentTier = &row
			current = row.Fee
			break
		}
	}
	for i := range table {
		if table[i].MinOrderValue > subtotal && table[i].Fee < current {
			row := table[i]
			out.NextTier = &row
			out.AmountToNextTier = row.MinOrderValue - subtotal
			break
		}
	}
	return out
}

// Banner selects and renders the free-delivery banner for a result.
func (c Calculator) Banner(result model.DeliveryFeeResult) model.Banner {
	return BannerMessage(result, c.rates.CloseWindow)
}

var defaultCalculator = NewCalculator()

// CalculateDeliveryFee computes a fee on the default rates.
func CalculateDeliveryFee(cartSubtotal int64, distanceKm float64, freeThreshold int64) (model.DeliveryFeeResult, error) {
	return defaultCalculator.CalculateDeliveryFee(cartSubtotal, distanceKm, freeThreshold)
}

// CalculateDeliveryFeeWithSurge computes a surged fee on the default rates.
func CalculateDeliveryFeeWithSurge(fc model.DeliveryFeeContext, sc *model.SurgeContext) (model.DeliveryFeeResult, error) {
	return defaultCalculator.CalculateDeliveryFeeWithSurge(fc, sc)
}

// DeliveryProgressPercentage is the free-delivery progress bar value in [0, 100].
func DeliveryProgressPercentage(cartSubtotal, freeThreshold int64) (float64, error) {
	if err := checkAmount("cart subtotal", cartSubtotal); err != nil {
		return 0, err
	}
	if freeThreshold <= 0 || cartSubtotal >= freeThreshold {
		return 100, nil
	}
	return min(100, float64(cartSubtotal)*100/float64(freeThreshold)), nil
}

// Delivery rate validation rule identifiers.
const (
	RuleNegativeFee     = "negative_fee"
	RuleGap             = "gap"
	RuleBandOrder       = "band_order"
	RuleBandSurcharge   = "band_surcharge"
	RuleOpenBandNotLast = "open_band_not_last"
)

// ValidateDeliveryRates reports every problem with a rate schedule. The
// returned error is a *ValidationError.
func ValidateDeliveryRates(r DeliveryRates) error {
	verr := &ValidationError{Subject: "delivery rates"}

	if r.FallbackFee < 0 {
		verr.add(-1, "fallback_fee", RuleNegativeFee, "fallback fee must not be negative")
	}
	if r.CloseWindow < 0 {
		verr.add(-1, "close_window", RuleNegativeFee, "close-to-free window must not be negative")
	}

	table := slices.Clone(r.FeeTable)
	slices.SortStableFunc(table, func(a, b model.FeeTier) int {
		return cmp.Compare(a.MinOrderValue, b.MinOrderValue)
	})
	for i, row := range table {
		if row.Fee < 0 {
			verr.add(i, "fee", RuleNegativeFee, "fee row %d: fee must not be negative", i+1)
		}
		if row.MaxOrderValue != nil && *row.MaxOrderValue < row.MinOrderValue {
			verr.add(i, "max_order_value", RuleMaxBelowMin, "fee row %d: max order value must not be below min", i+1)
		}
		if i == 0 {
			continue
		}
		prev := table[i-1]
		switch {
		case prev.MaxOrderValue == nil || *prev.MaxOrderValue >= row.MinOrderValue:
			verr.add(i, "min_order_value", RuleOverlap, "fee row %d overlaps row %d", i+1, i)
		case row.MinOrderValue > *prev.MaxOrderValue+1:
			// Bounds are inclusive paise, so rows must touch exactly.
			verr.add(i, "min_order_value", RuleGap, "gap between fee rows %d and %d", i, i+1)
		}
	}

	for i, band := range r.DistanceBands {
		if band.Surcharge < 0 {
			verr.add(i, "surcharge", RuleNegativeFee, "distance band %d: surcharge must not be negative", i+1)
		}
		if band.MaxKm <= 0 && i < len(r.DistanceBands)-1 {
			verr.add(i, "max_km", RuleOpenBandNotLast, "distance band %d: only the last band may be open-ended", i+1)
		}
		if i == 0 {
			continue
		}
		prev := r.DistanceBands[i-1]
		if band.MaxKm > 0 && prev.MaxKm > 0 && band.MaxKm <= prev.MaxKm {
			verr.add(i, "max_km", RuleBandOrder, "distance band %d must reach further than band %d", i+1, i)
		}
		if band.Surcharge < prev.Surcharge {
			verr.add(i, "surcharge", RuleBandSurcharge, "distance band %d must not charge less than band %d", i+1, i)
		}
	}

	return verr.errOrNil()
}
