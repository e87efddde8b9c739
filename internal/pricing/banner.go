package pricing

import (
	"fmt"

	"github.com/guttosm/pricing-service/internal/domain/model"
)

// SelectBanner maps the remaining shortfall to a banner template.
func SelectBanner(amountNeededForFree, closeWindow int64) model.BannerTier {
	switch {
	case amountNeededForFree <= 0:
		return model.BannerFree
	case amountNeededForFree < closeWindow:
		return model.BannerClose
	default:
		return model.BannerStandard
	}
}

// BannerMessage renders the default English banner for a fee result.
func BannerMessage(result model.DeliveryFeeResult, closeWindow int64) model.Banner {
	needed := result.AmountNeededForFree
	if result.IsFree {
		needed = 0
	}

	tier := SelectBanner(needed, closeWindow)
	switch tier {
	case model.BannerFree:
		return model.Banner{Tier: tier, Kind: "success", Message: "Yay! You get FREE delivery on this order"}
	case model.BannerClose:
		return model.Banner{Tier: tier, Kind: "info", Message: fmt.Sprintf("Add %s more to get FREE delivery!", FormatINR(needed))}
	default:
		return model.Banner{Tier: tier, Kind: "info", Message: fmt.Sprintf("Delivery fee: %s", FormatINR(result.Fee))}
	}
}
