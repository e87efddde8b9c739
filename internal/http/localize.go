package http

import (
	"github.com/guttosm/pricing-service/internal/domain/model"
	"github.com/guttosm/pricing-service/internal/i18n"
	"github.com/guttosm/pricing-service/internal/pricing"
)

// localizeBanner renders the banner message in locale. Tier and kind are kept.
func localizeBanner(b model.Banner, result model.DeliveryFeeResult, locale string) model.Banner {
	t := i18n.GetTranslator()
	switch b.Tier {
	case model.BannerFree:
		b.Message = t.Translate(i18n.BannerKeyFree, locale)
	case model.BannerClose:
		b.Message = t.Translatef(i18n.BannerKeyClose, locale, pricing.FormatINR(result.AmountNeededForFree))
	case model.BannerStandard:
		b.Message = t.Translatef(i18n.BannerKeyStandard, locale, pricing.FormatINR(result.Fee))
	}
	return b
}

// localizeUpsell renders the next-tier hint in locale, or "" without one.
func localizeUpsell(u *model.Upsell, locale string) string {
	if u == nil {
		return ""
	}
	return i18n.GetTranslator().Translatef(i18n.UpsellKey, locale,
		u.UnitsNeeded, pricing.FormatINR(u.PerUnitSaving), u.DiscountPercent)
}
