package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/pricing-service/internal/domain/dto"
	"github.com/guttosm/pricing-service/internal/i18n"
	"github.com/guttosm/pricing-service/internal/service"
)

// Handler serves the storefront pricing routes.
type Handler struct {
	calculator  service.PricingCalculator
	tierConfigs service.TierConfigService
}

// NewHandler creates a Handler. tierConfigs may be nil, in which case quotes
// need explicit tiers or fall back to the base price.
func NewHandler(calculator service.PricingCalculator, tierConfigs service.TierConfigService) *Handler {
	return &Handler{calculator: calculator, tierConfigs: tierConfigs}
}

// Quote handles POST /api/pricing/quote.
//
// @Summary      Quote a bulk order
// @Description  Prices quantity units with the applicable tier and suggests the next cheaper tier. Tiers in the body win over the product's stored tiers. Supports idempotency via Idempotency-Key header.
// @Tags         Pricing
// @Accept       json
// @Produce      json
// @Param        Accept-Language header string false "en or hi"
// @Param        request body dto.QuoteRequest true "Quote request"
// @Success      200 {object} dto.SuccessResponse{data=dto.QuoteResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/pricing/quote [post]
func (h *Handler) Quote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.QuoteRequest](c)
	if err != nil {
		builder.Fail(err)
		return
	}

	tiers, source := req.Tiers, service.TierSourceRequest
	switch {
	case len(tiers) > 0:
	case req.ProductID != "" && h.tierConfigs != nil:
		tiers, source, err = h.tierConfigs.TiersFor(c.Request.Context(), req.ProductID, req.BasePricePerUnit)
		if err != nil {
			builder.Fail(err)
			return
		}
	default:
		source = service.TierSourceNone
	}

	q, err := h.calculator.Quote(req.Quantity, req.BasePricePerUnit, tiers)
	if err != nil {
		builder.Fail(err)
		return
	}
	q.UpsellMessage = localizeUpsell(q.Upsell, i18n.GetLocale(c))

	builder.SuccessOK(dto.QuoteResponse{Quote: q, TierSource: string(source)})
}

// DeliveryFee handles POST /api/delivery/fee.
//
// @Summary      Delivery fee for a cart
// @Description  Returns the fee, free-delivery progress, banner and fee table position. An optional surge block multiplies the paid fee.
// @Tags         Delivery
// @Accept       json
// @Produce      json
// @Param        Accept-Language header string false "en or hi"
// @Param        request body dto.DeliveryFeeRequest true "Cart and distance"
// @Success      200 {object} dto.SuccessResponse{data=model.DeliveryQuote}
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Security     ApiKeyAuth
// @Router       /api/delivery/fee [post]
func (h *Handler) DeliveryFee(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.DeliveryFeeRequest](c)
	if err != nil {
		builder.Fail(err)
		return
	}

	dr := service.DeliveryRequest{
		CartSubtotal:  req.CartSubtotal,
		DistanceKm:    req.DistanceKm,
		FreeThreshold: req.FreeThreshold,
	}
	if req.Surge != nil {
		sc := req.Surge.Context()
		dr.Surge = &sc
	}

	quote, err := h.calculator.DeliveryFee(dr)
	if err != nil {
		builder.Fail(err)
		return
	}
	quote.Banner = localizeBanner(quote.Banner, quote.DeliveryFeeResult, i18n.GetLocale(c))

	builder.SuccessOK(quote)
}

// Surge handles POST /api/delivery/surge.
//
// @Summary      Surge multiplier for a zone
// @Description  Compounds the peak-hour, weekend, weather and demand rules in the market time zone. A missing time means now.
// @Tags         Delivery
// @Accept       json
// @Produce      json
// @Param        request body dto.SurgeRequest true "Surge signals"
// @Success      200 {object} dto.SuccessResponse{data=model.SurgeQuote}
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Security     ApiKeyAuth
// @Router       /api/delivery/surge [post]
func (h *Handler) Surge(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.SurgeRequest](c)
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(h.calculator.Surge(req.Context()))
}
