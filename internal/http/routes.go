package http

import (
	"slices"

	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// chain drops nil handlers so optional middleware can be listed inline.
func chain(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			out = append(out, h)
		}
	}
	return out
}

// PricingRoutes registers the storefront calculators.
type PricingRoutes struct {
	handler    *Handler
	idempotent gin.HandlerFunc
}

// NewPricingRoutes creates PricingRoutes. idempotent may be nil.
func NewPricingRoutes(handler *Handler, idempotent gin.HandlerFunc) *PricingRoutes {
	return &PricingRoutes{handler: handler, idempotent: idempotent}
}

// RegisterRoutes registers the quote, delivery fee and surge endpoints.
func (r *PricingRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	if r.handler == nil {
		return
	}
	rg.POST("/pricing/quote", chain(r.idempotent, r.handler.Quote)...)
	rg.POST("/delivery/fee", chain(r.idempotent, r.handler.DeliveryFee)...)
	rg.POST("/delivery/surge", r.handler.Surge)
}

// TierRoutes registers tier configuration management.
type TierRoutes struct {
	handler    *TierConfigHandler
	editor     []gin.HandlerFunc
	idempotent gin.HandlerFunc
}

// NewTierRoutes creates TierRoutes. editor guards writes and is empty when
// auth is disabled.
func NewTierRoutes(handler *TierConfigHandler, editor []gin.HandlerFunc, idempotent gin.HandlerFunc) *TierRoutes {
	return &TierRoutes{handler: handler, editor: editor, idempotent: idempotent}
}

// RegisterRoutes registers validation, reads and the guarded write.
func (r *TierRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/tiers/validate", r.handler.Validate)

	products := rg.Group("/products/:id/tiers")
	products.GET("", r.handler.GetActive)
	products.GET("/history", r.handler.History)
	products.PUT("", chain(slices.Concat(r.editor, []gin.HandlerFunc{r.idempotent, r.handler.Save})...)...)
}

var (
	_ RouteGroup = (*PricingRoutes)(nil)
	_ RouteGroup = (*TierRoutes)(nil)
)
