package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pricing-service/internal/domain/dto"
	"github.com/guttosm/pricing-service/internal/middleware"
	"github.com/guttosm/pricing-service/internal/pricing"
	"github.com/guttosm/pricing-service/internal/service"
)

// TierConfigHandler serves tier configuration management.
type TierConfigHandler struct {
	service service.TierConfigService
}

// NewTierConfigHandler creates a TierConfigHandler.
func NewTierConfigHandler(svc service.TierConfigService) *TierConfigHandler {
	return &TierConfigHandler{service: svc}
}

// Validate handles POST /api/tiers/validate.
//
// @Summary      Check a tier configuration
// @Description  Normalizes the tiers and reports every broken rule at once. Nothing is stored.
// @Tags         Tiers
// @Accept       json
// @Produce      json
// @Param        request body dto.ValidateTiersRequest true "Tiers to check"
// @Success      200 {object} dto.SuccessResponse{data=dto.ValidateTiersResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Security     ApiKeyAuth
// @Router       /api/tiers/validate [post]
func (h *TierConfigHandler) Validate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ValidateTiersRequest](c)
	if err != nil {
		builder.Fail(err)
		return
	}

	resp := dto.ValidateTiersResponse{
		Valid:      true,
		Violations: []pricing.Violation{},
		Normalized: pricing.NormalizeTiers(req.BasePricePerUnit, req.Tiers),
	}
	if err := h.service.Validate(req.BasePricePerUnit, req.Tiers); err != nil {
		var verr *pricing.ValidationError
		if !errors.As(err, &verr) {
			builder.Fail(err)
			return
		}
		resp.Valid = false
		resp.Violations = verr.Violations
	}

	builder.SuccessOK(resp)
}

// GetActive handles GET /api/products/{id}/tiers.
//
// @Summary      Active tiers of a product
// @Tags         Tiers
// @Produce      json
// @Param        id path string true "Product id"
// @Success      200 {object} dto.SuccessResponse{data=repository.TierConfig}
// @Failure      404 {object} dto.ErrorResponse "No configuration"
// @Failure      503 {object} dto.ErrorResponse "Tier storage unavailable"
// @Security     ApiKeyAuth
// @Router       /api/products/{id}/tiers [get]
func (h *TierConfigHandler) GetActive(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cfg, err := h.service.GetActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(cfg)
}

// History handles GET /api/products/{id}/tiers/history.
//
// @Summary      Tier revisions of a product
// @Description  Returns revisions newest first.
// @Tags         Tiers
// @Produce      json
// @Param        id    path  string true  "Product id"
// @Param        limit query int    false "Maximum revisions (1-100, default 20)"
// @Success      200 {object} dto.SuccessResponse{data=[]repository.TierConfig}
// @Failure      400 {object} dto.ErrorResponse "Invalid limit"
// @Failure      503 {object} dto.ErrorResponse "Tier storage unavailable"
// @Security     ApiKeyAuth
// @Router       /api/products/{id}/tiers/history [get]
func (h *TierConfigHandler) History(c *gin.Context) {
	builder := NewResponseBuilder(c)

	q, err := BuildQuery[dto.HistoryQuery](c)
	if err != nil {
		builder.Fail(err)
		return
	}
	limit := q.Limit
	if limit == 0 {
		limit = dto.DefaultHistoryLimit
	}

	configs, err := h.service.History(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(configs)
}

// Save handles PUT /api/products/{id}/tiers.
//
// @Summary      Replace the tiers of a product
// @Description  Stores a new active revision. The previous revision stays in the history. Requires an editor role when auth is enabled.
// @Tags         Tiers
// @Accept       json
// @Produce      json
// @Param        id path string true "Product id"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.TierConfigRequest true "New configuration"
// @Success      200 {object} dto.SuccessResponse{data=repository.TierConfig}
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure      403 {object} dto.ErrorResponse "Not an editor"
// @Failure      409 {object} dto.ErrorResponse "Concurrent update"
// @Failure      422 {object} dto.ErrorResponse "Tier rules broken"
// @Failure      503 {object} dto.ErrorResponse "Tier storage unavailable"
// @Security     BearerAuth
// @Router       /api/products/{id}/tiers [put]
func (h *TierConfigHandler) Save(c *gin.Context) {
	builder := NewResponseBuilder(c)
	productID := c.Param("id")

	req, err := BuildRequest[dto.TierConfigRequest](c)
	if err != nil {
		builder.Fail(err)
		return
	}

	cfg, err := h.service.Save(c.Request.Context(), productID, req.BasePricePerUnit, req.Tiers, middleware.GetUserID(c))
	if err != nil {
		middleware.AuditLogError(c, middleware.AuditTierConfigRejected, "Tier configuration rejected", err, map[string]any{
			"product_id": productID,
			"tiers":      len(req.Tiers),
		})
		builder.Fail(err)
		return
	}

	middleware.AuditLog(c, middleware.AuditTierConfigSaved, "Tier configuration saved", map[string]any{
		"product_id":  cfg.ProductID,
		"version":     cfg.Version,
		"revision_id": cfg.RevisionID,
		"tiers":       len(cfg.Tiers),
	})
	builder.SuccessOK(cfg)
}
