package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pricing-service/internal/circuitbreaker"
	"github.com/guttosm/pricing-service/internal/domain/dto"
	"github.com/guttosm/pricing-service/internal/i18n"
	"github.com/guttosm/pricing-service/internal/pricing"
	"github.com/guttosm/pricing-service/internal/repository"
	"github.com/guttosm/pricing-service/internal/service"
)

// errorRule maps a sentinel to a status and message key.
type errorRule struct {
	target error
	status int
	key    string
}

var errorRules = []errorRule{
	{pricing.ErrInvalidQuantity, http.StatusBadRequest, i18n.ErrKeyInvalidQuantity},
	{pricing.ErrNegativeAmount, http.StatusBadRequest, i18n.ErrKeyNegativeAmount},
	{pricing.ErrInvalidDistance, http.StatusBadRequest, i18n.ErrKeyInvalidDistance},
	{pricing.ErrAmountOverflow, http.StatusBadRequest, i18n.ErrKeyAmountOverflow},
	{service.ErrInvalidProductID, http.StatusBadRequest, i18n.ErrKeyInvalidProductID},
	{service.ErrTierConfigNotFound, http.StatusNotFound, i18n.ErrKeyTierConfigNotFound},
	{repository.ErrVersionConflict, http.StatusConflict, i18n.ErrKeyVersionConflict},
	{service.ErrRepositoryNotConfigured, http.StatusServiceUnavailable, i18n.ErrKeyStorageUnavailable},
	{circuitbreaker.ErrCircuitOpen, http.StatusServiceUnavailable, i18n.ErrKeyStorageUnavailable},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, i18n.ErrKeyTimeout},
}

// ClassifyError maps a handler error to its status code and localized
// envelope. Unknown errors become 500s.
func ClassifyError(c *gin.Context, err error) (int, dto.ErrorResponse) {
	t := i18n.GetTranslator()
	locale := i18n.GetLocale(c)

	var bindErr *BindError
	if errors.As(err, &bindErr) {
		resp := dto.NewError(dto.ErrCodeInvalidRequest, t.Translate(i18n.ErrKeyInvalidRequestBody, locale))
		if details := dto.FieldErrors(bindErr.Err); details != nil {
			resp = resp.WithDetails(details)
		}
		return http.StatusBadRequest, resp
	}

	var verr *pricing.ValidationError
	if errors.As(err, &verr) {
		resp := dto.NewError(dto.ErrCodeValidationFailed, t.Translate(i18n.ErrKeyInvalidTiers, locale)).
			WithViolations(verr.Violations)
		return http.StatusUnprocessableEntity, resp
	}

	for _, rule := range errorRules {
		if errors.Is(err, rule.target) {
			return rule.status, dto.NewError(dto.ErrCodeFromStatus(rule.status), t.Translate(rule.key, locale))
		}
	}

	return http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, t.Translate(i18n.ErrKeyInternalError, locale))
}
