package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pricing-service/internal/domain/dto"
	"github.com/guttosm/pricing-service/internal/i18n"
)

// RequireRole returns a middleware that admits tokens carrying one of roles.
// With no roles any authenticated caller passes. It must run after JWTAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			abortWith(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyUnauthorized)
			return
		}
		if len(roles) > 0 && !claims.HasRole(roles...) {
			abortWith(c, http.StatusForbidden, dto.ErrCodeForbidden, i18n.ErrKeyForbidden)
			return
		}
		c.Next()
	}
}
