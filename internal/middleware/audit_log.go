package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/pricing-service/internal/logger"
)

// Audit actions.
const (
	AuditTierConfigSaved    = "tier_config.saved"
	AuditTierConfigRejected = "tier_config.rejected"
)

// AuditLog records a change made by the caller on the audit logger.
func AuditLog(c *gin.Context, action, message string, fields map[string]any) {
	log := logger.WithComponent("audit")
	log.Info().
		Str("action", action).
		Str("request_id", GetRequestID(c)).
		Str("user_id", GetUserID(c)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("ip", c.ClientIP()).
		Fields(fields).
		Msg(message)
}

// AuditLogError records a refused or failed change.
func AuditLogError(c *gin.Context, action, message string, err error, fields map[string]any) {
	log := logger.WithComponent("audit")
	log.Warn().
		Str("action", action).
		Str("request_id", GetRequestID(c)).
		Str("user_id", GetUserID(c)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("ip", c.ClientIP()).
		Err(err).
		Fields(fields).
		Msg(message)
}
