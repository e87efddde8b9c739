package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pricing-service/internal/logger"
	"github.com/rs/zerolog"
)

// RequestLogger returns a middleware that logs one structured line per request.
// paths listed in skipPaths (probes, scrapes) are not logged.
func RequestLogger(skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		if _, ok := skip[path]; ok {
			return
		}

		statusCode := c.Writer.Status()
		log := logger.Logger()
		event := eventFor(&log, statusCode).
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("route", c.FullPath()).
			Int("status_code", statusCode).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Int("bytes", c.Writer.Size()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent())
		if userID := GetUserID(c); userID != "" {
			event = event.Str("user_id", userID)
		}
		event.Msg("HTTP request")
	}
}

// eventFor picks the level from the status code.
func eventFor(log *zerolog.Logger, statusCode int) *zerolog.Event {
	switch {
	case statusCode >= 500:
		return log.Error()
	case statusCode >= 400:
		return log.Warn()
	default:
		return log.Info()
	}
}
