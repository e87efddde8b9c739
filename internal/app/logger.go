// Package app provides logger initialization.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/pricing-service/config"
	"github.com/guttosm/pricing-service/internal/logger"
)

// InitializeLogger configures zerolog and the gin mode from the server configuration.
func InitializeLogger(cfg config.ServerConfig) {
	level := cfg.LogLevel
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.LogPretty)

	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.GinMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
}
