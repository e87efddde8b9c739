// Package config provides configuration management for the pricing service.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Pricing  PricingConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	GinMode        string
	LogLevel       string
	LogPretty      bool
	RequestTimeout time.Duration
	RateLimit      int
	RateWindow     time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// CacheConfig holds cache configuration. The same size and TTL apply to
// quotes, active tier configurations and idempotent responses.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled bool
	APIKeys []string
	// JWTSecret is the HS256 secret shared with the auth platform.
	JWTSecret   string
	JWTIssuer   string
	EditorRoles []string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// PricingConfig holds the storefront delivery defaults, in paise.
type PricingConfig struct {
	FreeDeliveryThreshold int64
	CloseToFreeWindow     int64
	FallbackDeliveryFee   int64
	// DeliveryFeeTable and DistanceBands are JSON arrays of fee rows and
	// surcharge bands. Empty keeps the built-in schedule.
	DeliveryFeeTable string
	DistanceBands    string
	// MarketTimezone is the IANA zone surge rules are evaluated in.
	MarketTimezone string
}

// Location resolves MarketTimezone.
func (p PricingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(p.MarketTimezone)
	if err != nil {
		return nil, fmt.Errorf("load market timezone %q: %w", p.MarketTimezone, err)
	}
	return loc, nil
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding the environment. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			GinMode:        getEnv("GIN_MODE", "release"),
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			LogPretty:      getEnvBool("LOG_PRETTY", false),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Cache: CacheConfig{
			Size: getEnvInt("CACHE_SIZE", 1000),
			TTL:  getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		Auth: AuthConfig{
			Enabled:     getEnvBool("AUTH_ENABLED", false),
			APIKeys:     parseList(os.Getenv("API_KEYS")),
			JWTSecret:   getEnv("JWT_SECRET", ""),
			JWTIssuer:   getEnv("JWT_ISSUER", ""),
			EditorRoles: parseListOr(os.Getenv("TIER_EDITOR_ROLES"), []string{"pricing_editor", "admin"}),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGO_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGO_DATABASE", "pricing_service"),
			Enabled:                        getEnvBool("MONGO_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Pricing: PricingConfig{
			FreeDeliveryThreshold: getEnvInt64("FREE_DELIVERY_THRESHOLD", 500000),
			CloseToFreeWindow:     getEnvInt64("CLOSE_TO_FREE_WINDOW", 100000),
			FallbackDeliveryFee:   getEnvInt64("FALLBACK_DELIVERY_FEE", 5000),
			DeliveryFeeTable:      os.Getenv("DELIVERY_FEE_TABLE"),
			DistanceBands:         os.Getenv("DISTANCE_BANDS"),
			MarketTimezone:        getEnv("MARKET_TIMEZONE", "Asia/Kolkata"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvInt64 also rejects negative amounts.
func getEnvInt64(key string, defaultValue int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil && i >= 0 {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func parseListOr(s string, defaults []string) []string {
	if list := parseList(s); len(list) > 0 {
		return list
	}
	return defaults
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	return append(defaults, parseList(s)...)
}
