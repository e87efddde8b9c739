package middleware

import (
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/guttosm/pricing-service/internal/domain/dto"
	"github.com/guttosm/pricing-service/internal/i18n"
	"github.com/guttosm/pricing-service/internal/logger"
)

// Context keys set by JWTAuth.
const (
	UserIDKey     = "user_id"
	UserRoleKey   = "user_role"
	UserClaimsKey = "user_claims"
)

// ErrMissingSecret is returned when JWT verification is configured without a secret.
var ErrMissingSecret = errors.New("jwt secret is required")

// JWTConfig configures bearer token verification. Tokens are issued by the
// hosted auth platform and signed with a shared HS256 secret.
type JWTConfig struct {
	Secret []byte
	// Issuer is checked against the iss claim when set.
	Issuer string
	// Leeway tolerates clock skew on exp and nbf.
	Leeway time.Duration
}

// Claims are the token claims the pricing service reads.
type Claims struct {
	Role  string   `json:"role,omitempty"`
	Roles []string `json:"roles,omitempty"`
	Email string   `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// HasRole reports whether the token grants any of roles.
func (c *Claims) HasRole(roles ...string) bool {
	for _, r := range roles {
		if r == c.Role || slices.Contains(c.Roles, r) {
			return true
		}
	}
	return false
}

// JWTAuth returns a middleware that validates bearer tokens.
func JWTAuth(cfg JWTConfig) (gin.HandlerFunc, error) {
	if len(cfg.Secret) == 0 {
		return nil, ErrMissingSecret
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(cfg.Leeway),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	parser := jwt.NewParser(opts...)
	keyFunc := func(*jwt.Token) (any, error) { return cfg.Secret, nil }

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWith(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyTokenRequired)
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			abortWith(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyInvalidToken)
			return
		}
		tokenString = strings.TrimSpace(tokenString)
		if tokenString == "" {
			abortWith(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyTokenRequired)
			return
		}

		claims := &Claims{}
		if _, err := parser.ParseWithClaims(tokenString, claims, keyFunc); err != nil {
			log := logger.Logger()
			log.Debug().
				Str("request_id", GetRequestID(c)).
				Err(err).
				Msg("Rejected bearer token")
			abortWith(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyInvalidToken)
			return
		}
		if claims.Subject == "" {
			abortWith(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(UserIDKey, claims.Subject)
		c.Set(UserRoleKey, claims.Role)
		c.Set(UserClaimsKey, claims)

		c.Next()
	}, nil
}

// GetClaims returns the verified claims of the request.
func GetClaims(c *gin.Context) (*Claims, bool) {
	v, exists := c.Get(UserClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}

// GetUserID returns the token subject, or "" for anonymous requests.
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
