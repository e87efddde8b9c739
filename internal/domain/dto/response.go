package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/pricing-service/internal/domain/model"
	"github.com/guttosm/pricing-service/internal/pricing"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeValidationFailed indicates a well-formed request that breaks domain rules.
	ErrCodeValidationFailed = "validation_failed"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates a dependency is down.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	Data      any       `json:"data" swaggertype:"object"`
	RequestID string    `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time `json:"timestamp" example:"2026-10-14T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_failed"`
	Message string `json:"message,omitempty" example:"The tier configuration is invalid"`
	// Details maps request fields to binding errors
	Details map[string]string `json:"details,omitempty"`
	// Violations lists every broken tier rule
	Violations []pricing.Violation `json:"violations,omitempty"`
	RequestID  string              `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp  time.Time           `json:"timestamp" example:"2026-10-14T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetails attaches field errors.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	e.Details = details
	return e
}

// WithViolations attaches tier rule violations.
func (e ErrorResponse) WithViolations(violations []pricing.Violation) ErrorResponse {
	e.Violations = violations
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnprocessableEntity:
		return ErrCodeValidationFailed
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// QuoteResponse is the body of a successful quote.
// @Description Bulk price quote
type QuoteResponse struct {
	model.Quote
	// TierSource is request, stored, default or fallback
	TierSource string `json:"tier_source" example:"stored"`
} // @name QuoteResponse

// ValidateTiersResponse reports whether a tier configuration is acceptable.
// @Description Tier validation result
type ValidateTiersResponse struct {
	Valid      bool                `json:"valid" example:"false"`
	Violations []pricing.Violation `json:"violations"`
	// Normalized is the list as it would be stored
	Normalized []model.PriceTier `json:"normalized,omitempty"`
} // @name ValidateTiersResponse

// HealthResponse is the body of /healthz and /readyz.
// @Description Service health
type HealthResponse struct {
	Status string            `json:"status" example:"ok"`
	Checks map[string]string `json:"checks,omitempty"`
	// CircuitBreaker is set when tier storage is enabled
	CircuitBreaker any `json:"circuit_breaker,omitempty" swaggertype:"object"`
} // @name HealthResponse
