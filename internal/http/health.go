package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pricing-service/internal/circuitbreaker"
	"github.com/guttosm/pricing-service/internal/domain/dto"
)

const readinessTimeout = 2 * time.Second

// HealthChecker defines the interface for health check operations.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthCheckFunc adapts a function to HealthChecker.
type HealthCheckFunc func(ctx context.Context) error

// Check calls f.
func (f HealthCheckFunc) Check(ctx context.Context) error { return f(ctx) }

type registeredCheck struct {
	checker  HealthChecker
	critical bool
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	checks          map[string]registeredCheck
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checks:          make(map[string]registeredCheck),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
	}
}

// RegisterChecker adds a dependency check. A failing critical check makes
// the service unready; a failing optional one only marks it degraded.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker, critical bool) {
	h.checks[name] = registeredCheck{checker: checker, critical: critical}
}

// RegisterCircuitBreaker registers a circuit breaker for health monitoring.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	h.circuitBreakers[name] = cb
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK while the process is serving.
// @Tags        Health
// @Produce     json
// @Success     200 {object} dto.HealthResponse
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Pings dependencies and reports circuit breaker state. Pricing keeps working on default tiers while tier storage is down, so storage failures report "degraded" with 200.
// @Tags        Health
// @Produce     json
// @Success     200 {object} dto.HealthResponse
// @Failure     503 {object} dto.HealthResponse
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	status := http.StatusOK
	healthy := true
	checks := make(map[string]string, len(h.checks)+1)

	for name, rc := range h.checks {
		if err := rc.checker.Check(ctx); err != nil {
			checks[name] = err.Error()
			healthy = false
			if rc.critical {
				status = http.StatusServiceUnavailable
			}
			continue
		}
		checks[name] = "ok"
	}

	var breakers map[string]circuitbreaker.Stats
	if len(h.circuitBreakers) > 0 {
		breakers = make(map[string]circuitbreaker.Stats, len(h.circuitBreakers))
		for name, cb := range h.circuitBreakers {
			stats := cb.GetStats()
			breakers[name] = stats
			if !stats.IsHealthy {
				healthy = false
			}
		}
	}

	if len(checks) == 0 {
		checks["service"] = "ok"
	}

	resp := dto.HealthResponse{Status: "ok", Checks: checks}
	if breakers != nil {
		resp.CircuitBreaker = breakers
	}
	switch {
	case status != http.StatusOK:
		resp.Status = "unavailable"
	case !healthy:
		resp.Status = "degraded"
	}
	c.JSON(status, resp)
}
