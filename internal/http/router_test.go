package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pricing-service/internal/domain/dto"
	"github.com/guttosm/pricing-service/internal/middleware"
	"github.com/guttosm/pricing-service/internal/mocks"
	"github.com/guttosm/pricing-service/internal/service"
)

var routerTestSecret = []byte("router-test-secret")

func signToken(t *testing.T, subject string, roles ...string) string {
	t.Helper()
	claims := middleware.Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(routerTestSecret)
	require.NoError(t, err)
	return "Bearer " + signed
}

func authRouterConfig() RouterConfig {
	cfg := testRouterConfig()
	cfg.EnableAuth = true
	cfg.APIKeys = []string{"key-1", "key-2"}
	cfg.JWT = middleware.JWTConfig{Secret: routerTestSecret}
	return cfg
}

func TestNewRouter_RequiresSecretWhenAuthEnabled(t *testing.T) {
	cfg := authRouterConfig()
	cfg.JWT.Secret = nil

	_, err := NewRouter(NewHandler(service.NewPricingCalculatorService(), nil), nil, nil, cfg)

	require.ErrorIs(t, err, middleware.ErrMissingSecret)
}

func TestRouter_InfrastructureRoutes(t *testing.T) {
	router := setupRouter(t, nil)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{name: "liveness", path: "/healthz", expectedStatus: http.StatusOK},
		{name: "readiness", path: "/readyz", expectedStatus: http.StatusOK},
		{name: "metrics", path: "/metrics", expectedStatus: http.StatusOK},
		{name: "unknown", path: "/nope", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestRouter_TierRoutesAbsentWithoutStorage(t *testing.T) {
	router := setupRouter(t, nil)

	w := doJSON(router, http.MethodGet, "/api/products/sku-1/tiers", nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_APIKey(t *testing.T) {
	handler := NewHandler(service.NewPricingCalculatorService(), nil)
	router, err := NewRouter(handler, nil, NewHealthHandler(), authRouterConfig())
	require.NoError(t, err)
	body := dto.QuoteRequest{Quantity: 1, BasePricePerUnit: 100}

	tests := []struct {
		name           string
		path           string
		headers        map[string]string
		expectedStatus int
	}{
		{name: "missing key", path: "/api/pricing/quote", expectedStatus: http.StatusUnauthorized},
		{name: "wrong key", path: "/api/pricing/quote", headers: map[string]string{"X-API-Key": "nope"}, expectedStatus: http.StatusUnauthorized},
		{name: "header key", path: "/api/pricing/quote", headers: map[string]string{"X-API-Key": "key-2"}, expectedStatus: http.StatusOK},
		{name: "query key", path: "/api/pricing/quote?api_key=key-1", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, tt.path, body, tt.headers)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Equal(t, dto.ErrCodeUnauthorized, decodeError(t, w).Error)
			}
		})
	}
}

func TestRouter_EditorGuard(t *testing.T) {
	body := dto.TierConfigRequest{BasePricePerUnit: 10000, Tiers: twoTiers()}

	tests := []struct {
		name           string
		token          string
		expectSave     bool
		expectedStatus int
	}{
		{name: "no token", expectedStatus: http.StatusUnauthorized},
		{name: "viewer token", token: "viewer", expectedStatus: http.StatusForbidden},
		{name: "editor token", token: "pricing_editor", expectSave: true, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockTierConfigService(t)
			if tt.expectSave {
				svc.On("Save", mock.Anything, "sku-1", int64(10000), body.Tiers, "editor-7").Return(storedConfig("sku-1", 1), nil)
			}
			router, err := NewRouter(NewHandler(service.NewPricingCalculatorService(), svc), NewTierConfigHandler(svc), nil, authRouterConfig())
			require.NoError(t, err)

			headers := map[string]string{"X-API-Key": "key-1"}
			if tt.token != "" {
				headers["Authorization"] = signToken(t, "editor-7", tt.token)
			}
			w := doJSON(router, http.MethodPut, "/api/products/sku-1/tiers", body, headers)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestRouter_ReadsDoNotNeedToken(t *testing.T) {
	svc := mocks.NewMockTierConfigService(t)
	svc.On("GetActive", mock.Anything, "sku-1").Return(storedConfig("sku-1", 2), nil)
	router, err := NewRouter(NewHandler(service.NewPricingCalculatorService(), svc), NewTierConfigHandler(svc), nil, authRouterConfig())
	require.NoError(t, err)

	w := doJSON(router, http.MethodGet, "/api/products/sku-1/tiers", nil, map[string]string{"X-API-Key": "key-1"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_IdempotentReplay(t *testing.T) {
	store := service.NewShardedCache[middleware.CachedResponse](64, time.Minute, 4)
	t.Cleanup(store.Stop)

	calc := mocks.NewMockPricingCalculator(t)
	cfg := testRouterConfig()
	cfg.IdempotencyStore = store
	router, err := NewRouter(NewHandler(calc, nil), nil, nil, cfg)
	require.NoError(t, err)

	quote, err := service.NewPricingCalculatorService().DeliveryFee(service.DeliveryRequest{CartSubtotal: 600000, DistanceKm: 1})
	require.NoError(t, err)
	calc.On("DeliveryFee", mock.Anything).Return(quote, nil).Once()

	body := map[string]any{"cart_subtotal": 600000, "distance_km": 1}
	headers := map[string]string{"Idempotency-Key": "order-42"}

	first := doJSON(router, http.MethodPost, "/api/delivery/fee", body, headers)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Empty(t, first.Header().Get(middleware.IdempotencyReplayedHeader))

	second := doJSON(router, http.MethodPost, "/api/delivery/fee", body, headers)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "true", second.Header().Get(middleware.IdempotencyReplayedHeader))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestRouter_CORS(t *testing.T) {
	cfg := testRouterConfig()
	cfg.CORSOrigins = []string{"https://shop.example.in"}
	router, err := NewRouter(NewHandler(service.NewPricingCalculatorService(), nil), nil, nil, cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodOptions, "/api/pricing/quote", nil)
	req.Header.Set("Origin", "https://shop.example.in")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://shop.example.in", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := testRouterConfig()
	cfg.Limiter = middleware.NewRateLimiter(2, time.Minute)
	t.Cleanup(cfg.Limiter.Stop)
	router, err := NewRouter(NewHandler(service.NewPricingCalculatorService(), nil), nil, nil, cfg)
	require.NoError(t, err)

	body := dto.QuoteRequest{Quantity: 1, BasePricePerUnit: 100}
	for range 2 {
		require.Equal(t, http.StatusOK, doJSON(router, http.MethodPost, "/api/pricing/quote", body, nil).Code)
	}
	w := doJSON(router, http.MethodPost, "/api/pricing/quote", body, nil)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
