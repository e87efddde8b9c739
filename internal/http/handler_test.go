package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pricing-service/internal/circuitbreaker"
	"github.com/guttosm/pricing-service/internal/domain/dto"
	"github.com/guttosm/pricing-service/internal/domain/model"
	"github.com/guttosm/pricing-service/internal/mocks"
	"github.com/guttosm/pricing-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func intPtr(v int) *int { return &v }

func twoTiers() []model.PriceTier {
	return []model.PriceTier{
		{MinQty: 1, MaxQty: intPtr(9), PricePerUnit: 10000},
		{MinQty: 10, PricePerUnit: 8000, DiscountPercent: 20},
	}
}

func testRouterConfig() RouterConfig {
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	return cfg
}

func setupRouter(t *testing.T, tierConfigs service.TierConfigService) *gin.Engine {
	t.Helper()
	handler := NewHandler(service.NewPricingCalculatorService(), tierConfigs)
	router, err := NewRouter(handler, nil, NewHealthHandler(), testRouterConfig())
	require.NoError(t, err)
	return router
}

func setupRouterWithMock(t *testing.T) (*gin.Engine, *mocks.MockPricingCalculator) {
	t.Helper()
	mockCalc := mocks.NewMockPricingCalculator(t)
	router, err := NewRouter(NewHandler(mockCalc, nil), nil, NewHealthHandler(), testRouterConfig())
	require.NoError(t, err)
	return router, mockCalc
}

func doJSON(router http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unwraps the success envelope into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var env struct {
		Data      json.RawMessage `json:"data"`
		RequestID string          `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.NotEmpty(t, env.RequestID)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestQuote(t *testing.T) {
	router := setupRouter(t, nil)

	tests := []struct {
		name           string
		body           any
		headers        map[string]string
		expectedStatus int
		validate       func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name:           "request tiers with upsell",
			body:           dto.QuoteRequest{Quantity: 5, BasePricePerUnit: 10000, Tiers: twoTiers()},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.QuoteResponse
				decodeData(t, w, &resp)
				assert.Equal(t, "request", resp.TierSource)
				assert.Equal(t, int64(50000), resp.Result.TotalPrice)
				require.NotNil(t, resp.Upsell)
				assert.Equal(t, 5, resp.Upsell.UnitsNeeded)
				assert.Equal(t, "10+ units", resp.Upsell.TierRange)
				assert.Equal(t, "Add 5 more to save ₹20/unit (20% off)", resp.UpsellMessage)
			},
		},
		{
			name:           "upsell in hindi",
			body:           dto.QuoteRequest{Quantity: 5, BasePricePerUnit: 10000, Tiers: twoTiers()},
			headers:        map[string]string{"Accept-Language": "hi-IN,hi;q=0.9"},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.QuoteResponse
				decodeData(t, w, &resp)
				assert.Equal(t, "5 और जोड़ें और ₹20/यूनिट बचाएँ (20% छूट)", resp.UpsellMessage)
			},
		},
		{
			name:           "bulk tier applied",
			body:           dto.QuoteRequest{Quantity: 60, BasePricePerUnit: 10000, Tiers: twoTiers()},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.QuoteResponse
				decodeData(t, w, &resp)
				assert.Equal(t, int64(480000), resp.Result.TotalPrice)
				assert.Equal(t, int64(120000), resp.Result.Savings)
				assert.Equal(t, 20, resp.Result.SavingsPercent)
				assert.Nil(t, resp.Upsell)
				assert.Empty(t, resp.UpsellMessage)
			},
		},
		{
			name:           "no tiers prices at base",
			body:           dto.QuoteRequest{Quantity: 3, BasePricePerUnit: 2500},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.QuoteResponse
				decodeData(t, w, &resp)
				assert.Equal(t, "none", resp.TierSource)
				assert.Equal(t, int64(7500), resp.Result.TotalPrice)
				assert.Nil(t, resp.Result.AppliedTier)
			},
		},
		{
			name:           "missing quantity",
			body:           map[string]any{"base_price_per_unit": 100},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.Contains(t, resp.Details, "quantity")
			},
		},
		{
			name:           "negative base price",
			body:           map[string]any{"quantity": 1, "base_price_per_unit": -1},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Contains(t, resp.Details, "base_price_per_unit")
			},
		},
		{
			name:           "malformed json",
			body:           "{",
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.NotEmpty(t, resp.RequestID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/pricing/quote", tt.body, tt.headers)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			tt.validate(t, w)
		})
	}
}

func TestQuote_ProductTiers(t *testing.T) {
	stored := twoTiers()

	tests := []struct {
		name           string
		source         service.TierSource
		err            error
		expectedStatus int
		expectedSource string
	}{
		{name: "stored tiers", source: service.TierSourceStored, expectedStatus: http.StatusOK, expectedSource: "stored"},
		{name: "fallback tiers", source: service.TierSourceFallback, expectedStatus: http.StatusOK, expectedSource: "fallback"},
		{name: "storage error surfaces", err: circuitbreaker.ErrCircuitOpen, expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockTierConfigService(t)
			if tt.err != nil {
				svc.On("TiersFor", mock.Anything, "sku-1", int64(10000)).Return(nil, service.TierSource(""), tt.err)
			} else {
				svc.On("TiersFor", mock.Anything, "sku-1", int64(10000)).Return(stored, tt.source, nil)
			}
			router := setupRouter(t, svc)

			w := doJSON(router, http.MethodPost, "/api/pricing/quote",
				dto.QuoteRequest{Quantity: 12, BasePricePerUnit: 10000, ProductID: "sku-1"}, nil)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var resp dto.QuoteResponse
				decodeData(t, w, &resp)
				assert.Equal(t, tt.expectedSource, resp.TierSource)
				assert.Equal(t, int64(8000), resp.Result.UnitPrice)
			} else {
				assert.Equal(t, dto.ErrCodeUnavailable, decodeError(t, w).Error)
			}
		})
	}
}

func TestQuote_RequestTiersSkipStorage(t *testing.T) {
	svc := mocks.NewMockTierConfigService(t)
	router := setupRouter(t, svc)

	w := doJSON(router, http.MethodPost, "/api/pricing/quote",
		dto.QuoteRequest{Quantity: 12, BasePricePerUnit: 10000, ProductID: "sku-1", Tiers: twoTiers()}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	svc.AssertNotCalled(t, "TiersFor", mock.Anything, mock.Anything, mock.Anything)
}

func TestQuote_CalculatorError(t *testing.T) {
	router, calc := setupRouterWithMock(t)
	calc.On("Quote", 1, int64(100), []model.PriceTier(nil)).Return(model.Quote{}, errors.New("boom"))

	w := doJSON(router, http.MethodPost, "/api/pricing/quote", dto.QuoteRequest{Quantity: 1, BasePricePerUnit: 100}, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, dto.ErrCodeInternal, decodeError(t, w).Error)
}

func TestDeliveryFee(t *testing.T) {
	router := setupRouter(t, nil)

	tests := []struct {
		name           string
		body           any
		locale         string
		expectedStatus int
		validate       func(t *testing.T, q model.DeliveryQuote)
	}{
		{
			name:           "close to free",
			body:           dto.DeliveryFeeRequest{CartSubtotal: 450000, DistanceKm: 3},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, q model.DeliveryQuote) {
				assert.Equal(t, int64(3000), q.Fee)
				assert.Equal(t, int64(50000), q.AmountNeededForFree)
				assert.Equal(t, model.BannerClose, q.Banner.Tier)
				assert.Equal(t, "Add ₹500 more to get FREE delivery!", q.Banner.Message)
			},
		},
		{
			name:           "close to free in hindi",
			body:           dto.DeliveryFeeRequest{CartSubtotal: 450000, DistanceKm: 3},
			locale:         "hi",
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, q model.DeliveryQuote) {
				assert.Equal(t, "मुफ़्त डिलीवरी पाने के लिए ₹500 और जोड़ें!", q.Banner.Message)
			},
		},
		{
			name:           "free delivery",
			body:           dto.DeliveryFeeRequest{CartSubtotal: 600000, DistanceKm: 12},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, q model.DeliveryQuote) {
				assert.True(t, q.IsFree)
				assert.Zero(t, q.Fee)
				assert.Equal(t, model.BannerFree, q.Banner.Tier)
				assert.InDelta(t, 100.0, q.ProgressPercentage, 0.001)
			},
		},
		{
			name:           "threshold override",
			body:           map[string]any{"cart_subtotal": 200000, "distance_km": 1, "free_threshold": 200000},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, q model.DeliveryQuote) {
				assert.True(t, q.IsFree)
			},
		},
		{
			name:           "standard banner",
			body:           dto.DeliveryFeeRequest{CartSubtotal: 50000, DistanceKm: 2},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, q model.DeliveryQuote) {
				assert.Equal(t, model.BannerStandard, q.Banner.Tier)
				assert.Equal(t, "Delivery fee: ₹80", q.Banner.Message)
				require.NotNil(t, q.Breakdown.NextTier)
			},
		},
		{
			name:           "negative distance",
			body:           map[string]any{"cart_subtotal": 1000, "distance_km": -2},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown weather",
			body:           map[string]any{"cart_subtotal": 1000, "distance_km": 2, "surge": map[string]any{"weather": "snow"}},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.locale != "" {
				headers["Accept-Language"] = tt.locale
			}
			w := doJSON(router, http.MethodPost, "/api/delivery/fee", tt.body, headers)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.validate == nil {
				assert.Equal(t, dto.ErrCodeInvalidRequest, decodeError(t, w).Error)
				return
			}
			var q model.DeliveryQuote
			decodeData(t, w, &q)
			tt.validate(t, q)
		})
	}
}

func TestDeliveryFee_PassesSurge(t *testing.T) {
	router, calc := setupRouterWithMock(t)
	at := time.Date(2026, 10, 16, 19, 30, 0, 0, time.UTC)

	calc.On("DeliveryFee", mock.MatchedBy(func(r service.DeliveryRequest) bool {
		return r.CartSubtotal == 10000 && r.Surge != nil &&
			r.Surge.Weather == model.WeatherRain && r.Surge.Time.Equal(at) && *r.Surge.Demand == 90
	})).Return(model.DeliveryQuote{
		DeliveryFeeResult: model.DeliveryFeeResult{Fee: 12000, SurgeMultiplier: 1.5},
		Banner:            model.Banner{Tier: model.BannerStandard},
	}, nil)

	w := doJSON(router, http.MethodPost, "/api/delivery/fee", map[string]any{
		"cart_subtotal": 10000,
		"distance_km":   1,
		"surge":         map[string]any{"weather": "rain", "demand": 90, "time": at.Format(time.RFC3339)},
	}, nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var q model.DeliveryQuote
	decodeData(t, w, &q)
	assert.Equal(t, "Delivery fee: ₹120", q.Banner.Message)
}

func TestSurge(t *testing.T) {
	router, calc := setupRouterWithMock(t)

	calc.On("Surge", mock.MatchedBy(func(sc model.SurgeContext) bool {
		return sc.Zone == "blr-1" && sc.Weather == model.WeatherNone && sc.Time.IsZero() && sc.Demand == nil
	})).Return(model.SurgeQuote{Zone: "blr-1", Multiplier: 1, Reason: "Normal pricing"})

	w := doJSON(router, http.MethodPost, "/api/delivery/surge", map[string]any{"zone": "blr-1"}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var q model.SurgeQuote
	decodeData(t, w, &q)
	assert.Equal(t, 1.0, q.Multiplier)
	assert.Equal(t, "blr-1", q.Zone)
}

func TestSurge_DemandOutOfRange(t *testing.T) {
	router, _ := setupRouterWithMock(t)

	w := doJSON(router, http.MethodPost, "/api/delivery/surge", map[string]any{"zone": "x", "demand": 101}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Details, "demand")
}
