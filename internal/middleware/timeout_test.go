package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pricing-service/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitForDeadline blocks like a storage call until the request context ends.
func waitForDeadline(c *gin.Context) {
	<-c.Request.Context().Done()
}

func TestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		timeout    time.Duration
		handler    gin.HandlerFunc
		wantStatus int
	}{
		{
			name:       "fast request completes",
			timeout:    time.Second,
			handler:    func(c *gin.Context) { c.String(http.StatusOK, "ok") },
			wantStatus: http.StatusOK,
		},
		{
			name:       "slow request times out",
			timeout:    20 * time.Millisecond,
			handler:    waitForDeadline,
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:    "response written before deadline is kept",
			timeout: 20 * time.Millisecond,
			handler: func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
				waitForDeadline(c)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), Timeout(tt.timeout))
			router.GET("/test", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusGatewayTimeout {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, dto.ErrCodeTimeout, resp.Error)
				assert.Equal(t, "The request took too long", resp.Message)
			}
		})
	}
}

func TestTimeout_SetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		timeout time.Duration
		max     time.Duration
	}{
		{name: "configured", timeout: 5 * time.Second, max: 5 * time.Second},
		{name: "zero uses default", timeout: 0, max: DefaultTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(Timeout(tt.timeout))
			router.GET("/test", func(c *gin.Context) {
				deadline, ok := c.Request.Context().Deadline()
				require.True(t, ok)
				remaining := time.Until(deadline)
				assert.LessOrEqual(t, remaining, tt.max)
				assert.Greater(t, remaining, tt.max-time.Second)
				c.Status(http.StatusNoContent)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
			assert.Equal(t, http.StatusNoContent, w.Code)
		})
	}
}
