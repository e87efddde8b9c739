package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)}
}

func (m *manualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *manualClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

func TestNewShardedRateLimiter(t *testing.T) {
	tests := []struct {
		name       string
		numShards  int
		wantShards int
	}{
		{name: "default shards when zero", numShards: 0, wantShards: defaultNumShards},
		{name: "default shards when negative", numShards: -1, wantShards: defaultNumShards},
		{name: "custom shard count", numShards: 8, wantShards: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewShardedRateLimiter(10, time.Minute, tt.numShards)
			defer rl.Stop()

			assert.Len(t, rl.shards, tt.wantShards)
			assert.Equal(t, 10, rl.rate)
			assert.Equal(t, time.Minute, rl.window)
		})
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	clock := newManualClock()
	rl := newRateLimiter(3, time.Minute, 4, clock.Now)

	for want := 2; want >= 0; want-- {
		allowed, remaining, _ := rl.allow("ip:1.2.3.4")
		require.True(t, allowed)
		assert.Equal(t, want, remaining)
	}

	clock.Advance(15 * time.Second)
	allowed, remaining, retryAfter := rl.allow("ip:1.2.3.4")
	assert.False(t, allowed)
	assert.Zero(t, remaining)
	assert.Equal(t, 45*time.Second, retryAfter)

	allowed, _, _ = rl.allow("ip:5.6.7.8")
	assert.True(t, allowed, "other identifiers keep their own window")

	clock.Advance(45 * time.Second)
	allowed, remaining, _ = rl.allow("ip:1.2.3.4")
	assert.True(t, allowed, "window resets")
	assert.Equal(t, 2, remaining)
}

func TestRateLimiter_RateLimit(t *testing.T) {
	clock := newManualClock()
	rl := newRateLimiter(2, 30*time.Second, 4, clock.Now)

	router := gin.New()
	router.Use(RequestID(), rl.RateLimit())
	router.POST("/api/pricing/quote", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name          string
		advance       time.Duration
		wantStatus    int
		wantRemaining string
		wantRetry     string
	}{
		{name: "first", wantStatus: http.StatusOK, wantRemaining: "1"},
		{name: "second", wantStatus: http.StatusOK, wantRemaining: "0"},
		{name: "third is limited", advance: 10 * time.Second, wantStatus: http.StatusTooManyRequests, wantRemaining: "0", wantRetry: "20"},
		{name: "partial second rounds up", advance: 19*time.Second + 500*time.Millisecond, wantStatus: http.StatusTooManyRequests, wantRemaining: "0", wantRetry: "1"},
		{name: "after window", advance: time.Second, wantStatus: http.StatusOK, wantRemaining: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock.Advance(tt.advance)
			req := httptest.NewRequest(http.MethodPost, "/api/pricing/quote", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, tt.wantRemaining, w.Header().Get("X-RateLimit-Remaining"))
			assert.Equal(t, tt.wantRetry, w.Header().Get("Retry-After"))
			if tt.wantStatus == http.StatusTooManyRequests {
				assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
			}
		})
	}
}

func TestRateLimiter_UserRateLimit(t *testing.T) {
	clock := newManualClock()
	rl := newRateLimiter(1, time.Minute, 4, clock.Now)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if user := c.GetHeader("X-Test-User"); user != "" {
			c.Set(UserIDKey, user)
		}
		c.Next()
	}, rl.UserRateLimit())
	router.PUT("/tiers", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	send := func(user string) int {
		req := httptest.NewRequest(http.MethodPut, "/tiers", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		if user != "" {
			req.Header.Set("X-Test-User", user)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, send("user-a"))
	assert.Equal(t, http.StatusTooManyRequests, send("user-a"))
	assert.Equal(t, http.StatusNoContent, send("user-b"), "users sharing an IP are limited separately")
	assert.Equal(t, http.StatusNoContent, send(""), "anonymous callers fall back to IP")
	assert.Equal(t, http.StatusTooManyRequests, send(""))
}

func TestRateLimiter_CleanupExpired(t *testing.T) {
	clock := newManualClock()
	rl := newRateLimiter(5, time.Minute, 4, clock.Now)

	rl.allow("ip:old")
	clock.Advance(90 * time.Second)
	rl.allow("ip:new")

	total, perShard := rl.Stats()
	assert.Equal(t, 2, total)
	assert.Len(t, perShard, 4)

	clock.Advance(45 * time.Second)
	rl.cleanupExpired()

	total, _ = rl.Stats()
	assert.Equal(t, 1, total)
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, time.Second)
	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})
}
