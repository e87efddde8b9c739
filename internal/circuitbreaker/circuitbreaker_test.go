//go:build !integration

package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time          { return f.now }
func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestBreaker(failures, successes int) (*CircuitBreaker, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)}
	cb := New(Config{
		FailureThreshold: failures,
		SuccessThreshold: successes,
		Timeout:          30 * time.Second,
		Name:             "test",
	})
	cb.clock = clock.Now
	return cb, clock
}

var errStore = errors.New("store unavailable")

func fail() error    { return errStore }
func succeed() error { return nil }

func TestCircuitBreaker_Execute_Success(t *testing.T) {
	cb := New(DefaultConfig())

	err := cb.Execute(context.Background(), succeed)

	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb, _ := newTestBreaker(2, 1)
	ctx := context.Background()

	assert.ErrorIs(t, cb.Execute(ctx, fail), errStore)
	assert.Equal(t, StateClosed, cb.State())

	assert.ErrorIs(t, cb.Execute(ctx, fail), errStore)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(ctx, func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb, _ := newTestBreaker(2, 1)
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	_ = cb.Execute(ctx, succeed)
	_ = cb.Execute(ctx, fail)

	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	cb, clock := newTestBreaker(2, 2)
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	_ = cb.Execute(ctx, fail)
	require.Equal(t, StateOpen, cb.State())

	clock.Advance(10 * time.Second)
	assert.ErrorIs(t, cb.Execute(ctx, succeed), ErrCircuitOpen)

	clock.Advance(25 * time.Second)
	require.NoError(t, cb.Execute(ctx, succeed))
	assert.Equal(t, StateHalfOpen, cb.State())

	require.NoError(t, cb.Execute(ctx, succeed))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb, clock := newTestBreaker(1, 2)
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	clock.Advance(31 * time.Second)

	assert.ErrorIs(t, cb.Execute(ctx, fail), errStore)
	assert.Equal(t, StateOpen, cb.State())
	assert.True(t, cb.IsOpen())
}

func TestCircuitBreaker_CancelledContext(t *testing.T) {
	cb, _ := newTestBreaker(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := cb.Execute(ctx, succeed)
	assert.ErrorIs(t, err, context.Canceled)

	err = cb.Execute(context.Background(), func() error { return context.Canceled })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateClosed, cb.State(), "caller cancellation is not a store failure")
}

func TestCircuitBreaker_CustomFailureClassifier(t *testing.T) {
	notFound := errors.New("not found")
	cb := New(Config{
		FailureThreshold: 1,
		Name:             "classifier",
		IsFailure:        func(err error) bool { return !errors.Is(err, notFound) },
	})

	assert.ErrorIs(t, cb.Execute(context.Background(), func() error { return notFound }), notFound)
	assert.Equal(t, StateClosed, cb.State())
}

func TestDo(t *testing.T) {
	cb := New(DefaultConfig())

	v, err := Do(context.Background(), cb, func() (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = Do(context.Background(), cb, func() (int, error) { return 0, errStore })
	assert.ErrorIs(t, err, errStore)
}

func TestNew_Defaults(t *testing.T) {
	cb := New(Config{})

	assert.Equal(t, "circuit-breaker", cb.Name())
	assert.Equal(t, 5, cb.config.FailureThreshold)
	assert.Equal(t, 2, cb.config.SuccessThreshold)
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateClosed, "closed"},
		{StateOpen, "open"},
		{StateHalfOpen, "half-open"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGetStats(t *testing.T) {
	cb, _ := newTestBreaker(3, 1)
	_ = cb.Execute(context.Background(), fail)

	stats := cb.GetStats()

	assert.Equal(t, "closed", stats.State)
	assert.Equal(t, 1, stats.FailureCount)
	assert.True(t, stats.IsHealthy)
	assert.False(t, stats.LastFailure.IsZero())
}
