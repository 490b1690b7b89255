package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCallWithFallbackReturnsPrimaryValue(t *testing.T) {
	g := NewGuard("offer", Policy{Timeout: time.Second, FailureThreshold: 3, OpenTimeout: time.Minute}, zap.NewNop())

	got := CallWithFallback(context.Background(), g,
		func(ctx context.Context) (int, error) { return 7, nil },
		func(err error) int { t.Fatal("fallback must not run"); return 0 },
	)
	assert.Equal(t, 7, got)
}

func TestCallWithFallbackOnError(t *testing.T) {
	g := NewGuard("guest", Policy{Timeout: time.Second, FailureThreshold: 3, OpenTimeout: time.Minute}, zap.NewNop())
	boom := errors.New("connection refused")

	var seen error
	got := CallWithFallback(context.Background(), g,
		func(ctx context.Context) (string, error) { return "", boom },
		func(err error) string { seen = err; return "Fallback" },
	)
	assert.Equal(t, "Fallback", got)
	assert.ErrorIs(t, seen, boom)
}

func TestCallWithFallbackOnTimeout(t *testing.T) {
	g := NewGuard("rooms", Policy{Timeout: 20 * time.Millisecond, FailureThreshold: 3, OpenTimeout: time.Minute}, zap.NewNop())

	got := CallWithFallback(context.Background(), g,
		func(ctx context.Context) ([]int, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
		func(err error) []int {
			assert.ErrorIs(t, err, context.DeadlineExceeded)
			return []int{}
		},
	)
	assert.Empty(t, got)
}

func TestBreakerOpensAfterThreshold(t *testing.T) {
	g := NewGuard("category", Policy{Timeout: time.Second, FailureThreshold: 2, OpenTimeout: time.Minute}, zap.NewNop())

	calls := 0
	primary := func(ctx context.Context) (int, error) {
		calls++
		return 0, errors.New("503")
	}
	fallback := func(err error) int { return -1 }

	for i := 0; i < 2; i++ {
		assert.Equal(t, -1, CallWithFallback(context.Background(), g, primary, fallback))
	}
	assert.Equal(t, "open", g.State())

	// open breaker short-circuits the primary
	assert.Equal(t, -1, CallWithFallback(context.Background(), g, primary, fallback))
	assert.Equal(t, 2, calls)
}

func TestNilSliceResultIsNotAFault(t *testing.T) {
	g := NewGuard("rooms", Policy{}, zap.NewNop())

	got := CallWithFallback(context.Background(), g,
		func(ctx context.Context) ([]string, error) { return nil, nil },
		func(err error) []string { return []string{"fallback"} },
	)
	assert.Nil(t, got)
}

func TestCallWithFallbackDoesNotWaitForSlowPrimary(t *testing.T) {
	g := NewGuard("rooms", Policy{Timeout: 20 * time.Millisecond, FailureThreshold: 3, OpenTimeout: time.Minute}, zap.NewNop())

	var seen error
	start := time.Now()
	got := CallWithFallback(context.Background(), g,
		func(ctx context.Context) (int, error) {
			time.Sleep(300 * time.Millisecond)
			return 7, nil
		},
		func(err error) int { seen = err; return -1 },
	)

	assert.Equal(t, -1, got)
	assert.ErrorIs(t, seen, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 200*time.Millisecond)
}

func TestCallerCancellationDoesNotTripBreaker(t *testing.T) {
	g := NewGuard("guest", Policy{Timeout: time.Second, FailureThreshold: 1, OpenTimeout: time.Minute}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var seen error
	got := CallWithFallback(ctx, g,
		func(ctx context.Context) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
		func(err error) string { seen = err; return "Fallback" },
	)

	assert.Equal(t, "Fallback", got)
	assert.ErrorIs(t, seen, context.Canceled)
	assert.Equal(t, "closed", g.State())

	// a real collaborator fault still trips it
	CallWithFallback(context.Background(), g,
		func(ctx context.Context) (string, error) { return "", errors.New("503") },
		func(err error) string { return "Fallback" },
	)
	assert.Equal(t, "open", g.State())
}
