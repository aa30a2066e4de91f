package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/tweetpulse/internal/platform/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastPolicy = retry.Policy{
	MaxAttempts:      3,
	InitialBackoff:   1 * time.Millisecond,
	RateLimitBackoff: 5 * time.Millisecond,
}

func TestDo_SuccessFirstAttempt(t *testing.T) {
	calls := 0
	val, err := retry.Do(context.Background(), fastPolicy, alwaysRetry, func(context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", val)
	assert.Equal(t, 1, calls)
}

func TestDo_SuccessAfterRetries(t *testing.T) {
	calls := 0
	val, err := retry.Do(context.Background(), fastPolicy, alwaysRetry, func(context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, val)
	assert.Equal(t, 3, calls)
}

func TestDo_SingleAttemptReturnsErrorUnwrapped(t *testing.T) {
	underlying := errors.New("download failed")
	calls := 0
	p := retry.Policy{MaxAttempts: 1}

	_, err := retry.Do(context.Background(), p, alwaysRetry, func(context.Context) (struct{}, error) {
		calls++
		return struct{}{}, underlying
	})
	assert.Same(t, underlying, err)
	assert.Equal(t, 1, calls)
}

func TestDo_PermanentErrorStopsImmediately(t *testing.T) {
	permanent := errors.New("permanent")
	calls := 0
	_, err := retry.Do(context.Background(), fastPolicy, alwaysStop, func(context.Context) (struct{}, error) {
		calls++
		return struct{}{}, permanent
	})

	var permErr *retry.PermanentError
	require.ErrorAs(t, err, &permErr)
	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestDo_ExhaustedRetries(t *testing.T) {
	underlying := errors.New("transient")
	calls := 0
	_, err := retry.Do(context.Background(), fastPolicy, alwaysRetry, func(context.Context) (struct{}, error) {
		calls++
		return struct{}{}, underlying
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, underlying)
	assert.Contains(t, err.Error(), "failed after 3 attempts")
	assert.Equal(t, fastPolicy.MaxAttempts, calls)
}

func TestDo_InvalidPolicy(t *testing.T) {
	_, err := retry.Do(context.Background(), retry.Policy{}, alwaysRetry, func(context.Context) (struct{}, error) {
		t.Fatal("operation must not run")
		return struct{}{}, nil
	})
	assert.ErrorContains(t, err, "MaxAttempts must be >= 1")
}

func TestDo_RateLimitBackoff(t *testing.T) {
	var observed time.Duration
	p := retry.Policy{
		MaxAttempts:      2,
		InitialBackoff:   1 * time.Millisecond,
		RateLimitBackoff: 5 * time.Millisecond,
		OnRetry: func(_ int, _ error, backoff time.Duration) {
			observed = backoff
		},
	}

	classify := func(error) retry.Action { return retry.After }
	_, _ = retry.Do(context.Background(), p, classify, func(context.Context) (struct{}, error) {
		return struct{}{}, errors.New("throttled")
	})

	assert.Equal(t, 5*time.Millisecond, observed)
}

func TestDo_UsesInjectedClock(t *testing.T) {
	fakeClock := clockwork.NewFakeClock()
	p := retry.Policy{
		MaxAttempts:    2,
		InitialBackoff: time.Hour,
		Clock:          fakeClock,
	}

	done := make(chan error, 1)
	calls := 0
	go func() {
		_, err := retry.Do(context.Background(), p, alwaysRetry, func(context.Context) (struct{}, error) {
			calls++
			if calls == 1 {
				return struct{}{}, errors.New("transient")
			}
			return struct{}{}, nil
		})
		done <- err
	}()

	fakeClock.BlockUntil(1)
	fakeClock.Advance(time.Hour)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("retry did not resume after clock advance")
	}
	assert.Equal(t, 2, calls)
}

func TestDo_ContextCancellationDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := retry.Policy{
		MaxAttempts:    3,
		InitialBackoff: 10 * time.Second,
	}

	calls := 0
	_, err := retry.Do(ctx, p, alwaysRetry, func(context.Context) (struct{}, error) {
		calls++
		cancel()
		return struct{}{}, errors.New("transient")
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDo_OnRetryCallback(t *testing.T) {
	var recorded []int
	p := fastPolicy
	p.OnRetry = func(attempt int, _ error, _ time.Duration) {
		recorded = append(recorded, attempt)
	}

	_, _ = retry.Do(context.Background(), p, alwaysRetry, func(context.Context) (struct{}, error) {
		return struct{}{}, errors.New("fail")
	})

	// not called for the final, exhausting attempt
	assert.Equal(t, []int{1, 2}, recorded)
}

func alwaysRetry(error) retry.Action { return retry.Retry }
func alwaysStop(error) retry.Action  { return retry.Stop }
