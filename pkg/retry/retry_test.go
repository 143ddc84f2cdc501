package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/niksmo/storefront/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("transient")

func quick(maxAttempts int) retry.RetryConfig {
	return retry.RetryConfig{
		MaxAttempts: maxAttempts,
		Backoff:     retry.LinearBackoff(time.Millisecond),
	}
}

func TestDoWithResult(t *testing.T) {
	ctx := context.Background()

	t.Run("FirstAttemptSucceeds", func(t *testing.T) {
		calls := 0
		got, err := retry.DoWithResult(ctx, quick(3), func() (int, error) {
			calls++
			return 7, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 7, got)
		assert.Equal(t, 1, calls)
	})

	t.Run("RecoversAfterFailures", func(t *testing.T) {
		calls := 0
		got, err := retry.DoWithResult(ctx, quick(3), func() (int, error) {
			calls++
			if calls < 3 {
				return 0, errTransient
			}
			return 7, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 7, got)
		assert.Equal(t, 3, calls)
	})

	t.Run("AttemptsRunOut", func(t *testing.T) {
		calls := 0
		_, err := retry.DoWithResult(ctx, quick(3), func() (int, error) {
			calls++
			return 0, errTransient
		})
		require.ErrorIs(t, err, errTransient)
		assert.Equal(t, 3, calls)
	})

	t.Run("NonRetryableStopsEarly", func(t *testing.T) {
		fatal := errors.New("fatal")
		cfg := quick(3)
		cfg.ShouldRetry = func(err error) bool {
			return !errors.Is(err, fatal)
		}

		calls := 0
		_, err := retry.DoWithResult(ctx, cfg, func() (int, error) {
			calls++
			return 0, fatal
		})
		require.ErrorIs(t, err, fatal)
		assert.Equal(t, 1, calls)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		calls := 0
		_, err := retry.DoWithResult(cancelled, quick(3), func() (int, error) {
			calls++
			return 0, errTransient
		})
		require.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, calls)
	})

	t.Run("CancelDuringBackoff", func(t *testing.T) {
		timed, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()

		cfg := retry.RetryConfig{
			MaxAttempts: 3,
			Backoff:     retry.LinearBackoff(time.Second),
		}
		_, err := retry.DoWithResult(timed, cfg, func() (int, error) {
			return 0, errTransient
		})
		require.ErrorIs(t, err, context.DeadlineExceeded)
		require.ErrorIs(t, err, errTransient)
	})
}

func TestDo(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), quick(2), func() error {
		calls++
		if calls == 1 {
			return errTransient
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
