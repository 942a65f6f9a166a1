package implementation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jt828/dropwizard-fixture/pkg/retry"
	retryImpl "github.com/jt828/dropwizard-fixture/pkg/retry/implementation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry_Execute(t *testing.T) {
	t.Run("succeeds on first attempt", func(t *testing.T) {
		r := retryImpl.NewRetry(3, retry.WithInterval(time.Millisecond))
		callCount := 0

		err := r.Execute(context.Background(), func(context.Context) error {
			callCount++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, callCount)
	})

	t.Run("succeeds after retries", func(t *testing.T) {
		r := retryImpl.NewRetry(3,
			retry.WithInterval(time.Millisecond),
			retry.WithRetryable(func(err error) bool { return true }),
		)
		callCount := 0

		err := r.Execute(context.Background(), func(context.Context) error {
			callCount++
			if callCount < 3 {
				return errors.New("transient error")
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, callCount)
	})

	t.Run("returns error after max retries exhausted", func(t *testing.T) {
		var attempts []uint64
		r := retryImpl.NewRetry(2,
			retry.WithInterval(time.Millisecond),
			retry.WithOnRetry(func(attempt uint64, err error) {
				attempts = append(attempts, attempt)
			}),
		)
		persistentErr := errors.New("persistent error")

		err := r.Execute(context.Background(), func(context.Context) error {
			return persistentErr
		})

		assert.ErrorIs(t, err, persistentErr)
		// initial attempt + 2 retries
		assert.Equal(t, []uint64{1, 2, 3}, attempts)
	})

	t.Run("non-retryable error fails immediately", func(t *testing.T) {
		r := retryImpl.NewRetry(3,
			retry.WithInterval(time.Millisecond),
			retry.WithRetryable(func(err error) bool { return false }),
		)
		callCount := 0

		err := r.Execute(context.Background(), func(context.Context) error {
			callCount++
			return errors.New("fatal error")
		})

		assert.ErrorContains(t, err, "fatal error")
		assert.Equal(t, 1, callCount)
	})

	t.Run("capped interval bounds the wait", func(t *testing.T) {
		r := retryImpl.NewRetry(3,
			retry.WithInterval(50*time.Millisecond),
			retry.WithMaxInterval(time.Millisecond),
		)

		start := time.Now()
		_ = r.Execute(context.Background(), func(context.Context) error {
			return errors.New("error")
		})

		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		r := retryImpl.NewRetry(100, retry.WithInterval(time.Second))

		ctx, cancel := context.WithCancel(context.Background())
		callCount := 0

		go func() {
			time.Sleep(50 * time.Millisecond)
			cancel()
		}()

		err := r.Execute(ctx, func(context.Context) error {
			callCount++
			return errors.New("keep failing")
		})

		assert.Error(t, err)
		assert.LessOrEqual(t, callCount, 3)
	})
}
