package implementation

import (
	"context"

	"github.com/jt828/dropwizard-fixture/pkg/retry"
	goretry "github.com/sethvargo/go-retry"
)

type goRetry struct {
	backoff     goretry.Backoff
	retryableFn func(err error) bool
	onRetry     func(attempt uint64, err error)
}

// NewRetry retries with exponential backoff, at most maxRetries times after
// the first attempt.
func NewRetry(maxRetries uint64, opts ...retry.Option) retry.Retry {
	cfg := retry.ApplyOptions(opts...)

	backoff := goretry.NewExponential(cfg.Interval)
	if cfg.MaxInterval > 0 {
		backoff = goretry.WithCappedDuration(cfg.MaxInterval, backoff)
	}

	return &goRetry{
		backoff:     goretry.WithMaxRetries(maxRetries, backoff),
		retryableFn: cfg.RetryableFn,
		onRetry:     cfg.OnRetry,
	}
}

func (r *goRetry) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	var attempt uint64
	return goretry.Do(ctx, r.backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}

		if r.retryableFn != nil && !r.retryableFn(err) {
			return err
		}

		if r.onRetry != nil {
			r.onRetry(attempt, err)
		}
		return goretry.RetryableError(err)
	})
}
