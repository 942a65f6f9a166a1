package retry

import (
	"context"
	"time"
)

type Retry interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}

type Config struct {
	RetryableFn func(err error) bool
	Interval    time.Duration
	MaxInterval time.Duration
	// OnRetry sees every retryable failure, the final one included.
	OnRetry func(attempt uint64, err error)
}

type Option func(*Config)

func WithRetryable(fn func(err error) bool) Option {
	return func(c *Config) {
		c.RetryableFn = fn
	}
}

func WithInterval(d time.Duration) Option {
	return func(c *Config) {
		c.Interval = d
	}
}

func WithMaxInterval(d time.Duration) Option {
	return func(c *Config) {
		c.MaxInterval = d
	}
}

func WithOnRetry(fn func(attempt uint64, err error)) Option {
	return func(c *Config) {
		c.OnRetry = fn
	}
}

func ApplyOptions(opts ...Option) *Config {
	c := &Config{Interval: 100 * time.Millisecond}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
