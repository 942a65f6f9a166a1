package bootstrap

import (
	"context"
	"errors"
	"net"
	"syscall"
	"time"

	"github.com/jt828/dropwizard-fixture/pkg/observability"
	"github.com/jt828/dropwizard-fixture/pkg/retry"
	retryImpl "github.com/jt828/dropwizard-fixture/pkg/retry/implementation"
)

// NewListenRetry retries binds that fail because the address is still held,
// typically by the previous process during a restart.
func NewListenRetry(log observability.Logger) retry.Retry {
	return retryImpl.NewRetry(5,
		retry.WithInterval(100*time.Millisecond),
		retry.WithMaxInterval(2*time.Second),
		retry.WithRetryable(func(err error) bool {
			return errors.Is(err, syscall.EADDRINUSE)
		}),
		retry.WithOnRetry(func(attempt uint64, err error) {
			log.Warn("listen failed, retrying", observability.Int64("attempt", int64(attempt)), observability.Err(err))
		}),
	)
}

func Listen(ctx context.Context, addr string, r retry.Retry) (net.Listener, error) {
	var (
		lc  net.ListenConfig
		lis net.Listener
	)
	err := r.Execute(ctx, func(ctx context.Context) error {
		l, err := lc.Listen(ctx, "tcp", addr)
		if err != nil {
			return err
		}
		lis = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lis, nil
}
