package bootstrap_test

import (
	"context"
	"testing"

	"github.com/jt828/dropwizard-fixture/internal/bootstrap"
	"github.com/jt828/dropwizard-fixture/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type warnLogger struct {
	warns int
}

func (l *warnLogger) Debug(msg string, fields ...observability.Field)         {}
func (l *warnLogger) Error(msg string, fields ...observability.Field)         {}
func (l *warnLogger) Fatal(msg string, fields ...observability.Field)         {}
func (l *warnLogger) Info(msg string, fields ...observability.Field)          {}
func (l *warnLogger) Warn(msg string, fields ...observability.Field)          { l.warns++ }
func (l *warnLogger) With(fields ...observability.Field) observability.Logger { return l }

func TestListen(t *testing.T) {
	t.Run("binds a free port", func(t *testing.T) {
		lis, err := bootstrap.Listen(context.Background(), "127.0.0.1:0", bootstrap.NewListenRetry(&warnLogger{}))
		require.NoError(t, err)
		defer lis.Close()

		assert.NotEmpty(t, lis.Addr().String())
	})

	t.Run("retries while the address is held", func(t *testing.T) {
		held, err := bootstrap.Listen(context.Background(), "127.0.0.1:0", bootstrap.NewListenRetry(&warnLogger{}))
		require.NoError(t, err)
		defer held.Close()

		log := &warnLogger{}
		_, err = bootstrap.Listen(context.Background(), held.Addr().String(), bootstrap.NewListenRetry(log))
		assert.Error(t, err)
		// the first attempt plus five retries
		assert.Equal(t, 6, log.warns)
	})

	t.Run("invalid address fails without retrying", func(t *testing.T) {
		log := &warnLogger{}
		_, err := bootstrap.Listen(context.Background(), "not-an-address", bootstrap.NewListenRetry(log))
		assert.Error(t, err)
		assert.Zero(t, log.warns)
	})
}
