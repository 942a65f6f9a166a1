package implementation

import (
	"context"

	"github.com/jt828/dropwizard-fixture/pkg/observability"
)

type Config struct {
	ServiceName string
	LogLevel    string
	// MetricsAddr is where Start serves the Prometheus registry. Empty
	// disables the server.
	MetricsAddr string
	// OTLPEndpoint is the gRPC collector for traces. Empty installs a noop
	// tracer.
	OTLPEndpoint string
}

func NewObservability(ctx context.Context, cfg Config) (observability.Observability, error) {
	log, err := NewZapLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	meter := NewPrometheusMeter()

	tracer, shutdown, err := NewOtelTracer(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		return nil, err
	}

	return &observabilityImplementation{
		log:         log,
		meter:       meter,
		tracer:      tracer,
		metricsAddr: cfg.MetricsAddr,
		traceClose:  shutdown,
	}, nil
}
