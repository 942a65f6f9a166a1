package observability

import "context"

type Observability interface {
	Close(ctx context.Context) error
	Logger() Logger
	Meter() Meter
	// Start serves the meter's metrics on the configured address.
	Start(ctx context.Context) error
	Tracer() Tracer
}
