package observability

import "context"

type Tracer interface {
	// Start opens a span as a child of any span already in ctx.
	Start(ctx context.Context, name string) (context.Context, Span)
}

type Span interface {
	End()
	RecordError(err error)
}
