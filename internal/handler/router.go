package handler

import (
	"net/http"

	"github.com/jt828/dropwizard-fixture/pkg/dropwizard"
	"github.com/jt828/dropwizard-fixture/pkg/observability"
	"github.com/jt828/dropwizard-fixture/pkg/snowflake"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Dependencies struct {
	Logger observability.Logger
	Meter  observability.Meter
	Tracer observability.Tracer
	IDs    snowflake.Generator
}

// NewRouter mounts GET /metrics and GET /test. Both routes are instrumented,
// carry a request ID and recover from panics; the whole router is traced.
func NewRouter(reg dropwizard.Reader, deps Dependencies) http.Handler {
	inst := newInstrumentation(deps.Meter)

	route := func(path string, h http.Handler) http.Handler {
		h = Recover(deps.Logger, h)
		h = RequestID(deps.IDs, h)
		return inst.wrap(path, h)
	}

	mux := http.NewServeMux()
	mux.Handle("GET "+MetricsPath, route(MetricsPath, Metrics(reg, deps.Tracer, deps.Logger)))
	mux.Handle("GET "+HelloPath, route(HelloPath, Hello(deps.Logger)))

	return otelhttp.NewHandler(mux, "fixture")
}
