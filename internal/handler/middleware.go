package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/jt828/dropwizard-fixture/pkg/observability"
	"github.com/jt828/dropwizard-fixture/pkg/snowflake"
)

const RequestIDHeader = "X-Request-Id"

// Recover turns a panic in next into a 500 and an error log.
func Recover(log observability.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("panic recovered",
					observability.String("panic", fmt.Sprintf("%v", rec)),
					observability.String("path", r.URL.Path),
					observability.String("request_id", w.Header().Get(RequestIDHeader)),
				)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// RequestID echoes the caller's X-Request-Id or assigns a new one.
func RequestID(ids snowflake.Generator, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = ids.GenerateString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

type instrumentation struct {
	requests observability.Counter
	duration observability.Timer
	inFlight observability.Gauge
	size     observability.Histogram
}

func newInstrumentation(meter observability.Meter) *instrumentation {
	return &instrumentation{
		requests: meter.Counter("fixture_http_requests_total", observability.MetricOpt{
			Help:      "Total number of HTTP requests served",
			LabelKeys: []string{"path", "code"},
		}),
		duration: meter.Timer("fixture_http_request_duration_seconds", observability.MetricOpt{
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			LabelKeys: []string{"path"},
		}),
		inFlight: meter.Gauge("fixture_http_requests_in_flight", observability.MetricOpt{
			Help:      "Number of HTTP requests being served",
			LabelKeys: []string{"path"},
		}),
		size: meter.Histogram("fixture_http_response_size_bytes", observability.MetricOpt{
			Help:      "Size of HTTP response bodies in bytes",
			Buckets:   []float64{16, 256, 1024, 4096, 16384},
			LabelKeys: []string{"path"},
		}),
	}
}

func (i *instrumentation) wrap(path string, next http.Handler) http.Handler {
	pathLabel := observability.Label{Key: "path", Value: path}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		i.inFlight.Add(1, pathLabel)
		defer i.inFlight.Add(-1, pathLabel)

		stop := i.duration.Start(pathLabel)
		m := httpsnoop.CaptureMetrics(next, w, r)
		stop()
		i.requests.Inc(1, pathLabel, observability.Label{Key: "code", Value: strconv.Itoa(m.Code)})
		i.size.Observe(float64(m.Written), pathLabel)
	})
}
