package handler

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/jt828/dropwizard-fixture/pkg/dropwizard"
	"github.com/jt828/dropwizard-fixture/pkg/observability"
)

const (
	MetricsPath = "/metrics"
	HelloPath   = "/test"

	helloBody = "hello world"
)

// Metrics serves the Dropwizard JSON snapshot of reg. ?pretty=true indents
// the document.
func Metrics(reg dropwizard.Reader, tracer observability.Tracer, log observability.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "dropwizard.snapshot")
		defer span.End()

		opts := dropwizard.Options{Pretty: strings.EqualFold(r.URL.Query().Get("pretty"), "true")}

		var buf bytes.Buffer
		if err := dropwizard.WriteJSON(&buf, reg, opts); err != nil {
			span.RecordError(err)
			log.Error("encode metrics snapshot", observability.Err(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "must-revalidate,no-cache,no-store")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(buf.Bytes()); err != nil {
			log.Debug("write metrics response", observability.Err(err))
		}
	}
}

// Hello answers reachability probes with a fixed body.
func Hello(log observability.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := io.WriteString(w, helloBody); err != nil {
			log.Debug("write hello response", observability.Err(err))
		}
	}
}
