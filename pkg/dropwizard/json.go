package dropwizard

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/rcrowley/go-metrics"
)

// Version is reported in the "version" field of every document.
const Version = "4.0.0"

const (
	rateUnits     = "events/second"
	callRateUnits = "calls/second"
	durationUnits = "seconds"
)

var percentiles = []float64{0.5, 0.75, 0.95, 0.98, 0.99, 0.999}

type Options struct {
	Pretty bool
}

type document struct {
	Version    string         `json:"version"`
	Gauges     map[string]any `json:"gauges"`
	Counters   map[string]any `json:"counters"`
	Histograms map[string]any `json:"histograms"`
	Meters     map[string]any `json:"meters"`
	Timers     map[string]any `json:"timers"`
}

type gaugeJSON struct {
	Value any `json:"value"`
}

type counterJSON struct {
	Count int64 `json:"count"`
}

type histogramJSON struct {
	Count  int64   `json:"count"`
	Max    int64   `json:"max"`
	Mean   float64 `json:"mean"`
	Min    int64   `json:"min"`
	P50    float64 `json:"p50"`
	P75    float64 `json:"p75"`
	P95    float64 `json:"p95"`
	P98    float64 `json:"p98"`
	P99    float64 `json:"p99"`
	P999   float64 `json:"p999"`
	StdDev float64 `json:"stddev"`
}

type meterJSON struct {
	Count    int64   `json:"count"`
	M15Rate  float64 `json:"m15_rate"`
	M1Rate   float64 `json:"m1_rate"`
	M5Rate   float64 `json:"m5_rate"`
	MeanRate float64 `json:"mean_rate"`
	Units    string  `json:"units"`
}

type timerJSON struct {
	Count         int64   `json:"count"`
	Max           float64 `json:"max"`
	Mean          float64 `json:"mean"`
	Min           float64 `json:"min"`
	P50           float64 `json:"p50"`
	P75           float64 `json:"p75"`
	P95           float64 `json:"p95"`
	P98           float64 `json:"p98"`
	P99           float64 `json:"p99"`
	P999          float64 `json:"p999"`
	StdDev        float64 `json:"stddev"`
	M15Rate       float64 `json:"m15_rate"`
	M1Rate        float64 `json:"m1_rate"`
	M5Rate        float64 `json:"m5_rate"`
	MeanRate      float64 `json:"mean_rate"`
	DurationUnits string  `json:"duration_units"`
	RateUnits     string  `json:"rate_units"`
}

// Snapshot groups the metrics of r the way Dropwizard's MetricsServlet does.
// Metrics of unknown types are left out.
func Snapshot(r Reader) any {
	doc := document{
		Version:    Version,
		Gauges:     map[string]any{},
		Counters:   map[string]any{},
		Histograms: map[string]any{},
		Meters:     map[string]any{},
		Timers:     map[string]any{},
	}

	for _, e := range sortedEntries(r) {
		switch m := e.metric.(type) {
		case *Gauge:
			v, ok := m.Value()
			if !ok {
				v = nil
			}
			doc.Gauges[e.name] = gaugeJSON{Value: v}
		case metrics.Gauge:
			doc.Gauges[e.name] = gaugeJSON{Value: m.Snapshot().Value()}
		case metrics.GaugeFloat64:
			doc.Gauges[e.name] = gaugeJSON{Value: finite(m.Snapshot().Value())}
		case metrics.Counter:
			doc.Counters[e.name] = counterJSON{Count: m.Snapshot().Count()}
		case metrics.Histogram:
			doc.Histograms[e.name] = histogramOf(m.Snapshot())
		case metrics.Meter:
			doc.Meters[e.name] = meterOf(m.Snapshot())
		case metrics.Timer:
			doc.Timers[e.name] = timerOf(m.Snapshot())
		}
	}

	return doc
}

// WriteJSON encodes the snapshot of r to w.
func WriteJSON(w io.Writer, r Reader, opts Options) error {
	var (
		b   []byte
		err error
	)
	if opts.Pretty {
		b, err = json.MarshalIndent(Snapshot(r), "", "  ")
	} else {
		b, err = json.Marshal(Snapshot(r))
	}
	if err != nil {
		return fmt.Errorf("encode metrics: %w", err)
	}

	_, err = w.Write(b)
	return err
}

func histogramOf(h metrics.Histogram) histogramJSON {
	ps := h.Percentiles(percentiles)
	return histogramJSON{
		Count:  h.Count(),
		Max:    h.Max(),
		Mean:   finite(h.Mean()),
		Min:    h.Min(),
		P50:    finite(ps[0]),
		P75:    finite(ps[1]),
		P95:    finite(ps[2]),
		P98:    finite(ps[3]),
		P99:    finite(ps[4]),
		P999:   finite(ps[5]),
		StdDev: finite(h.StdDev()),
	}
}

func meterOf(m metrics.Meter) meterJSON {
	return meterJSON{
		Count:    m.Count(),
		M15Rate:  finite(m.Rate15()),
		M1Rate:   finite(m.Rate1()),
		M5Rate:   finite(m.Rate5()),
		MeanRate: finite(m.RateMean()),
		Units:    rateUnits,
	}
}

func timerOf(t metrics.Timer) timerJSON {
	ps := t.Percentiles(percentiles)
	return timerJSON{
		Count:         t.Count(),
		Max:           seconds(float64(t.Max())),
		Mean:          seconds(t.Mean()),
		Min:           seconds(float64(t.Min())),
		P50:           seconds(ps[0]),
		P75:           seconds(ps[1]),
		P95:           seconds(ps[2]),
		P98:           seconds(ps[3]),
		P99:           seconds(ps[4]),
		P999:          seconds(ps[5]),
		StdDev:        seconds(t.StdDev()),
		M15Rate:       finite(t.Rate15()),
		M1Rate:        finite(t.Rate1()),
		M5Rate:        finite(t.Rate5()),
		MeanRate:      finite(t.RateMean()),
		DurationUnits: durationUnits,
		RateUnits:     callRateUnits,
	}
}

// seconds converts a go-metrics timer reading (nanoseconds) to seconds.
func seconds(ns float64) float64 {
	return finite(ns / float64(time.Second))
}

// finite maps NaN and infinities to zero; encoding/json rejects them.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
