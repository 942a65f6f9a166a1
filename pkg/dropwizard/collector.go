package dropwizard

import (
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rcrowley/go-metrics"
)

type collector struct {
	reader Reader
}

// NewCollector exposes the metrics of r in the Prometheus format. Counters and
// gauges become gauges, meters become "<name>_total" counters, histograms and
// timers become summaries (timers in seconds). Absent gauge readings are
// skipped.
//
// The collector is unchecked: the set of metrics is only known on Collect.
func NewCollector(r Reader) prometheus.Collector {
	return &collector{reader: r}
}

func (c *collector) Describe(chan<- *prometheus.Desc) {}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	for _, e := range sortedEntries(c.reader) {
		base, labels := ParseName(e.name)
		name := sanitizeName(base)
		constLabels := make(prometheus.Labels, len(labels))
		for k, v := range labels {
			constLabels[strings.ReplaceAll(sanitizeName(k), ":", "_")] = v
		}

		switch m := e.metric.(type) {
		case *Gauge:
			v, ok := m.Value()
			if !ok {
				continue
			}
			f, ok := toFloat(v)
			if !ok {
				continue
			}
			ch <- constMetric(desc(name, "gauge", e.name, constLabels), prometheus.GaugeValue, f)
		case metrics.Gauge:
			ch <- constMetric(desc(name, "gauge", e.name, constLabels), prometheus.GaugeValue, float64(m.Snapshot().Value()))
		case metrics.GaugeFloat64:
			ch <- constMetric(desc(name, "gauge", e.name, constLabels), prometheus.GaugeValue, m.Snapshot().Value())
		case metrics.Counter:
			ch <- constMetric(desc(name, "counter", e.name, constLabels), prometheus.GaugeValue, float64(m.Snapshot().Count()))
		case metrics.Meter:
			ch <- constMetric(desc(name+"_total", "meter", e.name, constLabels), prometheus.CounterValue, float64(m.Snapshot().Count()))
		case metrics.Histogram:
			h := m.Snapshot()
			ch <- summary(desc(name, "histogram", e.name, constLabels), h.Count(), float64(h.Sum()), h.Percentiles(percentiles), 1)
		case metrics.Timer:
			t := m.Snapshot()
			scale := 1 / float64(time.Second)
			ch <- summary(desc(name+"_seconds", "timer", e.name, constLabels), t.Count(), float64(t.Sum())*scale, t.Percentiles(percentiles), scale)
		}
	}
}

func desc(name, kind, raw string, constLabels prometheus.Labels) *prometheus.Desc {
	help := fmt.Sprintf("Dropwizard %s %s", kind, raw)
	return prometheus.NewDesc(name, help, nil, constLabels)
}

func constMetric(d *prometheus.Desc, t prometheus.ValueType, v float64) prometheus.Metric {
	m, err := prometheus.NewConstMetric(d, t, v)
	if err != nil {
		return prometheus.NewInvalidMetric(d, err)
	}
	return m
}

func summary(d *prometheus.Desc, count int64, sum float64, ps []float64, scale float64) prometheus.Metric {
	quantiles := make(map[float64]float64, len(percentiles))
	for i, q := range percentiles {
		quantiles[q] = finite(ps[i] * scale)
	}
	m, err := prometheus.NewConstSummary(d, uint64(count), finite(sum), quantiles)
	if err != nil {
		return prometheus.NewInvalidMetric(d, err)
	}
	return m
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// sanitizeName maps s onto the Prometheus metric/label name charset.
func sanitizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 1)
	for i, r := range s {
		switch {
		case r == '_' || r == ':' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
