package fixture

import (
	"fmt"
	"sort"

	"github.com/jt828/dropwizard-fixture/pkg/dropwizard"
	"github.com/rcrowley/go-metrics"
)

const (
	CounterName   = "my_counter{this=that}"
	MeterName     = "my_meter{this=that}"
	TimerName     = "my_timer"
	HistogramName = "my_histogram"
	GaugeName     = "my_gauge"
)

// Dropwizard's default exponentially decaying reservoir.
const (
	reservoirSize  = 1028
	reservoirAlpha = 0.015
)

// Fixture owns the registry of fixed metrics served to scrapers. It is
// populated once by Init and only read afterwards.
type Fixture struct {
	registry *dropwizard.Registry
	meter    metrics.Meter
	timer    metrics.Timer
}

// Init builds the registry: my_counter{this=that} incremented once, an
// unmarked meter, an empty timer and histogram, and a gauge without a value.
func Init() (*Fixture, error) {
	counter := metrics.NewCounter()
	meter := metrics.NewMeter()
	timer := metrics.NewTimer()
	histogram := metrics.NewHistogram(metrics.NewExpDecaySample(reservoirSize, reservoirAlpha))
	gauge := dropwizard.NewGauge(dropwizard.Absent)

	f := &Fixture{
		registry: dropwizard.NewRegistry(metrics.NewRegistry()),
		meter:    meter,
		timer:    timer,
	}

	entries := []struct {
		name   string
		metric any
	}{
		{CounterName, counter},
		{MeterName, meter},
		{TimerName, timer},
		{HistogramName, histogram},
		{GaugeName, gauge},
	}
	for _, e := range entries {
		if err := f.registry.Register(e.name, e.metric); err != nil {
			f.Close()
			return nil, fmt.Errorf("register %s: %w", e.name, err)
		}
	}

	counter.Inc(1)

	return f, nil
}

// Registry is the read-only view handed to the HTTP handlers.
func (f *Fixture) Registry() dropwizard.Reader {
	return f.registry
}

// Names returns the registered metric names in sorted order.
func (f *Fixture) Names() []string {
	var names []string
	f.registry.Each(func(name string, _ any) {
		names = append(names, name)
	})
	sort.Strings(names)
	return names
}

// Close stops the tickers behind the meter and the timer.
func (f *Fixture) Close() {
	f.meter.Stop()
	f.timer.Stop()
}
