package dropwizard

import (
	"fmt"
	"sync"

	"github.com/rcrowley/go-metrics"
)

// Registry stores Gauges next to a go-metrics registry. go-metrics silently
// drops metric types it does not know, so Gauges cannot live in it.
type Registry struct {
	base metrics.Registry

	mu     sync.RWMutex
	gauges map[string]*Gauge
}

// NewRegistry wraps base. A nil base gets a fresh go-metrics registry.
func NewRegistry(base metrics.Registry) *Registry {
	if base == nil {
		base = metrics.NewRegistry()
	}
	return &Registry{
		base:   base,
		gauges: make(map[string]*Gauge),
	}
}

// Register adds metric under name. Names are unique across both stores;
// a taken name returns metrics.DuplicateMetric and types neither store
// can hold are rejected.
func (r *Registry) Register(name string, metric any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.gauges[name]; ok || r.base.Get(name) != nil {
		return metrics.DuplicateMetric(name)
	}

	switch m := metric.(type) {
	case *Gauge:
		r.gauges[name] = m
		return nil
	case metrics.Counter, metrics.Gauge, metrics.GaugeFloat64, metrics.Healthcheck,
		metrics.Histogram, metrics.Meter, metrics.Timer:
		return r.base.Register(name, m)
	default:
		return fmt.Errorf("metric %s: unsupported type %T", name, metric)
	}
}

// Each visits every metric in both stores.
func (r *Registry) Each(fn func(name string, metric any)) {
	r.base.Each(fn)

	r.mu.RLock()
	gauges := make(map[string]*Gauge, len(r.gauges))
	for k, v := range r.gauges {
		gauges[k] = v
	}
	r.mu.RUnlock()

	for name, g := range gauges {
		fn(name, g)
	}
}
