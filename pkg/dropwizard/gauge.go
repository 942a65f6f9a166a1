package dropwizard

// GaugeFunc computes a gauge reading. ok is false when there is no value.
type GaugeFunc func() (value any, ok bool)

// Gauge is a metric whose value is computed by fn on every read.
type Gauge struct {
	fn GaugeFunc
}

func NewGauge(fn GaugeFunc) *Gauge {
	return &Gauge{fn: fn}
}

// Value evaluates the gauge. A nil function reads as absent.
func (g *Gauge) Value() (any, bool) {
	if g == nil || g.fn == nil {
		return nil, false
	}
	return g.fn()
}

// Absent is a GaugeFunc that never has a value.
func Absent() (any, bool) {
	return nil, false
}
