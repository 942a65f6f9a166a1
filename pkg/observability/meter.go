package observability

// Meter creates the service's own instruments. Every call registers a new
// collector, so each name must be requested once.
type Meter interface {
	Counter(name string, opts ...MetricOpt) Counter
	Histogram(name string, opts ...MetricOpt) Histogram
	Gauge(name string, opts ...MetricOpt) Gauge
	Timer(name string, opts ...MetricOpt) Timer
}

type Counter interface {
	Inc(v float64, labels ...Label)
}

type Histogram interface {
	Observe(v float64, labels ...Label)
}

type Gauge interface {
	Set(v float64, labels ...Label)
	Add(v float64, labels ...Label)
}

// Timer observes elapsed seconds. The labels passed to the returned stop
// function are merged over the ones given to Start.
type Timer interface {
	Start(labels ...Label) func(labels ...Label)
}
