package observability

type Label struct {
	Key   string
	Value string
}

// MetricOpt configures an instrument. LabelKeys lists the variable labels;
// every observation must supply exactly those keys.
type MetricOpt struct {
	Help        string
	Buckets     []float64
	ConstLabels []Label
	LabelKeys   []string
}
