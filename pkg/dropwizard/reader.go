package dropwizard

import "sort"

// Reader is the read-only view of a metric registry. go-metrics'
// Registry satisfies it.
type Reader interface {
	Each(fn func(name string, metric any))
}

type entry struct {
	name   string
	metric any
}

func sortedEntries(r Reader) []entry {
	var out []entry
	r.Each(func(name string, metric any) {
		out = append(out, entry{name: name, metric: metric})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
