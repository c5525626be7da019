package status

import (
	"sort"
	"sync/atomic"
)

// Registry holds the process counters and gauges, safe for concurrent use
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[Gauge]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[Gauge](),
	}
}

// Inc adds one to counter name and returns the new count
func (r *Registry) Inc(name string) int64 {
	return r.Counters.Get(name).Add(1)
}

// Count returns the value of counter name
func (r *Registry) Count(name string) int64 {
	return r.Counters.Get(name).Load()
}

// Set stores gauge name
func (r *Registry) Set(name string, v float64) {
	r.Gauges.Get(name).Set(v)
}

// Gauge returns the value of gauge name
func (r *Registry) Gauge(name string) float64 {
	return r.Gauges.Get(name).Value()
}

// Snapshot copies every metric into a plain map, counters and gauges share the namespace
func (r *Registry) Snapshot() map[string]float64 {
	out := make(map[string]float64, r.Counters.Count()+r.Gauges.Count())
	r.Counters.Range(func(name string, c *atomic.Int64) {
		out[name] = float64(c.Load())
	})
	r.Gauges.Range(func(name string, g *Gauge) {
		out[name] = g.Value()
	})
	return out
}

// Range calls fn for every metric of a snapshot in name order
func (r *Registry) Range(fn func(name string, v float64)) {
	snap := r.Snapshot()
	names := make([]string, 0, len(snap))
	for k := range snap {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fn(k, snap[k])
	}
}
