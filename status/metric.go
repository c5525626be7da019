package status

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
)

// Gauge is an atomically updated float64, the zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

// Set stores v
func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

// Value loads the current value
func (g *Gauge) Value() float64 {
	return math.Float64frombits(g.bits.Load())
}

// MetricMap is a named set of metrics of type T
// Lookup takes a read lock, the first lookup of a name allocates under the write lock
// Callers may cache the returned pointer and update it lock-free
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

// NewMetricMap creates an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric for name, creating it if absent
func (m *MetricMap[T]) Get(name string) *T {
	m.mu.RLock()
	ptr, ok := m.items[name]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[name]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[name] = ptr
	return ptr
}

// Range calls fn for every metric in name order
func (m *MetricMap[T]) Range(fn func(name string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.items))
	for k := range m.items {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fn(k, m.items[k])
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
