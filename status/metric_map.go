package status

import (
	"sort"
	"sync"
)

// MetricMap holds one lazily created value per name, e.g. an atomic counter per event type
// Counters are bumped from the frame loop and read when the session summary is logged
type MetricMap[T any] struct {
	mu     sync.RWMutex
	byName map[string]*T
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{
		byName: make(map[string]*T),
	}
}

// Get returns the value named key, creating a zero value on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.byName[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.byName[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.byName[key] = ptr
	return ptr
}

// Range visits values in name order so summaries are stable
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.byName))
	for k := range m.byName {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fn(k, m.byName[k])
	}
}

// Count returns how many names have been created
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byName)
}
