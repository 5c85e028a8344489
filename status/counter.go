package status

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/lixenwraith/cell-osmosis/events"
)

// EventCounter tallies routed events per type for the session summary
// It satisfies events.Handler for any router context
type EventCounter[T any] struct {
	types  []events.EventType
	counts *MetricMap[atomic.Int64]
}

// NewEventCounter counts the given event types
func NewEventCounter[T any](types ...events.EventType) *EventCounter[T] {
	return &EventCounter[T]{
		types:  types,
		counts: NewMetricMap[atomic.Int64](),
	}
}

func (c *EventCounter[T]) EventTypes() []events.EventType {
	return c.types
}

func (c *EventCounter[T]) HandleEvent(_ T, ev events.GameEvent) {
	c.counts.Get(ev.Type.String()).Add(1)
}

// Count returns the number of events of type t seen so far
func (c *EventCounter[T]) Count(t events.EventType) int64 {
	return c.counts.Get(t.String()).Load()
}

// Summary renders "name=count" pairs in name order
func (c *EventCounter[T]) Summary() string {
	var parts []string
	c.counts.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	return strings.Join(parts, " ")
}
