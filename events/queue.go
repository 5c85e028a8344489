package events

import (
	"sync/atomic"

	"github.com/lixenwraith/cell-osmosis/constants"
)

// EventQueue carries input presses and cell notifications between ticks
// Any goroutine may Push; only the frame loop drains it through Consume.
// A slot is readable once its ready flag is set, so a half-written event is never returned.
// When more than EventQueueSize events pile up between two frames the oldest are dropped.
type EventQueue struct {
	slots [constants.EventQueueSize]GameEvent
	ready [constants.EventQueueSize]atomic.Bool
	read  atomic.Uint64
	write atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends ev, dropping the oldest unread event if the ring is full
func (eq *EventQueue) Push(ev GameEvent) {
	seq := eq.write.Add(1) - 1
	i := seq & constants.EventBufferMask

	eq.slots[i] = ev
	eq.ready[i].Store(true)

	if r := eq.read.Load(); seq+1-r > constants.EventQueueSize {
		eq.read.CompareAndSwap(r, seq+1-constants.EventQueueSize)
	}
}

// Consume returns every published event oldest first, or nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	for {
		r := eq.read.Load()
		w := eq.write.Load()
		if w == r {
			return nil
		}

		pending := w - r
		if pending > constants.EventQueueSize {
			pending = constants.EventQueueSize
			r = w - constants.EventQueueSize
		}

		out := make([]GameEvent, 0, pending)
		for seq := r; seq < r+pending; seq++ {
			i := seq & constants.EventBufferMask
			// Stop at a slot whose producer has not finished; it is picked up next frame
			if !eq.ready[i].Load() {
				break
			}
			out = append(out, eq.slots[i])
			eq.ready[i].Store(false)
		}

		if eq.read.CompareAndSwap(r, r+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len returns the number of unread events
func (eq *EventQueue) Len() int {
	n := eq.write.Load() - eq.read.Load()
	if n > constants.EventQueueSize {
		n = constants.EventQueueSize
	}
	return int(n)
}
