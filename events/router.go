package events

// Handler reacts to a subset of event types; T is whatever the frame loop passes in,
// the simulation for input handling, audio and logging
type Handler[T any] interface {
	HandleEvent(ctx T, event GameEvent)
	EventTypes() []EventType
}

// Router fans queued events out to handlers once per frame, on the frame loop goroutine
// Handlers subscribed to the same type run in registration order, so the input system
// registered first sees a press before any listener sees the resulting reset.
type Router[T any] struct {
	byType map[EventType][]Handler[T]
	queue  *EventQueue
}

// NewRouter creates a router draining queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		byType: make(map[EventType][]Handler[T]),
		queue:  queue,
	}
}

// Register subscribes h to each type it declares
func (r *Router[T]) Register(h Handler[T]) {
	for _, et := range h.EventTypes() {
		r.byType[et] = append(r.byType[et], h)
	}
}

// DispatchAll drains the queue and delivers each event in arrival order
// Events pushed by handlers during dispatch wait for the next frame. Returns the count drained
func (r *Router[T]) DispatchAll(ctx T) int {
	batch := r.queue.Consume()
	for _, ev := range batch {
		for _, h := range r.byType[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
	return len(batch)
}

// HandlerCount returns how many handlers are subscribed to et
func (r *Router[T]) HandlerCount(et EventType) int {
	return len(r.byType[et])
}
