package engine

import (
	"log"

	"github.com/lixenwraith/cell-osmosis/events"
)

// LogHandler writes cell lifecycle notifications to the standard logger
type LogHandler struct{}

// NewLogHandler creates the lifecycle logger
func NewLogHandler() *LogHandler {
	return &LogHandler{}
}

func (lh *LogHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventApoptosis,
		events.EventFragmentShed,
		events.EventCellReset,
	}
}

func (lh *LogHandler) HandleEvent(sim *Simulation, ev events.GameEvent) {
	switch p := ev.Payload.(type) {
	case *events.CellPayload:
		log.Printf("[frame %d] %s: radius=%.2f health=%.2f", ev.Frame, ev.Type, p.Radius, p.Health)
	case *events.FragmentPayload:
		log.Printf("[frame %d] %s: at (%.0f,%.0f) r=%.0f total=%d", ev.Frame, ev.Type, p.X, p.Y, p.Radius, len(sim.State.Fragments))
	default:
		log.Printf("[frame %d] %s", ev.Frame, ev.Type)
	}
}
