package engine

import (
	"github.com/lixenwraith/cell-osmosis/events"
)

// InputSystem applies frontend input events to the simulation
type InputSystem struct{}

// NewInputSystem creates the input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// EventTypes returns the input events this system consumes
func (is *InputSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventQuit,
		events.EventPointerPress,
	}
}

// HandleEvent stops the loop on quit and forwards presses to the retry control
func (is *InputSystem) HandleEvent(sim *Simulation, ev events.GameEvent) {
	switch ev.Type {
	case events.EventQuit:
		sim.Stop()
	case events.EventPointerPress:
		if p, ok := ev.Payload.(*events.PointerPayload); ok {
			sim.PressRetry(p.X, p.Y)
		}
	}
}
