package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cell-osmosis/engine"
	"github.com/lixenwraith/cell-osmosis/events"
	"github.com/lixenwraith/cell-osmosis/render"
)

// Machine parses tcell events into Intents
// tcell reports button state on every mouse event, so presses are detected on the up-to-down edge
type Machine struct {
	buttons tcell.ButtonMask
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{}
}

// Process parses a tcell event; vp maps mouse cells to world coordinates
// Returns nil for events with no meaning to the simulation
func (m *Machine) Process(ev tcell.Event, vp render.Viewport) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev, vp)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return &Intent{Type: IntentQuit}
		}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse, vp render.Viewport) *Intent {
	prev := m.buttons
	m.buttons = ev.Buttons()

	if m.buttons&tcell.Button1 == 0 || prev&tcell.Button1 != 0 {
		return nil
	}
	col, row := ev.Position()
	x, y := vp.PressPoint(col, row, engine.RetryButton)
	return &Intent{Type: IntentPointerPress, X: x, Y: y}
}

// ToGameEvent converts a simulation-facing intent into a queue event
// Returns false for intents handled by the frontend itself (resize, none)
func ToGameEvent(in *Intent, now time.Time) (events.GameEvent, bool) {
	if in == nil {
		return events.GameEvent{}, false
	}
	switch in.Type {
	case IntentQuit:
		return events.GameEvent{Type: events.EventQuit, Timestamp: now}, true
	case IntentPointerPress:
		return events.GameEvent{
			Type:      events.EventPointerPress,
			Payload:   &events.PointerPayload{X: in.X, Y: in.Y},
			Timestamp: now,
		}, true
	}
	return events.GameEvent{}, false
}
