package events

import (
	"time"
)

// EventType represents the type of simulation event
type EventType int

const (
	// EventQuit signals the user asked to end the simulation
	// Trigger: frontend terminate gesture (window close, Esc, Ctrl+C)
	// Consumer: Simulation | Payload: nil
	EventQuit EventType = iota

	// EventPointerPress signals a primary pointer press
	// Trigger: frontend mouse handling, coordinates already in world units
	// Consumer: Simulation (retry control) | Payload: *PointerPayload
	EventPointerPress

	// EventWaterEscaped signals a water particle left through the membrane
	// Trigger: Simulation tick | Payload: *ParticlePayload
	EventWaterEscaped

	// EventWaterAbsorbed signals an exterior water particle entered the cell
	// Trigger: Simulation tick | Payload: *ParticlePayload
	EventWaterAbsorbed

	// EventApoptosis signals the one-way transition into the apoptotic state
	// Trigger: Simulation tick when health reaches 0
	// Consumer: SoundManager, LogHandler | Payload: *CellPayload
	EventApoptosis

	// EventFragmentShed signals a fragment was emitted by the dying cell
	// Trigger: Simulation tick during apoptosis
	// Consumer: SoundManager | Payload: *FragmentPayload
	EventFragmentShed

	// EventCellReset signals all state was re-initialized
	// Trigger: startup and retry control
	// Consumer: SoundManager, LogHandler | Payload: *CellPayload
	EventCellReset
)

var typeNames = map[EventType]string{
	EventQuit:          "Quit",
	EventPointerPress:  "PointerPress",
	EventWaterEscaped:  "WaterEscaped",
	EventWaterAbsorbed: "WaterAbsorbed",
	EventApoptosis:     "Apoptosis",
	EventFragmentShed:  "FragmentShed",
	EventCellReset:     "CellReset",
}

// String returns the event name, or "Unknown" for unregistered types
func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent represents a single simulation event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64 // Tick that produced the event, 0 for input
	Timestamp time.Time
}
