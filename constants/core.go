package constants

import "time"

// Simulation Loop Timing
const (
	// TicksPerSecond is the fixed simulation and render rate
	TicksPerSecond = 60

	// FrameUpdateInterval is the frame limiter interval (~60 FPS)
	// Motion is expressed in world units per tick, there is no delta-time scaling
	FrameUpdateInterval = time.Second / TicksPerSecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
