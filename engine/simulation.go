package engine

import (
	"github.com/lixenwraith/cell-osmosis/events"
)

// Simulation owns all cell and particle state and advances it one tick at a time
// Not safe for concurrent use: the frame loop is the only caller, input arrives through the event queue
type Simulation struct {
	State State

	rng          Random
	queue        *events.EventQueue
	timeProvider TimeProvider

	frame   int64
	running bool
	err     error
}

// NewSimulation creates a simulation and performs the initial Reset
func NewSimulation(rng Random, queue *events.EventQueue, tp TimeProvider) (*Simulation, error) {
	s := &Simulation{
		rng:          rng,
		queue:        queue,
		timeProvider: tp,
		running:      true,
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Running reports whether the loop should keep ticking
func (s *Simulation) Running() bool {
	return s.running
}

// Stop ends the loop after the current frame
func (s *Simulation) Stop() {
	s.running = false
}

// Err returns the fatal error that stopped the simulation, if any
func (s *Simulation) Err() error {
	return s.err
}

// Frame returns the number of ticks since startup
func (s *Simulation) Frame() int64 {
	return s.frame
}

// PressRetry handles a pointer press in world coordinates
// Resets only while apoptotic and when the point lies inside RetryButton, returns true if it did
func (s *Simulation) PressRetry(x, y float64) bool {
	if !s.State.Cell.Apoptotic || !RetryButton.Contains(x, y) {
		return false
	}
	if err := s.Reset(); err != nil {
		s.fail(err)
		return false
	}
	return true
}

func (s *Simulation) fail(err error) {
	s.err = err
	s.running = false
}

func (s *Simulation) emit(et events.EventType, payload any) {
	if s.queue == nil {
		return
	}
	s.queue.Push(events.GameEvent{
		Type:      et,
		Payload:   payload,
		Frame:     s.frame,
		Timestamp: s.timeProvider.Now(),
	})
}
