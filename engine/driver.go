package engine

import (
	"github.com/lixenwraith/cell-osmosis/events"
)

// Driver bundles the per-frame sequence shared by every frontend:
// drain queued events, then tick if still running
type Driver struct {
	Sim    *Simulation
	Queue  *events.EventQueue
	Router *events.Router[*Simulation]
}

// NewDriver wires a queue, router and simulation with the input system registered first
func NewDriver(rng Random, tp TimeProvider) (*Driver, error) {
	queue := events.NewEventQueue()
	sim, err := NewSimulation(rng, queue, tp)
	if err != nil {
		return nil, err
	}
	router := events.NewRouter[*Simulation](queue)
	router.Register(NewInputSystem())

	return &Driver{
		Sim:    sim,
		Queue:  queue,
		Router: router,
	}, nil
}

// Register adds a handler for simulation notifications (audio, logging)
func (d *Driver) Register(h events.Handler[*Simulation]) {
	d.Router.Register(h)
}

// Push enqueues an input event, safe from any goroutine
func (d *Driver) Push(ev events.GameEvent) {
	d.Queue.Push(ev)
}

// Step drains pending events and advances one tick
// Returns false when the loop should end, with the fatal error if one occurred
func (d *Driver) Step() (bool, error) {
	d.Router.DispatchAll(d.Sim)
	if err := d.Sim.Err(); err != nil {
		return false, err
	}
	if !d.Sim.Running() {
		return false, nil
	}
	d.Sim.Tick()
	return true, nil
}
