package engine

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/cell-osmosis/events"
)

// fixedRandom returns the same draws forever
// Float64 = f, Intn(n) = n/2 (centre of any randint range)
type fixedRandom struct {
	f float64
}

func (r fixedRandom) Float64() float64 { return r.f }
func (r fixedRandom) Intn(n int) int   { return n / 2 }

// newTestSimulation creates a seeded simulation with its own queue
func newTestSimulation(t *testing.T, seed int64) (*Simulation, *events.EventQueue) {
	t.Helper()
	q := events.NewEventQueue()
	sim, err := NewSimulation(rand.New(rand.NewSource(seed)), q, NewMockTimeProvider(time.Unix(0, 0)))
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	q.Consume() // drop the startup reset event
	return sim, q
}

// stationary returns n particles of the given kind parked at the cell centre
func stationary(kind ParticleKind, n int) []Particle {
	ps := make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		ps = append(ps, NewParticle(kind, 400, 300, 0, 0))
	}
	return ps
}

// setInterior replaces the state with a still interior and no exterior particles
// Random draws are pinned high so nothing is absorbed or shed by chance
func setInterior(sim *Simulation, water, solute int, radius, health float64) {
	sim.rng = fixedRandom{f: 0.99}
	sim.State = State{
		Cell:     CellState{Radius: radius, Health: health},
		Interior: append(stationary(KindWater, water), stationary(KindSolute, solute)...),
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func hasEvent(evs []events.GameEvent, et events.EventType) bool {
	for _, ev := range evs {
		if ev.Type == et {
			return true
		}
	}
	return false
}
