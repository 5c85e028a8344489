package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/cell-osmosis/constants"
	"github.com/lixenwraith/cell-osmosis/events"
)

func TestRetryButtonContains(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"Top left corner", 350, 550, true},
		{"Centre", 400, 570, true},
		{"Just inside bottom right", 449.9, 589.9, true},
		{"Right edge", 450, 560, false},
		{"Bottom edge", 400, 590, false},
		{"Left of button", 349.9, 560, false},
		{"Cell centre", 400, 300, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RetryButton.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// TestPressRetryWhileAlive verifies the retry control is inert while the cell lives
func TestPressRetryWhileAlive(t *testing.T) {
	sim, _ := newTestSimulation(t, 1)
	sim.State.Cell = CellState{Radius: 77, Health: 33}

	if sim.PressRetry(400, 570) {
		t.Error("Expected press to be ignored while alive")
	}
	if sim.State.Cell.Radius != 77 || sim.State.Cell.Health != 33 {
		t.Errorf("State changed by ignored press: %+v", sim.State.Cell)
	}
}

// TestPressRetryWhileApoptotic verifies only presses inside the control reset the cell
func TestPressRetryWhileApoptotic(t *testing.T) {
	sim, _ := newTestSimulation(t, 1)
	sim.State.Cell = CellState{Radius: 10, Health: 0, Apoptotic: true}
	sim.State.Fragments = []Fragment{{X: 400, Y: 300, Radius: 7}}

	if sim.PressRetry(100, 100) {
		t.Error("Expected press outside the control to be ignored")
	}
	if !sim.State.Cell.Apoptotic {
		t.Fatal("Press outside the control must not clear apoptosis")
	}

	if !sim.PressRetry(400, 570) {
		t.Fatal("Expected press inside the control to reset")
	}
	c := sim.State.Cell
	if c.Radius != constants.CellInitialRadius || c.Health != constants.CellInitialHealth || c.Apoptotic {
		t.Errorf("Expected fresh cell after retry, got %+v", c)
	}
	if len(sim.State.Fragments) != 0 {
		t.Errorf("Expected fragments cleared after retry, got %d", len(sim.State.Fragments))
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		name          string
		water, solute int
		apoptotic     bool
		want          string
	}{
		{"Dead overrides counts", 40, 0, true, constants.StatusDead},
		{"Swelling", 16, 10, false, constants.StatusSwelling},
		{"Exactly 1.5x is normal", 15, 10, false, constants.StatusNormal},
		{"Shrinking", 10, 16, false, constants.StatusShrinking},
		{"Empty cell", 0, 0, false, constants.StatusNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := State{
				Cell:         CellState{Apoptotic: tt.apoptotic},
				WaterInside:  tt.water,
				SoluteInside: tt.solute,
			}
			if got := st.Status(); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}

func newTestDriver(t *testing.T) *Driver {
	t.Helper()
	d, err := NewDriver(rand.New(rand.NewSource(42)), NewMockTimeProvider(time.Unix(0, 0)))
	if err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}
	return d
}

// TestDriverQuit verifies a quit event ends the loop before the next tick
func TestDriverQuit(t *testing.T) {
	d := newTestDriver(t)

	running, err := d.Step()
	if !running || err != nil {
		t.Fatalf("Expected first step to run, got running=%v err=%v", running, err)
	}
	frame := d.Sim.Frame()

	d.Push(events.GameEvent{Type: events.EventQuit})
	running, err = d.Step()
	if running || err != nil {
		t.Errorf("Expected clean stop, got running=%v err=%v", running, err)
	}
	if d.Sim.Frame() != frame {
		t.Errorf("No tick expected after quit, frame %d -> %d", frame, d.Sim.Frame())
	}
}

// TestDriverRetryPress verifies pointer events reach the retry control through the router
func TestDriverRetryPress(t *testing.T) {
	d := newTestDriver(t)
	d.Sim.State.Cell = CellState{Radius: 10, Health: 0, Apoptotic: true}

	d.Push(events.GameEvent{Type: events.EventPointerPress, Payload: &events.PointerPayload{X: 400, Y: 570}})
	if running, err := d.Step(); !running || err != nil {
		t.Fatalf("Step failed: running=%v err=%v", running, err)
	}
	if d.Sim.State.Cell.Apoptotic {
		t.Error("Expected retry press to reset the cell")
	}
}

// TestDriverResetFailureIsFatal verifies a failed retry stops the loop with the error
func TestDriverResetFailureIsFatal(t *testing.T) {
	d := newTestDriver(t)
	d.Sim.State.Cell = CellState{Radius: 10, Health: 0, Apoptotic: true}
	d.Sim.rng = fixedRandom{f: 0.5}

	d.Push(events.GameEvent{Type: events.EventPointerPress, Payload: &events.PointerPayload{X: 400, Y: 570}})
	running, err := d.Step()
	if running {
		t.Error("Expected loop to stop")
	}
	if err == nil {
		t.Error("Expected placement error")
	}
}

// TestEmittedEventsCarryFrameAndClock checks notifications are stamped with the tick and the provider's time
func TestEmittedEventsCarryFrameAndClock(t *testing.T) {
	start := time.Unix(100, 0)
	tp := NewMockTimeProvider(start)
	q := events.NewEventQueue()
	sim, err := NewSimulation(rand.New(rand.NewSource(3)), q, tp)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}

	evs := q.Consume()
	if len(evs) != 1 || evs[0].Type != events.EventCellReset || !evs[0].Timestamp.Equal(start) {
		t.Fatalf("Expected one reset stamped %v, got %+v", start, evs)
	}

	sim.State.Cell = CellState{Radius: 100, Health: 0, Apoptotic: true}
	sim.Tick()
	sim.Tick()
	tp.Advance(2 * time.Second)
	if !sim.PressRetry(400, 570) {
		t.Fatal("Expected retry press to reset")
	}

	var reset *events.GameEvent
	for _, ev := range q.Consume() {
		if ev.Type == events.EventCellReset {
			reset = &ev
		}
	}
	if reset == nil {
		t.Fatal("Expected a reset event after retry")
	}
	if reset.Frame != 2 {
		t.Errorf("Expected frame 2, got %d", reset.Frame)
	}
	if want := start.Add(2 * time.Second); !reset.Timestamp.Equal(want) {
		t.Errorf("Expected timestamp %v, got %v", want, reset.Timestamp)
	}
}
