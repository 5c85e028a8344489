package terminal

import (
	"bytes"
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cell-osmosis/engine"
	"github.com/lixenwraith/cell-osmosis/input"
	"github.com/lixenwraith/cell-osmosis/render"
)

func newTestService(t *testing.T) (*TerminalService, tcell.SimulationScreen, *engine.Driver) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	svc := NewService(screen)
	if err := svc.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(svc.Stop)

	d, err := engine.NewDriver(rand.New(rand.NewSource(1)), engine.NewMockTimeProvider(time.Unix(0, 0)))
	if err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}
	return svc, screen, d
}

// TestFrameDrawsStats verifies one frame renders the counters onto the screen
func TestFrameDrawsStats(t *testing.T) {
	svc, screen, d := newTestService(t)
	tp := engine.NewMonotonicTimeProvider()
	surface := render.NewTerminalSurface(screen)

	running, err := svc.frame(d, tp, input.NewMachine(), surface)
	if !running || err != nil {
		t.Fatalf("Expected frame to run, got running=%v err=%v", running, err)
	}

	// "water: N" starts at world (10,10), the first cell of row 0
	var got []rune
	for col := 1; col < 7; col++ {
		ch, _, _, _ := screen.GetContent(col, 0)
		got = append(got, ch)
	}
	if string(got) != "water:" {
		t.Errorf("Expected stats line on row 0, got %q", string(got))
	}

	// health and status fall in the same 25-unit row at 80x24 and must still both show
	for row, prefix := range []string{"water:", "solute:", "health:", "status:"} {
		got = got[:0]
		for col := 1; col <= len(prefix); col++ {
			ch, _, _, _ := screen.GetContent(col, row)
			got = append(got, ch)
		}
		if string(got) != prefix {
			t.Errorf("Row %d = %q, want prefix %q", row, string(got), prefix)
		}
	}
}

// TestFrameQuitKey verifies a queued quit key ends the loop before ticking
func TestFrameQuitKey(t *testing.T) {
	svc, screen, d := newTestService(t)
	surface := render.NewTerminalSurface(screen)

	svc.eventCh <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)

	running, err := svc.frame(d, engine.NewMonotonicTimeProvider(), input.NewMachine(), surface)
	if running || err != nil {
		t.Errorf("Expected clean stop, got running=%v err=%v", running, err)
	}
	if d.Sim.Frame() != 0 {
		t.Errorf("Expected no tick after quit, frame=%d", d.Sim.Frame())
	}
}

// TestFrameRetryClick verifies a click on the retry control's cells resets a dying cell
func TestFrameRetryClick(t *testing.T) {
	svc, screen, d := newTestService(t)
	surface := render.NewTerminalSurface(screen)
	d.Sim.State.Cell = engine.CellState{Radius: 10, Health: 0, Apoptotic: true}

	// Cell (40,22) maps to world (405, 562.5), inside the button
	svc.eventCh <- tcell.NewEventMouse(40, 22, tcell.Button1, tcell.ModNone)

	if _, err := svc.frame(d, engine.NewMonotonicTimeProvider(), input.NewMachine(), surface); err != nil {
		t.Fatalf("frame failed: %v", err)
	}
	if d.Sim.State.Cell.Apoptotic {
		t.Error("Expected click on retry control to reset the cell")
	}
}

// TestRunStopsOnQuit verifies the full loop with the poller exits on a quit key
func TestRunStopsOnQuit(t *testing.T) {
	svc, screen, d := newTestService(t)
	svc.Start()
	screen.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))

	done := make(chan error, 1)
	go func() { done <- svc.Run(d, engine.NewMonotonicTimeProvider()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after quit")
	}
}

func TestEmergencyReset(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)
	out := buf.String()
	for _, seq := range [][]byte{csiCursorShow, csiAltScreenExit, csiMouseClickOff} {
		if !bytes.Contains([]byte(out), seq) {
			t.Errorf("Expected reset output to contain %q", seq)
		}
	}
}
