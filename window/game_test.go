package window

import (
	"errors"
	"image"
	"math/rand"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/cell-osmosis/engine"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	tp := engine.NewMockTimeProvider(time.Unix(0, 0))
	d, err := engine.NewDriver(rand.New(rand.NewSource(1)), tp)
	if err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}
	return NewGame(d, tp)
}

func TestLayoutIsWorldSize(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Errorf("Layout = (%d,%d), want (800,600)", w, h)
	}
}

func TestAdvanceTicks(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 5; i++ {
		if err := g.advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}
	if g.driver.Sim.Frame() != 5 {
		t.Errorf("Expected 5 ticks, got %d", g.driver.Sim.Frame())
	}
}

func TestQuitTerminates(t *testing.T) {
	g := newTestGame(t)
	g.push(true, nil)
	if err := g.advance(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Expected ebiten.Termination, got %v", err)
	}
}

func TestRetryPressResets(t *testing.T) {
	g := newTestGame(t)
	g.driver.Sim.State.Cell = engine.CellState{Radius: 10, Health: 0, Apoptotic: true}

	g.push(false, &image.Point{X: 400, Y: 570})
	if err := g.advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if g.driver.Sim.State.Cell.Apoptotic {
		t.Error("Expected retry press to reset the cell")
	}
}
