package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/cell-osmosis/constants"
	"github.com/lixenwraith/cell-osmosis/engine"
	"github.com/lixenwraith/cell-osmosis/events"
	"github.com/lixenwraith/cell-osmosis/render"
)

// Game adapts the driver to ebiten's Update/Draw loop
// ebiten calls Update at constants.TicksPerSecond, matching the terminal frame limiter
type Game struct {
	driver  *engine.Driver
	tp      engine.TimeProvider
	surface Surface
}

// NewGame creates an ebiten game around d
func NewGame(d *engine.Driver, tp engine.TimeProvider) *Game {
	return &Game{driver: d, tp: tp}
}

// Update polls input then advances one tick
func (g *Game) Update() error {
	g.pollInput()
	return g.advance()
}

// Draw renders the current state
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	render.DrawScene(&g.surface, &g.driver.Sim.State)
}

// Layout pins the logical screen to the world size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return constants.WorldWidth, constants.WorldHeight
}

func (g *Game) pollInput() {
	quit := ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	var press *image.Point
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		press = &image.Point{X: x, Y: y}
	}
	g.push(quit, press)
}

// push converts polled input into queue events
func (g *Game) push(quit bool, press *image.Point) {
	now := g.tp.Now()
	if press != nil {
		g.driver.Push(events.GameEvent{
			Type:      events.EventPointerPress,
			Payload:   &events.PointerPayload{X: float64(press.X), Y: float64(press.Y)},
			Timestamp: now,
		})
	}
	if quit {
		g.driver.Push(events.GameEvent{Type: events.EventQuit, Timestamp: now})
	}
}

// advance steps the driver and maps a clean stop onto ebiten.Termination
func (g *Game) advance() error {
	running, err := g.driver.Step()
	if err != nil {
		return err
	}
	if !running {
		return ebiten.Termination
	}
	return nil
}

// Run opens the 800x600 window and blocks until it closes
func Run(d *engine.Driver, tp engine.TimeProvider) error {
	ebiten.SetWindowSize(constants.WorldWidth, constants.WorldHeight)
	ebiten.SetWindowTitle(constants.WindowTitle)
	ebiten.SetTPS(constants.TicksPerSecond)
	ebiten.SetWindowClosingHandled(true)

	// RunGame returns nil when Update returns ebiten.Termination
	return ebiten.RunGame(NewGame(d, tp))
}
