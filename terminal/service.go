package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cell-osmosis/constants"
	"github.com/lixenwraith/cell-osmosis/engine"
	"github.com/lixenwraith/cell-osmosis/input"
	"github.com/lixenwraith/cell-osmosis/render"
)

// TerminalService manages the tcell screen lifecycle, input polling and the frame loop
type TerminalService struct {
	screen  tcell.Screen
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
}

// NewService creates a service over screen; nil selects the real terminal
func NewService(screen tcell.Screen) *TerminalService {
	return &TerminalService{
		screen:  screen,
		eventCh: make(chan tcell.Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Init opens the screen and enables mouse reporting
func (s *TerminalService) Init() error {
	if s.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal screen: %w", err)
		}
		s.screen = screen
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	s.screen.SetTitle(constants.WindowTitle)
	s.screen.EnableMouse(tcell.MouseButtonEvents)
	s.screen.HideCursor()
	return nil
}

// Start launches the input polling goroutine
func (s *TerminalService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	go s.pollLoop()
}

// pollLoop forwards tcell events until the screen is finalized
func (s *TerminalService) pollLoop() {
	defer close(s.doneCh)

	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return // Screen finalized
		}
		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop finalizes the screen, which unblocks the poller, and waits for it
func (s *TerminalService) Stop() {
	s.mu.Lock()
	wasRunning := s.running
	s.running = false
	s.mu.Unlock()

	if wasRunning {
		close(s.stopCh)
	}
	if s.screen != nil {
		s.screen.Fini()
	}
	if wasRunning {
		<-s.doneCh
	}
}

// Run drives the simulation at the fixed frame rate until quit or a fatal error
func (s *TerminalService) Run(d *engine.Driver, tp engine.TimeProvider) error {
	surface := render.NewTerminalSurface(s.screen)
	machine := input.NewMachine()

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		running, err := s.frame(d, tp, machine, surface)
		if err != nil || !running {
			return err
		}
		<-ticker.C
	}
}

// frame performs one input-update-draw cycle
func (s *TerminalService) frame(d *engine.Driver, tp engine.TimeProvider, machine *input.Machine, surface *render.TerminalSurface) (bool, error) {
	s.drainInput(d, tp, machine, surface)

	running, err := d.Step()
	if err != nil || !running {
		return false, err
	}

	render.DrawScene(surface, &d.Sim.State)
	surface.Show()
	return true, nil
}

// drainInput translates every pending tcell event without blocking
func (s *TerminalService) drainInput(d *engine.Driver, tp engine.TimeProvider, machine *input.Machine, surface *render.TerminalSurface) {
	for {
		select {
		case ev := <-s.eventCh:
			in := machine.Process(ev, surface.Viewport())
			if in == nil {
				continue
			}
			if in.Type == input.IntentResize {
				surface.Resize()
				s.screen.Sync()
				continue
			}
			if gev, ok := input.ToGameEvent(in, tp.Now()); ok {
				d.Push(gev)
			}
		default:
			return
		}
	}
}
