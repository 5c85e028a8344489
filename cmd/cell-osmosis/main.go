package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/cell-osmosis/audio"
	"github.com/lixenwraith/cell-osmosis/engine"
	"github.com/lixenwraith/cell-osmosis/events"
	"github.com/lixenwraith/cell-osmosis/status"
	"github.com/lixenwraith/cell-osmosis/terminal"
	"github.com/lixenwraith/cell-osmosis/window"
)

var (
	frontendFlag = flag.String("frontend", "terminal", "Frontend: terminal, window")
	seedFlag     = flag.Int64("seed", 0, "Random seed (0 = time based)")
	muteFlag     = flag.Bool("mute", false, "Disable sound cues")
	debugFlag    = flag.Bool("debug", false, "Write debug log to logs/cell-osmosis.log")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the simulation crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCELL-OSMOSIS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)

	err := run()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cell-osmosis: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed=%d frontend=%s", seed, *frontendFlag)

	tp := engine.NewMonotonicTimeProvider()
	driver, err := engine.NewDriver(rand.New(rand.NewSource(seed)), tp)
	if err != nil {
		return fmt.Errorf("initial reset: %w", err)
	}

	// Audio is optional, the simulation runs silent without it
	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}
	sound.SetMuted(*muteFlag)

	driver.Register(sound)
	driver.Register(engine.NewLogHandler())

	counter := status.NewEventCounter[*engine.Simulation](
		events.EventWaterEscaped,
		events.EventWaterAbsorbed,
		events.EventApoptosis,
		events.EventFragmentShed,
		events.EventCellReset,
	)
	driver.Register(counter)
	defer func() {
		log.Printf("session: frames=%d %s", driver.Sim.Frame(), counter.Summary())
	}()

	switch *frontendFlag {
	case "terminal":
		return runTerminal(driver, tp)
	case "window":
		return window.Run(driver, tp)
	default:
		return fmt.Errorf("unknown frontend %q", *frontendFlag)
	}
}

func runTerminal(driver *engine.Driver, tp engine.TimeProvider) error {
	svc := terminal.NewService(nil)
	if err := svc.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	svc.Start()
	defer svc.Stop()

	return svc.Run(driver, tp)
}
