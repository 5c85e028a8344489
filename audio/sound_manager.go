package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/cell-osmosis/constants"
	"github.com/lixenwraith/cell-osmosis/engine"
	"github.com/lixenwraith/cell-osmosis/events"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager plays short synthesized cues for cell events
// All Play methods are no-ops until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences future cues without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// PlayApoptosis plays the membrane rupture rumble
func (sm *SoundManager) PlayApoptosis() {
	sm.play(apoptosisCue())
}

// PlayFragment plays a short click for a shed fragment
func (sm *SoundManager) PlayFragment() {
	sm.play(fragmentCue())
}

// PlayReset plays a rising two-tone chime
func (sm *SoundManager) PlayReset() {
	cue, err := resetCue()
	if err != nil {
		return
	}
	sm.play(cue)
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	vol := &effects.Volume{Streamer: s, Base: 2, Volume: constants.AudioVolume}
	speaker.Lock()
	sm.mixer.Add(vol)
	speaker.Unlock()
}

// EventTypes returns the notifications that have a cue
func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventApoptosis,
		events.EventFragmentShed,
		events.EventCellReset,
	}
}

// HandleEvent maps a notification to its cue
func (sm *SoundManager) HandleEvent(_ *engine.Simulation, ev events.GameEvent) {
	switch ev.Type {
	case events.EventApoptosis:
		sm.PlayApoptosis()
	case events.EventFragmentShed:
		sm.PlayFragment()
	case events.EventCellReset:
		sm.PlayReset()
	}
}

func apoptosisCue() beep.Streamer {
	return beep.Take(sampleRate.N(constants.ApoptosisSoundDuration), NewRuptureGenerator(sampleRate, constants.ApoptosisToneHz))
}

func fragmentCue() beep.Streamer {
	return NewOscillator(constants.FragmentToneHz, constants.FragmentSoundDuration, WaveSquare, sampleRate)
}

func resetCue() (beep.Streamer, error) {
	low, err := generators.SineTone(sampleRate, constants.ResetToneLowHz)
	if err != nil {
		return nil, err
	}
	high, err := generators.SineTone(sampleRate, constants.ResetToneHighHz)
	if err != nil {
		return nil, err
	}
	n := sampleRate.N(constants.ResetSoundDuration)
	return beep.Seq(beep.Take(n, low), beep.Take(n, high)), nil
}
