package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioVolume is the beep effects.Volume exponent applied to every cue
	AudioVolume = -1.0
)

// Cue Timing
const (
	ApoptosisSoundDuration = 600 * time.Millisecond
	FragmentSoundDuration  = 60 * time.Millisecond
	ResetSoundDuration     = 120 * time.Millisecond
)

// Cue Pitch
const (
	ApoptosisToneHz = 110.0
	FragmentToneHz  = 660.0
	ResetToneLowHz  = 440.0
	ResetToneHighHz = 880.0
)
