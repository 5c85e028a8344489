package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return total, peak
}

// TestOscillatorDuration verifies each wave shape stops after its duration and stays in range
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	want := rate.N(50 * time.Millisecond)

	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(220, 50*time.Millisecond, wave, rate)
		n, peak := drain(t, osc, want*2)
		if n != want {
			t.Errorf("wave %d: expected %d samples, got %d", wave, want, n)
		}
		if peak > 1.0 {
			t.Errorf("wave %d: peak %f out of range", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

// TestRuptureGeneratorDecays verifies the rupture envelope fades out
func TestRuptureGeneratorDecays(t *testing.T) {
	rate := beep.SampleRate(44100)
	g := NewRuptureGenerator(rate, 110)

	head := make([][2]float64, rate.N(50*time.Millisecond))
	g.Stream(head)

	// Skip ahead one second
	g.Stream(make([][2]float64, rate.N(time.Second)))

	tail := make([][2]float64, rate.N(50*time.Millisecond))
	g.Stream(tail)

	headPeak, tailPeak := peakOf(head), peakOf(tail)
	if tailPeak >= headPeak {
		t.Errorf("Expected decay: head peak %f, tail peak %f", headPeak, tailPeak)
	}
	if headPeak > 1.0 {
		t.Errorf("Head peak %f out of range", headPeak)
	}
}

func peakOf(samples [][2]float64) float64 {
	peak := 0.0
	for _, s := range samples {
		if s[0] > peak {
			peak = s[0]
		} else if -s[0] > peak {
			peak = -s[0]
		}
	}
	return peak
}
