package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/petridecus/viso/anim"
)

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
	}

	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorEnds verifies the oscillator stops at its duration
func TestOscillatorEnds(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100.0, 50*time.Millisecond, WaveSquare, rate)

	// 50ms at 1kHz is 50 samples
	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if ok {
		t.Error("Expected stream to end")
	}
	if n != 50 {
		t.Errorf("Expected 50 samples before end, got %d", n)
	}
}

// TestEnvelopeAttack verifies the attack ramp starts silent
func TestEnvelopeAttack(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond

	osc := NewOscillator(440.0, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, 20*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, 10)
	n, _ := env.Stream(samples)

	if n != 10 {
		t.Fatalf("Expected 10 samples, got %d", n)
	}

	// First sample of the attack ramp is fully attenuated
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
}

// TestActionCuesExist verifies every action produces a streamer
func TestActionCuesExist(t *testing.T) {
	for _, action := range anim.Actions() {
		cue := CreateActionCue(action, sampleRate, 0.5)
		if cue == nil {
			t.Errorf("Action %v produced nil cue", action)
			continue
		}

		samples := make([][2]float64, 64)
		if n, _ := cue.Stream(samples); n == 0 {
			t.Errorf("Action %v cue produced no samples", action)
		}
	}
}

// TestCompletionChime verifies the chime produces samples
func TestCompletionChime(t *testing.T) {
	chime := CreateCompletionChime(sampleRate, 0.5)
	samples := make([][2]float64, 64)
	if n, _ := chime.Stream(samples); n == 0 {
		t.Error("Completion chime produced no samples")
	}
}

// TestPlayerUninitializedSafe verifies cue calls are no-ops before
// Initialize
func TestPlayerUninitializedSafe(t *testing.T) {
	p := NewPlayer(0.5)
	p.PlayAction(anim.ActionWiggle)
	p.PlayCompletion()
	p.Cleanup()
}

// TestPlayerVolumeClamped verifies construction clamps volume
func TestPlayerVolumeClamped(t *testing.T) {
	if p := NewPlayer(-1); p.volume != 0 {
		t.Errorf("Negative volume stored as %f", p.volume)
	}
	if p := NewPlayer(2); p.volume != 1 {
		t.Errorf("Excess volume stored as %f", p.volume)
	}
}
