package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/petridecus/viso/anim"
)

// WaveType selects the oscillator shape. Only the shapes the cues use
// are defined
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator streams a fixed-length tone at a single frequency
type oscillator struct {
	wave   WaveType
	step   float64 // phase advance per sample
	phase  float64 // in [0, 1)
	remain int
}

// NewOscillator creates a tone streamer that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		wave:   wave,
		step:   freq / float64(rate),
		remain: rate.N(duration),
	}
}

func (o *oscillator) sample() float64 {
	switch o.wave {
	case WaveSquare:
		if o.phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (o.phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * o.phase)
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.remain <= 0 {
			return i, false
		}

		v := o.sample()
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.step
		o.phase -= math.Floor(o.phase)
		o.remain--
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a streamer in over the attack and out over the
// release so short cues start and stop without clicks
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps a streamer in attack/release gain shaping
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) gain() float64 {
	if e.attack > 0 && e.position < e.attack {
		return float64(e.position) / float64(e.attack)
	}
	if e.release > 0 && e.position >= e.total-e.release {
		g := float64(e.total-e.position) / float64(e.release)
		if g < 0 {
			return 0
		}
		return g
	}
	return 1.0
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, false
		}
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume maps a linear [0,1] volume onto beep's log-scaled effect,
// muting outright at zero where Log2 would blow up
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Cue timings
const (
	tickCueDuration  = 40 * time.Millisecond
	chimeCueDuration = 120 * time.Millisecond
	cueAttack        = 5 * time.Millisecond
	cueRelease       = 30 * time.Millisecond
)

// CreateActionCue generates a short tone identifying the action that
// just started animating. Each action gets its own pitch so runs of
// diffusion steps read differently from a mutation
func CreateActionCue(action anim.Action, rate beep.SampleRate, volume float64) beep.Streamer {
	freq := 440.0
	wave := WaveSine

	switch action {
	case anim.ActionWiggle:
		freq = 330.0
	case anim.ActionShake:
		freq = 392.0
	case anim.ActionMutation:
		freq = 523.25
		wave = WaveSquare
	case anim.ActionDiffusion:
		freq = 220.0
	case anim.ActionDiffusionFinalize:
		freq = 659.25
	case anim.ActionReveal:
		freq = 587.33
	case anim.ActionLoad:
		freq = 261.63
		wave = WaveSaw
	}

	osc := NewOscillator(freq, tickCueDuration, wave, rate)
	shaped := NewEnvelope(osc, tickCueDuration, cueAttack, cueRelease, rate)
	return newVolume(shaped, volume)
}

// CreateCompletionChime generates a two-note chime for animation
// completion
func CreateCompletionChime(rate beep.SampleRate, volume float64) beep.Streamer {
	half := chimeCueDuration / 2

	n1 := NewOscillator(783.99, half, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, half, cueAttack, cueRelease, rate)

	n2 := NewOscillator(1046.5, half, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, half, cueAttack, cueRelease, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), volume)
}
