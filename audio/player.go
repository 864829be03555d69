package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/petridecus/viso/anim"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Player plays short cues for animation events. Safe to use without
// Initialize: cues silently drop until the speaker is up, so the viewer
// works on machines without audio
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a cue player at the given volume, 0 to 1
func NewPlayer(volume float64) *Player {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the speaker
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup stops all cues
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// PlayAction plays the cue for a newly triggered action
func (p *Player) PlayAction(action anim.Action) {
	p.play(func() beep.Streamer {
		return CreateActionCue(action, sampleRate, p.volume)
	})
}

// PlayCompletion plays the animation-complete chime
func (p *Player) PlayCompletion() {
	p.play(func() beep.Streamer {
		return CreateCompletionChime(sampleRate, p.volume)
	})
}

func (p *Player) play(create func() beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.volume <= 0 {
		return
	}

	speaker.Lock()
	p.mixer.Add(create())
	speaker.Unlock()
}
