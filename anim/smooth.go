package anim

import (
	"time"

	"github.com/petridecus/viso/easing"
	"github.com/petridecus/viso/parameter"
	"github.com/petridecus/viso/vmath"
)

// Smooth is single-curve interpolation with configurable easing.
// This is the default behavior for most transitions
type Smooth struct {
	// Dur is the total animation duration
	Dur time.Duration
	// Ease is the interpolation curve
	Ease easing.Easing
	// Preempt is applied when a new target arrives mid-animation
	Preempt Preemption
}

// NewSmooth creates a smooth interpolation with the given parameters
func NewSmooth(dur time.Duration, ease easing.Easing) *Smooth {
	return &Smooth{Dur: dur, Ease: ease, Preempt: PreemptRestart}
}

// StandardSmooth is the default 300ms cubic hermite ease-out
func StandardSmooth() *Smooth {
	return NewSmooth(parameter.SmoothDuration, easing.Default)
}

// FastSmooth is a quick 100ms quadratic ease-out
func FastSmooth() *Smooth {
	return NewSmooth(parameter.FastDuration, easing.Easing{Kind: easing.QuadraticOut})
}

// LinearSmooth interpolates with no easing distortion
func LinearSmooth(dur time.Duration) *Smooth {
	return NewSmooth(dur, easing.Easing{Kind: easing.Linear})
}

// WithPreemption returns a copy using the given preemption policy
func (s *Smooth) WithPreemption(p Preemption) *Smooth {
	out := *s
	out.Preempt = p
	return &out
}

func (s *Smooth) ComputeState(t float64, start, end ResidueVisualState) ResidueVisualState {
	return start.Lerp(end, s.EasedT(t))
}

func (s *Smooth) Duration() time.Duration {
	return s.Dur
}

func (s *Smooth) Preemption() Preemption {
	return s.Preempt
}

func (s *Smooth) EasedT(t float64) float64 {
	return s.Ease.Evaluate(t)
}

func (s *Smooth) InterpolatePosition(t float64, start, end, _ vmath.Vec3) vmath.Vec3 {
	return vmath.Lerp(s.EasedT(t), start, end)
}

func (s *Smooth) ComputeContext(rawT float64) Context {
	return SimpleContext(rawT, s.EasedT(rawT))
}

func (s *Smooth) ShouldIncludeSidechains(float64) bool {
	return true
}

func (s *Smooth) Name() string {
	return "smooth"
}
