package anim

import (
	"time"

	"github.com/petridecus/viso/vmath"
)

// Preemption decides what happens when a new target arrives while an
// animation is still in progress
type Preemption int

const (
	// PreemptRestart starts a new animation from the current visual
	// position toward the new target, resetting animation time to zero
	PreemptRestart Preemption = iota

	// PreemptIgnore defers new targets until the current animation
	// completes
	PreemptIgnore

	// PreemptBlend redirects toward the new target while keeping the
	// original start instant, preserving timing continuity
	PreemptBlend
)

func (p Preemption) String() string {
	switch p {
	case PreemptIgnore:
		return "ignore"
	case PreemptBlend:
		return "blend"
	default:
		return "restart"
	}
}

// Behavior defines how a structural change is animated: the
// interpolation curve, total duration, preemption policy, and any
// multi-phase visual effects. Implementations are immutable after
// construction and may be shared by any number of runners
type Behavior interface {
	// ComputeState evaluates the animation curve at time t, 0 to 1
	ComputeState(t float64, start, end ResidueVisualState) ResidueVisualState

	// Duration is the total animation length; zero means instantaneous
	Duration() time.Duration

	// Preemption is the policy applied when a new target arrives
	// mid-animation
	Preemption() Preemption

	// EasedT maps raw progress through the behavior's easing curve
	EasedT(t float64) float64

	// InterpolatePosition moves a sidechain atom from start to end,
	// optionally routing through collapsePoint (the residue's CA) for
	// retract-then-regrow effects
	InterpolatePosition(t float64, start, end, collapsePoint vmath.Vec3) vmath.Vec3

	// ComputeContext builds the per-frame interpolation context that all
	// interpolation sites for this behavior must share
	ComputeContext(rawT float64) Context

	// ShouldIncludeSidechains reports whether sidechain detail should
	// render at the given raw progress
	ShouldIncludeSidechains(rawT float64) bool

	// Name is a stable identifier for diagnostics and config
	Name() string
}

// Staggered is implemented by behaviors whose effective duration and
// per-residue progress depend on how many residues are animating
type Staggered interface {
	// TotalDurationFor is the full animation length for n residues
	TotalDurationFor(n int) time.Duration

	// ResidueT maps global progress to one residue's local progress
	ResidueT(globalT float64, residueIdx, totalResidues int) float64
}
