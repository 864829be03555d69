package anim

import (
	"time"

	"github.com/petridecus/viso/vmath"
)

// Snap jumps straight to the target with no interpolation. Used when
// animation would be inappropriate, like loading a new structure
type Snap struct{}

func (Snap) ComputeState(_ float64, _, end ResidueVisualState) ResidueVisualState {
	return end
}

func (Snap) Duration() time.Duration {
	return 0
}

func (Snap) Preemption() Preemption {
	return PreemptRestart
}

func (Snap) EasedT(t float64) float64 {
	return t
}

func (Snap) InterpolatePosition(_ float64, _, end, _ vmath.Vec3) vmath.Vec3 {
	return end
}

func (Snap) ComputeContext(rawT float64) Context {
	return SimpleContext(rawT, rawT)
}

func (Snap) ShouldIncludeSidechains(float64) bool {
	return true
}

func (Snap) Name() string {
	return "snap"
}
