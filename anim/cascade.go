package anim

import (
	"time"

	"github.com/petridecus/viso/easing"
	"github.com/petridecus/viso/parameter"
	"github.com/petridecus/viso/vmath"
)

// Cascade staggers per-residue start times to produce a wave-like
// reveal across the structure.
//
// Residue i of the animated batch starts at i*DelayPerResidue and
// animates for BaseDuration, so the full effect lasts
// DelayPerResidue*(N-1) + BaseDuration
type Cascade struct {
	// BaseDuration is each residue's individual animation length
	BaseDuration time.Duration
	// DelayPerResidue is the stagger between consecutive residue starts
	DelayPerResidue time.Duration
	// Ease shapes each residue's individual animation
	Ease easing.Easing
}

// NewCascade creates a cascade with the given timing
func NewCascade(baseDuration, delayPerResidue time.Duration) *Cascade {
	return &Cascade{
		BaseDuration:    baseDuration,
		DelayPerResidue: delayPerResidue,
		Ease:            easing.Easing{Kind: easing.QuadraticOut},
	}
}

// DefaultCascade uses the standard reveal timing
func DefaultCascade() *Cascade {
	return NewCascade(parameter.CascadeBaseDuration, parameter.CascadeDelayPerResidue)
}

// WithEasing returns a copy using the given per-residue easing
func (c *Cascade) WithEasing(e easing.Easing) *Cascade {
	out := *c
	out.Ease = e
	return &out
}

// ResidueT maps global progress to one residue's local progress,
// accounting for its staggered start time
func (c *Cascade) ResidueT(globalT float64, residueIdx, totalResidues int) float64 {
	if totalResidues == 0 {
		return globalT
	}

	totalSecs := c.TotalDurationFor(totalResidues).Seconds()
	if totalSecs == 0 {
		return globalT
	}

	globalTime := globalT * totalSecs
	startTime := float64(residueIdx) * c.DelayPerResidue.Seconds()
	baseSecs := c.BaseDuration.Seconds()

	if baseSecs == 0 {
		if globalTime >= startTime {
			return 1
		}
		return 0
	}

	if globalTime < startTime {
		return 0
	}
	localT := (globalTime - startTime) / baseSecs
	if localT > 1 {
		return 1
	}
	return localT
}

// TotalDurationFor is the full cascade length for n residues
func (c *Cascade) TotalDurationFor(n int) time.Duration {
	if n == 0 {
		return 0
	}
	return c.DelayPerResidue*time.Duration(n-1) + c.BaseDuration
}

func (c *Cascade) ComputeState(t float64, start, end ResidueVisualState) ResidueVisualState {
	// The runner feeds per-residue local progress through ResidueT before
	// calling this, so t here is already residue-local
	return start.Lerp(end, c.EasedT(t))
}

func (c *Cascade) Duration() time.Duration {
	// Base duration only; runners use TotalDurationFor with the actual
	// residue count
	return c.BaseDuration
}

func (c *Cascade) Preemption() Preemption {
	// A reveal should not be interrupted mid-wave
	return PreemptIgnore
}

func (c *Cascade) EasedT(t float64) float64 {
	return c.Ease.Evaluate(t)
}

func (c *Cascade) InterpolatePosition(t float64, start, end, _ vmath.Vec3) vmath.Vec3 {
	return vmath.Lerp(c.EasedT(t), start, end)
}

func (c *Cascade) ComputeContext(rawT float64) Context {
	return SimpleContext(rawT, c.Ease.Evaluate(rawT))
}

func (c *Cascade) ShouldIncludeSidechains(float64) bool {
	return true
}

func (c *Cascade) Name() string {
	return "cascade"
}
