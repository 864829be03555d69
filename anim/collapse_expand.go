package anim

import (
	"time"

	"github.com/petridecus/viso/easing"
	"github.com/petridecus/viso/parameter"
	"github.com/petridecus/viso/vmath"
)

// CollapseExpand is a two-phase mutation effect: the old sidechain
// retracts toward the backbone, then the new one grows out.
//
// Phase 1 (collapse) occupies [0, boundary): chi angles interpolate
// toward zero and sidechain atoms move toward their residue's CA.
// Phase 2 (expand) occupies [boundary, 1]: chi angles grow from zero to
// their final values and atoms move from the CA outward. The backbone
// interpolates smoothly across both phases
type CollapseExpand struct {
	// CollapseDuration is the retract phase length
	CollapseDuration time.Duration
	// ExpandDuration is the regrow phase length
	ExpandDuration time.Duration
	// CollapseEase shapes the retract phase
	CollapseEase easing.Easing
	// ExpandEase shapes the regrow phase
	ExpandEase easing.Easing
}

// NewCollapseExpand creates the effect with explicit phase durations
func NewCollapseExpand(collapse, expand time.Duration) *CollapseExpand {
	return &CollapseExpand{
		CollapseDuration: collapse,
		ExpandDuration:   expand,
		CollapseEase:     easing.Easing{Kind: easing.QuadraticIn},
		ExpandEase:       easing.Easing{Kind: easing.QuadraticOut},
	}
}

// DefaultCollapseExpand uses the standard mutation timing
func DefaultCollapseExpand() *CollapseExpand {
	return NewCollapseExpand(parameter.CollapseDuration, parameter.ExpandDuration)
}

// SymmetricCollapseExpand splits the given duration evenly across phases
func SymmetricCollapseExpand(dur time.Duration) *CollapseExpand {
	half := dur / 2
	return NewCollapseExpand(half, half)
}

// collapseFraction is the fraction of total time in the collapse phase
func (ce *CollapseExpand) collapseFraction() float64 {
	total := ce.Duration().Seconds()
	if total == 0 {
		return 0.5
	}
	return ce.CollapseDuration.Seconds() / total
}

func (ce *CollapseExpand) ComputeContext(rawT float64) Context {
	frac := ce.collapseFraction()

	if rawT < frac {
		phaseT := 1.0
		if frac > 0 {
			phaseT = rawT / frac
		}
		phaseEased := ce.CollapseEase.Evaluate(phaseT)
		// Global eased progress covers [0, frac) during collapse
		return PhaseContext(rawT, phaseEased*frac, phaseT, phaseEased)
	}

	phaseT := 1.0
	if frac < 1 {
		phaseT = (rawT - frac) / (1 - frac)
	}
	phaseEased := ce.ExpandEase.Evaluate(phaseT)
	// Global eased progress covers [frac, 1] during expand
	return PhaseContext(rawT, frac+phaseEased*(1-frac), phaseT, phaseEased)
}

func (ce *CollapseExpand) ComputeState(t float64, start, end ResidueVisualState) ResidueVisualState {
	ctx := ce.ComputeContext(t)
	frac := ce.collapseFraction()

	backboneT := ctx.EasedT
	out := ResidueVisualState{
		Backbone: [3]vmath.Vec3{
			vmath.Lerp(backboneT, start.Backbone[0], end.Backbone[0]),
			vmath.Lerp(backboneT, start.Backbone[1], end.Backbone[1]),
			vmath.Lerp(backboneT, start.Backbone[2], end.Backbone[2]),
		},
	}

	phaseEased := ctx.PhaseEased()
	if t < frac {
		// Collapse the old sidechain toward the backbone, chi -> 0
		for i := 0; i < start.NumChis; i++ {
			out.Chis[i] = start.Chis[i] * (1 - phaseEased)
		}
	} else {
		// Expand the new sidechain from the backbone, 0 -> chi
		for i := 0; i < end.NumChis; i++ {
			out.Chis[i] = end.Chis[i] * phaseEased
		}
	}

	out.NumChis = start.NumChis
	if end.NumChis > out.NumChis {
		out.NumChis = end.NumChis
	}
	return out
}

func (ce *CollapseExpand) Duration() time.Duration {
	return ce.CollapseDuration + ce.ExpandDuration
}

func (ce *CollapseExpand) Preemption() Preemption {
	return PreemptRestart
}

func (ce *CollapseExpand) EasedT(t float64) float64 {
	return ce.ComputeContext(t).EasedT
}

func (ce *CollapseExpand) InterpolatePosition(t float64, start, end, collapsePoint vmath.Vec3) vmath.Vec3 {
	frac := ce.collapseFraction()

	if t < frac {
		// Move from start toward the residue's CA
		phaseT := 1.0
		if frac > 0 {
			phaseT = t / frac
		}
		return vmath.Lerp(ce.CollapseEase.Evaluate(phaseT), start, collapsePoint)
	}

	// Grow from the CA toward the final position
	phaseT := 1.0
	if frac < 1 {
		phaseT = (t - frac) / (1 - frac)
	}
	return vmath.Lerp(ce.ExpandEase.Evaluate(phaseT), collapsePoint, end)
}

func (ce *CollapseExpand) ShouldIncludeSidechains(float64) bool {
	return true
}

func (ce *CollapseExpand) Name() string {
	return "collapse-expand"
}
