package anim

import (
	"time"

	"github.com/petridecus/viso/easing"
	"github.com/petridecus/viso/parameter"
	"github.com/petridecus/viso/vmath"
)

// BackboneThenExpand is a two-phase sequenced effect: the backbone lerps
// to its final position first, and only after it settles do sidechains
// expand outward.
//
// Built for the diffusion finalize transition where streaming
// backbone-only frames become a full-atom result. Sidechains stay hidden
// and pinned to the moving CA during phase 1 so new atoms never flash at
// their final positions early
type BackboneThenExpand struct {
	// BackboneDuration is the settle phase length
	BackboneDuration time.Duration
	// ExpandDuration is the sidechain growth phase length
	ExpandDuration time.Duration
	// BackboneEase shapes the settle phase
	BackboneEase easing.Easing
	// ExpandEase shapes the growth phase
	ExpandEase easing.Easing
}

// NewBackboneThenExpand creates the effect with explicit phase durations
func NewBackboneThenExpand(backbone, expand time.Duration) *BackboneThenExpand {
	return &BackboneThenExpand{
		BackboneDuration: backbone,
		ExpandDuration:   expand,
		BackboneEase:     easing.Easing{Kind: easing.QuadraticOut},
		ExpandEase:       easing.Easing{Kind: easing.QuadraticOut},
	}
}

// DefaultBackboneThenExpand uses the standard finalize timing
func DefaultBackboneThenExpand() *BackboneThenExpand {
	return NewBackboneThenExpand(parameter.FinalizeBackboneDuration, parameter.FinalizeExpandDuration)
}

// backboneFraction is the fraction of total time in the settle phase
func (b *BackboneThenExpand) backboneFraction() float64 {
	total := b.Duration().Seconds()
	if total == 0 {
		return 0.5
	}
	return b.BackboneDuration.Seconds() / total
}

func (b *BackboneThenExpand) ComputeContext(rawT float64) Context {
	frac := b.backboneFraction()

	if rawT < frac {
		phaseT := 1.0
		if frac > 0 {
			phaseT = rawT / frac
		}
		phaseEased := b.BackboneEase.Evaluate(phaseT)
		// EasedT runs 0 to 1 within phase 1: the backbone fully settles
		return PhaseContext(rawT, phaseEased, phaseT, phaseEased)
	}

	phaseT := 1.0
	if frac < 1 {
		phaseT = (rawT - frac) / (1 - frac)
	}
	phaseEased := b.ExpandEase.Evaluate(phaseT)
	// EasedT holds at 1: the backbone stays at its final position
	return PhaseContext(rawT, 1, phaseT, phaseEased)
}

func (b *BackboneThenExpand) ComputeState(t float64, start, end ResidueVisualState) ResidueVisualState {
	ctx := b.ComputeContext(t)
	frac := b.backboneFraction()

	backboneT := ctx.EasedT
	out := ResidueVisualState{
		Backbone: [3]vmath.Vec3{
			vmath.Lerp(backboneT, start.Backbone[0], end.Backbone[0]),
			vmath.Lerp(backboneT, start.Backbone[1], end.Backbone[1]),
			vmath.Lerp(backboneT, start.Backbone[2], end.Backbone[2]),
		},
	}

	if t < frac {
		// Sidechains frozen at their start values during the settle phase
		out.Chis = start.Chis
		out.NumChis = start.NumChis
		return out
	}

	phaseEased := ctx.PhaseEased()
	for i := 0; i < end.NumChis; i++ {
		out.Chis[i] = end.Chis[i] * phaseEased
	}
	out.NumChis = end.NumChis
	return out
}

func (b *BackboneThenExpand) Duration() time.Duration {
	return b.BackboneDuration + b.ExpandDuration
}

func (b *BackboneThenExpand) Preemption() Preemption {
	return PreemptRestart
}

func (b *BackboneThenExpand) EasedT(t float64) float64 {
	return b.ComputeContext(t).EasedT
}

func (b *BackboneThenExpand) InterpolatePosition(t float64, _, end, collapsePoint vmath.Vec3) vmath.Vec3 {
	frac := b.backboneFraction()

	if t < frac {
		// Pin sidechain atoms to the moving CA so they stay hidden behind
		// the backbone while it settles
		return collapsePoint
	}

	phaseT := 1.0
	if frac < 1 {
		phaseT = (t - frac) / (1 - frac)
	}
	return vmath.Lerp(b.ExpandEase.Evaluate(phaseT), collapsePoint, end)
}

func (b *BackboneThenExpand) ShouldIncludeSidechains(rawT float64) bool {
	// Hidden during the settle phase so they never flash early
	return rawT >= b.backboneFraction()
}

func (b *BackboneThenExpand) Name() string {
	return "backbone-then-expand"
}
