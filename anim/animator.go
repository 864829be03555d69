package anim

import (
	"time"

	"github.com/petridecus/viso/clock"
	"github.com/petridecus/viso/parameter"
	"github.com/petridecus/viso/vmath"
)

// Animator orchestrates structure animation. It owns the structure's
// current/target state, at most one active runner, and the controller
// deciding lifecycle, and it carries the sidechain atom channel that
// interpolates alongside the backbone.
//
// Single-threaded and frame-stepped: one caller drives SetTarget and
// Update, rendering collaborators read interpolated snapshots
type Animator struct {
	state      *StructureState
	runner     *Runner
	controller *Controller
	clk        clock.Source

	// Sidechain atom positions animate in lockstep with the backbone,
	// each atom collapsing toward its residue's CA when the behavior
	// calls for it
	startSidechain   []vmath.Vec3
	targetSidechain  []vmath.Vec3
	sidechainResidue []int
	startCA          []vmath.Vec3
	targetCA         []vmath.Vec3

	// Sidechain-only changes trigger animation even when the backbone is
	// static; the pending action selects the behavior
	sidechainsChanged bool
	pendingAction     Action
	pendingActionSet  bool
}

// NewAnimator creates an animator with default preferences and the real
// clock
func NewAnimator() *Animator {
	return NewAnimatorWith(NewController(), clock.NewMonotonic())
}

// NewAnimatorWith creates an animator with a custom controller and clock
func NewAnimatorWith(controller *Controller, clk clock.Source) *Animator {
	return &Animator{
		state:      NewStructureState(),
		controller: controller,
		clk:        clk,
	}
}

// Controller returns the lifecycle controller (for preference changes)
func (a *Animator) Controller() *Controller {
	return a.controller
}

// SetEnabled turns animation on or off; disabling drops the active
// runner so the next target snaps
func (a *Animator) SetEnabled(enabled bool) {
	a.controller.SetEnabled(enabled)
	if !enabled {
		a.runner = nil
	}
}

// IsEnabled reports whether animations are on
func (a *Animator) IsEnabled() bool {
	return a.controller.IsEnabled()
}

// IsAnimating reports whether an animation is in flight
func (a *Animator) IsAnimating() bool {
	return a.runner != nil
}

// Progress is the active runner's progress, 1 when idle
func (a *Animator) Progress() float64 {
	if a.runner == nil {
		return 1
	}
	return a.runner.Progress(a.clk.Now())
}

// SetTarget begins or redirects animation toward a new backbone
// snapshot, selecting the behavior for the given action
func (a *Animator) SetTarget(backboneChains [][]vmath.Vec3, action Action) {
	newTarget := FromBackbone(backboneChains)

	force := a.sidechainsChanged
	effective := action
	if force && a.pendingActionSet {
		effective = a.pendingAction
	}

	runner, replace := a.controller.HandleNewTarget(
		a.state, newTarget, a.runner, effective, force, a.clk.Now(),
	)
	if replace {
		a.runner = runner
	}

	a.sidechainsChanged = false
	a.pendingActionSet = false

	a.state.SetTarget(newTarget)
}

// Update advances the active animation to the given instant and applies
// interpolated states. Returns whether any visual state changed, which
// drives redraw decisions
func (a *Animator) Update(now time.Time) bool {
	if a.runner == nil {
		return false
	}

	t := a.runner.Progress(now)
	a.runner.ApplyToState(a.state, t)

	if a.runner.IsComplete(now) {
		a.state.SnapToTarget()
		a.runner = nil
	}

	return true
}

// Skip jumps the current animation to its end state
func (a *Animator) Skip() {
	a.state.SnapToTarget()
	a.runner = nil
}

// Cancel drops the current animation, staying at the current visual
// position
func (a *Animator) Cancel() {
	a.runner = nil
}

// Backbone returns the current interpolated backbone as chains, the
// same shape SetTarget consumes
func (a *Animator) Backbone() [][]vmath.Vec3 {
	return a.state.ToBackboneChains()
}

// ResidueCount is the number of residues in the structure
func (a *Animator) ResidueCount() int {
	return a.state.ResidueCount()
}

// CAPosition looks up one residue's alpha carbon from current visual
// state
func (a *Animator) CAPosition(residueIdx int) (vmath.Vec3, bool) {
	s, ok := a.state.Current(residueIdx)
	if !ok {
		return vmath.Vec3{}, false
	}
	return s.CAPosition(), true
}

// State exposes the underlying structure state for advanced callers
func (a *Animator) State() *StructureState {
	return a.state
}

// ShouldIncludeSidechains reports whether sidechain detail should render
// right now. Multi-phase behaviors hide sidechains while the backbone
// settles so new atoms never flash at their final positions
func (a *Animator) ShouldIncludeSidechains() bool {
	if a.runner == nil {
		return true
	}
	return a.runner.Behavior().ShouldIncludeSidechains(a.runner.Progress(a.clk.Now()))
}

// SetSidechainTarget updates sidechain atom targets alongside the next
// SetTarget call. residueIndices maps each atom to its residue for
// collapse-point lookup; caPositions is the per-residue CA array
func (a *Animator) SetSidechainTarget(positions []vmath.Vec3, residueIndices []int, caPositions []vmath.Vec3) {
	a.setSidechainTarget(positions, residueIndices, caPositions, 0, false)
}

// SetSidechainTargetForAction is SetSidechainTarget with an explicit
// action, so a sidechain-only change (static backbone) still animates.
// Call before SetTarget
func (a *Animator) SetSidechainTargetForAction(positions []vmath.Vec3, residueIndices []int, caPositions []vmath.Vec3, action Action) {
	a.setSidechainTarget(positions, residueIndices, caPositions, action, true)
}

func (a *Animator) setSidechainTarget(positions []vmath.Vec3, residueIndices []int, caPositions []vmath.Vec3, action Action, actionSet bool) {
	changed := a.sidechainsDiffer(positions)

	if len(a.targetSidechain) == len(positions) {
		// Same atom count: the previous target becomes the new start
		a.startSidechain = a.targetSidechain
		a.startCA = a.targetCA
	} else {
		// Atom count changed: snap to the new positions
		a.startSidechain = append([]vmath.Vec3(nil), positions...)
		a.startCA = append([]vmath.Vec3(nil), caPositions...)
	}

	a.targetSidechain = append([]vmath.Vec3(nil), positions...)
	a.targetCA = append([]vmath.Vec3(nil), caPositions...)
	a.sidechainResidue = append([]int(nil), residueIndices...)

	a.sidechainsChanged = changed
	a.pendingAction = action
	a.pendingActionSet = actionSet
}

func (a *Animator) sidechainsDiffer(newPositions []vmath.Vec3) bool {
	if len(a.targetSidechain) != len(newPositions) {
		return len(newPositions) > 0
	}
	if len(newPositions) == 0 {
		return false
	}

	const eps2 = parameter.SidechainEpsilon * parameter.SidechainEpsilon
	for i, old := range a.targetSidechain {
		if vmath.MagSq(vmath.Sub(old, newPositions[i])) > eps2 {
			return true
		}
	}
	return false
}

// SidechainPositions returns interpolated sidechain atom positions using
// the active behavior's curve, including collapse/expand routing through
// each atom's residue CA
func (a *Animator) SidechainPositions() []vmath.Vec3 {
	t := a.Progress()

	if a.runner == nil || t >= 1 {
		return append([]vmath.Vec3(nil), a.targetSidechain...)
	}

	behavior := a.runner.Behavior()
	// The collapse point tracks the CA as the backbone settles, using the
	// same eased progress as backbone interpolation
	caT := behavior.EasedT(t)

	out := make([]vmath.Vec3, len(a.targetSidechain))
	for i, end := range a.targetSidechain {
		start := end
		if i < len(a.startSidechain) {
			start = a.startSidechain[i]
		}

		resIdx := 0
		if i < len(a.sidechainResidue) {
			resIdx = a.sidechainResidue[i]
		}
		startCA, endCA := start, end
		if resIdx >= 0 && resIdx < len(a.startCA) {
			startCA = a.startCA[resIdx]
		}
		if resIdx >= 0 && resIdx < len(a.targetCA) {
			endCA = a.targetCA[resIdx]
		}
		collapsePoint := vmath.Lerp(caT, startCA, endCA)

		out[i] = behavior.InterpolatePosition(t, start, end, collapsePoint)
	}
	return out
}

// HasSidechainData reports whether any sidechain targets are present
func (a *Animator) HasSidechainData() bool {
	return len(a.targetSidechain) > 0
}
