package anim

import (
	"github.com/petridecus/viso/parameter"
)

// Action is a semantic trigger for a structural change. Each action maps
// to a configurable behavior in Preferences
type Action int

const (
	// ActionWiggle is Rosetta energy minimization (backbone + sidechains)
	ActionWiggle Action = iota
	// ActionShake is Rosetta rotamer optimization (primarily sidechains)
	ActionShake
	// ActionMutation is a user-triggered residue mutation
	ActionMutation
	// ActionDiffusion is a streaming ML diffusion step
	ActionDiffusion
	// ActionDiffusionFinalize is the transition from diffusion streaming
	// to the full-atom result
	ActionDiffusionFinalize
	// ActionReveal is an instant prediction result reveal
	ActionReveal
	// ActionLoad is loading a new structure
	ActionLoad

	actionCount
)

// Actions lists every action in declaration order
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

func (a Action) String() string {
	switch a {
	case ActionWiggle:
		return "wiggle"
	case ActionShake:
		return "shake"
	case ActionMutation:
		return "mutation"
	case ActionDiffusion:
		return "diffusion"
	case ActionDiffusionFinalize:
		return "diffusionFinalize"
	case ActionReveal:
		return "reveal"
	case ActionLoad:
		return "load"
	default:
		return "unknown"
	}
}

// AllowsSizeChange reports whether the action animates across residue
// count changes. Most actions operate on a fixed structure, but
// DiffusionFinalize moves from backbone-only streaming frames to a
// full-atom result and Load replaces the structure outright; for these
// the animator resizes current state and animates the overlapping
// residues
func (a Action) AllowsSizeChange() bool {
	return a == ActionDiffusionFinalize || a == ActionLoad
}

// Preferences maps every action to a shared behavior. Every action is
// always mapped; behaviors are immutable and may be shared between the
// table and in-flight runners
type Preferences struct {
	behaviors [actionCount]Behavior
}

// DefaultPreferences is the curated table: smooth for Rosetta moves,
// collapse/expand for mutations, fast linear for streaming diffusion,
// backbone-then-expand for finalized results, cascade for reveals, snap
// for loads
func DefaultPreferences() *Preferences {
	p := &Preferences{}
	p.behaviors[ActionWiggle] = StandardSmooth()
	p.behaviors[ActionShake] = StandardSmooth()
	p.behaviors[ActionMutation] = DefaultCollapseExpand()
	p.behaviors[ActionDiffusion] = LinearSmooth(parameter.DiffusionStepDuration)
	p.behaviors[ActionDiffusionFinalize] = DefaultBackboneThenExpand()
	p.behaviors[ActionReveal] = DefaultCascade()
	p.behaviors[ActionLoad] = Snap{}
	return p
}

// DisabledPreferences maps every action to an instant snap
func DisabledPreferences() *Preferences {
	p := &Preferences{}
	for i := range p.behaviors {
		p.behaviors[i] = Snap{}
	}
	return p
}

// Get returns the behavior for an action. Unknown actions fall back to
// snap so every lookup yields a usable behavior
func (p *Preferences) Get(action Action) Behavior {
	if action < 0 || action >= actionCount {
		return Snap{}
	}
	return p.behaviors[action]
}

// Set replaces the behavior for an action
func (p *Preferences) Set(action Action, behavior Behavior) {
	if action >= 0 && action < actionCount && behavior != nil {
		p.behaviors[action] = behavior
	}
}
