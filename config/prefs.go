package config

import (
	"fmt"
	"time"

	"github.com/petridecus/viso/anim"
	"github.com/petridecus/viso/easing"
)

// EasingSpec is the serializable form of an easing curve
type EasingSpec struct {
	Kind string  `yaml:"kind"`
	C1   float64 `yaml:"c1,omitempty"`
	C2   float64 `yaml:"c2,omitempty"`
}

// BehaviorSpec is the serializable form of one action's behavior.
// Which duration fields apply depends on the kind; unused fields are
// omitted from the yaml output
type BehaviorSpec struct {
	Kind string `yaml:"kind"`

	// Smooth
	DurationMs int `yaml:"durationMs,omitempty"`

	// Cascade
	BaseDurationMs    int `yaml:"baseDurationMs,omitempty"`
	DelayPerResidueMs int `yaml:"delayPerResidueMs,omitempty"`

	// Two-phase behaviors
	CollapseMs int `yaml:"collapseMs,omitempty"`
	BackboneMs int `yaml:"backboneMs,omitempty"`
	ExpandMs   int `yaml:"expandMs,omitempty"`

	Easing     *EasingSpec `yaml:"easing,omitempty"`
	Preemption string      `yaml:"preemption,omitempty"`
}

// Prefs maps action wire names to behavior specs. Actions without an
// entry keep their default behavior
type Prefs struct {
	Actions map[string]BehaviorSpec `yaml:"actions"`
}

// FromPreferences captures a preference table in serializable form
func FromPreferences(p *anim.Preferences) *Prefs {
	out := &Prefs{Actions: make(map[string]BehaviorSpec, len(anim.Actions()))}
	for _, action := range anim.Actions() {
		out.Actions[action.String()] = specFromBehavior(p.Get(action))
	}
	return out
}

// Build constructs a preference table from the specs, starting from the
// default table so every action stays mapped
func (p *Prefs) Build() (*anim.Preferences, error) {
	prefs := anim.DefaultPreferences()

	for name, spec := range p.Actions {
		action, ok := actionFromName(name)
		if !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		behavior, err := spec.buildBehavior()
		if err != nil {
			return nil, fmt.Errorf("action %q: %w", name, err)
		}
		prefs.Set(action, behavior)
	}

	return prefs, nil
}

func actionFromName(name string) (anim.Action, bool) {
	for _, action := range anim.Actions() {
		if action.String() == name {
			return action, true
		}
	}
	return 0, false
}

func (s BehaviorSpec) buildBehavior() (anim.Behavior, error) {
	switch s.Kind {
	case "snap":
		return anim.Snap{}, nil

	case "smooth":
		sm := anim.StandardSmooth()
		if s.DurationMs > 0 {
			sm.Dur = time.Duration(s.DurationMs) * time.Millisecond
		}
		if s.Easing != nil {
			e, err := s.Easing.build()
			if err != nil {
				return nil, err
			}
			sm.Ease = e
		}
		if s.Preemption != "" {
			pre, err := preemptionFromName(s.Preemption)
			if err != nil {
				return nil, err
			}
			sm.Preempt = pre
		}
		return sm, nil

	case "cascade":
		c := anim.DefaultCascade()
		if s.BaseDurationMs > 0 {
			c.BaseDuration = time.Duration(s.BaseDurationMs) * time.Millisecond
		}
		if s.DelayPerResidueMs > 0 {
			c.DelayPerResidue = time.Duration(s.DelayPerResidueMs) * time.Millisecond
		}
		if s.Easing != nil {
			e, err := s.Easing.build()
			if err != nil {
				return nil, err
			}
			c.Ease = e
		}
		return c, nil

	case "collapse-expand":
		ce := anim.DefaultCollapseExpand()
		if s.CollapseMs > 0 {
			ce.CollapseDuration = time.Duration(s.CollapseMs) * time.Millisecond
		}
		if s.ExpandMs > 0 {
			ce.ExpandDuration = time.Duration(s.ExpandMs) * time.Millisecond
		}
		return ce, nil

	case "backbone-then-expand":
		b := anim.DefaultBackboneThenExpand()
		if s.BackboneMs > 0 {
			b.BackboneDuration = time.Duration(s.BackboneMs) * time.Millisecond
		}
		if s.ExpandMs > 0 {
			b.ExpandDuration = time.Duration(s.ExpandMs) * time.Millisecond
		}
		return b, nil

	default:
		return nil, fmt.Errorf("unknown behavior kind %q", s.Kind)
	}
}

func (e EasingSpec) build() (easing.Easing, error) {
	switch e.Kind {
	case "linear":
		return easing.Easing{Kind: easing.Linear}, nil
	case "quadratic-in":
		return easing.Easing{Kind: easing.QuadraticIn}, nil
	case "quadratic-out":
		return easing.Easing{Kind: easing.QuadraticOut}, nil
	case "sqrt-out":
		return easing.Easing{Kind: easing.SqrtOut}, nil
	case "cubic-hermite":
		return easing.Hermite(e.C1, e.C2), nil
	default:
		return easing.Easing{}, fmt.Errorf("unknown easing kind %q", e.Kind)
	}
}

func easingName(e easing.Easing) string {
	switch e.Kind {
	case easing.QuadraticIn:
		return "quadratic-in"
	case easing.QuadraticOut:
		return "quadratic-out"
	case easing.SqrtOut:
		return "sqrt-out"
	case easing.CubicHermite:
		return "cubic-hermite"
	default:
		return "linear"
	}
}

func easingSpec(e easing.Easing) *EasingSpec {
	spec := &EasingSpec{Kind: easingName(e)}
	if e.Kind == easing.CubicHermite {
		spec.C1 = e.C1
		spec.C2 = e.C2
	}
	return spec
}

func preemptionFromName(name string) (anim.Preemption, error) {
	switch name {
	case "restart":
		return anim.PreemptRestart, nil
	case "ignore":
		return anim.PreemptIgnore, nil
	case "blend":
		return anim.PreemptBlend, nil
	default:
		return 0, fmt.Errorf("unknown preemption %q", name)
	}
}

func specFromBehavior(b anim.Behavior) BehaviorSpec {
	switch v := b.(type) {
	case *anim.Smooth:
		return BehaviorSpec{
			Kind:       "smooth",
			DurationMs: int(v.Dur / time.Millisecond),
			Easing:     easingSpec(v.Ease),
			Preemption: v.Preempt.String(),
		}
	case *anim.Cascade:
		return BehaviorSpec{
			Kind:              "cascade",
			BaseDurationMs:    int(v.BaseDuration / time.Millisecond),
			DelayPerResidueMs: int(v.DelayPerResidue / time.Millisecond),
			Easing:            easingSpec(v.Ease),
		}
	case *anim.CollapseExpand:
		return BehaviorSpec{
			Kind:       "collapse-expand",
			CollapseMs: int(v.CollapseDuration / time.Millisecond),
			ExpandMs:   int(v.ExpandDuration / time.Millisecond),
		}
	case *anim.BackboneThenExpand:
		return BehaviorSpec{
			Kind:       "backbone-then-expand",
			BackboneMs: int(v.BackboneDuration / time.Millisecond),
			ExpandMs:   int(v.ExpandDuration / time.Millisecond),
		}
	default:
		return BehaviorSpec{Kind: "snap"}
	}
}
