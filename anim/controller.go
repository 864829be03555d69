package anim

import (
	"time"
)

// Controller decides the animation lifecycle: when a new target starts a
// runner, preempts one, or gets ignored.
//
// Responsibilities:
// - Map actions to behaviors via preferences
// - Apply the active behavior's preemption policy
// - Build a Runner when animation should start
type Controller struct {
	preferences *Preferences
	enabled     bool
}

// NewController creates a controller with the default preference table
func NewController() *Controller {
	return &Controller{
		preferences: DefaultPreferences(),
		enabled:     true,
	}
}

// NewControllerWith creates a controller with custom preferences
func NewControllerWith(preferences *Preferences) *Controller {
	return &Controller{
		preferences: preferences,
		enabled:     true,
	}
}

// Preferences returns the action-to-behavior table
func (c *Controller) Preferences() *Preferences {
	return c.preferences
}

// SetEnabled turns animation on or off
func (c *Controller) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// IsEnabled reports whether animations run at all
func (c *Controller) IsEnabled() bool {
	return c.enabled
}

// HandleNewTarget decides what a newly arrived target state does.
//
// Returns the runner to animate with (nil when the target snapped or
// needs no animation) and whether the caller must replace its active
// runner with it. replace=false only on the Ignore preemption path: the
// in-flight animation keeps running and the deferred target applies at
// completion. Every snap path reports replace=true so a stale runner
// never replays over freshly snapped state
func (c *Controller) HandleNewTarget(
	currentState *StructureState,
	newTarget *StructureState,
	currentRunner *Runner,
	action Action,
	forceAnimation bool,
	now time.Time,
) (*Runner, bool) {
	if !c.enabled {
		replaceState(currentState, newTarget)
		return nil, true
	}

	if currentState.SizeDiffers(newTarget) {
		if action.AllowsSizeChange() && !currentState.IsEmpty() {
			// Animate the overlapping residues; new residues appear at
			// their target positions
			currentState.ResizeToMatch(newTarget)
		} else {
			replaceState(currentState, newTarget)
			return nil, true
		}
	}

	// First structure, nothing to animate from
	if currentState.IsEmpty() {
		replaceState(currentState, newTarget)
		return nil, true
	}

	behavior := c.preferences.Get(action)

	if currentRunner != nil {
		startTime := now
		switch currentRunner.Behavior().Preemption() {
		case PreemptIgnore:
			// In-flight animation finishes untouched; the deferred target
			// applies at completion
			return nil, false
		case PreemptBlend:
			// Redirect without resetting the clock
			startTime = currentRunner.StartTime()
			currentRunner.ApplyToState(currentState, currentRunner.Progress(now))
		default:
			// Restart from the mid-lerp visual position
			currentRunner.ApplyToState(currentState, currentRunner.Progress(now))
		}

		return c.startOrSnap(currentState, newTarget, behavior, startTime, forceAnimation)
	}

	return c.startOrSnap(currentState, newTarget, behavior, now, forceAnimation)
}

// startOrSnap builds a runner for the differing residues, short-cutting
// to an instant snap when its effective duration is zero so callers see
// the final state without waiting for an update tick
func (c *Controller) startOrSnap(
	currentState *StructureState,
	newTarget *StructureState,
	behavior Behavior,
	startTime time.Time,
	forceAnimation bool,
) (*Runner, bool) {
	r := c.buildRunner(currentState, newTarget, behavior, startTime, forceAnimation)
	if r != nil && r.Duration() <= 0 {
		replaceState(currentState, newTarget)
		return nil, true
	}
	return r, true
}

func (c *Controller) buildRunner(
	currentState *StructureState,
	newTarget *StructureState,
	behavior Behavior,
	startTime time.Time,
	forceAnimation bool,
) *Runner {
	if !forceAnimation && !currentState.TargetDiffers(newTarget) {
		return nil
	}

	differing := currentState.DifferingResidues(newTarget)
	if len(differing) == 0 && !forceAnimation {
		return nil
	}

	data := make([]ResidueAnimationData, 0, len(differing))
	for _, idx := range differing {
		start, ok := currentState.Current(idx)
		if !ok {
			continue
		}
		target, ok := newTarget.Target(idx)
		if !ok {
			continue
		}
		data = append(data, ResidueAnimationData{
			ResidueIdx: idx,
			Start:      start,
			Target:     target,
		})
	}

	if len(data) == 0 && !forceAnimation {
		return nil
	}

	return NewRunner(startTime, behavior, data)
}

func replaceState(dst, src *StructureState) {
	dst.current = append([]ResidueVisualState(nil), src.target...)
	dst.target = append([]ResidueVisualState(nil), src.target...)
	dst.chainLengths = append([]int(nil), src.chainLengths...)
}
