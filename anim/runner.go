package anim

import (
	"time"
)

// ResidueAnimationData holds one residue's animation endpoints
type ResidueAnimationData struct {
	// ResidueIdx is the residue's flat index across all chains
	ResidueIdx int
	// Start is the state this animation begins from
	Start ResidueVisualState
	// Target is the state this animation ends at
	Target ResidueVisualState
}

// ResidueRange is a half-open [Start, End) span of flat residue indices
type ResidueRange struct {
	Start, End int
}

// Contains reports whether idx falls inside the range
func (r ResidueRange) Contains(idx int) bool {
	return idx >= r.Start && idx < r.End
}

// Runner executes a single animation of one behavior over a batch of
// residues, from a start instant to completion.
//
// The behavior is shared and immutable; the runner owns only the batch
// and its timing
type Runner struct {
	startTime time.Time
	behavior  Behavior
	residues  []ResidueAnimationData
	// duration is the effective total, which for staggered behaviors
	// depends on the batch size
	duration time.Duration
}

// NewRunner starts an animation at the given instant
func NewRunner(startTime time.Time, behavior Behavior, residues []ResidueAnimationData) *Runner {
	dur := behavior.Duration()
	if st, ok := behavior.(Staggered); ok {
		dur = st.TotalDurationFor(len(residues))
	}
	return &Runner{
		startTime: startTime,
		behavior:  behavior,
		residues:  residues,
		duration:  dur,
	}
}

// Behavior returns the runner's shared behavior
func (r *Runner) Behavior() Behavior {
	return r.behavior
}

// StartTime returns the instant the animation began
func (r *Runner) StartTime() time.Time {
	return r.startTime
}

// Duration is the effective total animation length for this batch
func (r *Runner) Duration() time.Duration {
	return r.duration
}

// ResidueCount is the number of residues in the batch
func (r *Runner) ResidueCount() int {
	return len(r.residues)
}

// Residues returns the batch
func (r *Runner) Residues() []ResidueAnimationData {
	return r.residues
}

// Progress is normalized elapsed time in [0,1]. Instants before the
// start clamp to 0, zero or negative duration completes immediately
func (r *Runner) Progress(now time.Time) float64 {
	elapsed := now.Sub(r.startTime)
	if elapsed < 0 {
		elapsed = 0
	}

	if r.duration <= 0 {
		return 1
	}

	t := elapsed.Seconds() / r.duration.Seconds()
	if t > 1 {
		return 1
	}
	return t
}

// IsComplete reports whether progress has reached 1
func (r *Runner) IsComplete(now time.Time) bool {
	return r.Progress(now) >= 1
}

// ComputeResidueState evaluates the behavior for one batch entry at the
// given global progress, applying per-residue stagger when the behavior
// is staggered
func (r *Runner) ComputeResidueState(batchIdx int, t float64) ResidueVisualState {
	data := r.residues[batchIdx]
	if st, ok := r.behavior.(Staggered); ok {
		t = st.ResidueT(t, batchIdx, len(r.residues))
	}
	return r.behavior.ComputeState(t, data.Start, data.Target)
}

// ApplyToState writes every batch residue's interpolated state into the
// structure's current array at the given global progress
func (r *Runner) ApplyToState(state *StructureState, t float64) {
	for i, data := range r.residues {
		state.SetCurrent(data.ResidueIdx, r.ComputeResidueState(i, t))
	}
}

// RemoveResidueRanges drops batch entries whose index falls in any of
// the given half-open ranges, for excluding residues that left the
// animated set without destroying the whole runner
func (r *Runner) RemoveResidueRanges(ranges []ResidueRange) {
	kept := r.residues[:0]
	for _, data := range r.residues {
		excluded := false
		for _, rng := range ranges {
			if rng.Contains(data.ResidueIdx) {
				excluded = true
				break
			}
		}
		if !excluded {
			kept = append(kept, data)
		}
	}
	r.residues = kept
}
