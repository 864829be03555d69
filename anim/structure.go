package anim

import (
	"math"

	"github.com/petridecus/viso/parameter"
	"github.com/petridecus/viso/vmath"
)

// StructureState holds the current and target visual state for a whole
// structure: two parallel residue arrays indexed by the residue's flat
// position across all chains.
//
// Responsible for converting between backbone chain format and
// per-residue states, tracking rendered vs target state, and detecting
// which residues differ
type StructureState struct {
	// current is what renders this frame
	current []ResidueVisualState
	// target is where the animation is heading
	target []ResidueVisualState
	// chainLengths is residues per chain, for preserving chain boundaries
	chainLengths []int
}

// NewStructureState creates an empty state
func NewStructureState() *StructureState {
	return &StructureState{}
}

// FromBackbone builds state from backbone chains. Chains are organized
// as [chain][atoms] where atoms run N, CA, C, N, CA, C, three per
// residue; a trailing partial group is dropped
func FromBackbone(backboneChains [][]vmath.Vec3) *StructureState {
	states := backboneToStates(backboneChains)
	chainLengths := make([]int, len(backboneChains))
	for i, chain := range backboneChains {
		chainLengths[i] = len(chain) / parameter.AtomsPerResidue
	}
	return &StructureState{
		current:      states,
		target:       append([]ResidueVisualState(nil), states...),
		chainLengths: chainLengths,
	}
}

// Current returns the current visual state for a residue
func (s *StructureState) Current(idx int) (ResidueVisualState, bool) {
	if idx < 0 || idx >= len(s.current) {
		return ResidueVisualState{}, false
	}
	return s.current[idx], true
}

// Target returns the target state for a residue
func (s *StructureState) Target(idx int) (ResidueVisualState, bool) {
	if idx < 0 || idx >= len(s.target) {
		return ResidueVisualState{}, false
	}
	return s.target[idx], true
}

// CurrentStates returns the full current array
func (s *StructureState) CurrentStates() []ResidueVisualState {
	return s.current
}

// TargetStates returns the full target array
func (s *StructureState) TargetStates() []ResidueVisualState {
	return s.target
}

// ResidueCount is the number of residues
func (s *StructureState) ResidueCount() int {
	return len(s.current)
}

// IsEmpty reports whether no residues are stored
func (s *StructureState) IsEmpty() bool {
	return len(s.current) == 0
}

// SetTarget replaces the target array (and chain layout) wholesale
func (s *StructureState) SetTarget(newTarget *StructureState) {
	s.target = newTarget.target
	s.chainLengths = newTarget.chainLengths
}

// SnapToTarget forces current to match target
func (s *StructureState) SnapToTarget() {
	s.current = append(s.current[:0:0], s.target...)
}

// SetCurrent writes the current state for one residue; out-of-range
// indices are ignored
func (s *StructureState) SetCurrent(idx int, state ResidueVisualState) {
	if idx >= 0 && idx < len(s.current) {
		s.current[idx] = state
	}
}

// SizeDiffers reports whether the residue counts mismatch
func (s *StructureState) SizeDiffers(other *StructureState) bool {
	return len(s.current) != len(other.current)
}

// TargetDiffers reports whether any target residue differs from the
// other state's target
func (s *StructureState) TargetDiffers(other *StructureState) bool {
	if len(s.target) != len(other.target) {
		return true
	}
	for i := range s.target {
		if StatesDiffer(s.target[i], other.target[i]) {
			return true
		}
	}
	return false
}

// DifferingResidues zips current against a new target's target array and
// returns the indices whose states differ beyond tolerance. Those are
// exactly the residues that need animation
func (s *StructureState) DifferingResidues(newTarget *StructureState) []int {
	n := len(s.current)
	if len(newTarget.target) < n {
		n = len(newTarget.target)
	}
	var indices []int
	for i := 0; i < n; i++ {
		if StatesDiffer(s.current[i], newTarget.target[i]) {
			indices = append(indices, i)
		}
	}
	return indices
}

// ResizeToMatch resizes current to the new target's residue count.
// Growing keeps existing residues at their current positions and places
// new residues directly at target (they will not animate); shrinking
// truncates. Afterwards current and target share the new length
func (s *StructureState) ResizeToMatch(newTarget *StructureState) {
	oldLen := len(s.current)
	newLen := len(newTarget.target)

	if newLen > oldLen {
		s.current = append(s.current, newTarget.target[oldLen:]...)
	} else if newLen < oldLen {
		s.current = s.current[:newLen]
	}

	s.target = append([]ResidueVisualState(nil), newTarget.target...)
	s.chainLengths = append([]int(nil), newTarget.chainLengths...)
}

// ToBackboneChains converts current state back to backbone chain format.
// Chain boundaries come from the recorded per-chain residue counts; when
// those are missing every residue flattens into a single chain, so
// multi-chain topology is not reconstructed in that case
func (s *StructureState) ToBackboneChains() [][]vmath.Vec3 {
	if len(s.current) == 0 {
		return nil
	}

	var chains [][]vmath.Vec3
	residueIdx := 0

	for _, chainLen := range s.chainLengths {
		positions := make([]vmath.Vec3, 0, chainLen*parameter.AtomsPerResidue)
		for r := 0; r < chainLen; r++ {
			if residueIdx < len(s.current) {
				positions = append(positions, s.current[residueIdx].Backbone[:]...)
			}
			residueIdx++
		}
		if len(positions) > 0 {
			chains = append(chains, positions)
		}
	}

	if len(chains) == 0 {
		positions := make([]vmath.Vec3, 0, len(s.current)*parameter.AtomsPerResidue)
		for _, st := range s.current {
			positions = append(positions, st.Backbone[:]...)
		}
		chains = append(chains, positions)
	}

	return chains
}

// StatesDiffer reports whether two residue states differ beyond the
// comparison epsilon on any backbone position or chi angle
func StatesDiffer(a, b ResidueVisualState) bool {
	for i := 0; i < 3; i++ {
		if vmath.Dist(a.Backbone[i], b.Backbone[i]) > parameter.StateEpsilon {
			return true
		}
	}

	numChis := a.NumChis
	if b.NumChis > numChis {
		numChis = b.NumChis
	}
	for i := 0; i < numChis; i++ {
		if math.Abs(a.Chis[i]-b.Chis[i]) > parameter.StateEpsilon {
			return true
		}
	}

	return false
}

func backboneToStates(backboneChains [][]vmath.Vec3) []ResidueVisualState {
	var states []ResidueVisualState
	for _, chain := range backboneChains {
		for i := 0; i+parameter.AtomsPerResidue <= len(chain); i += parameter.AtomsPerResidue {
			states = append(states, BackboneOnly([3]vmath.Vec3{chain[i], chain[i+1], chain[i+2]}))
		}
	}
	return states
}
