package parameter

import (
	"time"
)

// Structure Comparison
const (
	// StateEpsilon is the tolerance for residue state comparison,
	// applied to both position distance (angstroms) and chi delta (degrees)
	StateEpsilon = 1e-4

	// SidechainEpsilon is the tolerance for sidechain atom position comparison
	SidechainEpsilon = 1e-3

	// AtomsPerResidue is the backbone atom count per residue (N, CA, C)
	AtomsPerResidue = 3

	// MaxChis is the maximum number of chi dihedrals per residue
	MaxChis = 4
)

// Smooth Interpolation
const (
	// SmoothDuration is the standard transition length for minimize/pack moves
	SmoothDuration = 300 * time.Millisecond

	// FastDuration is the short transition for rapid feedback
	FastDuration = 100 * time.Millisecond

	// DiffusionStepDuration bridges consecutive streaming frames without
	// distorting the model's own trajectory (linear easing)
	DiffusionStepDuration = 100 * time.Millisecond
)

// Cascade Reveal
const (
	// CascadeBaseDuration is each residue's individual animation length
	CascadeBaseDuration = 200 * time.Millisecond

	// CascadeDelayPerResidue staggers consecutive residue start times
	CascadeDelayPerResidue = 10 * time.Millisecond
)

// Mutation Collapse/Expand
const (
	// CollapseDuration retracts the old sidechain toward the backbone
	CollapseDuration = 150 * time.Millisecond

	// ExpandDuration grows the new sidechain out from the backbone
	ExpandDuration = 150 * time.Millisecond
)

// Diffusion Finalize
const (
	// FinalizeBackboneDuration settles the backbone before sidechains appear
	FinalizeBackboneDuration = 400 * time.Millisecond

	// FinalizeExpandDuration grows sidechains once the backbone has settled
	FinalizeExpandDuration = 600 * time.Millisecond
)
