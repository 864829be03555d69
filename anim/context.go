package anim

// Context is the per-frame interpolation bundle computed once from a
// behavior and its raw progress, then shared across every interpolation
// site so backbone and sidechain motion never desync within a frame
type Context struct {
	// RawT is the unmodified timer progress, 0 to 1
	RawT float64
	// EasedT is the eased progress most interpolation should read
	EasedT float64
	// PhaseT is progress within the current sub-phase of a multi-phase
	// behavior, valid only when HasPhase is set
	PhaseT float64
	// PhaseEasedT is the eased progress within the current sub-phase
	PhaseEasedT float64
	// HasPhase marks PhaseT/PhaseEasedT as populated
	HasPhase bool
}

// SimpleContext builds a context with just raw and eased progress
func SimpleContext(rawT, easedT float64) Context {
	return Context{RawT: rawT, EasedT: easedT}
}

// PhaseContext builds a context carrying sub-phase progress
func PhaseContext(rawT, easedT, phaseT, phaseEasedT float64) Context {
	return Context{
		RawT:        rawT,
		EasedT:      easedT,
		PhaseT:      phaseT,
		PhaseEasedT: phaseEasedT,
		HasPhase:    true,
	}
}

// IdentityContext is the completed-animation context used when nothing
// is running
func IdentityContext() Context {
	return Context{RawT: 1, EasedT: 1}
}

// LinearContext builds a context with no easing applied
func LinearContext(rawT float64) Context {
	return SimpleContext(rawT, rawT)
}

// PhaseEased returns the phase-local eased progress, falling back to 1
// when the context has no phase information
func (c Context) PhaseEased() float64 {
	if !c.HasPhase {
		return 1
	}
	return c.PhaseEasedT
}
