package anim

import (
	"github.com/petridecus/viso/parameter"
	"github.com/petridecus/viso/vmath"
)

// ResidueVisualState is the renderable state of one residue at a point
// in time: three backbone atom positions (N, CA, C) plus up to four chi
// dihedrals in degrees
type ResidueVisualState struct {
	// Backbone atom positions: N, CA, C
	Backbone [3]vmath.Vec3
	// Chi angles in degrees, unused slots stay zero
	Chis [parameter.MaxChis]float64
	// NumChis is how many chi slots are valid, 0 to 4
	NumChis int
}

// NewResidueState builds a state from backbone positions and chi angles
func NewResidueState(backbone [3]vmath.Vec3, chis []float64) ResidueVisualState {
	s := ResidueVisualState{Backbone: backbone}
	s.NumChis = len(chis)
	if s.NumChis > parameter.MaxChis {
		s.NumChis = parameter.MaxChis
	}
	copy(s.Chis[:s.NumChis], chis)
	return s
}

// BackboneOnly builds a state with no sidechain dihedrals
func BackboneOnly(backbone [3]vmath.Vec3) ResidueVisualState {
	return ResidueVisualState{Backbone: backbone}
}

// Lerp interpolates between two states. Positions blend linearly, chi
// angles take the shortest rotational path
func (s ResidueVisualState) Lerp(other ResidueVisualState, t float64) ResidueVisualState {
	out := ResidueVisualState{
		Backbone: [3]vmath.Vec3{
			vmath.Lerp(t, s.Backbone[0], other.Backbone[0]),
			vmath.Lerp(t, s.Backbone[1], other.Backbone[1]),
			vmath.Lerp(t, s.Backbone[2], other.Backbone[2]),
		},
	}

	out.NumChis = s.NumChis
	if other.NumChis > out.NumChis {
		out.NumChis = other.NumChis
	}
	for i := 0; i < out.NumChis; i++ {
		out.Chis[i] = LerpAngle(t, s.Chis[i], other.Chis[i])
	}
	return out
}

// CAPosition returns the alpha carbon position
func (s ResidueVisualState) CAPosition() vmath.Vec3 {
	return s.Backbone[1]
}

// FixAngle shifts initial by 360-degree increments until it lies within
// 180 degrees of final (the Rosetta convention), so interpolation between
// the two always takes the shorter rotational path
func FixAngle(initial, final float64) float64 {
	adjusted := initial
	for adjusted > final+180 {
		adjusted -= 360
	}
	for adjusted < final-180 {
		adjusted += 360
	}
	return adjusted
}

// LerpAngle interpolates between two angles in degrees with wrapping
func LerpAngle(t, start, end float64) float64 {
	adjusted := FixAngle(start, end)
	return adjusted + (end-adjusted)*t
}
