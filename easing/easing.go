package easing

import (
	"math"
)

// Kind selects an easing curve shape
type Kind int

const (
	// Linear applies no easing
	Linear Kind = iota
	// QuadraticIn starts slow and ends fast
	QuadraticIn
	// QuadraticOut starts fast and ends slow
	QuadraticOut
	// SqrtOut starts fast with a gradual slowdown
	SqrtOut
	// CubicHermite is a cubic Bezier-style curve with two control values
	CubicHermite
)

// Easing is a closed-form scalar curve mapping [0,1] to [0,1]
// All variants map 0 to 0 and 1 to 1
type Easing struct {
	Kind Kind
	// C1 and C2 are control values for CubicHermite, ignored otherwise
	C1, C2 float64
}

// Default is a cubic hermite with a natural ease-out feel
var Default = Easing{Kind: CubicHermite, C1: 0.33, C2: 1.0}

// Hermite builds a cubic hermite easing with the given control values
func Hermite(c1, c2 float64) Easing {
	return Easing{Kind: CubicHermite, C1: c1, C2: c2}
}

// Evaluate applies the curve at time t, clamping input to [0,1]
func (e Easing) Evaluate(t float64) float64 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	switch e.Kind {
	case QuadraticIn:
		return t * t
	case QuadraticOut:
		omt := 1 - t
		return 1 - omt*omt
	case SqrtOut:
		return math.Sqrt(t)
	case CubicHermite:
		// f(t) = c1·3t(1-t)² + c2·3(1-t)t² + t³
		omt := 1 - t
		return e.C1*3*t*omt*omt + e.C2*3*omt*t*t + t*t*t
	default:
		return t
	}
}
