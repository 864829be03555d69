package easing

import (
	"math"
	"testing"
)

func TestLinearEndpoints(t *testing.T) {
	linear := Easing{Kind: Linear}
	if v := linear.Evaluate(0); v != 0 {
		t.Errorf("linear(0) = %v", v)
	}
	if v := linear.Evaluate(0.5); v != 0.5 {
		t.Errorf("linear(0.5) = %v", v)
	}
	if v := linear.Evaluate(1); v != 1 {
		t.Errorf("linear(1) = %v", v)
	}
}

func TestQuadraticIn(t *testing.T) {
	quad := Easing{Kind: QuadraticIn}
	if v := quad.Evaluate(0.5); math.Abs(v-0.25) > 1e-9 {
		t.Errorf("quadIn(0.5) = %v, want 0.25", v)
	}
	if v := quad.Evaluate(1); v != 1 {
		t.Errorf("quadIn(1) = %v", v)
	}
}

func TestQuadraticOut(t *testing.T) {
	quad := Easing{Kind: QuadraticOut}
	if v := quad.Evaluate(0.5); math.Abs(v-0.75) > 1e-9 {
		t.Errorf("quadOut(0.5) = %v, want 0.75", v)
	}
}

func TestSqrtOut(t *testing.T) {
	sq := Easing{Kind: SqrtOut}
	if v := sq.Evaluate(0.25); math.Abs(v-0.5) > 1e-9 {
		t.Errorf("sqrtOut(0.25) = %v, want 0.5", v)
	}
}

func TestHermiteEndpoints(t *testing.T) {
	h := Hermite(0.33, 1.0)
	if v := h.Evaluate(0); v != 0 {
		t.Errorf("hermite(0) = %v", v)
	}
	if v := h.Evaluate(1); math.Abs(v-1) > 1e-9 {
		t.Errorf("hermite(1) = %v", v)
	}
}

func TestHermiteEaseOutShape(t *testing.T) {
	// With c1=0.33, c2=1.0 the curve front-loads its progress
	h := Default
	if v := h.Evaluate(0.25); v <= 0.25 {
		t.Errorf("ease-out should exceed t at t=0.25, got %v", v)
	}
}

func TestInputClamping(t *testing.T) {
	for _, e := range []Easing{
		{Kind: Linear},
		{Kind: QuadraticIn},
		{Kind: QuadraticOut},
		{Kind: SqrtOut},
		Default,
	} {
		if v := e.Evaluate(-0.5); v != 0 {
			t.Errorf("kind %d: evaluate(-0.5) = %v, want 0", e.Kind, v)
		}
		if v := e.Evaluate(1.5); math.Abs(v-1) > 1e-9 {
			t.Errorf("kind %d: evaluate(1.5) = %v, want 1", e.Kind, v)
		}
	}
}

func TestMonotonic(t *testing.T) {
	for _, e := range []Easing{
		{Kind: Linear},
		{Kind: QuadraticIn},
		{Kind: QuadraticOut},
		{Kind: SqrtOut},
		Default,
	} {
		prev := -1.0
		for i := 0; i <= 100; i++ {
			v := e.Evaluate(float64(i) / 100)
			if v < prev {
				t.Fatalf("kind %d: not monotonic at t=%v: %v < %v", e.Kind, float64(i)/100, v, prev)
			}
			prev = v
		}
	}
}
