package anim

import (
	"math"
	"testing"
	"time"

	"github.com/petridecus/viso/easing"
	"github.com/petridecus/viso/vmath"
)

func TestSmoothEndpoints(t *testing.T) {
	s := StandardSmooth()
	a := testStateA()
	b := testStateB()

	got := s.ComputeState(0, a, b)
	if got.Backbone[1] != a.Backbone[1] {
		t.Errorf("t=0 CA = %v, want start %v", got.Backbone[1], a.Backbone[1])
	}
	got = s.ComputeState(1, a, b)
	if got.Backbone[1] != b.Backbone[1] {
		t.Errorf("t=1 CA = %v, want end %v", got.Backbone[1], b.Backbone[1])
	}
	if math.Abs(got.Chis[0]-90) > 1e-6 {
		t.Errorf("t=1 chi = %v, want 90", got.Chis[0])
	}
}

func TestLinearSmoothMidpoint(t *testing.T) {
	s := LinearSmooth(100 * time.Millisecond)
	got := s.ComputeState(0.5, testStateA(), testStateB())
	if math.Abs(got.Backbone[1].Y-0.5) > 1e-6 {
		t.Errorf("mid CA y = %v, want 0.5", got.Backbone[1].Y)
	}
	if math.Abs(got.Chis[0]-45) > 1e-6 {
		t.Errorf("mid chi = %v, want 45", got.Chis[0])
	}
}

func TestSmoothDefaults(t *testing.T) {
	s := StandardSmooth()
	if s.Duration() != 300*time.Millisecond {
		t.Errorf("duration = %v, want 300ms", s.Duration())
	}
	if s.Preemption() != PreemptRestart {
		t.Errorf("preemption = %v, want restart", s.Preemption())
	}
	if s.Name() != "smooth" {
		t.Errorf("name = %q", s.Name())
	}
}

func TestSmoothWithPreemptionCopies(t *testing.T) {
	s := StandardSmooth()
	blend := s.WithPreemption(PreemptBlend)
	if blend.Preemption() != PreemptBlend {
		t.Errorf("copy preemption = %v, want blend", blend.Preemption())
	}
	if s.Preemption() != PreemptRestart {
		t.Errorf("original preemption mutated to %v", s.Preemption())
	}
}

func TestSnapAlwaysEnd(t *testing.T) {
	var s Snap
	a := testStateA()
	b := testStateB()

	for _, tt := range []float64{0, 0.25, 0.5, 1} {
		got := s.ComputeState(tt, a, b)
		if got.Backbone[1] != b.Backbone[1] || got.Chis[0] != b.Chis[0] {
			t.Errorf("t=%v did not snap to end", tt)
		}
	}
	if s.Duration() != 0 {
		t.Errorf("duration = %v, want 0", s.Duration())
	}
}

func TestSnapInterpolatePosition(t *testing.T) {
	var s Snap
	end := vmath.Vec3{X: 3, Y: 4}
	got := s.InterpolatePosition(0, vmath.Vec3{}, end, vmath.Vec3{X: 1})
	if got != end {
		t.Errorf("position = %v, want %v", got, end)
	}
}

func TestCascadeTotalDuration(t *testing.T) {
	c := NewCascade(100*time.Millisecond, 10*time.Millisecond)

	if d := c.TotalDurationFor(5); d != 140*time.Millisecond {
		t.Errorf("5 residues: %v, want 140ms", d)
	}
	if d := c.TotalDurationFor(1); d != 100*time.Millisecond {
		t.Errorf("1 residue: %v, want 100ms", d)
	}
	if d := c.TotalDurationFor(0); d != 0 {
		t.Errorf("0 residues: %v, want 0", d)
	}
}

func TestCascadeResidueT(t *testing.T) {
	c := NewCascade(100*time.Millisecond, 10*time.Millisecond)

	// Total is 140ms for 5 residues. Residue 0 starts immediately
	if lt := c.ResidueT(0, 0, 5); lt != 0 {
		t.Errorf("residue 0 at t=0: %v, want 0", lt)
	}
	// At 100ms global (t ~= 0.714), residue 0 is done
	if lt := c.ResidueT(100.0/140.0, 0, 5); math.Abs(lt-1) > 1e-9 {
		t.Errorf("residue 0 at 100ms: %v, want 1", lt)
	}
	// Residue 4 starts at 40ms; at 40ms global it is at 0
	if lt := c.ResidueT(40.0/140.0, 4, 5); math.Abs(lt) > 1e-9 {
		t.Errorf("residue 4 at 40ms: %v, want 0", lt)
	}
	// Residue 4 at 90ms global is halfway through its own 100ms
	if lt := c.ResidueT(90.0/140.0, 4, 5); math.Abs(lt-0.5) > 1e-9 {
		t.Errorf("residue 4 at 90ms: %v, want 0.5", lt)
	}
	// Before a residue's start it holds at 0
	if lt := c.ResidueT(5.0/140.0, 3, 5); lt != 0 {
		t.Errorf("residue 3 at 5ms: %v, want 0", lt)
	}
	// Global completion completes every residue
	if lt := c.ResidueT(1, 4, 5); lt != 1 {
		t.Errorf("residue 4 at t=1: %v, want 1", lt)
	}
}

func TestCascadePreemptionIgnore(t *testing.T) {
	if DefaultCascade().Preemption() != PreemptIgnore {
		t.Error("cascade should ignore preemption")
	}
}

func TestCollapseExpandEndpoints(t *testing.T) {
	ce := NewCollapseExpand(150*time.Millisecond, 150*time.Millisecond)
	a := testStateA()
	b := testStateB()

	got := ce.ComputeState(0, a, b)
	if got.Backbone[1] != a.Backbone[1] {
		t.Errorf("t=0 CA = %v, want start", got.Backbone[1])
	}
	if math.Abs(got.Chis[0]-a.Chis[0]) > 1e-6 {
		t.Errorf("t=0 chi = %v, want %v", got.Chis[0], a.Chis[0])
	}

	got = ce.ComputeState(1, a, b)
	if got.Backbone[1] != b.Backbone[1] {
		t.Errorf("t=1 CA = %v, want end", got.Backbone[1])
	}
	if math.Abs(got.Chis[0]-b.Chis[0]) > 1e-6 {
		t.Errorf("t=1 chi = %v, want %v", got.Chis[0], b.Chis[0])
	}
}

func TestCollapseExpandMidpointCollapsed(t *testing.T) {
	ce := NewCollapseExpand(150*time.Millisecond, 150*time.Millisecond)
	a := NewResidueState([3]vmath.Vec3{}, []float64{60})
	b := NewResidueState([3]vmath.Vec3{}, []float64{-120})

	// At the phase boundary the old chi has fully collapsed and the new
	// one has not started growing
	got := ce.ComputeState(0.5, a, b)
	if math.Abs(got.Chis[0]) > 1e-6 {
		t.Errorf("boundary chi = %v, want 0", got.Chis[0])
	}
}

func TestCollapseExpandDuration(t *testing.T) {
	ce := DefaultCollapseExpand()
	if ce.Duration() != 300*time.Millisecond {
		t.Errorf("duration = %v, want 300ms", ce.Duration())
	}
}

func TestCollapseExpandPosition(t *testing.T) {
	ce := NewCollapseExpand(150*time.Millisecond, 150*time.Millisecond)
	start := vmath.Vec3{X: 2}
	end := vmath.Vec3{X: -2}
	ca := vmath.Vec3{}

	// Collapse phase moves toward the CA, not toward the end position
	got := ce.InterpolatePosition(0.25, start, end, ca)
	if got.X < 0 || got.X >= 2 {
		t.Errorf("collapse position x = %v, want within (0, 2)", got.X)
	}

	// Expand phase moves outward from the CA
	got = ce.InterpolatePosition(0.75, start, end, ca)
	if got.X > 0 || got.X <= -2 {
		t.Errorf("expand position x = %v, want within (-2, 0)", got.X)
	}

	if got := ce.InterpolatePosition(1, start, end, ca); got != end {
		t.Errorf("t=1 position = %v, want %v", got, end)
	}
}

func TestCollapseExpandEasedTMonotonic(t *testing.T) {
	ce := DefaultCollapseExpand()
	prev := ce.EasedT(0)
	for i := 1; i <= 100; i++ {
		cur := ce.EasedT(float64(i) / 100)
		if cur < prev {
			t.Fatalf("eased t decreased at step %d: %v < %v", i, cur, prev)
		}
		prev = cur
	}
	if math.Abs(ce.EasedT(1)-1) > 1e-9 {
		t.Errorf("EasedT(1) = %v, want 1", ce.EasedT(1))
	}
}

func TestBackboneThenExpandSequencing(t *testing.T) {
	b := NewBackboneThenExpand(400*time.Millisecond, 600*time.Millisecond)
	start := testStateA()
	end := testStateB()

	// At the phase boundary the backbone has fully settled
	boundary := 0.4
	got := b.ComputeState(boundary, start, end)
	if got.Backbone[1] != end.Backbone[1] {
		t.Errorf("boundary CA = %v, want settled at %v", got.Backbone[1], end.Backbone[1])
	}

	// During phase 1 chis hold their start values
	got = b.ComputeState(0.2, start, end)
	if math.Abs(got.Chis[0]-start.Chis[0]) > 1e-6 {
		t.Errorf("phase 1 chi = %v, want frozen at %v", got.Chis[0], start.Chis[0])
	}

	// During phase 2 chis grow toward the end values
	got = b.ComputeState(0.7, start, end)
	if got.Chis[0] <= 0 || got.Chis[0] >= end.Chis[0] {
		t.Errorf("phase 2 chi = %v, want within (0, %v)", got.Chis[0], end.Chis[0])
	}

	got = b.ComputeState(1, start, end)
	if math.Abs(got.Chis[0]-end.Chis[0]) > 1e-6 {
		t.Errorf("t=1 chi = %v, want %v", got.Chis[0], end.Chis[0])
	}
}

func TestBackboneThenExpandPinsSidechains(t *testing.T) {
	b := NewBackboneThenExpand(400*time.Millisecond, 600*time.Millisecond)
	ca := vmath.Vec3{X: 1, Y: 1}
	end := vmath.Vec3{X: 5}

	// Phase 1 pins atoms to the CA regardless of start or end
	got := b.InterpolatePosition(0.2, vmath.Vec3{X: -3}, end, ca)
	if got != ca {
		t.Errorf("phase 1 position = %v, want pinned at %v", got, ca)
	}

	if got := b.InterpolatePosition(1, vmath.Vec3{}, end, ca); got != end {
		t.Errorf("t=1 position = %v, want %v", got, end)
	}
}

func TestBackboneThenExpandSidechainVisibility(t *testing.T) {
	b := NewBackboneThenExpand(400*time.Millisecond, 600*time.Millisecond)
	if b.ShouldIncludeSidechains(0.2) {
		t.Error("sidechains visible during settle phase")
	}
	if !b.ShouldIncludeSidechains(0.5) {
		t.Error("sidechains hidden during expand phase")
	}
}

func TestBackboneThenExpandDuration(t *testing.T) {
	b := DefaultBackboneThenExpand()
	if b.Duration() != time.Second {
		t.Errorf("duration = %v, want 1s", b.Duration())
	}
}

func TestPhaseContextFields(t *testing.T) {
	ctx := PhaseContext(0.25, 0.1, 0.5, 0.6)
	if !ctx.HasPhase {
		t.Error("HasPhase not set")
	}
	if ctx.PhaseEased() != 0.6 {
		t.Errorf("PhaseEased = %v, want 0.6", ctx.PhaseEased())
	}

	simple := SimpleContext(0.25, 0.3)
	if simple.HasPhase {
		t.Error("simple context should not carry phase data")
	}
	if simple.PhaseEased() != 1 {
		t.Errorf("phaseless PhaseEased = %v, want 1", simple.PhaseEased())
	}
}

func TestIdentityContextComplete(t *testing.T) {
	ctx := IdentityContext()
	if ctx.RawT != 1 || ctx.EasedT != 1 {
		t.Errorf("identity context = %+v, want raw and eased at 1", ctx)
	}
}

func TestBehaviorNames(t *testing.T) {
	cases := []struct {
		b    Behavior
		want string
	}{
		{StandardSmooth(), "smooth"},
		{Snap{}, "snap"},
		{DefaultCascade(), "cascade"},
		{DefaultCollapseExpand(), "collapse-expand"},
		{DefaultBackboneThenExpand(), "backbone-then-expand"},
	}
	for _, c := range cases {
		if c.b.Name() != c.want {
			t.Errorf("name = %q, want %q", c.b.Name(), c.want)
		}
	}
}

func TestSmoothEasingKinds(t *testing.T) {
	if FastSmooth().Ease.Kind != easing.QuadraticOut {
		t.Error("fast smooth should use quadratic ease-out")
	}
	if LinearSmooth(time.Second).Ease.Kind != easing.Linear {
		t.Error("linear smooth should use linear easing")
	}
}
