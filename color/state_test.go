package color

import (
	"testing"

	"github.com/achilleasa/trirender/types"
)

func TestNewClampsInitialColor(t *testing.T) {
	s := New(types.XYZ(-1, 0.25, 3), 0, Zero)
	expVal := types.XYZ(0, 0.25, 1)
	if s.Color() != expVal {
		t.Fatalf("expected initial color %v; got %v", expVal, s.Color())
	}
	if s.StepSize() != DefaultStep {
		t.Fatalf("expected default step %f; got %f", DefaultStep, s.StepSize())
	}
}

func TestStepSaturates(t *testing.T) {
	specs := []struct {
		current types.Vec3
		delta   types.Vec3
		out     types.Vec3
	}{
		{types.XYZ(0.5, 0.5, 0.5), types.XYZ(0, 0, 0), types.XYZ(0.5, 0.5, 0.5)},
		{types.XYZ(0.995, 0.005, 0.5), types.XYZ(0.01, -0.01, 0), types.XYZ(1, 0, 0.5)},
		{types.XYZ(1, 0, 1), types.XYZ(0.01, -0.01, 0.01), types.XYZ(1, 0, 1)},
	}

	for idx, s := range specs {
		if got := Step(s.current, s.delta); got != s.out {
			t.Fatalf("[spec %d] expected Step(%v, %v) to be %v; got %v", idx, s.current, s.delta, s.out, got)
		}
	}
}

func TestRailsAreLeftOnInwardDraws(t *testing.T) {
	s := New(types.XYZ(1, 0, 0.5), 0.01, SourceFunc(func(min, max float32) float32 { return max }))
	s.Advance()
	if c := s.Color(); c[0] != 1 || c[1] != 0.01 {
		t.Fatalf("expected red to stay pinned and green to leave the rail; got %v", c)
	}

	s = New(types.XYZ(1, 0, 0.5), 0.01, SourceFunc(func(min, max float32) float32 { return min }))
	s.Advance()
	if c := s.Color(); c[0] != 0.99 || c[1] != 0 {
		t.Fatalf("expected red to leave the rail and green to stay pinned; got %v", c)
	}
}

func TestZeroSourceIsIdempotent(t *testing.T) {
	initial := types.XYZ(0.3, 0.6, 0.9)
	s := New(initial, DefaultStep, Zero)
	for i := 0; i < 100; i++ {
		if got := s.Advance(); got != initial {
			t.Fatalf("[step %d] expected color to remain %v; got %v", i, initial, got)
		}
	}
}

func TestAdvanceDrawsWithinStep(t *testing.T) {
	var draws int
	src := SourceFunc(func(min, max float32) float32 {
		draws++
		if min != -0.01 || max != 0.01 {
			t.Fatalf("expected draw range [-0.01, 0.01]; got [%f, %f]", min, max)
		}
		return 0
	})

	New(DefaultColor, DefaultStep, src).Advance()
	if draws != 3 {
		t.Fatalf("expected one draw per channel; got %d", draws)
	}
}

func TestChannelsAreIndependent(t *testing.T) {
	deltas := []float32{0.01, -0.01, 0}
	var next int
	src := SourceFunc(func(_, _ float32) float32 {
		d := deltas[next%len(deltas)]
		next++
		return d
	})

	s := New(DefaultColor, DefaultStep, src)
	c := s.Advance()
	if c[0] <= 0.5 || c[1] >= 0.5 || c[2] != 0.5 {
		t.Fatalf("expected channels to move independently; got %v", c)
	}
}

func TestRandomWalkStaysBounded(t *testing.T) {
	for seed := int64(0); seed < 16; seed++ {
		s := New(DefaultColor, DefaultStep, NewSeededSource(seed))
		for i := 0; i < 1000; i++ {
			if c := s.Advance(); !c.InUnitRange() {
				t.Fatalf("[seed %d, step %d] color %v left the unit cube", seed, i, c)
			}
		}
	}
}

func TestRandomWalkFromRails(t *testing.T) {
	for _, start := range []types.Vec3{types.XYZ(0, 0, 0), types.XYZ(1, 1, 1), types.XYZ(0, 1, 0.5)} {
		s := New(start, 0.5, NewSeededSource(42))
		for i := 0; i < 1000; i++ {
			if c := s.Advance(); !c.InUnitRange() {
				t.Fatalf("[start %v, step %d] color %v left the unit cube", start, i, c)
			}
		}
	}
}

func TestSeededSourceRange(t *testing.T) {
	src := NewSeededSource(7)
	for i := 0; i < 10000; i++ {
		v := src.Uniform(-0.01, 0.01)
		if v < -0.01 || v > 0.01 {
			t.Fatalf("[draw %d] expected value in [-0.01, 0.01]; got %f", i, v)
		}
	}
}

func TestSeededSourceIsDeterministic(t *testing.T) {
	a, b := NewSeededSource(99), NewSeededSource(99)
	for i := 0; i < 100; i++ {
		if a.Uniform(0, 1) != b.Uniform(0, 1) {
			t.Fatalf("[draw %d] expected identically seeded sources to agree", i)
		}
	}
}
