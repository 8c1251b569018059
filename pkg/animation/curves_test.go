package animation

import (
	"math"
	"testing"
)

func TestCubicBezierLinearIdentity(t *testing.T) {
	bez := LinearBezier()
	for i := 0; i <= 100; i++ {
		x := float32(i) / 100
		if got := bez.Solve(x); math.Abs(float64(got-x)) > 1e-5 {
			t.Errorf("LinearBezier().Solve(%v) = %v, want %v", x, got, x)
		}
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	tests := []struct {
		name string
		bez  CubicBezier
	}{
		{"linear", LinearBezier()},
		{"ease in", EaseInBezier()},
		{"ease out", EaseOutBezier()},
		{"ease in out", EaseInOutBezier()},
		{"overshoot", NewCubicBezier(0.68, -0.55, 0.265, 1.55)},
		{"vertical tangents", NewCubicBezier(1, 0, 0, 1)},
		{"x outside unit", NewCubicBezier(-0.5, 0.2, 1.5, 0.8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bez.Solve(0); math.Abs(float64(got)) > 1e-5 {
				t.Errorf("Solve(0) = %v, want 0", got)
			}
			if got := tt.bez.Solve(1); math.Abs(float64(got-1)) > 1e-5 {
				t.Errorf("Solve(1) = %v, want 1", got)
			}
		})
	}
}

func TestCubicBezierEaseInOutMidpoint(t *testing.T) {
	got := EaseInOutBezier().Solve(0.5)
	if math.Abs(float64(got-0.5)) > 0.1 {
		t.Errorf("EaseInOutBezier().Solve(0.5) = %v, want about 0.5", got)
	}
}

func TestCubicBezierClampsInput(t *testing.T) {
	bez := EaseInOutBezier()
	if got := bez.Solve(-3); got != bez.Solve(0) {
		t.Errorf("Solve(-3) = %v, want Solve(0) = %v", got, bez.Solve(0))
	}
	if got := bez.Solve(7); got != bez.Solve(1) {
		t.Errorf("Solve(7) = %v, want Solve(1) = %v", got, bez.Solve(1))
	}
	if got := bez.Solve(float32(math.NaN())); got != 0 {
		t.Errorf("Solve(NaN) = %v, want 0", got)
	}
}

func TestCubicBezierSolveMatchesSample(t *testing.T) {
	bez := NewCubicBezier(0.25, 0.1, 0.25, 1)
	for i := 1; i < 20; i++ {
		x := float32(i) / 20
		tt := bez.solveT(x)
		if r := math.Abs(float64(bez.SampleX(tt) - x)); r > 1e-5 {
			t.Errorf("residual at x=%v is %v", x, r)
		}
	}
}

func TestCubicBezierDegenerateSlopeUsesBisection(t *testing.T) {
	// dx/dt vanishes at t = 0.5.
	bez := NewCubicBezier(1, 0, 0, 1)
	if d := bez.DerivativeX(0.5); math.Abs(float64(d)) > 1e-6 {
		t.Fatalf("DerivativeX(0.5) = %v, want 0", d)
	}
	for i := 1; i < 40; i++ {
		x := float32(i) / 40
		tt := bez.solveT(x)
		if r := math.Abs(float64(bez.SampleX(tt) - x)); r > 1e-5 {
			t.Errorf("residual at x=%v is %v", x, r)
		}
	}
	if got := bez.Solve(0.5); math.Abs(float64(got-0.5)) > 1e-3 {
		t.Errorf("Solve(0.5) = %v, want 0.5", got)
	}
}

func TestCubicBezierDerivative(t *testing.T) {
	bez := NewCubicBezier(0.42, 0, 0.58, 1)
	const h = 1e-3
	for _, tt := range []float32{0.1, 0.3, 0.5, 0.9} {
		numeric := (bez.SampleX(tt+h) - bez.SampleX(tt-h)) / (2 * h)
		if diff := math.Abs(float64(numeric - bez.DerivativeX(tt))); diff > 1e-2 {
			t.Errorf("DerivativeX(%v) = %v, numeric %v", tt, bez.DerivativeX(tt), numeric)
		}
	}
}

func TestBezierFromHandles(t *testing.T) {
	left := EaseInOutHandles()
	right := EaseInOutHandles()
	got := BezierFromHandles(left, right)
	want := NewCubicBezier(left.RightX, left.RightY, right.LeftX, right.LeftY)
	if got != want {
		t.Errorf("BezierFromHandles() = %+v, want %+v", got, want)
	}
}

func TestCurves(t *testing.T) {
	curves := map[string]Curve{
		"linear":      LinearCurve,
		"ease":        Ease,
		"ease in":     EaseIn,
		"ease out":    EaseOut,
		"ease in out": EaseInOut,
	}
	for name, curve := range curves {
		if got := curve(0); math.Abs(got) > 1e-5 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := curve(1); math.Abs(got-1) > 1e-5 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
	if EaseIn(0.25) >= 0.25 {
		t.Errorf("EaseIn(0.25) = %v, want below linear", EaseIn(0.25))
	}
	if EaseOut(0.25) <= 0.25 {
		t.Errorf("EaseOut(0.25) = %v, want above linear", EaseOut(0.25))
	}
}

func TestStepCurve(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0}, {0.5, 0}, {0.999, 0}, {1, 1},
	}
	for _, tt := range tests {
		if got := StepCurve(tt.in); got != tt.want {
			t.Errorf("StepCurve(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
