package animation

import (
	"math"
	"testing"

	"golang.org/x/image/math/f32"
)

func TestLerpScalars(t *testing.T) {
	if got := LerpFloat32(0, 100, 0.5); got != 50 {
		t.Errorf("LerpFloat32(0, 100, 0.5) = %v, want 50", got)
	}
	if got := LerpFloat64(10, 20, 0.25); got != 12.5 {
		t.Errorf("LerpFloat64(10, 20, 0.25) = %v, want 12.5", got)
	}
	if got := LerpNumber(0, 10, 0.55); got != 5 {
		t.Errorf("LerpNumber[int](0, 10, 0.55) = %v, want 5", got)
	}
	if got := LerpNumber[int64](3, 9, 1); got != 9 {
		t.Errorf("LerpNumber[int64](3, 9, 1) = %v, want 9", got)
	}
	if got := LerpNumber[uint8](200, 100, 0); got != 200 {
		t.Errorf("LerpNumber[uint8](200, 100, 0) = %v, want 200", got)
	}
}

func TestLerpVectors(t *testing.T) {
	v2 := LerpVec2(f32.Vec2{0, 0}, f32.Vec2{10, 20}, 0.5)
	if v2 != (f32.Vec2{5, 10}) {
		t.Errorf("LerpVec2() = %v, want [5 10]", v2)
	}
	v3 := LerpVec3(f32.Vec3{0, 0, 0}, f32.Vec3{1, 2, 4}, 0.25)
	if v3 != (f32.Vec3{0.25, 0.5, 1}) {
		t.Errorf("LerpVec3() = %v, want [0.25 0.5 1]", v3)
	}
	v4 := LerpVec4(f32.Vec4{1, 1, 1, 1}, f32.Vec4{0, 0, 0, 0}, 1)
	if v4 != (f32.Vec4{}) {
		t.Errorf("LerpVec4() = %v, want zero", v4)
	}
}

func TestValueKinds(t *testing.T) {
	var _ Lerper[float32] = Float32{}
	var _ Lerper[float64] = Float64{}
	var _ Lerper[int] = Number[int]{}
	var _ Lerper[f32.Vec2] = Vec2{}
	var _ Lerper[f32.Vec3] = Vec3{}
	var _ Lerper[f32.Vec4] = Vec4{}
	var _ Measurer[f32.Vec3] = Vec3{}

	if got := (Vec2{}).Distance(f32.Vec2{0, 0}, f32.Vec2{3, 4}); got != 5 {
		t.Errorf("Vec2.Distance() = %v, want 5", got)
	}
	if got := (Float64{}).Distance(-1, 2); got != 3 {
		t.Errorf("Float64.Distance() = %v, want 3", got)
	}
	if got := (Number[int]{}).Distance(7, 2); got != 5 {
		t.Errorf("Number.Distance() = %v, want 5", got)
	}
	d := (Vec4{}).Distance(f32.Vec4{1, 1, 1, 1}, f32.Vec4{})
	if math.Abs(float64(d)-2) > 1e-6 {
		t.Errorf("Vec4.Distance() = %v, want 2", d)
	}
}

func TestLerpFunc(t *testing.T) {
	double := LerpFunc[int](func(a, b int, t float32) int { return 2 * LerpNumber(a, b, t) })
	if got := double.Lerp(0, 10, 0.5); got != 10 {
		t.Errorf("LerpFunc.Lerp() = %v, want 10", got)
	}
}

func TestTween(t *testing.T) {
	tw := TweenFloat64(100, 200)
	if got := tw.Evaluate(0.5); got != 150 {
		t.Errorf("Evaluate(0.5) = %v, want 150", got)
	}
	tw.Curve = StepCurve
	if got := tw.Evaluate(0.5); got != 100 {
		t.Errorf("stepped Evaluate(0.5) = %v, want 100", got)
	}

	var bare Tween[string]
	bare.End = "end"
	if got := bare.Evaluate(0.1); got != "end" {
		t.Errorf("Evaluate() without Lerp = %q, want %q", got, "end")
	}

	vec := TweenOf(f32.Vec3{}, f32.Vec3{2, 2, 2}, Vec3{})
	if got := vec.Evaluate(0.5); got != (f32.Vec3{1, 1, 1}) {
		t.Errorf("TweenOf(Vec3).Evaluate(0.5) = %v, want [1 1 1]", got)
	}
}
