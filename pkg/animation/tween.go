package animation

import "golang.org/x/image/math/f32"

// Tween interpolates between Begin and End values based on progress.
//
// Tween maps the 0-1 range produced by a curve to any value type. Use the
// helper constructors ([TweenFloat64], [TweenVec2], [TweenVec3], [TweenVec4])
// for common types, or create custom tweens with a Lerp function.
//
// See ExampleTween and ExampleTween_customType for usage patterns.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp blends Begin and End. When nil, Evaluate returns End.
	Lerp LerpFunc[T]
	// Curve eases linear progress before blending. When nil, progress is
	// used unchanged.
	Curve Curve
}

// Evaluate returns the value at linear progress t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	if tw.Curve != nil {
		t = tw.Curve(t)
	}
	return tw.Lerp(tw.Begin, tw.End, float32(t))
}

// TweenOf creates a tween that blends with the given value kind.
func TweenOf[T any](begin, end T, kind Lerper[T]) *Tween[T] {
	return &Tween[T]{Begin: begin, End: end, Lerp: kind.Lerp}
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenVec2 creates a tween for two-component vectors.
func TweenVec2(begin, end f32.Vec2) *Tween[f32.Vec2] {
	return &Tween[f32.Vec2]{Begin: begin, End: end, Lerp: LerpVec2}
}

// TweenVec3 creates a tween for three-component vectors.
func TweenVec3(begin, end f32.Vec3) *Tween[f32.Vec3] {
	return &Tween[f32.Vec3]{Begin: begin, End: end, Lerp: LerpVec3}
}

// TweenVec4 creates a tween for four-component vectors.
func TweenVec4(begin, end f32.Vec4) *Tween[f32.Vec4] {
	return &Tween[f32.Vec4]{Begin: begin, End: end, Lerp: LerpVec4}
}
