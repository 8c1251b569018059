package animation_test

import (
	"fmt"

	"github.com/go-drift/keyframe/pkg/animation"
	"golang.org/x/image/math/f32"
)

// This example shows how to create a tween for basic interpolation.
func ExampleTween() {
	opacity := animation.TweenFloat64(0.0, 1.0)
	position := animation.TweenVec2(f32.Vec2{0, 0}, f32.Vec2{100, 50})

	fmt.Printf("Opacity at 0.5: %.1f\n", opacity.Evaluate(0.5))
	end := position.Evaluate(1.0)
	fmt.Printf("Position at 1.0: (%.0f, %.0f)\n", end[0], end[1])

	// Output:
	// Opacity at 0.5: 0.5
	// Position at 1.0: (100, 50)
}

// This example shows how to create a custom tween with a Lerp function.
func ExampleTween_customType() {
	type Point struct {
		X, Y float64
	}

	pointTween := &animation.Tween[Point]{
		Begin: Point{0, 0},
		End:   Point{100, 200},
		Lerp: func(a, b Point, t float32) Point {
			return Point{
				X: animation.LerpFloat64(a.X, b.X, t),
				Y: animation.LerpFloat64(a.Y, b.Y, t),
			}
		},
	}

	midpoint := pointTween.Evaluate(0.5)
	fmt.Printf("Midpoint: (%.0f, %.0f)\n", midpoint.X, midpoint.Y)

	// Output:
	// Midpoint: (50, 100)
}

// This example shows how to create a custom easing curve.
func ExampleCubicBezier() {
	// Same shape as CSS cubic-bezier(0.42, 0.0, 0.58, 1.0)
	bez := animation.NewCubicBezier(0.42, 0.0, 0.58, 1.0)

	fmt.Printf("Progress 0.0 -> %.2f\n", bez.Solve(0.0))
	fmt.Printf("Progress 0.5 -> %.2f\n", bez.Solve(0.5))
	fmt.Printf("Progress 1.0 -> %.2f\n", bez.Solve(1.0))

	// Output:
	// Progress 0.0 -> 0.00
	// Progress 0.5 -> 0.50
	// Progress 1.0 -> 1.00
}

// This example shows how to recover a preset name from edited handles.
func ExampleMatchPreset() {
	handles := animation.HandlesFromCSS(0.215, 0.61, 0.355, 1)

	if p, ok := animation.MatchPreset(handles, 1e-3); ok {
		fmt.Println(p.Name())
	}

	// Output:
	// Ease Out Cubic
}
