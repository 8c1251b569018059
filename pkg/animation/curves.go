package animation

import "math"

// Easing curves transform linear progress into eased progress.
//
// A [Curve] takes a value t in [0, 1] and returns the transformed value.
// Bezier-shaped curves are backed by [CubicBezier], which is also the solver
// the keyframe engine uses between two bezier keyframes.
//
// Standard curves: [LinearCurve], [Ease], [EaseIn], [EaseOut], [EaseInOut].
// Use [CubicBezierCurve] to create custom curves matching CSS cubic-bezier().
//
// See ExampleCubicBezier for custom curve usage.

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(t float64) float64

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// StepCurve holds at 0 until t reaches 1.
func StepCurve(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 0
}

// Ease is the general-purpose curve. Equivalent to CSS ease.
var Ease = CubicBezierCurve(0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates. Equivalent to CSS ease-in.
var EaseIn = CubicBezierCurve(0.42, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates. Equivalent to CSS ease-out.
var EaseOut = CubicBezierCurve(0.0, 0.0, 0.58, 1.0)

// EaseInOut starts and ends slowly. Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezierCurve(0.42, 0.0, 0.58, 1.0)

// CubicBezierCurve returns an easing function matching CSS cubic-bezier().
// The parameters define the two control points (x1,y1) and (x2,y2) of the
// curve. The curve starts at (0,0) and ends at (1,1).
func CubicBezierCurve(x1, y1, x2, y2 float64) Curve {
	return NewCubicBezier(float32(x1), float32(y1), float32(x2), float32(y2)).Curve()
}

const (
	newtonIterations = 8
	newtonEpsilon    = 1e-6
	slopeEpsilon     = 1e-6
	bisectWidth      = 1e-7
	// Every float32 gap inside [0, 1] is below bisectWidth, so the width test
	// alone terminates. The cap only bounds the loop explicitly.
	bisectIterations = 64
)

// CubicBezier solves a 0→1 cubic bezier for y given x.
//
// The curve runs from (0,0) to (1,1) with control points (x1,y1) and (x2,y2),
// the same convention as CSS cubic-bezier(). Coefficients are computed once
// at construction, so a CubicBezier is cheap to solve repeatedly.
//
// Control point X values outside [0, 1] are accepted. The curve may then be
// non-monotonic in x and Solve returns the first crossing it finds.
type CubicBezier struct {
	ax, bx, cx float32
	ay, by, cy float32
}

// NewCubicBezier creates a solver from CSS-style control points.
func NewCubicBezier(x1, y1, x2, y2 float32) CubicBezier {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx

	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	return CubicBezier{ax: ax, bx: bx, cx: cx, ay: ay, by: by, cy: cy}
}

// BezierFromHandles builds the segment curve leaving left and entering
// right: the right handle of the left keyframe and the left handle of the
// right keyframe.
func BezierFromHandles(left, right BezierHandles) CubicBezier {
	return NewCubicBezier(left.RightX, left.RightY, right.LeftX, right.LeftY)
}

// LinearBezier returns the straight-line curve.
func LinearBezier() CubicBezier { return NewCubicBezier(0, 0, 1, 1) }

// EaseInBezier returns CSS ease-in.
func EaseInBezier() CubicBezier { return NewCubicBezier(0.42, 0, 1, 1) }

// EaseOutBezier returns CSS ease-out.
func EaseOutBezier() CubicBezier { return NewCubicBezier(0, 0, 0.58, 1) }

// EaseInOutBezier returns CSS ease-in-out.
func EaseInOutBezier() CubicBezier { return NewCubicBezier(0.42, 0, 0.58, 1) }

// SampleX evaluates the x polynomial at parameter t.
func (c CubicBezier) SampleX(t float32) float32 {
	return ((c.ax*t+c.bx)*t + c.cx) * t
}

// SampleY evaluates the y polynomial at parameter t.
func (c CubicBezier) SampleY(t float32) float32 {
	return ((c.ay*t+c.by)*t + c.cy) * t
}

// DerivativeX evaluates dx/dt at parameter t.
func (c CubicBezier) DerivativeX(t float32) float32 {
	return (3*c.ax*t+2*c.bx)*t + c.cx
}

// Solve returns y for the given x. x is clamped to [0, 1].
func (c CubicBezier) Solve(x float32) float32 {
	x = clampUnit32(x)
	return c.SampleY(c.solveT(x))
}

// Curve adapts the solver to a float64 easing function.
func (c CubicBezier) Curve() Curve {
	return func(t float64) float64 {
		return float64(c.Solve(float32(t)))
	}
}

// solveT finds the curve parameter whose x equals x.
func (c CubicBezier) solveT(x float32) float32 {
	t := x
	// Newton-Raphson converges quickly for well-formed handles.
	for range newtonIterations {
		dx := c.SampleX(t) - x
		if abs32(dx) < newtonEpsilon {
			return t
		}
		slope := c.DerivativeX(t)
		if abs32(slope) < slopeEpsilon {
			break
		}
		t -= dx / slope
	}

	// Fallback to bisection over the whole parameter range.
	lo, hi := float32(0), float32(1)
	t = x
	for range bisectIterations {
		sx := c.SampleX(t)
		if abs32(sx-x) < newtonEpsilon {
			return t
		}
		if x > sx {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
		if hi-lo < bisectWidth {
			break
		}
	}
	return t
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

// clampUnit32 clamps to [0, 1] and maps NaN to 0.
func clampUnit32(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
