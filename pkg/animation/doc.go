// Package animation provides the curve primitives behind keyframe
// evaluation.
//
// # Core Components
//
//   - [CubicBezier]: a 0→1 cubic bezier solver (Newton-Raphson with a
//     bisection fallback) mapping normalized time to normalized value.
//
//   - [BezierHandles]: the four scalars shaping the tangents around a keyframe,
//     with CSS cubic-bezier conversion.
//
//   - [Preset]: the catalog of standard easing shapes and [MatchPreset] for
//     reverse lookup.
//
//   - [Lerper]: the blending capability an animated value type provides.
//     Kinds exist for float32, float64, generic numbers and the vectors in
//     golang.org/x/image/math/f32.
//
//   - [Tween] and [Curve]: standalone easing between two values.
//
//   - [Playhead]: maps wall-clock time from the package [Clock] to a timeline
//     position.
//
// # Basic Usage
//
//	bez := animation.BezierFromHandles(left.Handles, right.Handles)
//	progression := bez.Solve(0.25)
//	value := animation.LerpFloat64(left.Value, right.Value, progression)
package animation
