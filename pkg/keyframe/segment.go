package keyframe

import (
	"github.com/go-drift/keyframe/pkg/animation"
	"github.com/go-drift/keyframe/pkg/timetick"
)

// Segment is the span between two neighbouring keyframes of a sorted view.
type Segment[T any] struct {
	Left  Keyframe[T]
	Right Keyframe[T]
}

// Segments returns the consecutive pairs of a sorted keyframe slice.
func Segments[T any](sorted []Keyframe[T]) []Segment[T] {
	if len(sorted) < 2 {
		return nil
	}
	out := make([]Segment[T], 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		out = append(out, Segment[T]{Left: sorted[i-1], Right: sorted[i]})
	}
	return out
}

// Duration returns the time between the two keyframes.
func (s Segment[T]) Duration() timetick.TimeTick {
	return s.Right.Position.Sub(s.Left.Position)
}

// Curve returns the easing applied across the segment, matching what
// Evaluate does between the two keyframes.
func (s Segment[T]) Curve() animation.Curve {
	if !s.Left.ConnectedRight || !(s.Duration().Value() > 0) {
		return animation.StepCurve
	}
	switch s.Left.Mode {
	case ModeHold:
		return animation.StepCurve
	case ModeLinear:
		return animation.LinearCurve
	default:
		return animation.BezierFromHandles(s.Left.Handles, s.Right.Handles).Curve()
	}
}

// Preset reports the catalog preset whose curve the segment evaluates, if
// any. The segment's control points are read the way Evaluate reads them and
// compared as a CSS tuple. Only bezier segments can match.
func (s Segment[T]) Preset(tolerance float32) (animation.Preset, bool) {
	if s.Left.Mode != ModeBezier {
		return animation.PresetLinear, false
	}
	h := animation.HandlesFromCSS(
		s.Left.Handles.RightX, s.Left.Handles.RightY,
		s.Right.Handles.LeftX, s.Right.Handles.LeftY,
	)
	return animation.MatchPreset(h, tolerance)
}

// Tween returns a tween across the segment using the segment's curve.
func (s Segment[T]) Tween(kind animation.Lerper[T]) *animation.Tween[T] {
	tw := animation.TweenOf(s.Left.Value, s.Right.Value, kind)
	tw.Curve = s.Curve()
	return tw
}
