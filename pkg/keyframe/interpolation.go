package keyframe

import (
	"github.com/go-drift/keyframe/pkg/animation"
	"github.com/go-drift/keyframe/pkg/timetick"
)

// InterpolationResult carries what a value kind needs to produce the
// animated value at a position.
//
// When HasRight is false the value holds at Left and Progression is 0.
// Otherwise the value is Left blended toward Right by Progression, which is
// already eased by the segment's curve.
type InterpolationResult[T any] struct {
	Left        T
	Right       T
	HasRight    bool
	Progression float32
}

// IsHold reports whether the result holds at Left.
func (r InterpolationResult[T]) IsHold() bool {
	return !r.HasRight
}

// Blend produces the animated value using kind's Lerp.
func Blend[T any, L animation.Lerper[T]](r InterpolationResult[T], kind L) T {
	if !r.HasRight {
		return r.Left
	}
	return kind.Lerp(r.Left, r.Right, r.Progression)
}

// BlendFunc is Blend for a plain lerp function.
func BlendFunc[T any](r InterpolationResult[T], lerp func(a, b T, t float32) T) T {
	return Blend(r, animation.LerpFunc[T](lerp))
}

// Evaluate computes the interpolation inputs at pos. sorted must be ordered
// by position, as returned by Track.Sorted.
//
// It reports false only when sorted is empty. Before the first keyframe and
// after the last one the value holds at the nearest keyframe. Inside a
// segment the value holds at the left keyframe when the segment is
// disconnected or has no positive duration. Otherwise the left keyframe's
// Mode picks the progression: 0 for hold, the linear time ratio for linear,
// and the solved bezier for bezier.
func Evaluate[T any](sorted []Keyframe[T], pos timetick.TimeTick) (InterpolationResult[T], bool) {
	l, r := bracket(sorted, pos)
	switch {
	case l < 0 && r < 0:
		return InterpolationResult[T]{}, false
	case l < 0:
		return hold(sorted[r].Value), true
	case r < 0:
		return hold(sorted[l].Value), true
	}

	left, right := &sorted[l], &sorted[r]
	if !left.ConnectedRight {
		return hold(left.Value), true
	}
	span := right.Position.Sub(left.Position)
	if !(span.Value() > 0) {
		return hold(left.Value), true
	}

	local := float32(pos.Sub(left.Position).Ratio(span))
	return InterpolationResult[T]{
		Left:        left.Value,
		Right:       right.Value,
		HasRight:    true,
		Progression: progression(left, right, local),
	}, true
}

func progression[T any](left, right *Keyframe[T], local float32) float32 {
	switch left.Mode {
	case ModeHold:
		return 0
	case ModeLinear:
		return local
	default:
		return animation.BezierFromHandles(left.Handles, right.Handles).Solve(local)
	}
}

func hold[T any](v T) InterpolationResult[T] {
	return InterpolationResult[T]{Left: v}
}

// bracket returns the index of the last keyframe at or before pos and of the
// first keyframe after it, or -1 for either when absent.
func bracket[T any](sorted []Keyframe[T], pos timetick.TimeTick) (left, right int) {
	left, right = -1, -1
	for i := range sorted {
		if sorted[i].Position.LessEq(pos) {
			left = i
			continue
		}
		right = i
		break
	}
	return left, right
}
