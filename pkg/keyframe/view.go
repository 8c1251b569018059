package keyframe

import (
	"golang.org/x/exp/constraints"

	"github.com/go-drift/keyframe/pkg/animation"
	"github.com/go-drift/keyframe/pkg/timetick"
)

// KeyframeView is an owned snapshot of a keyframe with its value narrowed to
// float32, the form curve displays consume.
type KeyframeView struct {
	ID             KeyframeID
	Position       timetick.TimeTick
	Value          float32
	Handles        animation.BezierHandles
	ConnectedRight bool
	Mode           Mode
}

// Source provides keyframe snapshots to a consumer that must not hold
// references into the track.
type Source interface {
	// Views returns the keyframes sorted by position.
	Views() []KeyframeView
	// ValueRange returns the smallest and largest values.
	ValueRange() (lo, hi float32, ok bool)
	// Len returns the number of keyframes.
	Len() int
}

// SourceOf adapts a scalar track to Source.
func SourceOf[T constraints.Float](t *Track[T]) Source {
	return floatSource[T]{t: t}
}

type floatSource[T constraints.Float] struct {
	t *Track[T]
}

func (s floatSource[T]) Views() []KeyframeView {
	sorted := s.t.Sorted()
	views := make([]KeyframeView, len(sorted))
	for i, k := range sorted {
		views[i] = KeyframeView{
			ID:             k.ID,
			Position:       k.Position,
			Value:          float32(k.Value),
			Handles:        k.Handles,
			ConnectedRight: k.ConnectedRight,
			Mode:           k.Mode,
		}
	}
	return views
}

func (s floatSource[T]) ValueRange() (lo, hi float32, ok bool) {
	l, h, ok := OrderedValueRange(s.t)
	return float32(l), float32(h), ok
}

func (s floatSource[T]) Len() int {
	return s.t.Len()
}
