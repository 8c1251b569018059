package keyframe

import (
	"cmp"
	"iter"
	"slices"

	"github.com/go-drift/keyframe/pkg/animation"
	"github.com/go-drift/keyframe/pkg/timetick"
)

// Track is the set of keyframes animating one property.
//
// Keyframes are looked up by ID in constant time and iterated in insertion
// order. Positions are unconstrained: duplicates and any insertion order are
// allowed, and every query re-sorts. The zero Track is empty and ready to use.
type Track[T any] struct {
	ID TrackID

	index map[KeyframeID]int
	order []Keyframe[T]
}

// NewTrack returns an empty track with a fresh ID.
func NewTrack[T any]() *Track[T] {
	return NewTrackWithID[T](NewTrackID())
}

// NewTrackWithID returns an empty track with the given ID.
func NewTrackWithID[T any](id TrackID) *Track[T] {
	return &Track[T]{ID: id, index: make(map[KeyframeID]int)}
}

// Add stores k and returns its ID. A keyframe with the same ID is replaced
// in place and keeps its original insertion slot.
func (t *Track[T]) Add(k Keyframe[T]) KeyframeID {
	if t.index == nil {
		t.index = make(map[KeyframeID]int)
	}
	if i, ok := t.index[k.ID]; ok {
		t.order[i] = k
		return k.ID
	}
	t.index[k.ID] = len(t.order)
	t.order = append(t.order, k)
	return k.ID
}

// Remove deletes the keyframe with the given ID and returns it. The order of
// the remaining keyframes is preserved.
func (t *Track[T]) Remove(id KeyframeID) (Keyframe[T], bool) {
	i, ok := t.index[id]
	if !ok {
		var zero Keyframe[T]
		return zero, false
	}
	removed := t.order[i]
	t.order = slices.Delete(t.order, i, i+1)
	delete(t.index, id)
	for j := i; j < len(t.order); j++ {
		t.index[t.order[j].ID] = j
	}
	return removed, true
}

// Get returns a copy of the keyframe with the given ID.
func (t *Track[T]) Get(id KeyframeID) (Keyframe[T], bool) {
	if i, ok := t.index[id]; ok {
		return t.order[i], true
	}
	var zero Keyframe[T]
	return zero, false
}

// GetMut returns a pointer to the stored keyframe, or nil. The pointer is
// invalidated by the next Add or Remove. Changing the ID through it corrupts
// the track.
func (t *Track[T]) GetMut(id KeyframeID) *Keyframe[T] {
	if i, ok := t.index[id]; ok {
		return &t.order[i]
	}
	return nil
}

// Len returns the number of keyframes.
func (t *Track[T]) Len() int {
	return len(t.order)
}

// IsEmpty reports whether the track has no keyframes.
func (t *Track[T]) IsEmpty() bool {
	return len(t.order) == 0
}

// All iterates over the keyframes in insertion order.
func (t *Track[T]) All() iter.Seq[Keyframe[T]] {
	return func(yield func(Keyframe[T]) bool) {
		for _, k := range t.order {
			if !yield(k) {
				return
			}
		}
	}
}

// IDs returns the keyframe IDs in insertion order.
func (t *Track[T]) IDs() []KeyframeID {
	ids := make([]KeyframeID, len(t.order))
	for i, k := range t.order {
		ids[i] = k.ID
	}
	return ids
}

// Placement pairs a keyframe ID with its position.
type Placement struct {
	ID       KeyframeID
	Position timetick.TimeTick
}

// Positions returns every keyframe's ID and position in insertion order.
func (t *Track[T]) Positions() []Placement {
	out := make([]Placement, len(t.order))
	for i, k := range t.order {
		out[i] = Placement{ID: k.ID, Position: k.Position}
	}
	return out
}

// Sorted returns copies of the keyframes ordered by position. Keyframes at
// equal positions keep insertion order. The slice is freshly built on every
// call.
func (t *Track[T]) Sorted() []Keyframe[T] {
	sorted := slices.Clone(t.order)
	slices.SortStableFunc(sorted, func(a, b Keyframe[T]) int {
		return a.Position.Compare(b.Position)
	})
	return sorted
}

// Around returns the keyframes bracketing pos: left is the last keyframe at
// or before pos and right is the first strictly after it. Either is nil at
// the ends of the track. A keyframe exactly at pos is always left.
//
// The results are copies.
func (t *Track[T]) Around(pos timetick.TimeTick) (left, right *Keyframe[T]) {
	sorted := t.Sorted()
	l, r := bracket(sorted, pos)
	if l >= 0 {
		left = &sorted[l]
	}
	if r >= 0 {
		right = &sorted[r]
	}
	return left, right
}

// AtPosition returns the first keyframe, in insertion order, whose position
// is strictly within tolerance of pos.
func (t *Track[T]) AtPosition(pos, tolerance timetick.TimeTick) (Keyframe[T], bool) {
	for _, k := range t.order {
		if k.Position.Sub(pos).Abs().Less(tolerance) {
			return k, true
		}
	}
	var zero Keyframe[T]
	return zero, false
}

// TimeRange returns the earliest and latest keyframe positions.
func (t *Track[T]) TimeRange() (start, end timetick.TimeTick, ok bool) {
	if len(t.order) == 0 {
		return start, end, false
	}
	sorted := t.Sorted()
	return sorted[0].Position, sorted[len(sorted)-1].Position, true
}

// Evaluate brackets pos in the sorted view and computes the interpolation
// inputs. See the package-level Evaluate.
func (t *Track[T]) Evaluate(pos timetick.TimeTick) (InterpolationResult[T], bool) {
	return Evaluate(t.Sorted(), pos)
}

// ValueRange returns the smallest and largest values according to less,
// scanning in insertion order.
func ValueRange[T any](t *Track[T], less func(a, b T) bool) (lo, hi T, ok bool) {
	if t.IsEmpty() {
		return lo, hi, false
	}
	lo, hi = t.order[0].Value, t.order[0].Value
	for _, k := range t.order[1:] {
		if less(k.Value, lo) {
			lo = k.Value
		}
		if less(hi, k.Value) {
			hi = k.Value
		}
	}
	return lo, hi, true
}

// OrderedValueRange is ValueRange for naturally ordered value types.
func OrderedValueRange[T cmp.Ordered](t *Track[T]) (lo, hi T, ok bool) {
	return ValueRange(t, func(a, b T) bool { return a < b })
}

// Extent returns the largest distance, measured by kind, between any two
// keyframe values. For scalar kinds it equals hi - lo of the value range.
func Extent[T any, M animation.Measurer[T]](t *Track[T], kind M) (float32, bool) {
	if t.IsEmpty() {
		return 0, false
	}
	var widest float32
	for i, a := range t.order {
		for _, b := range t.order[i+1:] {
			if d := kind.Distance(a.Value, b.Value); d > widest {
				widest = d
			}
		}
	}
	return widest, true
}

// Sample evaluates the track at pos and blends the result with kind.
func Sample[T any, L animation.Lerper[T]](t *Track[T], pos timetick.TimeTick, kind L) (T, bool) {
	r, ok := t.Evaluate(pos)
	if !ok {
		var zero T
		return zero, false
	}
	return Blend(r, kind), true
}
