package keyframe

import (
	"slices"
	"testing"

	"golang.org/x/image/math/f32"

	"github.com/go-drift/keyframe/pkg/animation"
	"github.com/go-drift/keyframe/pkg/timetick"
)

func tick(v float64) timetick.TimeTick { return timetick.New(v) }

func TestTrackAddAndGet(t *testing.T) {
	track := NewTrack[float32]()
	id1 := track.Add(New(tick(0), float32(10)))
	id2 := track.Add(New(tick(1), float32(20)))

	if track.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", track.Len())
	}
	if k, ok := track.Get(id1); !ok || k.Value != 10 {
		t.Errorf("Get(id1) = %v, %v; want 10", k.Value, ok)
	}
	if k, ok := track.Get(id2); !ok || k.Value != 20 {
		t.Errorf("Get(id2) = %v, %v; want 20", k.Value, ok)
	}
	if _, ok := track.Get(NewKeyframeID()); ok {
		t.Error("Get() of unknown ID should report false")
	}
}

func TestTrackAddOverwritesInPlace(t *testing.T) {
	track := NewTrack[float64]()
	first := New(tick(0), 1.0)
	track.Add(first)
	track.Add(New(tick(1), 2.0))
	track.Add(first.WithValue(99))

	if track.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", track.Len())
	}
	if got := track.IDs()[0]; got != first.ID {
		t.Error("overwritten keyframe should keep its insertion slot")
	}
	if k, _ := track.Get(first.ID); k.Value != 99 {
		t.Errorf("Value = %v, want 99", k.Value)
	}
}

func TestTrackRemove(t *testing.T) {
	track := NewTrack[float64]()
	a := track.Add(New(tick(0), 1.0))
	b := track.Add(New(tick(1), 2.0))
	c := track.Add(New(tick(2), 3.0))

	removed, ok := track.Remove(b)
	if !ok || removed.Value != 2 {
		t.Fatalf("Remove(b) = %v, %v", removed.Value, ok)
	}
	if got := track.IDs(); !slices.Equal(got, []KeyframeID{a, c}) {
		t.Errorf("IDs() after Remove = %v", got)
	}
	if k := track.GetMut(c); k == nil || k.Value != 3 {
		t.Error("index not updated after Remove")
	}
	if _, ok := track.Remove(b); ok {
		t.Error("second Remove(b) should report false")
	}
}

func TestTrackGetMut(t *testing.T) {
	track := NewTrack[float64]()
	id := track.Add(New(tick(0), 1.0))
	k := track.GetMut(id)
	if k == nil {
		t.Fatal("GetMut() = nil")
	}
	k.Value = 5
	if got, _ := track.Get(id); got.Value != 5 {
		t.Errorf("Value after GetMut edit = %v, want 5", got.Value)
	}
	if track.GetMut(NewKeyframeID()) != nil {
		t.Error("GetMut() of unknown ID should be nil")
	}
}

func TestTrackZeroValueUsable(t *testing.T) {
	var track Track[int]
	if !track.IsEmpty() {
		t.Error("zero track should be empty")
	}
	track.Add(New(tick(0), 1))
	if track.Len() != 1 {
		t.Errorf("Len() = %d, want 1", track.Len())
	}
}

func TestTrackSorted(t *testing.T) {
	track := NewTrack[float32]()
	track.Add(New(tick(2), float32(30)))
	track.Add(New(tick(0), float32(10)))
	track.Add(New(tick(1), float32(20)))

	sorted := track.Sorted()
	for i, want := range []float64{0, 1, 2} {
		if sorted[i].Position.Value() != want {
			t.Errorf("sorted[%d].Position = %v, want %v", i, sorted[i].Position, want)
		}
	}
	sorted[0].Value = -1
	if again := track.Sorted(); again[0].Value != 10 {
		t.Error("Sorted() must return a fresh copy")
	}
}

func TestTrackSortedStableForTies(t *testing.T) {
	track := NewTrack[string]()
	track.Add(New(tick(1), "b1"))
	track.Add(New(tick(0), "a"))
	track.Add(New(tick(1), "b2"))
	track.Add(New(tick(1), "b3"))

	var got []string
	for _, k := range track.Sorted() {
		got = append(got, k.Value)
	}
	if want := []string{"a", "b1", "b2", "b3"}; !slices.Equal(got, want) {
		t.Errorf("Sorted() values = %v, want %v", got, want)
	}
}

func TestTrackAround(t *testing.T) {
	track := NewTrack[float32]()
	track.Add(New(tick(0), float32(10)))
	track.Add(New(tick(2), float32(30)))

	tests := []struct {
		name            string
		at              float64
		wantL, wantR    float64
		hasLeft, hasRgt bool
	}{
		{"between", 1, 0, 2, true, true},
		{"exactly on left", 0, 0, 2, true, true},
		{"exactly on right", 2, 2, 0, true, false},
		{"before first", -1, 0, 0, false, true},
		{"after last", 3, 2, 0, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := track.Around(tick(tt.at))
			if (left != nil) != tt.hasLeft || (right != nil) != tt.hasRgt {
				t.Fatalf("Around(%v) = %v, %v", tt.at, left, right)
			}
			if left != nil && left.Position.Value() != tt.wantL {
				t.Errorf("left = %v, want %v", left.Position, tt.wantL)
			}
			if tt.hasLeft && tt.hasRgt && right.Position.Value() != tt.wantR {
				t.Errorf("right = %v, want %v", right.Position, tt.wantR)
			}
			if !tt.hasLeft && right.Position.Value() != 0 {
				t.Errorf("right = %v, want 0", right.Position)
			}
		})
	}

	var empty Track[float32]
	if l, r := empty.Around(tick(0)); l != nil || r != nil {
		t.Error("Around() on empty track should return nil, nil")
	}
}

func TestTrackAtPosition(t *testing.T) {
	track := NewTrack[string]()
	track.Add(New(tick(1.02), "late"))
	track.Add(New(tick(0.99), "early"))
	track.Add(New(tick(5), "far"))

	k, ok := track.AtPosition(tick(1), tick(0.05))
	if !ok || k.Value != "late" {
		t.Errorf("AtPosition() = %q, %v; want first match in insertion order", k.Value, ok)
	}
	if _, ok := track.AtPosition(tick(1), tick(0.01)); ok {
		t.Error("AtPosition() with tight tolerance should miss")
	}
	if _, ok := track.AtPosition(tick(5), tick(0)); ok {
		t.Error("tolerance comparison is strict")
	}
}

func TestTrackTimeRange(t *testing.T) {
	track := NewTrack[float32]()
	if _, _, ok := track.TimeRange(); ok {
		t.Error("TimeRange() on empty track should report false")
	}
	track.Add(New(tick(5), float32(50)))
	track.Add(New(tick(1), float32(10)))

	start, end, ok := track.TimeRange()
	if !ok || start != tick(1) || end != tick(5) {
		t.Errorf("TimeRange() = %v, %v, %v; want 1, 5, true", start, end, ok)
	}
}

func TestTrackValueRange(t *testing.T) {
	track := NewTrack[float32]()
	if _, _, ok := OrderedValueRange(track); ok {
		t.Error("value range of empty track should report false")
	}
	track.Add(New(tick(0), float32(10)))
	track.Add(New(tick(1), float32(50)))
	track.Add(New(tick(2), float32(30)))

	lo, hi, ok := OrderedValueRange(track)
	if !ok || lo != 10 || hi != 50 {
		t.Errorf("OrderedValueRange() = %v, %v, %v; want 10, 50, true", lo, hi, ok)
	}

	byLen := NewTrack[string]()
	byLen.Add(New(tick(0), "ccc"))
	byLen.Add(New(tick(1), "a"))
	byLen.Add(New(tick(2), "bb"))
	shortest, longest, _ := ValueRange(byLen, func(a, b string) bool { return len(a) < len(b) })
	if shortest != "a" || longest != "ccc" {
		t.Errorf("ValueRange(by length) = %q, %q", shortest, longest)
	}
}

func TestTrackExtent(t *testing.T) {
	if _, ok := Extent(NewTrack[float64](), animation.Float64{}); ok {
		t.Error("extent of empty track should report false")
	}

	scalar := NewTrack[float64]()
	scalar.Add(New(tick(0), 10.0))
	scalar.Add(New(tick(1), -5.0))
	scalar.Add(New(tick(2), 30.0))
	if got, ok := Extent(scalar, animation.Float64{}); !ok || got != 35 {
		t.Errorf("Extent(scalar) = %v, %v; want 35, true", got, ok)
	}

	vec := NewTrack[f32.Vec2]()
	vec.Add(New(tick(0), f32.Vec2{0, 0}))
	vec.Add(New(tick(1), f32.Vec2{3, 0}))
	vec.Add(New(tick(2), f32.Vec2{3, 4}))
	if got, _ := Extent(vec, animation.Vec2{}); !near32(got, 5, 1e-6) {
		t.Errorf("Extent(vec) = %v, want 5", got)
	}
}

func TestTrackIteration(t *testing.T) {
	track := NewTrack[int]()
	ids := []KeyframeID{
		track.Add(New(tick(3), 3)),
		track.Add(New(tick(1), 1)),
		track.Add(New(tick(2), 2)),
	}
	var values []int
	for k := range track.All() {
		values = append(values, k.Value)
	}
	if !slices.Equal(values, []int{3, 1, 2}) {
		t.Errorf("All() values = %v, want insertion order", values)
	}
	positions := track.Positions()
	for i, p := range positions {
		if p.ID != ids[i] {
			t.Errorf("Positions()[%d].ID mismatch", i)
		}
	}
	if positions[0].Position != tick(3) {
		t.Errorf("Positions()[0].Position = %v, want 3", positions[0].Position)
	}
}
