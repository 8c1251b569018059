package keyframe

import (
	"slices"
	"testing"

	"github.com/go-drift/keyframe/pkg/animation"
)

func TestApplyAddAndRemove(t *testing.T) {
	track := NewTrack[float64]()
	added := Apply(track, AddKeyframe{Position: tick(1), Value: 3})
	if len(added) != 1 || track.Len() != 1 {
		t.Fatalf("AddKeyframe: ids = %v, Len() = %d", added, track.Len())
	}
	k, _ := track.Get(added[0])
	if k.Value != 3 || k.Position != tick(1) || k.Mode != ModeBezier || !k.ConnectedRight {
		t.Errorf("added keyframe = %+v", k)
	}

	unknown := NewKeyframeID()
	removed := Apply(track, RemoveKeyframes{IDs: []KeyframeID{unknown, added[0]}})
	if !slices.Equal(removed, added) {
		t.Errorf("RemoveKeyframes returned %v, want %v", removed, added)
	}
	if !track.IsEmpty() {
		t.Error("track should be empty")
	}
}

func TestApplySingleEdits(t *testing.T) {
	track := NewTrack[float64]()
	id := track.Add(New(tick(0), 1.0))

	Apply(track, MoveKeyframe{ID: id, Position: tick(4)})
	Apply(track, SetKeyframeValue{ID: id, Value: 8})
	Apply(track, SetKeyframeHandles{ID: id, Handles: animation.EaseOutHandles()})
	Apply(track, SetKeyframeMode{ID: id, Mode: ModeHold})

	k, _ := track.Get(id)
	if k.Position != tick(4) || k.Value != 8 || k.Handles != animation.EaseOutHandles() || k.Mode != ModeHold {
		t.Errorf("edited keyframe = %+v", k)
	}

	if got := Apply(track, SetKeyframeValue{ID: NewKeyframeID(), Value: 1}); got != nil {
		t.Errorf("edit of unknown ID returned %v", got)
	}
}

func TestApplyOffsetAndScale(t *testing.T) {
	track := NewTrack[float64]()
	a := track.Add(New(tick(1), 10.0))
	b := track.Add(New(tick(3), 20.0))
	c := track.Add(New(tick(5), 30.0))

	changed := Apply(track, OffsetKeyframes{IDs: []KeyframeID{a, b}, DeltaTime: tick(1), DeltaValue: -5})
	if !slices.Equal(changed, []KeyframeID{a, b}) {
		t.Errorf("OffsetKeyframes changed %v", changed)
	}
	if k, _ := track.Get(a); k.Position != tick(2) || k.Value != 5 {
		t.Errorf("a after offset = %v @ %v", k.Value, k.Position)
	}
	if k, _ := track.Get(c); k.Position != tick(5) || k.Value != 30 {
		t.Error("offset touched an unlisted keyframe")
	}

	Apply(track, ScaleKeyframes{
		IDs:         []KeyframeID{b, c},
		AnchorTime:  tick(4),
		AnchorValue: 20,
		TimeScale:   2,
		ValueScale:  0.5,
	})
	if k, _ := track.Get(b); k.Position != tick(4) || k.Value != 17.5 {
		t.Errorf("b after scale = %v @ %v, want 17.5 @ 4", k.Value, k.Position)
	}
	if k, _ := track.Get(c); k.Position != tick(6) || k.Value != 25 {
		t.Errorf("c after scale = %v @ %v, want 25 @ 6", k.Value, k.Position)
	}
}
