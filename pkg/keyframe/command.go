package keyframe

import (
	"github.com/go-drift/keyframe/pkg/animation"
	"github.com/go-drift/keyframe/pkg/timetick"
)

// Command is an edit applied to a scalar track with Apply. Commands that
// name keyframe IDs skip the ones the track does not contain.
type Command interface {
	apply(t *Track[float64]) []KeyframeID
}

// AddKeyframe inserts a new connected bezier keyframe.
type AddKeyframe struct {
	Position timetick.TimeTick
	Value    float64
}

// RemoveKeyframes deletes keyframes.
type RemoveKeyframes struct {
	IDs []KeyframeID
}

// MoveKeyframe changes a keyframe's position.
type MoveKeyframe struct {
	ID       KeyframeID
	Position timetick.TimeTick
}

// SetKeyframeValue changes a keyframe's value.
type SetKeyframeValue struct {
	ID    KeyframeID
	Value float64
}

// SetKeyframeHandles replaces a keyframe's handles.
type SetKeyframeHandles struct {
	ID      KeyframeID
	Handles animation.BezierHandles
}

// SetKeyframeMode changes a keyframe's interpolation mode.
type SetKeyframeMode struct {
	ID   KeyframeID
	Mode Mode
}

// OffsetKeyframes shifts keyframes in time and value.
type OffsetKeyframes struct {
	IDs        []KeyframeID
	DeltaTime  timetick.TimeTick
	DeltaValue float64
}

// ScaleKeyframes scales keyframe positions and values around an anchor.
type ScaleKeyframes struct {
	IDs         []KeyframeID
	AnchorTime  timetick.TimeTick
	AnchorValue float64
	TimeScale   float64
	ValueScale  float64
}

// Apply runs cmd against t and returns the IDs of the keyframes it added,
// removed or changed.
func Apply(t *Track[float64], cmd Command) []KeyframeID {
	return cmd.apply(t)
}

func (c AddKeyframe) apply(t *Track[float64]) []KeyframeID {
	return []KeyframeID{t.Add(New(c.Position, c.Value))}
}

func (c RemoveKeyframes) apply(t *Track[float64]) []KeyframeID {
	var out []KeyframeID
	for _, id := range c.IDs {
		if _, ok := t.Remove(id); ok {
			out = append(out, id)
		}
	}
	return out
}

func (c MoveKeyframe) apply(t *Track[float64]) []KeyframeID {
	return edit(t, []KeyframeID{c.ID}, func(k *Keyframe[float64]) {
		k.Position = c.Position
	})
}

func (c SetKeyframeValue) apply(t *Track[float64]) []KeyframeID {
	return edit(t, []KeyframeID{c.ID}, func(k *Keyframe[float64]) {
		k.Value = c.Value
	})
}

func (c SetKeyframeHandles) apply(t *Track[float64]) []KeyframeID {
	return edit(t, []KeyframeID{c.ID}, func(k *Keyframe[float64]) {
		k.Handles = c.Handles
	})
}

func (c SetKeyframeMode) apply(t *Track[float64]) []KeyframeID {
	return edit(t, []KeyframeID{c.ID}, func(k *Keyframe[float64]) {
		k.Mode = c.Mode
	})
}

func (c OffsetKeyframes) apply(t *Track[float64]) []KeyframeID {
	return edit(t, c.IDs, func(k *Keyframe[float64]) {
		k.Position = k.Position.Add(c.DeltaTime)
		k.Value += c.DeltaValue
	})
}

func (c ScaleKeyframes) apply(t *Track[float64]) []KeyframeID {
	return edit(t, c.IDs, func(k *Keyframe[float64]) {
		k.Position = c.AnchorTime.Add(k.Position.Sub(c.AnchorTime).Mul(c.TimeScale))
		k.Value = c.AnchorValue + (k.Value-c.AnchorValue)*c.ValueScale
	})
}

func edit(t *Track[float64], ids []KeyframeID, fn func(k *Keyframe[float64])) []KeyframeID {
	var out []KeyframeID
	for _, id := range ids {
		if k := t.GetMut(id); k != nil {
			fn(k)
			out = append(out, id)
		}
	}
	return out
}
