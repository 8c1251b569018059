// Package keyframe stores animation keyframes in tracks and evaluates them
// at arbitrary time positions.
//
// A [Track] owns its [Keyframe] values, keyed by [KeyframeID] and kept in
// insertion order. Evaluation always works on the position-sorted view
// returned by [Track.Sorted]: [Evaluate] brackets the query position and
// reports the two values to blend plus an eased progression. Blending itself
// is done by a value kind implementing animation.Lerper, see [Blend].
//
// Tracks are not safe for concurrent mutation. Concurrent read-only
// evaluation is fine while no writer is active.
package keyframe

import (
	"fmt"
	"strings"

	"github.com/go-drift/keyframe/pkg/animation"
	"github.com/go-drift/keyframe/pkg/timetick"
)

// Mode selects how a keyframe interpolates into the next one.
type Mode int

const (
	// ModeBezier eases along the curve formed by the adjacent handles.
	ModeBezier Mode = iota
	// ModeHold keeps the value until the next keyframe (step function).
	ModeHold
	// ModeLinear interpolates in a straight line, ignoring handles.
	ModeLinear
)

func (m Mode) String() string {
	switch m {
	case ModeBezier:
		return "bezier"
	case ModeHold:
		return "hold"
	case ModeLinear:
		return "linear"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "bezier", "hold" or "linear", ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bezier":
		return ModeBezier, nil
	case "hold":
		return ModeHold, nil
	case "linear":
		return ModeLinear, nil
	}
	return ModeBezier, fmt.Errorf("unknown keyframe mode %q", s)
}

// MarshalText encodes the mode name.
func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case ModeBezier, ModeHold, ModeLinear:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("invalid keyframe mode %d", int(m))
}

// UnmarshalText decodes a mode name.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Keyframe is a value anchored at a time position.
//
// T is the animated value type. A Keyframe holds no reference to its track.
type Keyframe[T any] struct {
	ID       KeyframeID
	Value    T
	Position timetick.TimeTick
	// Handles shape the curves entering and leaving this keyframe.
	Handles animation.BezierHandles
	// ConnectedRight is false when there is a gap after this keyframe: the
	// value holds until the next keyframe is reached.
	ConnectedRight bool
	// Mode is the interpolation used for the segment leaving this keyframe.
	Mode Mode
}

// New returns a connected bezier keyframe with linear handles and a fresh ID.
func New[T any](position timetick.TimeTick, value T) Keyframe[T] {
	return NewWithID(NewKeyframeID(), position, value)
}

// NewWithID is like New but uses the given ID.
func NewWithID[T any](id KeyframeID, position timetick.TimeTick, value T) Keyframe[T] {
	return Keyframe[T]{
		ID:             id,
		Value:          value,
		Position:       position,
		Handles:        animation.LinearHandles(),
		ConnectedRight: true,
		Mode:           ModeBezier,
	}
}

// WithHandles returns a copy of k with the given handles.
func (k Keyframe[T]) WithHandles(h animation.BezierHandles) Keyframe[T] {
	k.Handles = h
	return k
}

// WithPreset returns a copy of k with the preset's handles.
func (k Keyframe[T]) WithPreset(p animation.Preset) Keyframe[T] {
	k.Handles = p.Handles()
	return k
}

// WithMode returns a copy of k with the given interpolation mode.
func (k Keyframe[T]) WithMode(m Mode) Keyframe[T] {
	k.Mode = m
	return k
}

// WithConnected returns a copy of k with ConnectedRight set.
func (k Keyframe[T]) WithConnected(connected bool) Keyframe[T] {
	k.ConnectedRight = connected
	return k
}

// WithValue returns a copy of k holding v.
func (k Keyframe[T]) WithValue(v T) Keyframe[T] {
	k.Value = v
	return k
}

// WithPosition returns a copy of k moved to pos.
func (k Keyframe[T]) WithPosition(pos timetick.TimeTick) Keyframe[T] {
	k.Position = pos
	return k
}
