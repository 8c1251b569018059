package keyframe

import (
	"fmt"

	"github.com/google/uuid"
)

// KeyframeID identifies a keyframe. IDs are random (UUID v4) and stable for
// the keyframe's lifetime, including across serialization.
type KeyframeID uuid.UUID

// NewKeyframeID returns a fresh random ID.
func NewKeyframeID() KeyframeID {
	return KeyframeID(uuid.New())
}

// ParseKeyframeID parses the canonical UUID text form.
func ParseKeyframeID(s string) (KeyframeID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return KeyframeID{}, fmt.Errorf("keyframe id %q: %w", s, err)
	}
	return KeyframeID(u), nil
}

// IsZero reports whether id is the nil UUID.
func (id KeyframeID) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}

func (id KeyframeID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText encodes the canonical UUID form.
func (id KeyframeID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText decodes any form accepted by uuid.Parse.
func (id *KeyframeID) UnmarshalText(text []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(text)
}

// TrackID identifies a track.
type TrackID uuid.UUID

// NewTrackID returns a fresh random ID.
func NewTrackID() TrackID {
	return TrackID(uuid.New())
}

// ParseTrackID parses the canonical UUID text form.
func ParseTrackID(s string) (TrackID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return TrackID{}, fmt.Errorf("track id %q: %w", s, err)
	}
	return TrackID(u), nil
}

// IsZero reports whether id is the nil UUID.
func (id TrackID) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}

func (id TrackID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText encodes the canonical UUID form.
func (id TrackID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText decodes any form accepted by uuid.Parse.
func (id *TrackID) UnmarshalText(text []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(text)
}
