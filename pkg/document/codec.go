package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/keyframe/pkg/animation"
	kerrors "github.com/go-drift/keyframe/pkg/errors"
	"github.com/go-drift/keyframe/pkg/keyframe"
	"github.com/go-drift/keyframe/pkg/timetick"
)

// Format selects the document encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "yaml"
}

// ParseFormat parses "yaml", "yml" or "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatYAML, fmt.Errorf("unknown document format %q", s)
}

// DetectFormat picks a format from a file extension. Unknown extensions are
// treated as YAML.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

type wireDocument struct {
	Version string      `yaml:"version" json:"version"`
	Tracks  []wireTrack `yaml:"tracks" json:"tracks"`
}

type wireTrack struct {
	Name      string         `yaml:"name" json:"name"`
	ID        string         `yaml:"id,omitempty" json:"id,omitempty"`
	Keyframes []wireKeyframe `yaml:"keyframes" json:"keyframes"`
}

type wireKeyframe struct {
	ID             string            `yaml:"id,omitempty" json:"id,omitempty"`
	Position       timetick.TimeTick `yaml:"position" json:"position"`
	Value          wireFloat64       `yaml:"value" json:"value"`
	Handles        *wireHandles      `yaml:"handles,omitempty" json:"handles,omitempty"`
	ConnectedRight *bool             `yaml:"connected_right,omitempty" json:"connected_right,omitempty"`
	Mode           string            `yaml:"mode,omitempty" json:"mode,omitempty"`
}

type wireHandles struct {
	LeftX  wireFloat32 `yaml:"left_x" json:"left_x"`
	LeftY  wireFloat32 `yaml:"left_y" json:"left_y"`
	RightX wireFloat32 `yaml:"right_x" json:"right_x"`
	RightY wireFloat32 `yaml:"right_y" json:"right_y"`
}

func toWireHandles(h animation.BezierHandles) *wireHandles {
	return &wireHandles{
		LeftX:  wireFloat32(h.LeftX),
		LeftY:  wireFloat32(h.LeftY),
		RightX: wireFloat32(h.RightX),
		RightY: wireFloat32(h.RightY),
	}
}

func (h *wireHandles) handles() animation.BezierHandles {
	return animation.BezierHandles{
		LeftX:  float32(h.LeftX),
		LeftY:  float32(h.LeftY),
		RightX: float32(h.RightX),
		RightY: float32(h.RightY),
	}
}

// wireFloat64 and wireFloat32 write negative zero as -0.0 so yaml.v3 reads
// it back as a float with its sign.
type (
	wireFloat64 float64
	wireFloat32 float32
)

func negativeZero() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: "-0.0"}
}

func (f wireFloat64) MarshalYAML() (any, error) {
	if f == 0 && math.Signbit(float64(f)) {
		return negativeZero(), nil
	}
	return float64(f), nil
}

func (f wireFloat32) MarshalYAML() (any, error) {
	if f == 0 && math.Signbit(float64(f)) {
		return negativeZero(), nil
	}
	return float32(f), nil
}

// Validate checks data against the document schema without building
// tracks.
func Validate(data []byte, f Format) error {
	const op = "document.Validate"
	v, err := generic(data, f)
	if err != nil {
		return kerrors.New(op, kerrors.KindDecode, err)
	}
	if err := validate(v); err != nil {
		return kerrors.New(op, kerrors.KindSchema, err)
	}
	return nil
}

// Decode parses and validates a document.
//
// Keyframes are added to their track in the order they appear. Missing
// fields take the keyframe defaults: a fresh ID, linear handles, connected,
// bezier mode.
func Decode(data []byte, f Format) (*Document, error) {
	const op = "document.Decode"
	if err := Validate(data, f); err != nil {
		return nil, err
	}

	var w wireDocument
	var err error
	if f == FormatJSON {
		err = json.Unmarshal(data, &w)
	} else {
		err = yaml.Unmarshal(data, &w)
	}
	if err != nil {
		return nil, kerrors.New(op, kerrors.KindDecode, err)
	}

	version, err := CheckVersion(w.Version)
	if err != nil {
		return nil, kerrors.New(op, kerrors.KindVersion, err).At("version")
	}

	doc := &Document{Version: version, Tracks: make([]NamedTrack, 0, len(w.Tracks))}
	for i, wt := range w.Tracks {
		track, err := decodeTrack(wt)
		if err != nil {
			return nil, err.At(fmt.Sprintf("tracks[%d]%s", i, err.Path))
		}
		doc.Tracks = append(doc.Tracks, NamedTrack{Name: wt.Name, Track: track})
	}
	return doc, nil
}

func decodeTrack(wt wireTrack) (*keyframe.Track[float64], *kerrors.KeyframeError) {
	const op = "document.Decode"
	id := keyframe.NewTrackID()
	if wt.ID != "" {
		var err error
		if id, err = keyframe.ParseTrackID(wt.ID); err != nil {
			return nil, kerrors.New(op, kerrors.KindDecode, err).At(".id")
		}
	}
	track := keyframe.NewTrackWithID[float64](id)

	for j, wk := range wt.Keyframes {
		at := func(field string) string { return fmt.Sprintf(".keyframes[%d]%s", j, field) }

		kid := keyframe.NewKeyframeID()
		if wk.ID != "" {
			var err error
			if kid, err = keyframe.ParseKeyframeID(wk.ID); err != nil {
				return nil, kerrors.New(op, kerrors.KindDecode, err).At(at(".id"))
			}
			if _, dup := track.Get(kid); dup {
				return nil, kerrors.Errorf(op, kerrors.KindDecode, "duplicate keyframe id %s", kid).At(at(".id"))
			}
		}

		k := keyframe.NewWithID(kid, wk.Position, float64(wk.Value))
		if wk.Handles != nil {
			k.Handles = wk.Handles.handles()
		}
		if wk.ConnectedRight != nil {
			k.ConnectedRight = *wk.ConnectedRight
		}
		if wk.Mode != "" {
			mode, err := keyframe.ParseMode(wk.Mode)
			if err != nil {
				return nil, kerrors.New(op, kerrors.KindDecode, err).At(at(".mode"))
			}
			k.Mode = mode
		}
		track.Add(k)
	}
	return track, nil
}

// Encode writes d with every keyframe field spelled out.
func Encode(d *Document, f Format) ([]byte, error) {
	const op = "document.Encode"
	version := d.Version
	if version == "" {
		version = CurrentVersion
	}
	w := wireDocument{Version: version, Tracks: make([]wireTrack, 0, len(d.Tracks))}
	for i, nt := range d.Tracks {
		wt := wireTrack{Name: nt.Name, Keyframes: []wireKeyframe{}}
		if nt.Track != nil {
			wt.ID = nt.Track.ID.String()
			for k := range nt.Track.All() {
				if !k.Position.IsFinite() || !finite(k.Value) || !finiteHandles(k.Handles) {
					return nil, kerrors.Errorf(op, kerrors.KindEncode, "non-finite keyframe %s", k.ID).
						At(fmt.Sprintf("tracks[%d]", i))
				}
				connected := k.ConnectedRight
				wt.Keyframes = append(wt.Keyframes, wireKeyframe{
					ID:             k.ID.String(),
					Position:       k.Position,
					Value:          wireFloat64(k.Value),
					Handles:        toWireHandles(k.Handles),
					ConnectedRight: &connected,
					Mode:           k.Mode.String(),
				})
			}
		}
		w.Tracks = append(w.Tracks, wt)
	}

	var buf bytes.Buffer
	if f == FormatJSON {
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(w); err != nil {
			return nil, kerrors.New(op, kerrors.KindEncode, err)
		}
		return buf.Bytes(), nil
	}
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(w); err != nil {
		return nil, kerrors.New(op, kerrors.KindEncode, err)
	}
	if err := enc.Close(); err != nil {
		return nil, kerrors.New(op, kerrors.KindEncode, err)
	}
	return buf.Bytes(), nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteHandles(h animation.BezierHandles) bool {
	for _, v := range h.Array() {
		if !finite(float64(v)) {
			return false
		}
	}
	return true
}

// ReadFile decodes the document at path, choosing the format by extension.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, kerrors.New("document.ReadFile", kerrors.KindDecode, err).At(path)
	}
	doc, err := Decode(data, DetectFormat(path))
	if err != nil {
		var ke *kerrors.KeyframeError
		if errors.As(err, &ke) {
			return nil, ke.InFile(path)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// WriteFile encodes d to path, choosing the format by extension.
func WriteFile(path string, d *Document) error {
	data, err := Encode(d, DetectFormat(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return kerrors.New("document.WriteFile", kerrors.KindEncode, err).At(path)
	}
	return nil
}
