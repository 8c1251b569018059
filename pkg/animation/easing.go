package animation

import (
	"fmt"
	"strings"
)

// Preset names a standard easing shape.
//
// The declaration order is the catalog order: [MatchPreset] returns the
// first listed preset that matches.
type Preset int

const (
	PresetLinear Preset = iota
	PresetEaseIn
	PresetEaseOut
	PresetEaseInOut
	PresetEaseInQuad
	PresetEaseOutQuad
	PresetEaseInOutQuad
	PresetEaseInCubic
	PresetEaseOutCubic
	PresetEaseInOutCubic
	PresetEaseInQuart
	PresetEaseOutQuart
	PresetEaseInOutQuart
	PresetEaseInQuint
	PresetEaseOutQuint
	PresetEaseInOutQuint
	PresetEaseInSine
	PresetEaseOutSine
	PresetEaseInOutSine
	PresetEaseInExpo
	PresetEaseOutExpo
	PresetEaseInOutExpo
	PresetEaseInCirc
	PresetEaseOutCirc
	PresetEaseInOutCirc
	PresetEaseInBack
	PresetEaseOutBack
	PresetEaseInOutBack

	presetCount
)

type presetInfo struct {
	name string
	// CSS cubic-bezier tuple (x1, y1, x2, y2), values from easings.net.
	css [4]float32
}

var presets = [presetCount]presetInfo{
	PresetLinear:         {"Linear", [4]float32{0, 0, 1, 1}},
	PresetEaseIn:         {"Ease In", [4]float32{0.42, 0, 1, 1}},
	PresetEaseOut:        {"Ease Out", [4]float32{0, 0, 0.58, 1}},
	PresetEaseInOut:      {"Ease In Out", [4]float32{0.42, 0, 0.58, 1}},
	PresetEaseInQuad:     {"Ease In Quad", [4]float32{0.55, 0.085, 0.68, 0.53}},
	PresetEaseOutQuad:    {"Ease Out Quad", [4]float32{0.25, 0.46, 0.45, 0.94}},
	PresetEaseInOutQuad:  {"Ease In Out Quad", [4]float32{0.455, 0.03, 0.515, 0.955}},
	PresetEaseInCubic:    {"Ease In Cubic", [4]float32{0.55, 0.055, 0.675, 0.19}},
	PresetEaseOutCubic:   {"Ease Out Cubic", [4]float32{0.215, 0.61, 0.355, 1}},
	PresetEaseInOutCubic: {"Ease In Out Cubic", [4]float32{0.645, 0.045, 0.355, 1}},
	PresetEaseInQuart:    {"Ease In Quart", [4]float32{0.895, 0.03, 0.685, 0.22}},
	PresetEaseOutQuart:   {"Ease Out Quart", [4]float32{0.165, 0.84, 0.44, 1}},
	PresetEaseInOutQuart: {"Ease In Out Quart", [4]float32{0.77, 0, 0.175, 1}},
	PresetEaseInQuint:    {"Ease In Quint", [4]float32{0.755, 0.05, 0.855, 0.06}},
	PresetEaseOutQuint:   {"Ease Out Quint", [4]float32{0.23, 1, 0.32, 1}},
	PresetEaseInOutQuint: {"Ease In Out Quint", [4]float32{0.86, 0, 0.07, 1}},
	PresetEaseInSine:     {"Ease In Sine", [4]float32{0.47, 0, 0.745, 0.715}},
	PresetEaseOutSine:    {"Ease Out Sine", [4]float32{0.39, 0.575, 0.565, 1}},
	PresetEaseInOutSine:  {"Ease In Out Sine", [4]float32{0.445, 0.05, 0.55, 0.95}},
	PresetEaseInExpo:     {"Ease In Expo", [4]float32{0.95, 0.05, 0.795, 0.035}},
	PresetEaseOutExpo:    {"Ease Out Expo", [4]float32{0.19, 1, 0.22, 1}},
	PresetEaseInOutExpo:  {"Ease In Out Expo", [4]float32{1, 0, 0, 1}},
	PresetEaseInCirc:     {"Ease In Circ", [4]float32{0.6, 0.04, 0.98, 0.335}},
	PresetEaseOutCirc:    {"Ease Out Circ", [4]float32{0.075, 0.82, 0.165, 1}},
	PresetEaseInOutCirc:  {"Ease In Out Circ", [4]float32{0.785, 0.135, 0.15, 0.86}},
	PresetEaseInBack:     {"Ease In Back", [4]float32{0.6, -0.28, 0.735, 0.045}},
	PresetEaseOutBack:    {"Ease Out Back", [4]float32{0.175, 0.885, 0.32, 1.275}},
	PresetEaseInOutBack:  {"Ease In Out Back", [4]float32{0.68, -0.55, 0.265, 1.55}},
}

var commonPresets = []Preset{
	PresetLinear,
	PresetEaseIn,
	PresetEaseOut,
	PresetEaseInOut,
	PresetEaseInCubic,
	PresetEaseOutCubic,
	PresetEaseInOutCubic,
	PresetEaseInBack,
	PresetEaseOutBack,
}

// Valid reports whether p is in the catalog.
func (p Preset) Valid() bool {
	return p >= 0 && p < presetCount
}

// Name returns the display name, e.g. "Ease In Out Quad".
func (p Preset) Name() string {
	if !p.Valid() {
		return ""
	}
	return presets[p].name
}

func (p Preset) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Preset(%d)", int(p))
	}
	return presets[p].name
}

// CSS returns the preset's CSS cubic-bezier tuple.
func (p Preset) CSS() (x1, y1, x2, y2 float32) {
	if !p.Valid() {
		p = PresetLinear
	}
	c := presets[p].css
	return c[0], c[1], c[2], c[3]
}

// Handles returns the preset converted to keyframe handles.
func (p Preset) Handles() BezierHandles {
	return HandlesFromCSS(p.CSS())
}

// Bezier returns a solver for the preset.
func (p Preset) Bezier() CubicBezier {
	return NewCubicBezier(p.CSS())
}

// Curve returns the preset as an easing function.
func (p Preset) Curve() Curve {
	return p.Bezier().Curve()
}

// AllPresets returns the full catalog in order.
func AllPresets() []Preset {
	all := make([]Preset, presetCount)
	for i := range all {
		all[i] = Preset(i)
	}
	return all
}

// CommonPresets returns the subset offered in compact pickers.
func CommonPresets() []Preset {
	return append([]Preset(nil), commonPresets...)
}

// ParsePreset looks up a preset by display name. Matching ignores case,
// spaces, dashes and underscores, so "ease-in-out-quad" and "EaseInOutQuad"
// both resolve.
func ParsePreset(name string) (Preset, bool) {
	key := presetKey(name)
	for i := range presetCount {
		if presetKey(presets[i].name) == key {
			return i, true
		}
	}
	return PresetLinear, false
}

func presetKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(s))
}

// MatchPreset returns the first catalog preset whose handles are within
// tolerance of h on every component.
func MatchPreset(h BezierHandles, tolerance float32) (Preset, bool) {
	for i := range presetCount {
		if h.Similar(i.Handles(), tolerance) {
			return i, true
		}
	}
	return PresetLinear, false
}

// MarshalText encodes the preset by display name.
func (p Preset) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("animation: invalid preset %d", int(p))
	}
	return []byte(p.Name()), nil
}

// UnmarshalText decodes a preset display name.
func (p *Preset) UnmarshalText(text []byte) error {
	v, ok := ParsePreset(string(text))
	if !ok {
		return fmt.Errorf("animation: unknown preset %q", text)
	}
	*p = v
	return nil
}
