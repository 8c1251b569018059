package animation

// BezierHandles shape the curve around a keyframe.
//
// Values are normalized to the neighbouring segments. The left handle
// describes the incoming tangent relative to the segment from the previous
// keyframe; the right handle describes the outgoing tangent relative to the
// segment to the next keyframe. X components are conventionally in [0, 1]
// (fraction of segment duration). Y components are unbounded so curves can
// overshoot.
//
// Ranges are not validated.
type BezierHandles struct {
	LeftX  float32 `yaml:"left_x" json:"left_x"`
	LeftY  float32 `yaml:"left_y" json:"left_y"`
	RightX float32 `yaml:"right_x" json:"right_x"`
	RightY float32 `yaml:"right_y" json:"right_y"`
}

// LinearHandles returns the straight-line handle set (0, 0, 1, 1). It is the
// default for new keyframes.
func LinearHandles() BezierHandles {
	return BezierHandles{LeftX: 0, LeftY: 0, RightX: 1, RightY: 1}
}

// EaseInHandles returns a slow-start handle set.
func EaseInHandles() BezierHandles {
	return BezierHandles{LeftX: 0, LeftY: 0, RightX: 0.42, RightY: 0}
}

// EaseOutHandles returns a slow-end handle set.
func EaseOutHandles() BezierHandles {
	return BezierHandles{LeftX: 0.58, LeftY: 1, RightX: 1, RightY: 1}
}

// EaseInOutHandles returns a handle set that eases both ends.
func EaseInOutHandles() BezierHandles {
	return BezierHandles{LeftX: 0.42, LeftY: 0, RightX: 0.58, RightY: 1}
}

// HandlesFromArray builds handles from [LeftX, LeftY, RightX, RightY].
func HandlesFromArray(a [4]float32) BezierHandles {
	return BezierHandles{LeftX: a[0], LeftY: a[1], RightX: a[2], RightY: a[3]}
}

// Array returns [LeftX, LeftY, RightX, RightY].
func (h BezierHandles) Array() [4]float32 {
	return [4]float32{h.LeftX, h.LeftY, h.RightX, h.RightY}
}

// HandlesFromCSS converts a CSS cubic-bezier(x1, y1, x2, y2) tuple.
//
// CSS anchors both control points to the start of the segment, while
// BezierHandles anchor the left handle to the incoming segment. Hence the
// asymmetric mapping.
func HandlesFromCSS(x1, y1, x2, y2 float32) BezierHandles {
	return BezierHandles{
		LeftX:  1 - x2,
		LeftY:  1 - y2,
		RightX: x1,
		RightY: y1,
	}
}

// CSS is the inverse of HandlesFromCSS.
func (h BezierHandles) CSS() (x1, y1, x2, y2 float32) {
	return h.RightX, h.RightY, 1 - h.LeftX, 1 - h.LeftY
}

// Similar reports whether every component of h is within tolerance of o.
func (h BezierHandles) Similar(o BezierHandles, tolerance float32) bool {
	return abs32(h.LeftX-o.LeftX) < tolerance &&
		abs32(h.LeftY-o.LeftY) < tolerance &&
		abs32(h.RightX-o.RightX) < tolerance &&
		abs32(h.RightY-o.RightY) < tolerance
}
