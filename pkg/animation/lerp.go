package animation

import (
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/image/math/f32"
)

// Lerper blends two values of an animated type. t is the eased progression
// in [0, 1]; t = 0 yields a and t = 1 yields b.
//
// The keyframe engine never blends values itself. Each animated value type
// supplies a Lerper, usually a zero-size kind such as [Float64] or [Vec3].
type Lerper[T any] interface {
	Lerp(a, b T, t float32) T
}

// Measurer reports the distance between two values. Hosts use it to scale
// curve displays for vector types.
type Measurer[T any] interface {
	Distance(a, b T) float32
}

// LerpFunc adapts a plain function to [Lerper].
type LerpFunc[T any] func(a, b T, t float32) T

// Lerp calls f(a, b, t).
func (f LerpFunc[T]) Lerp(a, b T, t float32) T { return f(a, b, t) }

// LerpFloat32 linearly interpolates between two float32 values.
func LerpFloat32(a, b float32, t float32) float32 {
	return a + (b-a)*t
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float32) float64 {
	return a + (b-a)*float64(t)
}

// LerpNumber linearly interpolates any integer or float type. Integer results
// are truncated toward zero.
func LerpNumber[T constraints.Integer | constraints.Float](a, b T, t float32) T {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	return T(float64(a) + (float64(b)-float64(a))*float64(t))
}

// LerpVec2 interpolates component-wise.
func LerpVec2(a, b f32.Vec2, t float32) f32.Vec2 {
	return f32.Vec2{
		LerpFloat32(a[0], b[0], t),
		LerpFloat32(a[1], b[1], t),
	}
}

// LerpVec3 interpolates component-wise.
func LerpVec3(a, b f32.Vec3, t float32) f32.Vec3 {
	return f32.Vec3{
		LerpFloat32(a[0], b[0], t),
		LerpFloat32(a[1], b[1], t),
		LerpFloat32(a[2], b[2], t),
	}
}

// LerpVec4 interpolates component-wise.
func LerpVec4(a, b f32.Vec4, t float32) f32.Vec4 {
	return f32.Vec4{
		LerpFloat32(a[0], b[0], t),
		LerpFloat32(a[1], b[1], t),
		LerpFloat32(a[2], b[2], t),
		LerpFloat32(a[3], b[3], t),
	}
}

// Float32 is the value kind for float32 tracks.
type Float32 struct{}

func (Float32) Lerp(a, b float32, t float32) float32 { return LerpFloat32(a, b, t) }
func (Float32) Distance(a, b float32) float32 { return abs32(a - b) }

// Float64 is the value kind for float64 tracks.
type Float64 struct{}

func (Float64) Lerp(a, b float64, t float32) float64 { return LerpFloat64(a, b, t) }
func (Float64) Distance(a, b float64) float32 { return float32(math.Abs(a - b)) }

// Number is the value kind for any integer or float type.
type Number[T constraints.Integer | constraints.Float] struct{}

func (Number[T]) Lerp(a, b T, t float32) T { return LerpNumber(a, b, t) }
func (Number[T]) Distance(a, b T) float32 {
	return float32(math.Abs(float64(a) - float64(b)))
}

// Vec2 is the value kind for two-component vectors.
type Vec2 struct{}

func (Vec2) Lerp(a, b f32.Vec2, t float32) f32.Vec2 { return LerpVec2(a, b, t) }
func (Vec2) Distance(a, b f32.Vec2) float32 {
	return hypot(a[0]-b[0], a[1]-b[1])
}

// Vec3 is the value kind for three-component vectors.
type Vec3 struct{}

func (Vec3) Lerp(a, b f32.Vec3, t float32) f32.Vec3 { return LerpVec3(a, b, t) }
func (Vec3) Distance(a, b f32.Vec3) float32 {
	return hypot(a[0]-b[0], a[1]-b[1], a[2]-b[2])
}

// Vec4 is the value kind for four-component vectors such as RGBA colors.
type Vec4 struct{}

func (Vec4) Lerp(a, b f32.Vec4, t float32) f32.Vec4 { return LerpVec4(a, b, t) }
func (Vec4) Distance(a, b f32.Vec4) float32 {
	return hypot(a[0]-b[0], a[1]-b[1], a[2]-b[2], a[3]-b[3])
}

func hypot(d ...float32) float32 {
	var sum float64
	for _, v := range d {
		sum += float64(v) * float64(v)
	}
	return float32(math.Sqrt(sum))
}
