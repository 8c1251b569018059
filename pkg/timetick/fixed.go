package timetick

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// FromFixed converts a 26.6 fixed-point value to a TimeTick.
func FromFixed(v fixed.Int26_6) TimeTick {
	return TimeTick{v: float64(v) / 64}
}

// Fixed converts t to 26.6 fixed point, rounding to the nearest 1/64 unit.
// Values outside the representable range saturate.
func (t TimeTick) Fixed() fixed.Int26_6 {
	scaled := math.Round(t.v * 64)
	switch {
	case math.IsNaN(scaled):
		return 0
	case scaled >= math.MaxInt32:
		return fixed.Int26_6(math.MaxInt32)
	case scaled <= math.MinInt32:
		return fixed.Int26_6(math.MinInt32)
	}
	return fixed.Int26_6(int32(scaled))
}

// Quantize snaps t to the 26.6 fixed-point grid.
func (t TimeTick) Quantize() TimeTick {
	return FromFixed(t.Fixed())
}
