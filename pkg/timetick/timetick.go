// Package timetick provides TimeTick, a unit-agnostic position on an
// animation timeline.
//
// The unit (seconds, frames, beats) is left to the application. All
// operations are pure and total: division by zero follows IEEE-754 and yields
// an infinite or NaN value instead of panicking.
package timetick

import (
	"fmt"
	"math"
	"strconv"
)

// TimeTick is a position in time. The zero value is time zero.
//
// The backing store is a float64. Code outside this package should go through
// the constructors and accessors so the backend can change without touching
// call sites.
type TimeTick struct {
	v float64
}

// New returns a TimeTick holding value in the application's time unit.
func New(value float64) TimeTick {
	return TimeTick{v: value}
}

// Zero returns time zero.
func Zero() TimeTick {
	return TimeTick{}
}

// FromSeconds returns a TimeTick for a duration in seconds.
func FromSeconds(secs float64) TimeTick {
	return TimeTick{v: secs}
}

// FromFrames converts a frame count at the given frame rate to seconds.
func FromFrames(frames, fps float64) TimeTick {
	return TimeTick{v: frames / fps}
}

// Value returns the raw value.
func (t TimeTick) Value() float64 {
	return t.v
}

// Seconds returns the value interpreted as seconds.
func (t TimeTick) Seconds() float64 {
	return t.v
}

// ToFrames converts the value, interpreted as seconds, to a frame count.
func (t TimeTick) ToFrames(fps float64) float64 {
	return t.v * fps
}

// Add returns t + o.
func (t TimeTick) Add(o TimeTick) TimeTick {
	return TimeTick{v: t.v + o.v}
}

// Sub returns t - o.
func (t TimeTick) Sub(o TimeTick) TimeTick {
	return TimeTick{v: t.v - o.v}
}

// Neg returns -t.
func (t TimeTick) Neg() TimeTick {
	return TimeTick{v: -t.v}
}

// Mul scales t by a dimensionless factor.
func (t TimeTick) Mul(s float64) TimeTick {
	return TimeTick{v: t.v * s}
}

// Div divides t by a dimensionless factor.
func (t TimeTick) Div(s float64) TimeTick {
	return TimeTick{v: t.v / s}
}

// Ratio returns t / o as a dimensionless value.
func (t TimeTick) Ratio(o TimeTick) float64 {
	return t.v / o.v
}

// Min returns the smaller of t and o.
func (t TimeTick) Min(o TimeTick) TimeTick {
	return TimeTick{v: math.Min(t.v, o.v)}
}

// Max returns the larger of t and o.
func (t TimeTick) Max(o TimeTick) TimeTick {
	return TimeTick{v: math.Max(t.v, o.v)}
}

// Clamp restricts t to [lo, hi].
func (t TimeTick) Clamp(lo, hi TimeTick) TimeTick {
	return t.Max(lo).Min(hi)
}

// Abs returns |t|.
func (t TimeTick) Abs() TimeTick {
	return TimeTick{v: math.Abs(t.v)}
}

// Floor rounds t down to an integral value.
func (t TimeTick) Floor() TimeTick {
	return TimeTick{v: math.Floor(t.v)}
}

// Ceil rounds t up to an integral value.
func (t TimeTick) Ceil() TimeTick {
	return TimeTick{v: math.Ceil(t.v)}
}

// Round rounds t to the nearest integral value, halves away from zero.
func (t TimeTick) Round() TimeTick {
	return TimeTick{v: math.Round(t.v)}
}

// Lerp linearly interpolates between t (f = 0) and o (f = 1).
func (t TimeTick) Lerp(o TimeTick, f float64) TimeTick {
	return TimeTick{v: t.v + (o.v-t.v)*f}
}

// IsFinite reports whether t is neither infinite nor NaN.
func (t TimeTick) IsFinite() bool {
	return !math.IsInf(t.v, 0) && !math.IsNaN(t.v)
}

// Less reports whether t is strictly before o. NaN is never less than
// anything.
func (t TimeTick) Less(o TimeTick) bool {
	return t.v < o.v
}

// LessEq reports whether t is at or before o.
func (t TimeTick) LessEq(o TimeTick) bool {
	return t.v <= o.v
}

// Compare returns -1, 0 or +1. NaN compares equal to everything.
func (t TimeTick) Compare(o TimeTick) int {
	switch {
	case t.v < o.v:
		return -1
	case t.v > o.v:
		return 1
	default:
		return 0
	}
}

func (t TimeTick) String() string {
	return strconv.FormatFloat(t.v, 'g', -1, 64)
}

// Format implements fmt.Formatter so verbs like %.2f apply to the raw value.
func (t TimeTick) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprint(f, t.String())
	default:
		format := "%"
		for _, flag := range "+-# 0" {
			if f.Flag(int(flag)) {
				format += string(flag)
			}
		}
		if w, ok := f.Width(); ok {
			format += strconv.Itoa(w)
		}
		if p, ok := f.Precision(); ok {
			format += "." + strconv.Itoa(p)
		}
		fmt.Fprintf(f, format+string(verb), t.v)
	}
}
