// Package fixed provides the fixed-point arithmetic types used by the
// renderers.  A value x represents the real number x.Raw() / 2^x.Shift().
//
// Operations between values of the same type keep their scale.  Products of
// different scales are computed with MulWide and must be rescaled explicitly,
// conversions between scales go through Cast (truncating) or Round (ties away
// from zero).  Overflow is never checked.
package fixed

import (
	"github.com/clktmr/agbgfx/debug"

	"golang.org/x/exp/constraints"
)

//go:generate go run mkfixed.go Int24_8 int32
type Int24_8 int32

//go:generate go run mkfixed.go Int20_12 int32
type Int20_12 int32

//go:generate go run mkfixed.go Int16_16 int32
type Int16_16 int32

//go:generate go run mkfixed.go Int8_24 int32
type Int8_24 int32

// Int8_8 is the storage format of packed level assets.
//
//go:generate go run mkfixed.go Int8_8 int16
type Int8_8 int16

// UInt0_16 is a normalized angle, a fraction of one full turn.  Arithmetic
// wraps around naturally.
//
//go:generate go run mkfixed.go UInt0_16 uint16
type UInt0_16 uint16

// Fixed is satisfied by all fixed-point types of this package.
type Fixed interface {
	constraints.Integer
	Shift() uint
}

func shiftOf[T Fixed]() uint {
	var zero T
	return zero.Shift()
}

// Wide is the unscaled product of two fixed-point values.  Its scale is the
// sum of the operand scales.
type Wide struct {
	Raw   int64
	Shift uint
}

// MulWide multiplies a and b without rescaling.
func MulWide[A, B Fixed](a A, b B) Wide {
	return Wide{int64(a) * int64(b), a.Shift() + b.Shift()}
}

func (w Wide) Add(v Wide) Wide {
	debug.Assert(w.Shift == v.Shift, "fixed: adding products of different scale")
	return Wide{w.Raw + v.Raw, w.Shift}
}

func (w Wide) Sub(v Wide) Wide {
	debug.Assert(w.Shift == v.Shift, "fixed: subtracting products of different scale")
	return Wide{w.Raw - v.Raw, w.Shift}
}

// Rescale truncates w to the scale of T.
func Rescale[T Fixed](w Wide) T {
	return T(shiftRaw(w.Raw, w.Shift, shiftOf[T]()))
}

// RoundWide rounds w to the scale of T, ties away from zero.
func RoundWide[T Fixed](w Wide) T {
	return T(roundRaw(w.Raw, w.Shift, shiftOf[T]()))
}

// Cast converts x to the scale of To, truncating lost fractional bits towards
// negative infinity.
func Cast[To, From Fixed](x From) To {
	return To(shiftRaw(int64(x), x.Shift(), shiftOf[To]()))
}

// Round converts x to the scale of To, rounding lost fractional bits half
// away from zero.
func Round[To, From Fixed](x From) To {
	return To(roundRaw(int64(x), x.Shift(), shiftOf[To]()))
}

// FromShifted reinterprets an integer implicitly scaled by 2^shift as a value
// of type T, truncating.  Used to bring lookup table outputs into a local
// scale.
func FromShifted[T Fixed](raw int64, shift uint) T {
	return T(shiftRaw(raw, shift, shiftOf[T]()))
}

func shiftRaw(raw int64, from, to uint) int64 {
	if to >= from {
		return raw << (to - from)
	}
	return raw >> (from - to)
}

func roundRaw(raw int64, from, to uint) int64 {
	if to >= from {
		return raw << (to - from)
	}
	s := from - to
	half := int64(1) << (s - 1)
	if raw < 0 {
		return -((-raw + half) >> s)
	}
	return (raw + half) >> s
}
