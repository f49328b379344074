// Package trig approximates trigonometric functions with lookup tables, the
// way the console does it without an FPU.
//
// Angles are fixed.UInt0_16, a fraction of a full turn.  Results are
// fixed.Int16_16.
package trig

import (
	"math"

	"github.com/clktmr/agbgfx/debug"
	"github.com/clktmr/agbgfx/fixed"
)

const (
	lutBits  = 9
	lutSize  = 1 << lutBits
	lutShift = 16 - lutBits // angle bits per bucket
	lutFrac  = 14
)

// SinLUT holds sin(2π i/512) scaled by 2^14.
var SinLUT [lutSize]int16

// CotanLUT holds cot(π/4 + π/2 i/512) scaled by 2^14.  The range covers the
// quarter turns where |cot| ≤ 1.
var CotanLUT [lutSize]int16

// ReciprocalSaturation is the reciprocal returned for zero.
const ReciprocalSaturation = 1 << 16

// MaxReciprocal is the largest argument of Reciprocal.
const MaxReciprocal = 160

// ReciprocalLUT holds 1/n scaled by 2^16.  Entry 0 is saturated to
// ReciprocalSaturation.
var ReciprocalLUT [MaxReciprocal + 1]int32

func init() {
	for i := range SinLUT {
		SinLUT[i] = int16(math.Round(math.Sin(2*math.Pi*float64(i)/lutSize) * (1 << lutFrac)))
		CotanLUT[i] = int16(math.Round(1 / math.Tan(math.Pi/4+math.Pi/2*float64(i)/lutSize) * (1 << lutFrac)))
	}
	ReciprocalLUT[0] = ReciprocalSaturation
	for n := 1; n < len(ReciprocalLUT); n++ {
		ReciprocalLUT[n] = (1 << 16) / int32(n)
	}
}

func index(a fixed.UInt0_16) int {
	return int((uint32(a)+1<<(lutShift-1))>>lutShift) & (lutSize - 1)
}

// Sin returns the sine of a, rounded to the nearest of 512 buckets.
func Sin(a fixed.UInt0_16) fixed.Int16_16 {
	return fixed.Int16_16(int32(SinLUT[index(a)]) << (16 - lutFrac))
}

// Cos returns the cosine of a, rounded to the nearest of 512 buckets.
func Cos(a fixed.UInt0_16) fixed.Int16_16 {
	i := (index(a) + lutSize/4) & (lutSize - 1)
	return fixed.Int16_16(int32(SinLUT[i]) << (16 - lutFrac))
}

// Cotan returns the cotangent of a.  a must lie strictly within the eighth
// turns around a quarter turn, i.e. (1/8, 3/8) of a turn.
func Cotan(a fixed.UInt0_16) fixed.Int16_16 {
	x := (int(a) + 1<<4) >> 5
	debug.Assertf(x > 0x100 && x < 0x300, "trig: cotan argument out of range: %v", a)
	return fixed.Int16_16(int32(CotanLUT[x-0x100]) << (16 - lutFrac))
}

// Reciprocal returns 1/n.  Zero saturates to ReciprocalSaturation instead of
// failing, |n| must not exceed MaxReciprocal.
func Reciprocal(n int) fixed.Int16_16 {
	if n < 0 {
		return -Reciprocal(-n)
	}
	debug.Assertf(n <= MaxReciprocal, "trig: reciprocal argument out of range: %d", n)
	return fixed.Int16_16(ReciprocalLUT[n])
}
