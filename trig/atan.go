package trig

import "github.com/clktmr/agbgfx/fixed"

// ArcTan approximates the arc tangent of a .14 tangent in [-1, 1] with the
// polynomial of the console BIOS.  The result is an angle where 0x4000 is a
// quarter turn.
func ArcTan(t int32) int32 {
	a := -((t * t) >> 14)
	b := (0xa9*a)>>14 + 0x390
	b = (b*a)>>14 + 0x91c
	b = (b*a)>>14 + 0xfb6
	b = (b*a)>>14 + 0x16aa
	b = (b*a)>>14 + 0x2081
	b = (b*a)>>14 + 0x3651
	b = (b*a)>>14 + 0xa2f9
	return (t * b) >> 16
}

// Atan2 returns the angle of the vector (x, y) in turns, counter clockwise
// from the positive x axis, in the range (-1/4, 3/4].
func Atan2(x, y fixed.Int24_8) fixed.Int16_16 {
	if x == 0 && y == 0 {
		return 0
	}
	x1, y1 := x.Abs(), y.Abs()

	var atan fixed.Int16_16
	if x1 >= y1 {
		// y keeps its sign to cover the first and fourth octant
		ratio := int32((int64(y) << 14) / int64(x1))
		atan = fixed.FromShifted[fixed.Int16_16](int64(ArcTan(ratio)), 16)
	} else {
		ratio := int32((int64(x1) << 14) / int64(y1))
		atan = fixed.Int16_16F(0.25) - fixed.FromShifted[fixed.Int16_16](int64(ArcTan(ratio)), 16)
		if y < 0 {
			atan = -atan
		}
	}
	if x >= 0 {
		return atan
	}
	return fixed.Int16_16F(0.5) - atan
}

// PointToDist returns the length of (x, y).  The point is folded into the
// first octant, its angle looked up with ArcTan and the distance recovered as
// x/cos(angle).
func PointToDist(x, y fixed.Int16_16) fixed.Int16_16 {
	x, y = x.Abs(), y.Abs()
	if y > x {
		x, y = y, x
	}
	if x == 0 {
		return 0
	}
	ratio := int32(y.Div(x)) >> 2 // .14
	angle := fixed.UInt0_16(ArcTan(ratio))
	return x.Div(Cos(angle))
}
