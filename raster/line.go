package raster

import (
	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/framebuffer"
	"github.com/clktmr/agbgfx/linalg"
)

const one = 1 << 16 // of the .16 accumulator

// Line draws the pixels from a to b, both end points included.
func Line[P framebuffer.Pixel](dst *framebuffer.Buffer[P], a, b linalg.Vec2[fixed.Int24_8], c P) {
	x0, y0 := a.X.Floor(), a.Y.Floor()
	x1, y1 := b.X.Floor(), b.Y.Floor()

	switch {
	case y0 == y1:
		dst.HLine(min(x0, x1), max(x0, x1)+1, y0, c)
	case x0 == x1:
		dst.VLine(x0, min(y0, y1), max(y0, y1)+1, c)
	case abs(x1-x0) >= abs(y1-y0):
		if x0 > x1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		line(x0, y0, x1, y1, dst.Width, func(x, y int) {
			if y >= 0 && y < dst.Height {
				dst.Pix[dst.PixOffset(x, y)] = c
			}
		})
	default:
		if y0 > y1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		line(y0, x0, y1, x1, dst.Height, func(y, x int) {
			if x >= 0 && x < dst.Width {
				dst.Pix[dst.PixOffset(x, y)] = c
			}
		})
	}
}

// line steps the major axis from u0 to u1 and the minor axis with a .16
// accumulator holding the fractional position within the current pixel.
// Columns outside [0, limit) are skipped without stepping.
func line(u0, v0, u1, v1, limit int, plot func(u, v int)) {
	slope := int64(v1-v0) * one / int64(u1-u0)
	frac := int64(one / 2)

	u, v := u0, v0
	if u < 0 {
		u = 0
		var carry int
		carry, frac = carryOut(frac + slope*int64(u-u0))
		v += carry
	}
	for end := min(u1, limit-1); u <= end; u++ {
		plot(u, v)
		var carry int
		carry, frac = carryOut(frac + slope)
		v += carry
	}
}

// carryOut brings frac back into [0, 1] and returns the number of whole
// pixels moved.
func carryOut(frac int64) (int, int64) {
	switch {
	case frac > one:
		n := (frac - 1) >> 16
		return int(n), frac - n<<16
	case frac < 0:
		n := (one - 1 - frac) >> 16
		return -int(n), frac + n<<16
	}
	return 0, frac
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
