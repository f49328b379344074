package raster

import (
	"github.com/clktmr/agbgfx/bsp"
	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/framebuffer"
)

// Wall draws the visible columns of w centered on the horizon in the middle
// of dst.  The half height is interpolated linearly in screen space.
func Wall[P framebuffer.Pixel](dst *framebuffer.Buffer[P], w *bsp.Wall, c P) {
	n := int64(w.X1 - w.X0)
	if n <= 0 {
		return
	}
	horizon := fixed.Int24_8U(dst.Height / 2)
	dh := int64(w.H1 - w.H0)
	for x := max(w.X0, 0); x < min(w.X1, dst.Width); x++ {
		h := w.H0 + fixed.Int24_8(dh*int64(x-w.X0)/n)
		VLine(dst, x, horizon-h, horizon+h, c)
	}
}
