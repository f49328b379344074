package raster

import (
	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/framebuffer"
	"github.com/clktmr/agbgfx/linalg"
)

// cross returns the z component of a × b as .16 value.
func cross(a, b linalg.Vec2[fixed.Int24_8]) int64 {
	return int64(a.X)*int64(b.Y) - int64(a.Y)*int64(b.X)
}

// Triangle fills the pixels whose centers lie strictly inside the triangle v.
// Triangles are front facing if they turn clockwise on screen, others are
// culled.  Pixels centered exactly on an edge are never drawn, so triangles
// sharing an edge never draw a pixel twice.
func Triangle[P framebuffer.Pixel](dst *framebuffer.Buffer[P], v [3]linalg.Vec2[fixed.Int24_8], c P) {
	e := [3]linalg.Vec2[fixed.Int24_8]{
		v[1].Sub(v[0]),
		v[2].Sub(v[1]),
		v[0].Sub(v[2]),
	}
	if cross(e[0], e[1]) <= 0 {
		return
	}

	minX, maxX := min(v[0].X, v[1].X, v[2].X), max(v[0].X, v[1].X, v[2].X)
	minY, maxY := min(v[0].Y, v[1].Y, v[2].Y), max(v[0].Y, v[1].Y, v[2].Y)
	x0, y0 := max((minX-half).Ceil(), 0), max((minY-half).Ceil(), 0)
	x1, y1 := min((maxX-half).Floor()+1, dst.Width), min((maxY-half).Floor()+1, dst.Height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	// Edge functions at the first pixel center and their increments.
	p := linalg.V2(fixed.Int24_8U(x0)+half, fixed.Int24_8U(y0)+half)
	var row, dx, dy [3]int64
	for i := range e {
		row[i] = cross(e[i], p.Sub(v[i]))
		dx[i] = -int64(e[i].Y) << 8
		dy[i] = int64(e[i].X) << 8
	}

	for y := y0; y < y1; y++ {
		f := row
		pix := dst.Pix[dst.PixOffset(x0, y):dst.PixOffset(x1, y)]
		for x := range pix {
			if f[0] > 0 && f[1] > 0 && f[2] > 0 {
				pix[x] = c
			}
			f[0], f[1], f[2] = f[0]+dx[0], f[1]+dx[1], f[2]+dx[2]
		}
		row[0], row[1], row[2] = row[0]+dy[0], row[1]+dy[1], row[2]+dy[2]
	}
}
