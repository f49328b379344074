// Package raster draws lines, triangles and walls into a framebuffer.
//
// Coordinates are fixed.Int24_8 in pixels, pixel (x, y) has its center at
// (x+½, y+½).  Everything is clipped to the destination buffer.
package raster

import (
	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/framebuffer"
)

const half = fixed.Int24_8(1 << 7)

// span returns the pixels whose centers lie in [a, b).
func span(a, b fixed.Int24_8) (first, end int) {
	return (a - half).Ceil(), (b - half).Ceil()
}

// HLine draws the pixels of row y whose centers lie in [x0, x1).
func HLine[P framebuffer.Pixel](dst *framebuffer.Buffer[P], x0, x1 fixed.Int24_8, y int, c P) {
	first, end := span(x0, x1)
	dst.HLine(first, end, y, c)
}

// VLine draws the pixels of column x whose centers lie in [y0, y1).
func VLine[P framebuffer.Pixel](dst *framebuffer.Buffer[P], x int, y0, y1 fixed.Int24_8, c P) {
	first, end := span(y0, y1)
	dst.VLine(x, first, end, c)
}
