// Package framebuffer provides linear pixel buffers in the layouts of the
// console's bitmap video modes, together with adapters to the image and
// embeddedgo/display/pix interfaces.
package framebuffer

import (
	"image"
)

// Screen size of the console.
const (
	Width  = 240
	Height = 160
)

type Pixel interface {
	~uint8 | ~uint16
}

// Buffer is a linear array of pixels, row after row without padding.
type Buffer[P Pixel] struct {
	Pix           []P
	Width, Height int
}

func NewBuffer[P Pixel](width, height int) *Buffer[P] {
	return &Buffer[P]{
		Pix:    make([]P, width*height),
		Width:  width,
		Height: height,
	}
}

// NewMode3 returns a full screen 15 bit buffer.
func NewMode3() *Buffer[BGR555] { return NewBuffer[BGR555](Width, Height) }

// NewMode5 returns the reduced size 15 bit buffer.
func NewMode5() *Buffer[BGR555] { return NewBuffer[BGR555](160, 128) }

func (b *Buffer[P]) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

func (b *Buffer[P]) PixOffset(x, y int) int {
	return y*b.Width + x
}

func (b *Buffer[P]) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

// Pixel returns the pixel at (x, y), zero outside of the buffer.
func (b *Buffer[P]) Pixel(x, y int) P {
	if !b.inside(x, y) {
		return 0
	}
	return b.Pix[b.PixOffset(x, y)]
}

// SetPixel sets the pixel at (x, y).  Points outside of the buffer are
// ignored.
func (b *Buffer[P]) SetPixel(x, y int, c P) {
	if !b.inside(x, y) {
		return
	}
	b.Pix[b.PixOffset(x, y)] = c
}

func (b *Buffer[P]) Fill(c P) {
	for i := range b.Pix {
		b.Pix[i] = c
	}
}

// FillRect fills r clipped to the buffer.
func (b *Buffer[P]) FillRect(r image.Rectangle, c P) {
	r = r.Intersect(b.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := b.Pix[b.PixOffset(r.Min.X, y):b.PixOffset(r.Max.X, y)]
		for i := range row {
			row[i] = c
		}
	}
}

// HLine draws the pixels [x0, x1) of row y, clipped to the buffer.
func (b *Buffer[P]) HLine(x0, x1, y int, c P) {
	if y < 0 || y >= b.Height {
		return
	}
	x0, x1 = max(x0, 0), min(x1, b.Width)
	if x0 >= x1 {
		return
	}
	row := b.Pix[b.PixOffset(x0, y):b.PixOffset(x1, y)]
	for i := range row {
		row[i] = c
	}
}

// VLine draws the pixels [y0, y1) of column x, clipped to the buffer.
func (b *Buffer[P]) VLine(x, y0, y1 int, c P) {
	if x < 0 || x >= b.Width {
		return
	}
	y0, y1 = max(y0, 0), min(y1, b.Height)
	for i := b.PixOffset(x, y0); y0 < y1; y0++ {
		b.Pix[i] = c
		i += b.Width
	}
}

// Copy copies src into b.  Both must have the same size.
func (b *Buffer[P]) Copy(src *Buffer[P]) {
	copy(b.Pix, src.Pix)
}
