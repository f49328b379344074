// Package texture provides palette indexed images as used for Mode 7 floor
// maps and tiled backgrounds.
package texture

import (
	"image"
	"image/color"

	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/framebuffer"
)

// Texture stores 8 bit palette indices with a BGR555 palette (CI8).
type Texture struct {
	Pix     []uint8
	Stride  int
	Rect    image.Rectangle
	Palette []framebuffer.BGR555

	model color.Palette
}

func New(r image.Rectangle, palette []framebuffer.BGR555) *Texture {
	return &Texture{
		Pix:     make([]uint8, r.Dx()*r.Dy()),
		Stride:  r.Dx(),
		Rect:    r,
		Palette: palette,
	}
}

func (p *Texture) ColorModel() color.Model {
	if len(p.model) != len(p.Palette) {
		p.model = make(color.Palette, len(p.Palette))
		for i, c := range p.Palette {
			p.model[i] = c
		}
	}
	return p.model
}

func (p *Texture) Bounds() image.Rectangle { return p.Rect }

func (p *Texture) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

func (p *Texture) At(x, y int) color.Color {
	if len(p.Palette) == 0 {
		return color.Black
	}
	return p.Palette[int(p.ColorIndexAt(x, y))%len(p.Palette)]
}

func (p *Texture) Set(x, y int, c color.Color) {
	if len(p.Palette) == 0 {
		return
	}
	p.SetColorIndex(x, y, uint8(p.ColorModel().(color.Palette).Index(c)))
}

func (p *Texture) ColorIndexAt(x, y int) uint8 {
	if !(image.Point{x, y}.In(p.Rect)) {
		return 0
	}
	return p.Pix[p.PixOffset(x, y)]
}

func (p *Texture) SetColorIndex(x, y int, index uint8) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = index
}

// SubImage returns the part of p visible through r, sharing pixels.
func (p *Texture) SubImage(r image.Rectangle) *Texture {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &Texture{Palette: p.Palette}
	}
	return &Texture{
		Pix:     p.Pix[p.PixOffset(r.Min.X, r.Min.Y):],
		Stride:  p.Stride,
		Rect:    r,
		Palette: p.Palette,
	}
}

// Sample returns the palette index at texture coordinate (u, v).  The texture
// repeats in both directions.
func (p *Texture) Sample(u, v fixed.Int24_8) uint8 {
	w, h := p.Rect.Dx(), p.Rect.Dy()
	x := wrap(u.Floor(), w)
	y := wrap(v.Floor(), h)
	return p.Pix[y*p.Stride+x]
}

func wrap(i, n int) int {
	if n&(n-1) == 0 {
		return i & (n - 1)
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Checker returns a size×size texture of squares with the given edge length,
// alternating between the first two palette entries.
func Checker(size, cell int, palette []framebuffer.BGR555) *Texture {
	t := New(image.Rect(0, 0, size, size), palette)
	for y := range size {
		for x := range size {
			t.Pix[y*t.Stride+x] = uint8((x/cell + y/cell) & 1)
		}
	}
	return t
}
