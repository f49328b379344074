package framebuffer

import (
	"image"
	"image/color"
)

// RGB is a draw.Image view of a 15 bit buffer.
type RGB struct {
	*Buffer[BGR555]
}

func (p RGB) ColorModel() color.Model { return BGR555Model }

func (p RGB) At(x, y int) color.Color {
	return p.Pixel(x, y)
}

func (p RGB) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, toBGR555(c))
}

// Indexed is a draw.Image view of an 8 bit palette indexed buffer, the
// layout of Mode 4.
type Indexed struct {
	*Buffer[uint8]
	Palette color.Palette
}

// NewMode4 returns a full screen palette indexed buffer.
func NewMode4(palette color.Palette) *Indexed {
	return &Indexed{NewBuffer[uint8](Width, Height), palette}
}

func (p *Indexed) ColorModel() color.Model { return p.Palette }

func (p *Indexed) At(x, y int) color.Color {
	if len(p.Palette) == 0 {
		return nil
	}
	idx := int(p.Pixel(x, y))
	if idx >= len(p.Palette) {
		return p.Palette[0]
	}
	return p.Palette[idx]
}

func (p *Indexed) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, uint8(p.Palette.Index(c)))
}

// ToRGB expands p into the 15 bit buffer dst using p's palette.
func (p *Indexed) ToRGB(dst *Buffer[BGR555]) {
	lut := make([]BGR555, 256)
	for i, c := range p.Palette {
		lut[i] = toBGR555(c)
	}
	for i, idx := range p.Pix {
		dst.Pix[i] = lut[idx]
	}
}

// NRGBA converts b into a standard library image, e.g. for encoding.
func NRGBA(b *Buffer[BGR555]) *image.NRGBA {
	img := image.NewNRGBA(b.Bounds())
	for i, c := range b.Pix {
		img.Pix[4*i+0] = c.R() | c.R()>>5
		img.Pix[4*i+1] = c.G() | c.G()>>5
		img.Pix[4*i+2] = c.B() | c.B()>>5
		img.Pix[4*i+3] = 0xff
	}
	return img
}
