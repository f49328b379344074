package framebuffer

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// Quantize returns a palette of at most n BGR555 colours representing img.
func Quantize(img image.Image, n int) color.Palette {
	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make([]color.Color, 0, n), img)

	// Distinct 24 bit colours may collapse to the same 15 bit colour.
	palette := make(color.Palette, 0, len(p))
	seen := make(map[BGR555]bool, len(p))
	for _, c := range p {
		c := toBGR555(c)
		if seen[c] {
			continue
		}
		seen[c] = true
		palette = append(palette, c)
	}
	return palette
}

// Paletted converts img into a Mode 4 buffer with a palette of at most n
// colours, optionally with Floyd-Steinberg error diffusion.
func Paletted(img image.Image, n int, dither bool) *Indexed {
	dst := &Indexed{
		Buffer:  NewBuffer[uint8](img.Bounds().Dx(), img.Bounds().Dy()),
		Palette: Quantize(img, n),
	}
	var d draw.Drawer = draw.Src
	if dither {
		d = draw.FloydSteinberg
	}
	d.Draw(dst, dst.Bounds(), img, img.Bounds().Min)
	return dst
}
