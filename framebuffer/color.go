package framebuffer

import (
	"image/color"
)

// BGR555 is a 15 bit colour as stored in video memory, red in the lowest
// bits: 0bbbbbgggggrrrrr.
type BGR555 uint16

// FromRGB returns the BGR555 colour closest to the 8 bit channels r, g, b.
func FromRGB(r, g, b uint8) BGR555 {
	return BGR555(r>>3) | BGR555(g>>3)<<5 | BGR555(b>>3)<<10
}

func (c BGR555) R() uint8 { return uint8(c&0x1f) << 3 }
func (c BGR555) G() uint8 { return uint8(c>>5&0x1f) << 3 }
func (c BGR555) B() uint8 { return uint8(c>>10&0x1f) << 3 }

func expand5(v uint16) uint32 {
	v &= 0x1f
	return uint32(v<<11 | v<<6 | v<<1 | v>>4)
}

func (c BGR555) RGBA() (r, g, b, a uint32) {
	return expand5(uint16(c)), expand5(uint16(c >> 5)), expand5(uint16(c >> 10)), 0xffff
}

var BGR555Model color.Model = color.ModelFunc(bgr555Model)

func bgr555Model(c color.Color) color.Color {
	if _, ok := c.(BGR555); ok {
		return c
	}
	return toBGR555(c)
}

func toBGR555(c color.Color) BGR555 {
	if c, ok := c.(BGR555); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return BGR555(r>>11) | BGR555(g>>11)<<5 | BGR555(b>>11)<<10
}

// Some colours used by the demo scenes.
const (
	Black     BGR555 = 0
	White     BGR555 = 0x7fff
	Red       BGR555 = 0x001f
	Orange    BGR555 = 0x021f
	Yellow    BGR555 = 0x03ff
	Green     BGR555 = 0x03e0
	DarkGreen BGR555 = 0x0140
	Blue      BGR555 = 0x7c00
	SkyBlue   BGR555 = 0x7ee6
	Pink      BGR555 = 0x7d1f
	LightGrey BGR555 = 0x5ad6
	MidGrey   BGR555 = 0x3def
	DarkGrey  BGR555 = 0x2108
)
