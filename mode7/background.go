package mode7

import (
	"github.com/clktmr/agbgfx/framebuffer"
	"github.com/clktmr/agbgfx/texture"
)

// Background renders a repeating texture through per scanline transforms,
// the way the display draws an affine background.
type Background struct {
	Texture *texture.Texture
	Sky     framebuffer.BGR555 // rows without transform
}

func (bg *Background) Render(dst *framebuffer.Buffer[framebuffer.BGR555], regs *Registers) {
	palette := bg.Texture.Palette
	for y := range dst.Height {
		t, ok := regs.Row(y)
		if !ok {
			dst.HLine(0, dst.Width, y, bg.Sky)
			continue
		}
		row := dst.Pix[dst.PixOffset(0, y):dst.PixOffset(dst.Width, y)]
		for x := range row {
			idx := int(bg.Texture.Sample(t.At(x)))
			if idx < len(palette) {
				row[x] = palette[idx]
			} else {
				row[x] = bg.Sky
			}
		}
	}
}
