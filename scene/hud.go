package scene

import (
	"image/color"

	"github.com/embeddedgo/display/pix"

	"github.com/clktmr/agbgfx/fonts"
	"github.com/clktmr/agbgfx/fonts/basicfont12"
	"github.com/clktmr/agbgfx/fonts/gomono12"
	"github.com/clktmr/agbgfx/fonts/goregular12"
	"github.com/clktmr/agbgfx/framebuffer"
)

// Status is implemented by scenes reporting a line of text per frame.
type Status interface {
	Status() string
}

// Fonts are the faces a HUD can be drawn with.
var Fonts = map[string]func() *fonts.Face{
	"basic":     basicfont12.NewFace,
	"gomono":    gomono12.NewFace,
	"goregular": goregular12.NewFace,
}

// HUD prints the status of a scene into the top left corner of the frame.
type HUD struct {
	Face  *fonts.Face
	Color color.Color

	canvas
}

func NewHUD(face *fonts.Face) *HUD {
	return &HUD{Face: face, Color: color.White}
}

// Render draws the status of s, scenes without status are left alone.
func (h *HUD) Render(dst *framebuffer.Buffer[framebuffer.BGR555], s Scene) {
	st, ok := s.(Status)
	if !ok {
		return
	}
	disp := h.display(dst)
	tw := disp.NewArea(dst.Bounds()).NewTextWriter(h.Face)
	tw.SetColor(h.Color)
	tw.WriteString(st.Status())
	disp.Flush()
}

// canvas draws into frame buffers through pix.
type canvas struct {
	drv  *framebuffer.Driver
	disp *pix.Display
}

func (c *canvas) display(dst *framebuffer.Buffer[framebuffer.BGR555]) *pix.Display {
	if c.drv == nil {
		c.drv = framebuffer.NewDriver(dst)
		c.disp = pix.NewDisplay(c.drv)
	}
	c.drv.SetBuffer(dst)
	return c.disp
}
