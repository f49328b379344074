package bsp

import (
	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/linalg"
	"github.com/clktmr/agbgfx/trig"
)

// nearClip is the smallest depth used for projection.
const nearClip = fixed.Int20_12(1 << 12 / 64)

// View is the camera a level is walked with.  A heading of zero looks along
// +y, positive headings turn counter clockwise.
type View struct {
	Pos      linalg.Vec2[fixed.Int24_8]
	Cos, Sin fixed.Int16_16
	Width    int // screen width in pixels
}

func NewView(pos linalg.Vec2[fixed.Int24_8], heading fixed.UInt0_16, width int) *View {
	return &View{
		Pos:   pos,
		Cos:   trig.Cos(heading),
		Sin:   trig.Sin(heading),
		Width: width,
	}
}

// ToCamera transforms a world space point into camera space.
func (v *View) ToCamera(p linalg.Vec2[fixed.Int24_8]) linalg.Vec2[fixed.Int24_8] {
	rel := p.Sub(v.Pos)
	x := fixed.MulWide(rel.X, v.Cos).Add(fixed.MulWide(rel.Y, v.Sin))
	y := fixed.MulWide(rel.Y, v.Cos).Sub(fixed.MulWide(rel.X, v.Sin))
	return linalg.Vec2[fixed.Int24_8]{
		X: fixed.Rescale[fixed.Int24_8](x),
		Y: fixed.Rescale[fixed.Int24_8](y),
	}
}

// Project returns the screen column of a camera space point and its inverse
// depth.  The horizontal field of view is fixed to tan(fov/2) = 1/2.
func (v *View) Project(p linalg.Vec2[fixed.Int24_8]) (x fixed.Int24_8, invDepth fixed.Int20_12) {
	invDepth = fixed.Int20_12U(2).Div(max(nearClip, fixed.Cast[fixed.Int20_12](p.Y)))
	clip := fixed.Rescale[fixed.Int20_12](fixed.MulWide(p.X, invDepth))
	half := int64(v.Width / 2)
	x = fixed.Int24_8(int64(clip)*half>>4) + fixed.Int24_8U(int(half))
	return x, invDepth
}

// Height returns the half height in pixels of a wall at the given inverse
// depth.
func (v *View) Height(invDepth fixed.Int20_12) fixed.Int24_8 {
	return fixed.Int24_8(int64(invDepth) * int64(v.Width/8) >> 4)
}
