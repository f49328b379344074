package oam

import (
	"image"

	"github.com/clktmr/agbgfx/framebuffer"
	"github.com/clktmr/agbgfx/texture"
)

const affineFlag = 1 << 8

// Object dimensions in pixels, indexed by shape and size.
var dims = [3][4]image.Point{
	Square: {{8, 8}, {16, 16}, {32, 32}, {64, 64}},
	Wide:   {{16, 8}, {32, 8}, {32, 16}, {64, 32}},
	Tall:   {{8, 16}, {8, 32}, {16, 32}, {32, 64}},
}

func (o *Object) Shape() Shape { return Shape(o.Attr[0] >> 14) }

// Size returns the dimensions of the object, or zero for the prohibited
// fourth shape.
func (o *Object) Size() image.Point {
	s := o.Shape()
	if s > Tall {
		return image.Point{}
	}
	return dims[s][o.Attr[1]>>14]
}

// SetAffine makes the object use transform i, or none if i is negative.
func (o *Object) SetAffine(i int) {
	o.Attr[1] &^= 0x1f << 9
	if i < 0 {
		o.Attr[0] &^= affineFlag
		return
	}
	o.Attr[0] |= affineFlag
	o.Attr[1] |= uint16(i&0x1f) << 9
}

func (o *Object) Affine() (i int, ok bool) {
	return int(o.Attr[1] >> 9 & 0x1f), o.Attr[0]&affineFlag != 0
}

func (o *Object) SetTile(i int) { o.Attr[2] = o.Attr[2]&^0x3ff | uint16(i)&0x3ff }

func (o *Object) Tile() int { return int(o.Attr[2] & 0x3ff) }

var identity = Transform{PA: 0x100, PD: 0x100}

// Render draws the objects [0, n) into dst.  Lower indices are drawn on top.
// The tile of an object selects its image from sprites, palette index 0 is
// transparent.  Affine objects are transformed around their center, their
// bounding box is not doubled.
func (m *Memory) Render(dst *framebuffer.Buffer[framebuffer.BGR555], n int, sprites []*texture.Texture) {
	for i := n - 1; i >= 0; i-- {
		o := m.Object(i)
		tile := o.Tile()
		if tile >= len(sprites) || sprites[tile] == nil {
			continue
		}
		tf := &identity
		if idx, ok := o.Affine(); ok {
			tf = m.Transform(idx)
		}
		drawObject(dst, o, tf, sprites[tile])
	}
}

func drawObject(dst *framebuffer.Buffer[framebuffer.BGR555], o *Object, tf *Transform, tex *texture.Texture) {
	size := o.Size()
	pos := image.Pt(o.Pos())
	cx, cy := pos.X+size.X/2, pos.Y+size.Y/2
	r := image.Rectangle{pos, pos.Add(size)}.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dy := int32(y - cy)
		for x := r.Min.X; x < r.Max.X; x++ {
			dx := int32(x - cx)
			u := int((int32(tf.PA)*dx+int32(tf.PB)*dy)>>8) + size.X/2
			v := int((int32(tf.PC)*dx+int32(tf.PD)*dy)>>8) + size.Y/2
			if u < 0 || v < 0 || u >= size.X || v >= size.Y {
				continue
			}
			idx := int(tex.ColorIndexAt(tex.Rect.Min.X+u, tex.Rect.Min.Y+v))
			if idx == 0 || idx >= len(tex.Palette) {
				continue
			}
			dst.Pix[dst.PixOffset(x, y)] = tex.Palette[idx]
		}
	}
}
