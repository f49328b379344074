package oam

import (
	"image"
	"testing"

	"github.com/clktmr/agbgfx/framebuffer"
	"github.com/clktmr/agbgfx/texture"
)

func TestSize(t *testing.T) {
	tests := map[string]struct {
		shape    Shape
		size     uint16
		expected image.Point
	}{
		"square": {Square, 0, image.Pt(8, 8)},
		"wide":   {Wide, 2, image.Pt(32, 16)},
		"tall":   {Tall, 3, image.Pt(32, 64)},
		"bad":    {3, 1, image.Point{}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			o := NewObject(0, 0, tc.shape, tc.size)
			if s := o.Size(); s != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, s)
			}
		})
	}
}

func TestAttributes(t *testing.T) {
	o := NewObject(16, 32, Square, 1)
	o.SetAffine(5)
	o.SetTile(3)
	o.SetPos(20, 40)
	if i, ok := o.Affine(); i != 5 || !ok {
		t.Fatalf("expected 5 true, got %v %v", i, ok)
	}
	if x, y := o.Pos(); x != 20 || y != 40 {
		t.Fatalf("expected 20 40, got %v %v", x, y)
	}
	if o.Tile() != 3 || o.Size() != image.Pt(16, 16) {
		t.Fatalf("unexpected attributes %#v", o.Attr)
	}
	o.SetAffine(-1)
	if _, ok := o.Affine(); ok || o.Attr[1] != 0x4000|20 {
		t.Fatalf("unexpected attributes %#v", o.Attr)
	}
}

// sprite returns an 8x8 red sprite with a transparent top left and a blue
// top right pixel.
func sprite() *texture.Texture {
	tex := texture.New(image.Rect(0, 0, 8, 8), []framebuffer.BGR555{framebuffer.Black, framebuffer.Red, framebuffer.Blue})
	for i := range tex.Pix {
		tex.Pix[i] = 1
	}
	tex.Pix[0] = 0
	tex.Pix[7] = 2
	return tex
}

func TestRender(t *testing.T) {
	plain := texture.New(image.Rect(0, 0, 8, 8), []framebuffer.BGR555{framebuffer.Black, framebuffer.Yellow})
	for i := range plain.Pix {
		plain.Pix[i] = 1
	}
	sprites := []*texture.Texture{sprite(), plain}

	tests := map[string]struct {
		setup    func(m *Memory)
		x, y     int
		expected framebuffer.BGR555
	}{
		"transparent": {func(m *Memory) {}, 10, 20, framebuffer.Green},
		"opaque":      {func(m *Memory) {}, 11, 21, framebuffer.Red},
		"corner":      {func(m *Memory) {}, 17, 20, framebuffer.Blue},
		"outside":     {func(m *Memory) {}, 18, 20, framebuffer.Green},
		"below": {func(m *Memory) {
			*m.Object(1) = NewObject(10, 20, Square, 0)
			m.Object(1).SetTile(1)
		}, 11, 21, framebuffer.Red},
		"behind": {func(m *Memory) {
			*m.Object(1) = NewObject(10, 20, Square, 0)
			m.Object(1).SetTile(1)
		}, 10, 20, framebuffer.Yellow},
		"flipped": {func(m *Memory) {
			m.Object(0).SetAffine(2)
			m.Transform(2).PA = -0x100
			m.Transform(2).PD = 0x100
		}, 11, 20, framebuffer.Blue},
		"flippedEdge": {func(m *Memory) {
			m.Object(0).SetAffine(2)
			m.Transform(2).PA = -0x100
			m.Transform(2).PD = 0x100
		}, 10, 20, framebuffer.Green},
		"missingTile": {func(m *Memory) {
			m.Object(0).SetTile(7)
		}, 11, 21, framebuffer.Green},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var m Memory
			*m.Object(0) = NewObject(10, 20, Square, 0)
			tc.setup(&m)
			dst := framebuffer.NewMode3()
			dst.Fill(framebuffer.Green)
			m.Render(dst, 2, sprites)
			if c := dst.Pixel(tc.x, tc.y); c != tc.expected {
				t.Fatalf("expected %#04x, got %#04x", tc.expected, c)
			}
		})
	}
}

func TestRenderClipped(t *testing.T) {
	var m Memory
	*m.Object(0) = NewObject(236, 156, Square, 0)
	dst := framebuffer.NewMode3()
	m.Render(dst, 1, []*texture.Texture{sprite()})
	if c := dst.Pixel(239, 159); c != framebuffer.Red {
		t.Fatalf("expected %#04x, got %#04x", framebuffer.Red, c)
	}
}
