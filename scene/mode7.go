package scene

import (
	"fmt"
	"image"

	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/framebuffer"
	"github.com/clktmr/agbgfx/input"
	"github.com/clktmr/agbgfx/linalg"
	"github.com/clktmr/agbgfx/mode7"
	"github.com/clktmr/agbgfx/oam"
	"github.com/clktmr/agbgfx/pose"
	"github.com/clktmr/agbgfx/texture"
)

// Scanlines per frame including the vertical blank.
const vTotal = 228

// Position of the heading marker, bottom right of the screen.
const markerX, markerY = framebuffer.Width - 24, framebuffer.Height - 24

// Arrow returns a 16x16 sprite of an arrow pointing up, red head on a white
// shaft.
func Arrow() *texture.Texture {
	tex := texture.New(image.Rect(0, 0, 16, 16), []framebuffer.BGR555{framebuffer.Black, framebuffer.White, framebuffer.Red})
	for y := range 16 {
		for x := range 16 {
			switch {
			case y < 8 && abs(2*x-15) <= 2*y:
				tex.SetColorIndex(x, y, 2)
			case y >= 8 && x >= 6 && x < 10:
				tex.SetColorIndex(x, y, 1)
			}
		}
	}
	return tex
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Mode7 flies over a textured floor.  Each frame replays the horizontal
// blank handler over all scanlines into simulated affine registers and
// renders the floor through them.  An affine sprite shows the heading.
type Mode7 struct {
	Fly        *pose.FlyController
	Background mode7.Background

	Objects oam.Memory
	Sprites []*texture.Texture

	latch  mode7.Latch[mode7.Camera]
	hblank mode7.HBlank
	regs   *mode7.Registers
}

func NewMode7(floor *texture.Texture) *Mode7 {
	s := &Mode7{
		Fly: pose.NewFlyController(linalg.V3(0, 0, fixed.Int24_8U(32))),
		Background: mode7.Background{
			Texture: floor,
			Sky:     framebuffer.SkyBlue,
		},
	}
	s.latch.Store(s.Fly.Snapshot())

	var alloc oam.Allocator
	marker, _ := alloc.Alloc(1)
	o := s.Objects.Object(marker)
	*o = oam.NewObject(markerX, markerY, oam.Square, 1)
	o.SetAffine(0)
	o.SetTile(len(s.Sprites))
	s.Sprites = append(s.Sprites, Arrow())
	return s
}

func (s *Mode7) Update(k *input.Keypad) {
	s.Fly.Update(k)
	s.latch.Store(s.Fly.Snapshot())
}

func (s *Mode7) Status() string {
	p := s.Fly.Pos
	return fmt.Sprintf("x %v y %v z %v", p.X, p.Y, p.Z)
}

func (s *Mode7) Render(dst *framebuffer.Buffer[framebuffer.BGR555]) error {
	proj := mode7.Projector{Width: dst.Width, Height: dst.Height}
	if s.regs == nil || proj != s.hblank.Projector {
		s.regs = mode7.NewRegisters(dst.Height)
		s.hblank = mode7.HBlank{Camera: &s.latch, Projector: proj, Sink: s.regs}
	}

	s.regs.Reset()
	for vCount := range vTotal {
		s.hblank.Handle(vCount)
	}
	s.Background.Render(dst, s.regs)

	cam := s.Fly.Snapshot()
	s.Objects.Transform(0).Set(linalg.Affine2D{
		A: fixed.Int8_8(cam.Cos), B: -fixed.Int8_8(cam.Sin),
		C: fixed.Int8_8(cam.Sin), D: fixed.Int8_8(cam.Cos),
	})
	s.Objects.Render(dst, 1, s.Sprites)
	return nil
}
