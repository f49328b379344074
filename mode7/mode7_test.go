package mode7

import (
	"image"
	"testing"

	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/framebuffer"
	"github.com/clktmr/agbgfx/linalg"
	"github.com/clktmr/agbgfx/texture"
	"github.com/clktmr/agbgfx/trig"
)

var screen = Projector{Width: 240, Height: 160}

func camera(x, y, z int, cos, sin fixed.Int24_8) *Camera {
	return &Camera{
		Pos: linalg.V3(fixed.Int24_8U(x), fixed.Int24_8U(y), fixed.Int24_8U(z)),
		Cos: cos,
		Sin: sin,
	}
}

func TestRow(t *testing.T) {
	tests := map[string]struct {
		cam      *Camera
		vCount   int
		expected linalg.Affine2D
	}{
		"forward": {
			camera(0, 0, 32, 256, 0), 100,
			linalg.Affine2D{A: 410, C: 0, X: -49140, Y: -65520},
		},
		"quarter turn": {
			camera(512, 512, 32, 0, 256), 120,
			linalg.Affine2D{A: 0, C: 205, X: 163832, Y: 106502},
		},
		"diagonal horizon": {
			camera(0, 0, 32, 181, 181), 80,
			linalg.Affine2D{A: 5792, C: 5792, X: 231680, Y: -1621760},
		},
		"bottom": {
			camera(0, 0, 10, 256, 0), 159,
			linalg.Affine2D{A: 32, C: 0, X: -3885, Y: -5180},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if row := screen.Row(tc.cam, tc.vCount); row != tc.expected {
				t.Fatalf("expected %+v, got %+v", tc.expected, row)
			}
		})
	}
}

func TestLambdaHorizon(t *testing.T) {
	for _, z := range []int{0, 1, 32, 250} {
		cam := camera(0, 0, z, 256, 0)
		expected := int64(cam.Pos.Z) * trig.ReciprocalSaturation >> 12
		if lambda := screen.Lambda(cam, 80); lambda != expected {
			t.Fatalf("expected %v, got %v", expected, lambda)
		}
	}

	// Further down the screen the floor gets closer.
	cam := camera(0, 0, 32, 256, 0)
	for v := 81; v < 160; v++ {
		if screen.Lambda(cam, v) > screen.Lambda(cam, v-1) {
			t.Fatalf("lambda increases at line %d", v)
		}
	}
}

func TestHBlank(t *testing.T) {
	var latch Latch[Camera]
	var rec Recorder
	h := HBlank{Camera: &latch, Projector: screen, Sink: &rec}

	cam := camera(10, 20, 30, 256, 0)
	latch.Store(*cam)

	tests := map[string]struct {
		vCount int
		row    int // -1 if ignored
	}{
		"top":          {0, -1},
		"above":        {78, -1},
		"first":        {79, 80},
		"middle":       {100, 101},
		"last":         {159, 160},
		"vblank":       {160, -1},
		"vblank later": {227, -1},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rec.Reset()
			h.Handle(tc.vCount)
			if tc.row == -1 {
				if len(rec.Calls) != 0 {
					t.Fatalf("expected no call, got %v", rec.Calls)
				}
				return
			}
			if len(rec.Calls) != 1 {
				t.Fatalf("expected one call, got %v", rec.Calls)
			}
			call := rec.Calls[0]
			if call.Row != tc.row || call.Transform != screen.Row(cam, tc.row) {
				t.Fatalf("expected row %d, got %+v", tc.row, call)
			}
		})
	}
}

func TestFrame(t *testing.T) {
	cam := camera(10, 20, 30, 181, -181)
	regs := NewRegisters(160)
	screen.Frame(cam, regs)

	var rec Recorder
	h := HBlank{Camera: &Latch[Camera]{}, Projector: screen, Sink: &rec}
	h.Camera.Store(*cam)
	for vCount := range 228 {
		h.Handle(vCount)
	}

	for row := range 160 {
		tf, ok := regs.Row(row)
		if ok != (row >= 80) {
			t.Fatalf("row %d: expected set %v, got %v", row, row >= 80, ok)
		}
		if ok && tf != screen.Row(cam, row) {
			t.Fatalf("row %d: expected %+v, got %+v", row, screen.Row(cam, row), tf)
		}
	}
	// The handler additionally prepares the first line after the screen.
	if len(rec.Calls) != 81 || rec.Calls[80].Row != 160 {
		t.Fatalf("unexpected calls %v", rec.Calls)
	}

	regs.Reset()
	if _, ok := regs.Row(100); ok {
		t.Fatal("row still set after reset")
	}
}

func TestLatch(t *testing.T) {
	var l Latch[int]
	if v, updated := l.Load(); v != 0 || updated {
		t.Fatalf("expected (0, false), got (%v, %v)", v, updated)
	}

	l.Store(1)
	if v, updated := l.Load(); v != 1 || !updated {
		t.Fatalf("expected (1, true), got (%v, %v)", v, updated)
	}
	if v, updated := l.Load(); v != 1 || updated {
		t.Fatalf("expected (1, false), got (%v, %v)", v, updated)
	}

	l.Store(2)
	l.Store(3)
	if l.Get() != 3 {
		t.Fatalf("expected 3, got %v", l.Get())
	}
	if v, updated := l.Load(); v != 3 || !updated {
		t.Fatalf("expected (3, true), got (%v, %v)", v, updated)
	}
	l.Store(4)
	if v, _ := l.Load(); v != 4 {
		t.Fatalf("expected 4, got %v", v)
	}
}

func TestBackground(t *testing.T) {
	palette := []framebuffer.BGR555{framebuffer.Red, framebuffer.White}
	tex := texture.New(image.Rect(0, 0, 2, 2), palette)
	tex.Pix = []uint8{0, 1, 1, 0}

	regs := NewRegisters(4)
	for row := 2; row < 4; row++ {
		regs.SetTransform(row, linalg.Affine2D{
			A: fixed.Int8_8U(1),
			X: fixed.Int24_8F(0.5),
			Y: fixed.Int24_8U(row),
		})
	}
	regs.SetTransform(4, linalg.Affine2D{})

	dst := framebuffer.NewBuffer[framebuffer.BGR555](4, 4)
	bg := Background{Texture: tex, Sky: framebuffer.SkyBlue}
	bg.Render(dst, regs)

	R, W, S := framebuffer.Red, framebuffer.White, framebuffer.SkyBlue
	expected := []framebuffer.BGR555{
		S, S, S, S,
		S, S, S, S,
		R, W, R, W,
		W, R, W, R,
	}
	for i := range expected {
		if dst.Pix[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, dst.Pix)
		}
	}
}
