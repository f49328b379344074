package scene

import (
	"errors"
	"image"
	"testing"

	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/framebuffer"
	"github.com/clktmr/agbgfx/input"
	"github.com/clktmr/agbgfx/level"
	"github.com/clktmr/agbgfx/texture"
)

func TestNew(t *testing.T) {
	for _, name := range Names {
		s, err := New(name, Assets{})
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if err := s.Render(framebuffer.NewMode3()); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	if _, err := New("doom", Assets{}); !errors.Is(err, ErrUnknown) {
		t.Fatalf("expected %v, got %v", ErrUnknown, err)
	}
}

func TestQuadrants(t *testing.T) {
	lvl := Quadrants()
	if err := level.Validate(lvl); err != nil {
		t.Fatal(err)
	}
	if len(lvl.SubSectors) != 4 || len(lvl.Segs) != 12 {
		t.Fatalf("expected 4 subsectors and 12 segs, got %d and %d", len(lvl.SubSectors), len(lvl.Segs))
	}
	if len(lvl.Nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(lvl.Nodes))
	}
	if ss := lvl.SubSectors[1]; ss.First != 2 || ss.Count != 6 {
		t.Fatalf("expected segs [2, 8), got [%d, %d)", ss.First, ss.First+ss.Count)
	}
}

func TestBSP(t *testing.T) {
	s := NewBSP(Quadrants())
	dst := framebuffer.NewMode3()
	if err := s.Render(dst); err != nil {
		t.Fatal(err)
	}
	if s.Stats().Walls == 0 {
		t.Fatalf("expected walls, got %+v", s.Stats())
	}

	horizon := dst.Height / 2
	tests := map[string]struct {
		x, y     int
		expected framebuffer.BGR555
	}{
		"sky":        {60, 0, framebuffer.SkyBlue},
		"ground":     {60, dst.Height - 1, framebuffer.Black},
		"north west": {60, horizon, WallColors[1]},
		"north east": {200, horizon, WallColors[6]},
		"pillar":     {228, horizon, WallColors[5]},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if c := dst.Pixel(tc.x, tc.y); c != tc.expected {
				t.Fatalf("expected %#04x, got %#04x", tc.expected, c)
			}
		})
	}

	for x := range dst.Width {
		if c := dst.Pixel(x, horizon); c == framebuffer.SkyBlue || c == framebuffer.Black {
			t.Fatalf("expected wall at column %d", x)
		}
	}
}

func TestBSPUpdate(t *testing.T) {
	s := NewBSP(Quadrants())
	var k input.Keypad
	k.Update(input.ButtonUp)
	s.Update(&k)
	if expected := -fixed.Int24_8F(0.875); s.Pose.Pos.Y != expected {
		t.Fatalf("expected %v, got %v", expected, s.Pose.Pos.Y)
	}
}

func TestMode7(t *testing.T) {
	s := NewMode7(texture.Checker(64, 8, []framebuffer.BGR555{framebuffer.DarkGreen, framebuffer.Green}))
	dst := framebuffer.NewMode3()
	if err := s.Render(dst); err != nil {
		t.Fatal(err)
	}
	marker := image.Rect(markerX, markerY, markerX+16, markerY+16)
	for y := range dst.Height {
		for x := range dst.Width {
			if image.Pt(x, y).In(marker) {
				continue
			}
			c := dst.Pixel(x, y)
			floor := c == framebuffer.DarkGreen || c == framebuffer.Green
			if y < dst.Height/2 && c != framebuffer.SkyBlue || y >= dst.Height/2 && !floor {
				t.Fatalf("unexpected %#04x at %d,%d", c, x, y)
			}
		}
	}

	tests := map[string]struct {
		x, y     int
		expected framebuffer.BGR555
	}{
		"head":  {markerX + 7, markerY + 4, framebuffer.Red},
		"shaft": {markerX + 7, markerY + 12, framebuffer.White},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if c := dst.Pixel(tc.x, tc.y); c != tc.expected {
				t.Fatalf("expected %#04x, got %#04x", tc.expected, c)
			}
		})
	}
	if c := dst.Pixel(markerX, markerY+12); c != framebuffer.DarkGreen && c != framebuffer.Green {
		t.Fatalf("expected floor, got %#04x", c)
	}

	var k input.Keypad
	k.Update(input.ButtonUp)
	s.Update(&k)
	if cam := s.latch.Get(); cam.Pos.Y != -fixed.Int24_8U(1) {
		t.Fatalf("expected %v, got %v", -fixed.Int24_8U(1), cam.Pos.Y)
	}
	if cam, updated := s.latch.Load(); !updated || cam.Pos.Y != -fixed.Int24_8U(1) {
		t.Fatalf("expected update, got %v %+v", updated, cam)
	}
}

func TestTriangles(t *testing.T) {
	s := NewTriangles()
	dst := framebuffer.NewMode3()
	if err := s.Render(dst); err != nil {
		t.Fatal(err)
	}
	tests := map[string]struct {
		x, y     int
		expected framebuffer.BGR555
	}{
		"sky":        {0, 0, framebuffer.LightGrey},
		"ground":     {0, dst.Height - 1, framebuffer.DarkGrey},
		"front face": {dst.Width / 2, dst.Height / 2, framebuffer.Green},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if c := dst.Pixel(tc.x, tc.y); c != tc.expected {
				t.Fatalf("expected %#04x, got %#04x", tc.expected, c)
			}
		})
	}

	// Turned around the pyramid is behind the camera.
	s.Camera.Pose.Turn(0x8000)
	if err := s.Render(dst); err != nil {
		t.Fatal(err)
	}
	if c := dst.Pixel(dst.Width/2, dst.Height/2-1); c != framebuffer.LightGrey {
		t.Fatalf("expected %#04x, got %#04x", framebuffer.LightGrey, c)
	}
}

func TestHUD(t *testing.T) {
	s := NewTriangles()
	dst := framebuffer.NewMode3()
	if err := s.Render(dst); err != nil {
		t.Fatal(err)
	}
	white := func() (n int) {
		for _, c := range dst.Pix {
			if c == framebuffer.White {
				n++
			}
		}
		return n
	}
	if n := white(); n != 0 {
		t.Fatalf("expected no text, got %d pixels", n)
	}

	c := DefaultConfig()
	c.HUD = true
	hud, err := c.NewHUD()
	if err != nil {
		t.Fatal(err)
	}
	hud.Render(dst, s)
	if white() == 0 {
		t.Fatalf("expected %q to be printed", s.Status())
	}

	c.Font = "comic"
	if _, err := c.NewHUD(); err == nil {
		t.Fatal("expected error")
	}
	c.HUD = false
	if hud, err := c.NewHUD(); hud != nil || err != nil {
		t.Fatalf("expected no HUD, got %v %v", hud, err)
	}
}
