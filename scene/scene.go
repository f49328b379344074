// Package scene composes poses, controllers and renderers into the demo
// scenes.
package scene

import (
	"errors"
	"fmt"
	"image"

	"github.com/clktmr/agbgfx/framebuffer"
	"github.com/clktmr/agbgfx/input"
	"github.com/clktmr/agbgfx/level"
	"github.com/clktmr/agbgfx/texture"
)

// Scene is advanced and drawn once per frame.
type Scene interface {
	Update(k *input.Keypad)
	Render(dst *framebuffer.Buffer[framebuffer.BGR555]) error
}

var ErrUnknown = errors.New("scene: unknown scene")

var Names = []string{"bsp", "mode7", "triangles"}

// Assets are optional inputs of the scenes.  Missing assets are replaced by
// builtin ones.
type Assets struct {
	Level *level.Level
	Floor *texture.Texture
}

func New(name string, assets Assets) (Scene, error) {
	switch name {
	case "bsp":
		lvl := assets.Level
		if lvl == nil {
			lvl = Quadrants()
		}
		return NewBSP(lvl), nil
	case "mode7":
		floor := assets.Floor
		if floor == nil {
			floor = texture.Checker(64, 8, []framebuffer.BGR555{framebuffer.DarkGreen, framebuffer.Green})
		}
		return NewMode7(floor), nil
	case "triangles":
		return NewTriangles(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// WallColors are assigned to the walls by seg index.
var WallColors = []framebuffer.BGR555{
	framebuffer.Red,
	framebuffer.Orange,
	framebuffer.Yellow,
	framebuffer.Green,
	framebuffer.Blue,
	framebuffer.Pink,
	framebuffer.White,
	framebuffer.LightGrey,
	framebuffer.MidGrey,
	framebuffer.DarkGrey,
	framebuffer.DarkGreen,
}

// backdrop clears the upper and lower half of the screen.
type backdrop struct {
	Sky, Ground framebuffer.BGR555

	canvas
}

func (b *backdrop) render(dst *framebuffer.Buffer[framebuffer.BGR555]) {
	disp := b.display(dst)
	r := dst.Bounds()
	horizon := r.Dy() / 2
	a := disp.NewArea(r)
	a.SetColor(b.Sky)
	a.Fill(image.Rect(0, 0, r.Dx(), horizon))
	a.SetColor(b.Ground)
	a.Fill(image.Rect(0, horizon, r.Dx(), r.Dy()))
	disp.Flush()
}
