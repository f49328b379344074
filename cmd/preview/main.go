// Preview runs a scene in a desktop window.  The keyboard is mapped onto the
// keypad by window.DefaultKeys, Escape quits.
package main

import (
	"log"
	"os"

	"github.com/clktmr/agbgfx/display/window"
	"github.com/clktmr/agbgfx/framebuffer"
	"github.com/clktmr/agbgfx/input"
	"github.com/clktmr/agbgfx/scene"
)

func main() {
	log.Default().SetFlags(0)

	cfg, err := scene.ParseFlags("preview", os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	assets, err := cfg.Assets()
	if err != nil {
		log.Fatalln(err)
	}
	s, err := scene.New(cfg.Scene, assets)
	if err != nil {
		log.Fatalln(err)
	}
	hud, err := cfg.NewHUD()
	if err != nil {
		log.Fatalln(err)
	}

	scale := max(cfg.Scale, 3)
	w := window.New("agbgfx: "+cfg.Scene, framebuffer.Width, framebuffer.Height, scale)
	fb := framebuffer.NewFramebuffer[framebuffer.BGR555](framebuffer.Width, framebuffer.Height)

	var keys input.Keypad
	err = w.Run(func(buttons input.ButtonMask) error {
		keys.Update(buttons)
		s.Update(&keys)
		if err := s.Render(fb.Back()); err != nil {
			return err
		}
		if hud != nil {
			hud.Render(fb.Back(), s)
		}
		fb.Swap()
		return w.Present(framebuffer.RGB{Buffer: fb.Front()})
	})
	if err != nil {
		log.Fatalln(err)
	}
}
