// Demo renders a scene for a number of frames with a scripted keypad and
// writes the frames as images.
//
// Usage:
//
//	demo [-config demo.toml] [-scene bsp|mode7|triangles] [-frames n]
//	     [-keys Up*10,A] [-format png|webp] [-scale n] [-smooth] [-out dir]
package main

import (
	"log"
	"os"

	"github.com/clktmr/agbgfx/bsp"
	"github.com/clktmr/agbgfx/display"
	"github.com/clktmr/agbgfx/framebuffer"
	"github.com/clktmr/agbgfx/input"
	"github.com/clktmr/agbgfx/level"
	"github.com/clktmr/agbgfx/scene"
)

func main() {
	log.Default().SetFlags(0)
	level.SetLogger(log.Default())
	bsp.SetLogger(log.Default())

	cfg, err := scene.ParseFlags("demo", os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	script, err := input.ParseScript(cfg.Keys)
	if err != nil {
		log.Fatalln(err)
	}
	format, err := display.ParseFormat(cfg.Format)
	if err != nil {
		log.Fatalln(err)
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

	out := display.NewHeadless(cfg.Out, format, cfg.Scale)
	out.Smooth = cfg.Smooth
	fb := framebuffer.NewFramebuffer[framebuffer.BGR555](framebuffer.Width, framebuffer.Height)

	var keys input.Keypad
	for n := range cfg.Frames {
		keys.Update(script.At(n))
		s.Update(&keys)
		if err := s.Render(fb.Back()); err != nil {
			log.Fatalf("frame %d: %v", n, err)
		}
		if hud != nil {
			hud.Render(fb.Back(), s)
		}
		fb.Swap()
		if err := out.Present(framebuffer.RGB{Buffer: fb.Front()}); err != nil {
			log.Fatalln(err)
		}
	}
	log.Printf("%s: wrote %d frames to %s", cfg.Scene, out.Frames(), cfg.Out)
}
