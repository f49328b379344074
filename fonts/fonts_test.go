package fonts_test

import (
	"image"
	"testing"

	"github.com/clktmr/agbgfx/fonts/basicfont12"
	"github.com/clktmr/agbgfx/fonts/gomono12"
)

func TestGlyphMap(t *testing.T) {
	face := basicfont12.NewFace()
	tests := map[string]struct {
		r       rune
		advance int
	}{
		"letter":  {'A', 7},
		"space":   {' ', 7},
		"latin1":  {'é', 7},
		"missing": {'ж', 7},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			img, rect, origin, advance := face.GlyphMap(tc.r)
			if img == nil {
				t.Fatal("expected glyph map")
			}
			if advance != tc.advance {
				t.Fatalf("expected %v, got %v", tc.advance, advance)
			}
			if rect.Dx() != advance || rect.Dy() != basicfont12.Height {
				t.Fatalf("expected %dx%d, got %v", advance, basicfont12.Height, rect)
			}
			if expected := image.Pt(rect.Min.X, rect.Min.Y+basicfont12.Ascent); origin != expected {
				t.Fatalf("expected %v, got %v", expected, origin)
			}
		})
	}
}

func TestGlyphInk(t *testing.T) {
	face := basicfont12.NewFace()
	ink := func(r rune) (n int) {
		img, rect, _, _ := face.GlyphMap(r)
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			for x := rect.Min.X; x < rect.Max.X; x++ {
				if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
					n++
				}
			}
		}
		return n
	}
	if n := ink('A'); n == 0 {
		t.Fatal("expected ink in 'A'")
	}
	if n := ink(' '); n != 0 {
		t.Fatalf("expected empty space, got %d pixels", n)
	}
}

func TestSubfonts(t *testing.T) {
	face := basicfont12.NewFace()
	face.GlyphMap('A')
	face.GlyphMap('B')
	face.GlyphMap('é')
	if n := len(face.Subfonts); n != 2 {
		t.Fatalf("expected 2 subfonts, got %d", n)
	}
	if sf := face.Subfonts[1]; sf.First != 0x80 || sf.Last != 0xff {
		t.Fatalf("expected [0x80, 0xff], got [%#x, %#x]", sf.First, sf.Last)
	}
}

const lorem = `Lorem ipsum dolor sit amet, consectetur adipisici elit, sed
eiusmod tempor incidunt ut labore et dolore magna aliqua. Ut enim ad
minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquid
ex ea commodi consequat. Quis aute iure reprehenderit in voluptate velit
esse cillum dolore eu fugiat nulla pariatur. Excepteur sint obcaecat
cupiditat non proident, sunt in culpa qui officia deserunt mollit anim
id est laborum.`

func BenchmarkGlyphMap(b *testing.B) {
	gomono := gomono12.NewFace()

	i := 0
	for b.Loop() {
		gomono.GlyphMap(rune(lorem[i%len(lorem)]))
		i++
	}
}
