// Package fonts rasterizes golang.org/x/image font faces into glyph maps,
// one subfont at a time, to be used as embeddedgo/display font faces.
package fonts

import (
	"image"

	"github.com/embeddedgo/display/font/subfont"
)

// GlyphMap returns an image containing all glyphs of a Subfont and a rect
// describing subimage that represents the glyph.  All images returned by
// GlyphMap are guaranteed to have the same format/type.
// This interface is an optimization for the subfont.Data interface, it
// allows to draw from the glyph map without creating a subimage per glyph.
type Data interface {
	GlyphMap(i int) (img image.Image, rect image.Rectangle, origin image.Point, advance int)
}

type Face struct {
	subfont.Face
}

// GlyphMap returns the glyph map of the subfont containing r.
func (f *Face) GlyphMap(r rune) (img image.Image, rect image.Rectangle, origin image.Point, advance int) {
	sf := getSubfont(f, r)
	if sf == nil {
		sf = getSubfont(f, 0) // try to use rune(0) to render unsupported codepoints
		if sf == nil {
			return
		}
		r = 0
	}
	if d, ok := sf.Data.(Data); ok {
		return d.GlyphMap(int(r - sf.First))
	}
	img, origin, advance = sf.Data.Glyph(int(r - sf.First))
	rect = img.Bounds()
	return
}

func getSubfont(f *Face, r rune) (sf *subfont.Subfont) {
	for _, sf = range f.Subfonts {
		if sf != nil && sf.First <= r && r <= sf.Last {
			return sf
		}
	}
	if f.Loader == nil {
		return nil
	}
	sf, f.Subfonts = f.Loader.Load(r, f.Subfonts)
	return sf
}
