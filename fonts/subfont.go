package fonts

import (
	"image"

	"github.com/embeddedgo/display/font/subfont"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	dim       = 256 // width of a glyph map
	blockSize = 128 // runes per subfont
	padding   = 1
)

// Glyph is the position of a glyph in the glyph map.  Origin is the start of
// the baseline.
type Glyph struct {
	Rect    image.Rectangle
	Origin  image.Point
	Advance int
}

// SubfontData implements [subfont.Data].
type SubfontData struct {
	fontMap *image.Alpha
	glyphs  []Glyph
}

func (p *SubfontData) Advance(i int) int {
	return p.glyphs[i].Advance
}

func (p *SubfontData) Glyph(i int) (img image.Image, origin image.Point, advance int) {
	g := &p.glyphs[i]
	return p.fontMap.SubImage(g.Rect), g.Origin, g.Advance
}

func (p *SubfontData) GlyphMap(i int) (img image.Image, r image.Rectangle, origin image.Point, advance int) {
	g := &p.glyphs[i]
	return p.fontMap, g.Rect, g.Origin, g.Advance
}

// NewSubfontData draws the runes [first, last] of face into a glyph map.
// Runes missing in face share the glyph of '?'.
func NewSubfontData(face font.Face, first, last rune, height, ascent int) *SubfontData {
	p := &SubfontData{
		fontMap: image.NewAlpha(image.Rect(0, 0, dim, dim)),
		glyphs:  make([]Glyph, 0, last-first+1),
	}
	drawer := font.Drawer{Dst: p.fontMap, Src: image.Opaque, Face: face}

	var missing *Glyph
	x, y := 0, 0 // top left corner of the next glyph
	for r := first; r <= last; r++ {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			if missing != nil {
				p.glyphs = append(p.glyphs, *missing)
				continue
			}
			adv, _ = face.GlyphAdvance('?')
		}

		w := adv.Ceil()
		if x+w+padding > dim {
			x, y = 0, y+height+padding
		}
		if y+height > dim {
			panic("fonts: too many glyphs to fit into glyph map")
		}

		drawer.Dot = fixed.P(x, y+ascent)
		if ok {
			drawer.DrawString(string(r))
		} else {
			drawer.DrawString("?")
		}
		p.glyphs = append(p.glyphs, Glyph{
			Rect:    image.Rect(x, y, x+w, y+height),
			Origin:  image.Pt(x, y+ascent),
			Advance: w,
		})
		if !ok {
			missing = &p.glyphs[len(p.glyphs)-1]
		}
		x += w + padding
	}

	p.fontMap = p.fontMap.SubImage(image.Rect(0, 0, dim, y+height)).(*image.Alpha)
	return p
}

// Loader rasterizes the subfonts of Face on first use, blockSize runes at a
// time.
type Loader struct {
	Face           font.Face
	Height, Ascent int
}

func NewLoader(face font.Face, height, ascent int) *Loader {
	return &Loader{face, height, ascent}
}

func (l *Loader) Load(r rune, current []*subfont.Subfont) (containing *subfont.Subfont, updated []*subfont.Subfont) {
	if r < 0 || r > 0x10ffff {
		return nil, current
	}
	first := r &^ (blockSize - 1)
	last := first + blockSize - 1
	containing = &subfont.Subfont{
		First:  first,
		Last:   last,
		Offset: 0,
		Data:   NewSubfontData(l.Face, first, last, l.Height, l.Ascent),
	}
	return containing, append(current, containing)
}
