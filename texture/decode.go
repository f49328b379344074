package texture

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/clktmr/agbgfx/framebuffer"

	"github.com/ftrvxmtrx/tga"
)

// FromImage quantizes img into a texture with at most colors palette entries.
func FromImage(img image.Image, colors int, dither bool) *Texture {
	q := framebuffer.Quantize(img, colors)
	palette := make([]framebuffer.BGR555, len(q))
	for i, c := range q {
		palette[i] = c.(framebuffer.BGR555)
	}

	bounds := image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy())
	tex := New(bounds, palette)

	var d draw.Drawer = draw.Src
	if dither {
		d = draw.FloydSteinberg
	}
	d.Draw(tex, bounds, img, img.Bounds().Min)
	return tex
}

// Decoders maps lower case file extensions to image decoders.  tga registers
// an empty magic string that matches any input, so formats aren't sniffed.
var Decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".gif":  gif.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".tga":  tga.Decode,
}

// Decode reads an image and converts it with FromImage.  The format is picked
// by the extension of name, see Decoders.
func Decode(r io.Reader, name string, colors int, dither bool) (*Texture, error) {
	ext := strings.ToLower(filepath.Ext(name))
	decode, ok := Decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", image.ErrFormat, ext)
	}
	img, err := decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img, colors, dither), nil
}
