// Go Mono 12
package gomono12

import (
	"github.com/embeddedgo/display/font/subfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"

	"github.com/clktmr/agbgfx/fonts"
)

const (
	Height = 15
	Ascent = 12
)

func NewFace() *fonts.Face {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		panic(err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(err)
	}
	return &fonts.Face{
		Face: subfont.Face{Height: Height,
			Ascent: Ascent,
			Loader: fonts.NewLoader(face, Height, Ascent),
		},
	}
}
