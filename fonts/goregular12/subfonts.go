// Go Regular 12
package goregular12

import (
	"github.com/embeddedgo/display/font/subfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/clktmr/agbgfx/fonts"
)

const (
	Height = 14
	Ascent = 11
)

func NewFace() *fonts.Face {
	f, err := opentype.Parse(goregular.TTF)
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
