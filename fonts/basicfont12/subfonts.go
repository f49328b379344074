// basicfont 12
package basicfont12

import (
	"github.com/embeddedgo/display/font/subfont"
	"golang.org/x/image/font/basicfont"

	"github.com/clktmr/agbgfx/fonts"
)

const (
	Height = 13
	Ascent = 11
)

func NewFace() *fonts.Face {
	return &fonts.Face{
		Face: subfont.Face{Height: Height,
			Ascent: Ascent,
			Loader: fonts.NewLoader(basicfont.Face7x13, Height, Ascent),
		},
	}
}
