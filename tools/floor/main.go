// Package floor implements the floor command, which quantizes an image into
// a palette indexed texture for the Mode 7 background.
package floor

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/clktmr/agbgfx/texture"
)

var (
	flags = flag.NewFlagSet("floor", flag.ExitOnError)

	dither  = flags.Bool("dither", false, "enable Floyd-Steinberg error diffusion")
	palette = flags.Int("palette", 256, "number of colors")
	output  = flags.String("o", "", "output `file`, defaults to <image>.tex")

	imagefile string
)

const usageString = `Image to floor texture converter.  PNG, GIF, JPEG and TGA images
are accepted.

Usage: %s [flags] <image>

`

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "floor")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 {
		imagefile = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}
	if *palette < 1 || *palette > 256 {
		log.Fatalln("palette size out of range:", *palette)
	}

	r, err := os.Open(imagefile)
	if err != nil {
		log.Fatalln(err)
	}
	defer r.Close()

	tex, err := texture.Decode(r, imagefile, *palette, *dither)
	if err != nil {
		log.Fatalln(err)
	}

	outfile := *output
	if outfile == "" {
		outfile = strings.TrimSuffix(imagefile, filepath.Ext(imagefile)) + ".tex"
	}
	w, err := os.Create(outfile)
	if err != nil {
		log.Fatalln(err)
	}
	defer w.Close()

	if err = tex.Store(w); err != nil {
		log.Fatalln(err)
	}
	log.Printf("%s: %v, %d colors", outfile, tex.Bounds().Size(), len(tex.Palette))
}
