package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/clktmr/agbgfx/tools/floor"
	"github.com/clktmr/agbgfx/tools/wad"
)

const usageString = `agbgo converts assets for the agbgfx renderers.

Usage:

	%s <command> [arguments]

The commands are:

	level    convert a map of a WAD archive to a level blob
	floor    convert an image to a floor texture
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "level":
		wad.Main(flag.Args())
	case "floor":
		floor.Main(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}
