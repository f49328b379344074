// Package wad implements the level command, which bakes a map of a WAD
// archive into a level blob.
package wad

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/clktmr/agbgfx/level"
)

var (
	flags = flag.NewFlagSet("level", flag.ExitOnError)

	mapName = flags.String("map", "", "map to convert, defaults to the first map")
	shift   = flags.Uint("shift", 6, "divide all lengths by 2^shift")
	output  = flags.String("o", "", "output `file`, defaults to <map>.lvl")
	list    = flags.Bool("list", false, "list the maps and exit")
	verbose = flags.Bool("v", false, "log the lumps read")

	wadfile string
)

const usageString = `WAD map to level blob converter.

Usage: %s [flags] <wad>

`

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "level")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 {
		wadfile = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}
	if *verbose {
		level.SetLogger(log.Default())
	}

	r, err := os.Open(wadfile)
	if err != nil {
		log.Fatalln(err)
	}
	defer r.Close()

	fi, err := r.Stat()
	if err != nil {
		log.Fatalln(err)
	}
	w, err := level.OpenWAD(r, fi.Size())
	if err != nil {
		log.Fatalln(err)
	}
	maps := w.Maps()
	if *list {
		fmt.Println(strings.Join(maps, "\n"))
		return
	}

	name := *mapName
	if name == "" {
		if len(maps) == 0 {
			log.Fatalln("no maps in", wadfile)
		}
		name = maps[0]
	}
	m, err := w.ReadMap(name)
	if err != nil {
		log.Fatalln(err)
	}
	lvl, err := m.Bake(*shift)
	if err != nil {
		log.Fatalln(err)
	}

	outfile := *output
	if outfile == "" {
		outfile = filepath.Join(filepath.Dir(wadfile), strings.ToLower(name)+".lvl")
	}
	f, err := os.Create(outfile)
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()

	if err = lvl.Store(f); err != nil {
		log.Fatalln(err)
	}
	log.Printf("%s: %d segs, %d subsectors, %d nodes", outfile,
		len(lvl.Segs), len(lvl.SubSectors), len(lvl.Nodes))
}
