package scene

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/clktmr/agbgfx/level"
	"github.com/clktmr/agbgfx/texture"
)

// Config selects a scene, its assets and how its frames are output.
type Config struct {
	Scene  string   `toml:"scene"`
	Frames int      `toml:"frames"`
	Scale  int      `toml:"scale"`
	Smooth bool     `toml:"smooth"`
	Format string   `toml:"format"`
	Out    string   `toml:"out"`
	Level  string   `toml:"level"` // level blob
	Floor  string   `toml:"floor"` // texture file or image
	Keys   []string `toml:"keys"`  // input.ParseScript entries
	HUD    bool     `toml:"hud"`
	Font   string   `toml:"font"` // HUD font, a key of Fonts
}

func DefaultConfig() Config {
	return Config{
		Scene:  "bsp",
		Frames: 60,
		Scale:  1,
		Format: "png",
		Out:    "frames",
		Font:   "basic",
	}
}

// LoadConfig decodes the TOML file at path over the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	_, err := toml.DecodeFile(path, &c)
	return c, err
}

// ParseFlags parses args into a Config.  The file given by -config is read
// first, flags set explicitly override its values.
func ParseFlags(name string, args []string) (Config, error) {
	var o Config
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	config := flags.String("config", "", "TOML configuration `file`")
	flags.StringVar(&o.Scene, "scene", "", "scene to run: "+strings.Join(Names, ", "))
	flags.IntVar(&o.Frames, "frames", 0, "number of frames to render")
	flags.IntVar(&o.Scale, "scale", 0, "integer upscaling factor")
	flags.BoolVar(&o.Smooth, "smooth", false, "interpolate when upscaling")
	flags.StringVar(&o.Format, "format", "", "frame format: png or webp")
	flags.StringVar(&o.Out, "out", "", "output `directory`")
	flags.StringVar(&o.Level, "level", "", "level blob replacing the builtin level")
	flags.StringVar(&o.Floor, "floor", "", "texture or image replacing the builtin floor")
	flags.BoolVar(&o.HUD, "hud", false, "print the scene status over the frames")
	flags.StringVar(&o.Font, "font", "", "HUD font: basic, gomono or goregular")
	flags.Func("keys", "comma separated key script, e.g. Up*10,A", func(s string) error {
		o.Keys = strings.Split(s, ",")
		return nil
	})
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	c := DefaultConfig()
	if *config != "" {
		var err error
		if c, err = LoadConfig(*config); err != nil {
			return Config{}, err
		}
	}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			c.Scene = o.Scene
		case "frames":
			c.Frames = o.Frames
		case "scale":
			c.Scale = o.Scale
		case "smooth":
			c.Smooth = o.Smooth
		case "format":
			c.Format = o.Format
		case "out":
			c.Out = o.Out
		case "level":
			c.Level = o.Level
		case "floor":
			c.Floor = o.Floor
		case "keys":
			c.Keys = o.Keys
		case "hud":
			c.HUD = o.HUD
		case "font":
			c.Font = o.Font
		}
	})
	return c, nil
}

// NewHUD returns the HUD selected by the config, nil if disabled.
func (c *Config) NewHUD() (*HUD, error) {
	if !c.HUD {
		return nil, nil
	}
	face, ok := Fonts[c.Font]
	if !ok {
		return nil, fmt.Errorf("scene: unknown font %q", c.Font)
	}
	return NewHUD(face()), nil
}

// Assets loads the files named by the config.
func (c *Config) Assets() (a Assets, err error) {
	if c.Level != "" {
		if a.Level, err = loadFile(c.Level, level.Load); err != nil {
			return a, err
		}
	}
	if c.Floor != "" {
		load := texture.Load
		if !strings.EqualFold(filepath.Ext(c.Floor), ".tex") {
			load = func(r io.Reader) (*texture.Texture, error) {
				return texture.Decode(r, c.Floor, 256, false)
			}
		}
		if a.Floor, err = loadFile(c.Floor, load); err != nil {
			return a, err
		}
	}
	return a, nil
}

func loadFile[T any](path string, load func(io.Reader) (T, error)) (v T, err error) {
	f, err := os.Open(path)
	if err != nil {
		return v, err
	}
	defer f.Close()
	return load(f)
}
