// Package config holds the program settings. Defaults can be overridden
// by a TOML file and then by command line flags.
package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"git.c3pb.de/farhaven/solarsystem/orrery"
	"git.c3pb.de/farhaven/solarsystem/starfield"
	"git.c3pb.de/farhaven/solarsystem/textures"
)

const (
	BackgroundStarfield = "starfield"
	BackgroundSkybox    = "skybox"
)

type Config struct {
	Window struct {
		Width      int    `toml:"width"`
		Height     int    `toml:"height"`
		Fullscreen bool   `toml:"fullscreen"`
		Title      string `toml:"title"`
	} `toml:"window"`

	Scene struct {
		Textures   string  `toml:"textures"`
		MaxTexture int     `toml:"max_texture"`
		Background string  `toml:"background"`
		Orbits     bool    `toml:"orbits"`
		Stars      int     `toml:"stars"`
		Seed       int64   `toml:"seed"` // 0 picks a seed from the clock
		Timestep   float64 `toml:"timestep"`
		FrameMS    int     `toml:"frame_ms"`
	} `toml:"scene"`

	Camera struct {
		RestHeight float64 `toml:"rest_height"`
		RestZ      float64 `toml:"rest_z"`
	} `toml:"camera"`

	LogLevel string `toml:"log_level"`
}

func Default() Config {
	var c Config

	c.Window.Width, c.Window.Height = 1920, 1080
	c.Window.Fullscreen = true
	c.Window.Title = "3D Solar System"

	c.Scene.Textures = "."
	c.Scene.MaxTexture = textures.DefaultMaxSize
	c.Scene.Background = BackgroundStarfield
	c.Scene.Orbits = true
	c.Scene.Stars = starfield.DefaultCount
	c.Scene.Timestep = orrery.DefaultTimestep
	c.Scene.FrameMS = 16

	c.Camera.RestHeight = 15
	c.Camera.RestZ = 60

	c.LogLevel = "info"

	return c
}

// LoadFile merges the TOML file at path into c. Keys missing from the file
// keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(`can't read config: %w`, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf(`%s:%d:%d: %w`, path, row, col, err)
		}
		return fmt.Errorf(`%s: %w`, path, err)
	}
	return nil
}

// Parse builds the configuration from defaults, the file named by -config
// (if any) and the remaining flags, in that order of precedence.
func Parse(name string, args []string) (Config, error) {
	c := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfgPath := fs.String("config", "", "TOML config file")
	width := fs.Int("width", c.Window.Width, "window width")
	height := fs.Int("height", c.Window.Height, "window height")
	windowed := fs.Bool("windowed", false, "run in a window instead of fullscreen")
	texDir := fs.String("textures", c.Scene.Textures, "directory holding the texture images")
	background := fs.String("background", c.Scene.Background, "background: starfield or skybox")
	noOrbits := fs.Bool("no-orbits", false, "don't draw orbit paths")
	stars := fs.Int("stars", c.Scene.Stars, "number of stars in the starfield")
	seed := fs.Int64("seed", 0, "starfield seed (0: derive from the clock)")
	timestep := fs.Float64("timestep", c.Scene.Timestep, "simulated time per frame")
	restHeight := fs.Float64("rest-height", c.Camera.RestHeight, "camera height at rest")
	logLevel := fs.String("log-level", c.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return c, err
	}

	if *cfgPath != "" {
		if err := c.LoadFile(*cfgPath); err != nil {
			return c, err
		}
	}

	// Only flags given explicitly override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			c.Window.Width = *width
		case "height":
			c.Window.Height = *height
		case "windowed":
			c.Window.Fullscreen = !*windowed
		case "textures":
			c.Scene.Textures = *texDir
		case "background":
			c.Scene.Background = *background
		case "no-orbits":
			c.Scene.Orbits = !*noOrbits
		case "stars":
			c.Scene.Stars = *stars
		case "seed":
			c.Scene.Seed = *seed
		case "timestep":
			c.Scene.Timestep = *timestep
		case "rest-height":
			c.Camera.RestHeight = *restHeight
		case "log-level":
			c.LogLevel = *logLevel
		}
	})

	return c, c.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf(`window size must be positive, got %dx%d`, c.Window.Width, c.Window.Height)
	case c.Scene.Background != BackgroundStarfield && c.Scene.Background != BackgroundSkybox:
		return fmt.Errorf(`unknown background %q`, c.Scene.Background)
	case c.Scene.Stars < 0:
		return fmt.Errorf(`star count must not be negative, got %d`, c.Scene.Stars)
	case c.Scene.Timestep <= 0:
		return fmt.Errorf(`timestep must be positive, got %v`, c.Scene.Timestep)
	case c.Scene.FrameMS <= 0:
		return fmt.Errorf(`frame interval must be positive, got %d`, c.Scene.FrameMS)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, fmt.Errorf(`bad log level %q: %w`, s, err)
	}
	return l, nil
}
