package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"git.c3pb.de/farhaven/solarsystem/camera"
	"git.c3pb.de/farhaven/solarsystem/config"
	"git.c3pb.de/farhaven/solarsystem/orrery"
	"git.c3pb.de/farhaven/solarsystem/starfield"
	"git.c3pb.de/farhaven/solarsystem/textures"
	"git.c3pb.de/farhaven/solarsystem/ui"
	"git.c3pb.de/farhaven/solarsystem/vector"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		slog.Error(`bad configuration`, `err`, err)
		os.Exit(2)
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	o, err := orrery.New(orrery.Planets)
	if err != nil {
		slog.Error(`bad body table`, `err`, err)
		os.Exit(1)
	}

	camCfg := camera.DefaultConfig()
	camCfg.Rest = vector.V3{Y: cfg.Camera.RestHeight, Z: cfg.Camera.RestZ}

	scene := ui.Scene{
		Orrery: o,
		Camera: camera.New(camCfg),
		Sun:    orrery.Sun,
	}

	skybox := cfg.Scene.Background == config.BackgroundSkybox
	if !skybox {
		seed := cfg.Scene.Seed
		if seed == 0 {
			seed = starfield.TimeSeed()
		}
		scene.Stars = starfield.Generate(cfg.Scene.Stars, seed)
		slog.Debug(`starfield generated`, `stars`, len(scene.Stars.Stars), `seed`, seed)
	}

	ctx, err := ui.NewDrawContext(ui.Options{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		Title:      cfg.Window.Title,
		TextureDir: cfg.Scene.Textures,
		MaxTexture: cfg.Scene.MaxTexture,
		Skybox:     skybox,
		Orbits:     cfg.Scene.Orbits,
		Timestep:   cfg.Scene.Timestep,
		Frame:      time.Duration(cfg.Scene.FrameMS) * time.Millisecond,
	}, scene)
	if err != nil {
		var le *textures.LoadError
		if errors.As(err, &le) {
			slog.Error(`failed to load texture`, `file`, le.File, `err`, le.Err)
		} else {
			slog.Error(`can't start`, `err`, err)
		}
		os.Exit(1)
	}

	slog.Info(`running`, `bodies`, o.Len(), `background`, cfg.Scene.Background)
	ctx.Run()
}
