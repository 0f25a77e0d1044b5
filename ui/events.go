package ui

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"git.c3pb.de/farhaven/solarsystem/controls"
)

var keyTable = map[glfw.Key]controls.Key{
	glfw.Key0: controls.Key0, glfw.KeyKP0: controls.Key0,
	glfw.Key1: controls.Key1, glfw.KeyKP1: controls.Key1,
	glfw.Key2: controls.Key2, glfw.KeyKP2: controls.Key2,
	glfw.Key3: controls.Key3, glfw.KeyKP3: controls.Key3,
	glfw.Key4: controls.Key4, glfw.KeyKP4: controls.Key4,
	glfw.Key5: controls.Key5, glfw.KeyKP5: controls.Key5,
	glfw.Key6: controls.Key6, glfw.KeyKP6: controls.Key6,
	glfw.Key7: controls.Key7, glfw.KeyKP7: controls.Key7,
	glfw.Key8: controls.Key8, glfw.KeyKP8: controls.Key8,
	glfw.Key9: controls.Key9, glfw.KeyKP9: controls.Key9,

	glfw.KeyQ: controls.KeyQ,
	glfw.KeyF: controls.KeyF,

	glfw.KeyLeft:     controls.KeyLeft,
	glfw.KeyRight:    controls.KeyRight,
	glfw.KeyUp:       controls.KeyUp,
	glfw.KeyDown:     controls.KeyDown,
	glfw.KeyPageUp:   controls.KeyPageUp,
	glfw.KeyPageDown: controls.KeyPageDown,
}

func (ctx *DrawContext) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}

	cmd := controls.Lookup(keyTable[key])
	switch cmd.Intent {
	case controls.IntentNone:
		slog.Debug(`key press`, `key`, key, `scancode`, scancode)
	case controls.IntentToggleFullscreen:
		if action == glfw.Press {
			ctx.toggleFullscreen()
		}
	default:
		cam := ctx.scene.Camera
		if controls.Apply(cmd, cam, ctx.scene.Orrery) {
			slog.Debug(`camera command`, `cmd`, cmd.String(), `mode`, cam.Mode().String(), `pos`, cam.Position.String())
		}
	}
}
