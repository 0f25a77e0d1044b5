// Package controls maps key presses to camera commands. Keys are abstract
// so the mapping can be used without a window.
package controls

import (
	"fmt"

	"git.c3pb.de/farhaven/solarsystem/camera"
	"git.c3pb.de/farhaven/solarsystem/vector"
)

type Key int

const (
	KeyUnknown Key = iota
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyQ
	KeyF
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
)

var keyNames = map[Key]string{
	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",
	KeyQ: "Q", KeyF: "F",
	KeyLeft: "Left", KeyRight: "Right", KeyUp: "Up", KeyDown: "Down",
	KeyPageUp: "PageUp", KeyPageDown: "PageDown",
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return "Unknown"
}

// Intent is what a key press asks for.
type Intent uint8

const (
	IntentNone Intent = iota
	IntentFollow
	IntentRelease
	IntentMove
	IntentToggleFullscreen
)

func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentFollow:
		return "follow"
	case IntentRelease:
		return "release"
	case IntentMove:
		return "move"
	case IntentToggleFullscreen:
		return "fullscreen"
	default:
		return fmt.Sprintf("intent(%d)", uint8(i))
	}
}

// Free camera step sizes per key press.
const (
	MoveStep = 0.5
	ZoomStep = 1.0
)

type Command struct {
	Intent Intent
	Body   int       // IntentFollow
	Delta  vector.V3 // IntentMove
}

func (c Command) String() string {
	switch c.Intent {
	case IntentFollow:
		return fmt.Sprintf("follow %d", c.Body)
	case IntentMove:
		return fmt.Sprintf("move %s", c.Delta)
	default:
		return c.Intent.String()
	}
}

var keyTable = map[Key]Command{
	Key1: {Intent: IntentFollow, Body: 0},
	Key2: {Intent: IntentFollow, Body: 1},
	Key3: {Intent: IntentFollow, Body: 2},
	Key4: {Intent: IntentFollow, Body: 3},
	Key5: {Intent: IntentFollow, Body: 4},
	Key6: {Intent: IntentFollow, Body: 5},
	Key7: {Intent: IntentFollow, Body: 6},

	Key0: {Intent: IntentRelease},
	KeyQ: {Intent: IntentRelease},

	KeyF: {Intent: IntentToggleFullscreen},

	KeyLeft:     {Intent: IntentMove, Delta: vector.V3{X: -MoveStep}},
	KeyRight:    {Intent: IntentMove, Delta: vector.V3{X: MoveStep}},
	KeyUp:       {Intent: IntentMove, Delta: vector.V3{Y: -MoveStep}},
	KeyDown:     {Intent: IntentMove, Delta: vector.V3{Y: MoveStep}},
	KeyPageUp:   {Intent: IntentMove, Delta: vector.V3{Z: -ZoomStep}},
	KeyPageDown: {Intent: IntentMove, Delta: vector.V3{Z: ZoomStep}},
}

// Lookup returns the command bound to k. Unbound keys yield IntentNone.
func Lookup(k Key) Command {
	return keyTable[k]
}

// Apply carries out a camera command. It reports whether the camera state
// changed; commands that do not concern the camera are left to the caller.
func Apply(cmd Command, cam *camera.Controller, b camera.Bodies) bool {
	switch cmd.Intent {
	case IntentFollow:
		return cam.Follow(b, cmd.Body)
	case IntentRelease:
		return cam.Release()
	case IntentMove:
		return cam.Nudge(cmd.Delta)
	}
	return false
}
