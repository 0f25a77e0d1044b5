// Package camera implements the viewer's camera as a small state machine:
// a free camera the user moves around, and a follow mode that rides along
// behind one planet. Leaving follow mode eases the camera back to its rest
// pose.
package camera

import (
	"log/slog"
	"math"

	"git.c3pb.de/farhaven/solarsystem/vector"
)

type Mode int

const (
	FREE Mode = iota
	FOLLOW
)

func (m Mode) String() string {
	switch m {
	case FREE:
		return "FREE"
	case FOLLOW:
		return "FOLLOW"
	default:
		return "UNKNOWN"
	}
}

// Bodies is what the camera needs to know about the scene to track a body.
// *orrery.Orrery satisfies it.
type Bodies interface {
	Len() int
	Position(i int) (vector.V3, bool)
	Tangent(i int) (vector.V3, bool)
}

type Config struct {
	Rest           vector.V3 // resting position in free mode, looking at the origin
	Easing         float64   // fraction of the remaining distance covered per frame
	Epsilon        float64   // per-axis distance at which easing snaps to the target
	FollowDistance float64
	FollowHeight   float64
	MinZoom        float64
	MaxZoom        float64
}

func DefaultConfig() Config {
	return Config{
		Rest:           vector.V3{X: 0, Y: 15, Z: 60},
		Easing:         0.1,
		Epsilon:        0.1,
		FollowDistance: 15,
		FollowHeight:   8,
		MinZoom:        10,
		MaxZoom:        150,
	}
}

type Controller struct {
	cfg Config

	Position   vector.V3
	LookTarget vector.V3

	targetPos  vector.V3
	targetLook vector.V3

	followed      int
	following     bool
	transitioning bool
}

// New returns a free camera at the configured rest pose.
func New(cfg Config) *Controller {
	c := &Controller{cfg: cfg}
	c.Position = cfg.Rest
	c.Position.Z = c.clampZoom(c.Position.Z)
	return c
}

func (c *Controller) Config() Config {
	return c.cfg
}

func (c *Controller) Mode() Mode {
	if c.following {
		return FOLLOW
	}
	return FREE
}

// Followed returns the index of the tracked body, if any.
func (c *Controller) Followed() (int, bool) {
	return c.followed, c.following
}

// Transitioning reports whether the camera is still easing back to rest.
func (c *Controller) Transitioning() bool {
	return c.transitioning
}

// Follow starts tracking body i. Out of range indices are ignored.
func (c *Controller) Follow(b Bodies, i int) bool {
	if i < 0 || i >= b.Len() {
		return false
	}

	c.followed, c.following = i, true
	c.transitioning = false
	c.track(b)

	slog.Debug(`camera following body`, `index`, i, `pos`, c.Position.String())
	return true
}

// Release leaves follow mode and starts easing back to the rest pose.
func (c *Controller) Release() bool {
	if !c.following {
		return false
	}

	c.following = false
	c.targetPos = c.cfg.Rest
	c.targetPos.Z = c.clampZoom(c.targetPos.Z)
	c.targetLook = vector.V3{}
	c.transitioning = true

	slog.Debug(`camera released`, `from`, c.Position.String(), `to`, c.targetPos.String())
	return true
}

// Nudge moves the free camera by d. Moves are dropped while following a
// body or easing back to rest. The zoom axis is clamped.
func (c *Controller) Nudge(d vector.V3) bool {
	if c.following || c.transitioning {
		return false
	}

	c.Position = c.Position.Add(d)
	c.Position.Z = c.clampZoom(c.Position.Z)
	return true
}

// Advance updates the camera for one frame.
func (c *Controller) Advance(b Bodies) {
	switch {
	case c.following:
		c.track(b)
	case c.transitioning:
		c.Position = c.Position.Lerp(c.targetPos, c.cfg.Easing)
		c.LookTarget = c.LookTarget.Lerp(c.targetLook, c.cfg.Easing)

		if c.Position.Within(c.targetPos, c.cfg.Epsilon) && c.LookTarget.Within(c.targetLook, c.cfg.Epsilon) {
			c.Position, c.LookTarget = c.targetPos, c.targetLook
			c.transitioning = false
			slog.Debug(`camera at rest`, `pos`, c.Position.String())
		}
	}
}

// track places the camera behind the followed body along its direction of
// travel, raised by FollowHeight, looking at the body.
func (c *Controller) track(b Bodies) {
	p, ok := b.Position(c.followed)
	if !ok {
		return
	}
	t, ok := b.Tangent(c.followed)
	if !ok {
		return
	}

	c.Position = p.Sub(t.Scaled(c.cfg.FollowDistance)).Add(vector.V3{Y: c.cfg.FollowHeight})
	c.LookTarget = p
}

func (c *Controller) clampZoom(z float64) float64 {
	return math.Max(c.cfg.MinZoom, math.Min(c.cfg.MaxZoom, z))
}

// ConvergenceFrames is the number of frames easing needs to bring an
// initial offset d0 within eps of the target.
func ConvergenceFrames(d0, eps, easing float64) int {
	if d0 < eps {
		return 0
	}
	return int(math.Ceil(math.Log(eps/d0) / math.Log(1-easing)))
}
