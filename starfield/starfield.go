// Package starfield generates the procedural star background: a fixed set
// of randomly placed points whose brightness and size flicker over time.
package starfield

import (
	"math"
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"git.c3pb.de/farhaven/solarsystem/vector"
)

const (
	DefaultCount = 500

	HalfWidth = 100.0

	MinSize, MaxSize             = 0.1, 0.6
	MinBrightness, MaxBrightness = 0.5, 1.0
	MinFlicker, MaxFlicker       = 0.05, 0.1

	// The first BrightCount stars are redrawn as foreground stars.
	BrightCount = 20
	BrightScale = 1.5
	BrightSize  = 3.0
)

type Star struct {
	Pos        vector.V3
	Size       float64
	Brightness float64
	Rate       float64
	Tint       colorful.Color
	Steady     bool // drawn at constant brightness and size
}

// Flicker is the flicker factor in [0, 1] at time t.
func (s Star) Flicker(t float64) float64 {
	if s.Steady {
		return 1
	}
	return 0.5 + 0.5*math.Sin(t*s.Rate)
}

// Alpha is the displayed opacity at time t.
func (s Star) Alpha(t float64) float64 {
	return s.Brightness * s.Flicker(t)
}

// DisplaySize is the displayed point size at time t.
func (s Star) DisplaySize(t float64) float64 {
	if s.Steady {
		return s.Size
	}
	return s.Size * (1 + 0.5*s.Flicker(t))
}

type Field struct {
	Seed  int64
	Stars []Star
}

// TimeSeed derives a seed from the wall clock.
func TimeSeed() int64 {
	return time.Now().UnixNano()
}

// Generate places n stars using a source seeded with seed. The same seed
// always yields the same field.
func Generate(n int, seed int64) Field {
	if n < 0 {
		n = 0
	}
	rnd := rand.New(rand.NewSource(seed))
	between := func(lo, hi float64) float64 {
		return lo + (hi-lo)*rnd.Float64()
	}

	f := Field{Seed: seed, Stars: make([]Star, n)}
	for i := range f.Stars {
		s := &f.Stars[i]
		s.Pos = vector.V3{
			X: between(-HalfWidth, HalfWidth),
			Y: between(-HalfWidth, HalfWidth),
			Z: between(-HalfWidth, HalfWidth),
		}
		s.Size = between(MinSize, MaxSize)
		s.Brightness = between(MinBrightness, MaxBrightness)
		s.Rate = between(MinFlicker, MaxFlicker)
		// Mostly white, leaning slightly blue or orange.
		s.Tint = colorful.Hcl(between(30, 260), between(0, 0.12), 0.95).Clamped()
	}

	return f
}

// Bright returns the foreground stars: the first BrightCount stars in
// generation order, pushed out to BrightScale times their distance.
func (f Field) Bright() []Star {
	n := BrightCount
	if n > len(f.Stars) {
		n = len(f.Stars)
	}

	r := make([]Star, n)
	for i, s := range f.Stars[:n] {
		s.Pos = s.Pos.Scaled(BrightScale)
		s.Brightness = 1
		s.Size = BrightSize
		s.Steady = true
		r[i] = s
	}
	return r
}
