package orrery

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Body is the static description of a celestial body. Distances and sizes
// are in scene units, periods in simulated time units.
type Body struct {
	Name           string
	Texture        string
	OrbitalRadius  float64
	VisualRadius   float64
	OrbitalPeriod  float64
	RotationPeriod float64
	HasRings       bool
	Ring           Ring
	Facts          []string
}

// Ring describes layered ring geometry around a body. Radius and Width are
// relative to the body's visual radius.
type Ring struct {
	Color   colorful.Color
	Radius  float64
	Width   float64
	Spacing float64
	Layers  int
}

// Layer returns the torus parameters of ring layer k, scaled by the visual
// radius r of the owning body. Outer layers get thinner and fainter.
func (rg Ring) Layer(k int, r float64) (radius, tube, alpha float64) {
	if k < 0 || k >= rg.Layers {
		return 0, 0, 0
	}
	f := 1 - float64(k)/float64(rg.Layers+1)
	radius = (rg.Radius + float64(k)*rg.Spacing) * r
	tube = rg.Width * f * r
	alpha = 0.9 * f
	return
}

// MaxFacts is the number of fact lines shown in the overlay.
const MaxFacts = 3

var Sun = Body{
	Name:         "Sun",
	Texture:      "Sun.jpg",
	VisualRadius: 3.0,
	Facts: []string{
		"G-type main-sequence star",
		"Holds 99.8% of the Solar System's mass",
		"Surface temperature about 5,500 °C",
	},
}

// Planets is the default body table in drawing order.
var Planets = []Body{
	{
		Name: "Mercury", Texture: "Mercury.jpg",
		OrbitalRadius: 6, VisualRadius: 0.3, OrbitalPeriod: 3, RotationPeriod: 1,
		Facts: []string{
			"Smallest planet, closest to the Sun",
			"A year lasts 88 Earth days",
			"No atmosphere to retain heat",
		},
	},
	{
		Name: "Venus", Texture: "Venus.jpg",
		OrbitalRadius: 10, VisualRadius: 0.6, OrbitalPeriod: 6, RotationPeriod: 1.5,
		Facts: []string{
			"Hottest planet at about 465 °C",
			"Rotates backwards compared to most planets",
			"Thick carbon dioxide atmosphere",
		},
	},
	{
		Name: "Earth", Texture: "Earth.jpg",
		OrbitalRadius: 14, VisualRadius: 0.8, OrbitalPeriod: 8, RotationPeriod: 2,
		Facts: []string{
			"Only known planet with life",
			"71% of the surface is water",
			"One natural satellite, the Moon",
		},
	},
	{
		Name: "Mars", Texture: "Mars.jpg",
		OrbitalRadius: 20, VisualRadius: 1.0, OrbitalPeriod: 12, RotationPeriod: 2.5,
		Facts: []string{
			"Home of Olympus Mons",
			"Red colour comes from iron oxide",
			"Two small moons, Phobos and Deimos",
		},
	},
	{
		Name: "Jupiter", Texture: "Jupiter.jpg",
		OrbitalRadius: 30, VisualRadius: 1.8, OrbitalPeriod: 24, RotationPeriod: 3,
		HasRings: true,
		Ring: Ring{
			Color:   colorful.Color{R: 0.7, G: 0.5, B: 0.3},
			Radius:  1.2,
			Width:   0.05,
			Spacing: 0.08,
			Layers:  2,
		},
		Facts: []string{
			"Largest planet in the Solar System",
			"The Great Red Spot is a centuries-old storm",
			"Faint ring system of dust",
		},
	},
	{
		Name: "Saturn", Texture: "Saturn.jpg",
		OrbitalRadius: 40, VisualRadius: 1.5, OrbitalPeriod: 30, RotationPeriod: 3.5,
		HasRings: true,
		Ring: Ring{
			Color:   colorful.Color{R: 0.9, G: 0.9, B: 0.95},
			Radius:  1.6,
			Width:   0.12,
			Spacing: 0.3,
			Layers:  4,
		},
		Facts: []string{
			"Rings made mostly of ice and rock",
			"Less dense than water",
			"Over 140 known moons",
		},
	},
	{
		Name: "Uranus", Texture: "Uranus.jpg",
		OrbitalRadius: 50, VisualRadius: 1.2, OrbitalPeriod: 40, RotationPeriod: 4,
		Facts: []string{
			"Rotates on its side",
			"Coldest planetary atmosphere",
			"First planet found with a telescope",
		},
	},
}

// Validate checks the invariants every body in a table must hold before it
// can be animated.
func Validate(bodies []Body) error {
	for i, b := range bodies {
		switch {
		case b.OrbitalRadius <= 0:
			return fmt.Errorf(`body %d (%s): orbital radius must be positive, got %v`, i, b.Name, b.OrbitalRadius)
		case b.VisualRadius <= 0:
			return fmt.Errorf(`body %d (%s): visual radius must be positive, got %v`, i, b.Name, b.VisualRadius)
		case b.OrbitalPeriod <= 0:
			return fmt.Errorf(`body %d (%s): orbital period must be positive, got %v`, i, b.Name, b.OrbitalPeriod)
		case b.RotationPeriod <= 0:
			return fmt.Errorf(`body %d (%s): rotation period must be positive, got %v`, i, b.Name, b.RotationPeriod)
		case len(b.Facts) > MaxFacts:
			return fmt.Errorf(`body %d (%s): at most %d facts, got %d`, i, b.Name, MaxFacts, len(b.Facts))
		case b.HasRings && b.Ring.Layers <= 0:
			return fmt.Errorf(`body %d (%s): ringed body needs at least one ring layer`, i, b.Name)
		}
	}
	return nil
}
