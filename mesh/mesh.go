// Package mesh tessellates the few shapes the scene is built from. Shapes
// come out as strips of vertices ready to be fed to QUAD_STRIP or LINE_LOOP
// primitives.
package mesh

import (
	"math"

	"git.c3pb.de/farhaven/solarsystem/vector"
)

type Vertex struct {
	Pos    vector.V3
	Normal vector.V3
	U, V   float64
}

type Strip []Vertex

// Sphere returns a unit sphere around the Z axis as one quad strip per
// stack. Texture U runs with longitude, V from the south pole to the north.
func Sphere(slices, stacks int) []Strip {
	slices = max(3, slices)
	stacks = max(2, stacks)

	strips := make([]Strip, 0, stacks)
	for i := 0; i < stacks; i++ {
		lat0 := math.Pi * (-0.5 + float64(i)/float64(stacks))
		z0, zr0 := math.Sin(lat0), math.Cos(lat0)

		lat1 := math.Pi * (-0.5 + float64(i+1)/float64(stacks))
		z1, zr1 := math.Sin(lat1), math.Cos(lat1)

		s := make(Strip, 0, 2*(slices+1))
		for j := 0; j <= slices; j++ {
			lng := 2 * math.Pi * float64(j) / float64(slices)
			x, y := math.Cos(lng), math.Sin(lng)
			u := float64(j) / float64(slices)

			p0 := vector.V3{X: x * zr0, Y: y * zr0, Z: z0}
			p1 := vector.V3{X: x * zr1, Y: y * zr1, Z: z1}
			s = append(s,
				Vertex{Pos: p0, Normal: p0, U: u, V: float64(i) / float64(stacks)},
				Vertex{Pos: p1, Normal: p1, U: u, V: float64(i+1) / float64(stacks)},
			)
		}
		strips = append(strips, s)
	}
	return strips
}

// Torus returns a torus in the XY plane centred on the origin. radius is the
// distance from the centre to the middle of the tube.
func Torus(tube, radius float64, sides, rings int) []Strip {
	sides = max(3, sides)
	rings = max(3, rings)

	strips := make([]Strip, 0, rings)
	for i := 0; i < rings; i++ {
		s := make(Strip, 0, 2*(sides+1))
		for j := 0; j <= sides; j++ {
			phi := 2 * math.Pi * float64(j) / float64(sides)
			for _, k := range []int{i, i + 1} {
				theta := 2 * math.Pi * float64(k) / float64(rings)
				ct, st := math.Cos(theta), math.Sin(theta)
				cp, sp := math.Cos(phi), math.Sin(phi)

				n := vector.V3{X: ct * cp, Y: st * cp, Z: sp}
				p := vector.V3{X: ct * radius, Y: st * radius}.Add(n.Scaled(tube))
				s = append(s, Vertex{
					Pos:    p,
					Normal: n,
					U:      float64(k) / float64(rings),
					V:      float64(j) / float64(sides),
				})
			}
		}
		strips = append(strips, s)
	}
	return strips
}

// Circle returns segments points on a circle of radius r in the XZ plane,
// starting on the positive Z axis and running the same way planets orbit.
func Circle(r float64, segments int) []vector.V3 {
	segments = max(3, segments)

	pts := make([]vector.V3, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = vector.V3{X: -r * math.Sin(a), Z: r * math.Cos(a)}
	}
	return pts
}
