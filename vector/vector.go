package vector

import (
	"fmt"
	"math"
)

// V3 is a point or direction in world space. Y is up.
type V3 struct {
	X, Y, Z float64
}

func (v V3) String() string {
	return fmt.Sprintf(`(%.2f, %.2f, %.2f)`, v.X, v.Y, v.Z)
}

func (v V3) anyNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

func (v V3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v V3) Dot(o V3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v V3) Cross(o V3) V3 {
	if v.anyNaN() || o.anyNaN() {
		panic(fmt.Sprintf(`NaN in cross product %s x %s`, v, o))
	}
	return V3{
		v.Y*o.Z - o.Y*v.Z,
		o.X*v.Z - v.X*o.Z,
		v.X*o.Y - o.X*v.Y,
	}
}

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v V3) Normalized() V3 {
	if v.anyNaN() {
		panic(`NaN v`)
	}
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scaled(1 / l)
}

func (v V3) Sub(o V3) V3 {
	return V3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v V3) Add(o V3) V3 {
	return V3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v V3) Scaled(n float64) V3 {
	return V3{v.X * n, v.Y * n, v.Z * n}
}

func (v V3) Distance(o V3) float64 {
	return v.Sub(o).Length()
}

// Lerp moves v towards o by fraction f of the remaining difference.
func (v V3) Lerp(o V3, f float64) V3 {
	return v.Add(o.Sub(v).Scaled(f))
}

// Within reports whether every axis of v is closer than eps to o.
func (v V3) Within(o V3, eps float64) bool {
	d := v.Sub(o)
	return math.Abs(d.X) < eps && math.Abs(d.Y) < eps && math.Abs(d.Z) < eps
}

type Plane [2]V3 // Normal, Point on plane

// Distance is the signed distance of px from the plane, positive on the
// side the normal points to.
func (p Plane) Distance(px V3) float64 {
	n := p[0]
	p0 := p[1]

	D := n.Scaled(-1).Dot(p0)

	return n.Dot(px) + D
}
