package camera

import (
	"math"

	"git.c3pb.de/farhaven/solarsystem/vector"
)

type FrustumCheckResult int

const (
	INSIDE FrustumCheckResult = iota
	OUTSIDE
	INTERSECT
)

func (r FrustumCheckResult) String() string {
	switch r {
	case INSIDE:
		return "INSIDE"
	case OUTSIDE:
		return "OUTSIDE"
	case INTERSECT:
		return "INTERSECT"
	default:
		return "UNKNOWN"
	}
}

// Frustum is the viewing volume of a perspective projection, used to skip
// drawing bodies the camera can't see.
type Frustum struct {
	FovY         float64 // degrees
	Aspect       float64
	ZNear, ZFar  float64
	nearH, nearW float64
	planes       []vector.Plane
}

func NewFrustum(fovY, zNear, zFar float64, width, height int) *Frustum {
	f := &Frustum{FovY: fovY, ZNear: zNear, ZFar: zFar}
	f.Resize(width, height)
	return f
}

// Resize recomputes the aspect ratio. A zero height is treated as one.
func (f *Frustum) Resize(width, height int) {
	if height <= 0 {
		height = 1
	}
	f.Aspect = float64(width) / float64(height)

	t := math.Tan(f.FovY / 360 * math.Pi)
	f.nearH = t * f.ZNear
	f.nearW = f.nearH * f.Aspect
}

// Update rebuilds the clip planes for a camera at pos looking at at, with Y
// up. Plane normals point into the frustum.
func (f *Frustum) Update(pos, at vector.V3) {
	up := vector.V3{Y: 1}

	fw := at.Sub(pos).Normalized()
	side := fw.Cross(up).Normalized()
	if side.Length() == 0 {
		// Looking straight up or down.
		side = vector.V3{X: 1}
	}
	up = side.Cross(fw).Normalized()

	nc := pos.Add(fw.Scaled(f.ZNear))
	fc := pos.Add(fw.Scaled(f.ZFar))

	planes := []vector.Plane{
		{fw, nc},            // NEARP
		{fw.Scaled(-1), fc}, // FARP
	}

	nh, nw := f.nearH, f.nearW

	// TOP
	aux := nc.Add(up.Scaled(nh)).Sub(pos).Normalized()
	planes = append(planes, vector.Plane{aux.Cross(side).Normalized(), nc.Add(up.Scaled(nh))})

	// BOTTOM
	aux = nc.Sub(up.Scaled(nh)).Sub(pos).Normalized()
	planes = append(planes, vector.Plane{side.Cross(aux).Normalized(), nc.Sub(up.Scaled(nh))})

	// LEFT
	aux = nc.Sub(side.Scaled(nw)).Sub(pos).Normalized()
	planes = append(planes, vector.Plane{aux.Cross(up).Normalized(), nc.Sub(side.Scaled(nw))})

	// RIGHT
	aux = nc.Add(side.Scaled(nw)).Sub(pos).Normalized()
	planes = append(planes, vector.Plane{up.Cross(aux).Normalized(), nc.Add(side.Scaled(nw))})

	f.planes = planes
}

// SphereIn classifies a sphere at p with radius r against the frustum.
// Before the first Update everything is inside.
func (f *Frustum) SphereIn(p vector.V3, r float64) FrustumCheckResult {
	rv := INSIDE

	for _, pl := range f.planes {
		d := pl.Distance(p)
		if d < -r {
			return OUTSIDE
		} else if d < r {
			rv = INTERSECT
		}
	}

	return rv
}
