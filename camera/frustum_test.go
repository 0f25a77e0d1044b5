package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.c3pb.de/farhaven/solarsystem/vector"
)

func TestSphereInFrustum(t *testing.T) {
	f := NewFrustum(75, 0.1, 500, 1920, 1080)
	f.Update(vector.V3{Y: 15, Z: 60}, vector.V3{})

	cases := []struct {
		p    vector.V3
		r    float64
		want FrustumCheckResult
	}{
		{vector.V3{}, 3, INSIDE},
		{vector.V3{X: 20}, 1, INSIDE},
		{vector.V3{Z: 100}, 1, OUTSIDE},   // behind the camera
		{vector.V3{Z: -1000}, 1, OUTSIDE}, // beyond the far plane
		{vector.V3{X: 500}, 1, OUTSIDE},   // far off to the side
		{vector.V3{Y: 15, Z: 60}, 1, INTERSECT},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, f.SphereIn(c.p, c.r), c.p.String())
	}
}

func TestFrustumBeforeUpdate(t *testing.T) {
	f := NewFrustum(60, 0.5, 100, 800, 600)
	assert.Equal(t, INSIDE, f.SphereIn(vector.V3{X: 1e6}, 1))
}

func TestFrustumResize(t *testing.T) {
	f := NewFrustum(60, 0.5, 100, 800, 0)
	assert.Equal(t, 800.0, f.Aspect)

	f.Resize(1600, 800)
	assert.Equal(t, 2.0, f.Aspect)

	// A wider window sees further to the side.
	f.Update(vector.V3{Z: 50}, vector.V3{})
	wide := f.SphereIn(vector.V3{X: 40}, 0.5)
	f.Resize(400, 800)
	f.Update(vector.V3{Z: 50}, vector.V3{})
	narrow := f.SphereIn(vector.V3{X: 40}, 0.5)

	assert.Equal(t, INSIDE, wide)
	assert.Equal(t, OUTSIDE, narrow)
}

func TestFrustumLookingStraightDown(t *testing.T) {
	f := NewFrustum(60, 0.5, 100, 800, 600)
	f.Update(vector.V3{Y: 50}, vector.V3{})
	assert.Equal(t, INSIDE, f.SphereIn(vector.V3{}, 1))
}

func TestFrustumCheckResultString(t *testing.T) {
	assert.Equal(t, "INTERSECT", INTERSECT.String())
	assert.Equal(t, "UNKNOWN", FrustumCheckResult(7).String())
}
