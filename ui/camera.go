package ui

import (
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl64"

	"git.c3pb.de/farhaven/solarsystem/camera"
	"git.c3pb.de/farhaven/solarsystem/vector"
)

const (
	fovY  = 75
	zNear = 0.1
	zFar  = 500
)

// view turns camera state into GL matrices and keeps the frustum used for
// culling in sync with them.
type view struct {
	width, height int
	frustum       *camera.Frustum
}

func newView(width, height int) *view {
	v := &view{frustum: camera.NewFrustum(fovY, zNear, zFar, width, height)}
	v.resize(width, height)
	return v
}

// resize has to be called in the GL thread.
func (v *view) resize(width, height int) {
	if height <= 0 {
		height = 1
	}
	v.width, v.height = width, height
	v.frustum.Resize(width, height)

	gl.Viewport(0, 0, int32(width), int32(height))
	v.loadProjection()
}

func (v *view) loadProjection() {
	p := mgl64.Perspective(mgl64.DegToRad(fovY), v.frustum.Aspect, zNear, zFar)

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixd(&p[0])
	gl.MatrixMode(gl.MODELVIEW)
}

// lookAt loads the modelview matrix for a camera at pos looking at at.
func (v *view) lookAt(pos, at vector.V3) {
	m := mgl64.LookAtV(
		mgl64.Vec3{pos.X, pos.Y, pos.Z},
		mgl64.Vec3{at.X, at.Y, at.Z},
		mgl64.Vec3{0, 1, 0},
	)

	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixd(&m[0])

	v.frustum.Update(pos, at)
}

func (v *view) visible(p vector.V3, r float64) bool {
	return v.frustum.SphereIn(p, r) != camera.OUTSIDE
}

// ortho switches to pixel coordinates with the origin in the top left
// corner. The returned function restores the previous matrices.
func (v *view) ortho() func() {
	gl.MatrixMode(gl.PROJECTION)
	gl.PushMatrix()
	gl.LoadIdentity()
	gl.Ortho(0, float64(v.width), float64(v.height), 0, -1, 1)

	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.LoadIdentity()

	return func() {
		gl.MatrixMode(gl.PROJECTION)
		gl.PopMatrix()
		gl.MatrixMode(gl.MODELVIEW)
		gl.PopMatrix()
	}
}
