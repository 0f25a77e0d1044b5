package ui

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/lucasb-eyer/go-colorful"

	"git.c3pb.de/farhaven/solarsystem/camera"
	"git.c3pb.de/farhaven/solarsystem/mesh"
	"git.c3pb.de/farhaven/solarsystem/orrery"
	"git.c3pb.de/farhaven/solarsystem/starfield"
	"git.c3pb.de/farhaven/solarsystem/textures"
	"git.c3pb.de/farhaven/solarsystem/ui/text"
	"git.c3pb.de/farhaven/solarsystem/vector"
)

func init() {
	/* GLFW wants to run on the main thread */
	runtime.LockOSThread()
}

const (
	sphereSlices  = 40
	orbitSegments = 360
	ringSides     = 12
	ringSegments  = 64

	// Star sizes are scaled to pixels by this factor.
	starPointScale = 4
)

var (
	lightAmbient  = [4]float32{0.1, 0.1, 0.1, 1}
	lightDiffuse  = [4]float32{1, 1, 1, 1}
	lightSpecular = [4]float32{1, 1, 1, 1}
	lightPosition = [4]float32{0, 0, 0, 1}

	sunEmission      = [4]float32{1, 1, 0.9, 1}
	noEmission       = [4]float32{0, 0, 0, 1}
	planetAmbDiffuse = [4]float32{0.8, 0.8, 0.8, 1}
	planetSpecular   = [4]float32{0.1, 0.1, 0.1, 1}

	orbitColor = colorful.Color{R: 0.45, G: 0.5, B: 0.6}
)

type Options struct {
	Width, Height int
	Fullscreen    bool
	Title         string

	TextureDir string
	MaxTexture int

	Skybox   bool // draw the starscape texture instead of the starfield
	Orbits   bool
	Timestep float64
	Frame    time.Duration
}

// Scene is the state the renderer draws and advances.
type Scene struct {
	Orrery *orrery.Orrery
	Camera *camera.Controller
	Sun    orrery.Body
	Stars  starfield.Field
}

type DrawContext struct {
	opts  Options
	scene Scene

	win  *glfw.Window
	view *view
	tex  *textures.Store

	overlay *overlay

	sphere []mesh.Strip
	orbits [][]vector.V3
	rings  [][][]mesh.Strip // body, layer
	bright []starfield.Star

	windowed struct{ x, y, w, h int }
}

// NewDrawContext opens the window, sets up GL and loads all textures. A
// texture that fails to load is reported as a *textures.LoadError.
func NewDrawContext(opts Options, scene Scene) (*DrawContext, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf(`can't init GLFW: %w`, err)
	}

	ctx := &DrawContext{opts: opts, scene: scene}
	ctx.windowed.x, ctx.windowed.y = 100, 100
	ctx.windowed.w, ctx.windowed.h = opts.Width, opts.Height

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	var mon *glfw.Monitor
	width, height := opts.Width, opts.Height
	if opts.Fullscreen {
		mon = glfw.GetPrimaryMonitor()
		if mode := mon.GetVideoMode(); mode != nil {
			width, height = mode.Width, mode.Height
		}
	}

	w, err := glfw.CreateWindow(width, height, opts.Title, mon, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf(`can't create window: %w`, err)
	}
	ctx.win = w
	w.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		ctx.destroyWindow()
		return nil, fmt.Errorf(`can't init GL: %w`, err)
	}
	slog.Info(`GL ready`, `version`, gl.GoStr(gl.GetString(gl.VERSION)), `renderer`, gl.GoStr(gl.GetString(gl.RENDERER)))

	initGL()

	store, err := textures.Load(opts.TextureDir, textures.Names, glUploader{}, textures.Options{MaxSize: opts.MaxTexture, FlipY: true})
	if err != nil {
		ctx.destroyWindow()
		return nil, err
	}
	ctx.tex = store
	slog.Info(`textures loaded`, `count`, store.Len(), `dir`, opts.TextureDir)

	fbw, fbh := w.GetFramebufferSize()
	ctx.view = newView(fbw, fbh)
	ctx.overlay = newOverlay(text.NewDefaultContext())
	ctx.buildMeshes()

	w.SetFramebufferSizeCallback(ctx.onResize)
	w.SetKeyCallback(ctx.onKey)

	return ctx, nil
}

func initGL() {
	gl.ClearColor(0, 0, 0, 1)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.LIGHTING)
	gl.Enable(gl.LIGHT0)
	gl.Enable(gl.NORMALIZE)
	gl.Hint(gl.PERSPECTIVE_CORRECTION_HINT, gl.NICEST)

	gl.Lightfv(gl.LIGHT0, gl.AMBIENT, &lightAmbient[0])
	gl.Lightfv(gl.LIGHT0, gl.DIFFUSE, &lightDiffuse[0])
	gl.Lightfv(gl.LIGHT0, gl.SPECULAR, &lightSpecular[0])

	gl.Enable(gl.COLOR_MATERIAL)
	gl.ColorMaterial(gl.FRONT, gl.AMBIENT_AND_DIFFUSE)
}

func (ctx *DrawContext) buildMeshes() {
	ctx.sphere = mesh.Sphere(sphereSlices, sphereSlices)

	o := ctx.scene.Orrery
	ctx.orbits = make([][]vector.V3, o.Len())
	ctx.rings = make([][][]mesh.Strip, o.Len())
	for i := 0; i < o.Len(); i++ {
		b, _ := o.Body(i)
		ctx.orbits[i] = mesh.Circle(b.OrbitalRadius, orbitSegments)

		if !b.HasRings {
			continue
		}
		for k := 0; k < b.Ring.Layers; k++ {
			radius, tube, _ := b.Ring.Layer(k, b.VisualRadius)
			ctx.rings[i] = append(ctx.rings[i], mesh.Torus(tube, radius, ringSides, ringSegments))
		}
	}

	ctx.bright = ctx.scene.Stars.Bright()
}

// Run draws frames at a fixed interval until the window is closed, then
// releases everything.
func (ctx *DrawContext) Run() {
	defer ctx.Shutdown()

	for !ctx.win.ShouldClose() {
		start := time.Now()

		ctx.drawFrame()
		ctx.win.SwapBuffers()
		glfw.PollEvents()

		delay := ctx.opts.Frame - time.Since(start)
		if delay <= 0 {
			delay = time.Millisecond
		}
		time.Sleep(delay)
	}
}

// Shutdown releases textures and closes the window.
func (ctx *DrawContext) Shutdown() {
	if ctx.overlay != nil {
		ctx.overlay.release()
	}
	if ctx.tex != nil {
		ctx.tex.Close()
	}
	ctx.destroyWindow()
	slog.Info(`window closed`)
}

func (ctx *DrawContext) destroyWindow() {
	if ctx.win != nil {
		ctx.win.Destroy()
		ctx.win = nil
	}
	glfw.Terminate()
}

func (ctx *DrawContext) drawFrame() {
	o, cam := ctx.scene.Orrery, ctx.scene.Camera

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	ctx.drawBackground()

	cam.Advance(o)
	ctx.view.lookAt(cam.Position, cam.LookTarget)
	gl.Lightfv(gl.LIGHT0, gl.POSITION, &lightPosition[0])

	ctx.drawSun()

	if ctx.opts.Orbits {
		for i := 0; i < o.Len(); i++ {
			ctx.drawOrbit(i)
		}
	}

	o.Advance(ctx.opts.Timestep)
	for i := 0; i < o.Len(); i++ {
		ctx.drawPlanet(i)
	}

	i, ok := cam.Followed()
	ctx.overlay.setFollowed(o, i, ok)
	ctx.overlay.draw(ctx.view)
}

func (ctx *DrawContext) drawBackground() {
	gl.PushAttrib(gl.ENABLE_BIT | gl.CURRENT_BIT | gl.COLOR_BUFFER_BIT | gl.POINT_BIT)
	defer gl.PopAttrib()

	gl.Disable(gl.LIGHTING)
	gl.Disable(gl.DEPTH_TEST)

	if ctx.opts.Skybox {
		ctx.drawSkybox()
		return
	}

	cam := ctx.scene.Camera
	ctx.view.lookAt(cam.Position, cam.LookTarget)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.POINT_SMOOTH)

	t := float64(ctx.scene.Orrery.Ticks())
	for _, s := range ctx.scene.Stars.Stars {
		drawStar(s, s.DisplaySize(t)*starPointScale, s.Alpha(t))
	}
	for _, s := range ctx.bright {
		drawStar(s, s.DisplaySize(t), s.Alpha(t))
	}
}

func drawStar(s starfield.Star, size, alpha float64) {
	gl.PointSize(float32(size))
	gl.Color4d(s.Tint.R, s.Tint.G, s.Tint.B, alpha)
	gl.Begin(gl.POINTS)
	gl.Vertex3d(s.Pos.X, s.Pos.Y, s.Pos.Z)
	gl.End()
}

func (ctx *DrawContext) drawSkybox() {
	tex := ctx.tex.Handle(textures.Skybox)
	if tex == 0 {
		return
	}

	gl.MatrixMode(gl.PROJECTION)
	gl.PushMatrix()
	gl.LoadIdentity()
	gl.Ortho(-1, 1, -1, 1, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.LoadIdentity()

	gl.Enable(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.Color3f(1, 1, 1)

	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(-1, -1)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(1, -1)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(1, 1)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(-1, 1)
	gl.End()

	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.PopMatrix()
	gl.MatrixMode(gl.PROJECTION)
	gl.PopMatrix()
	gl.MatrixMode(gl.MODELVIEW)
}

func (ctx *DrawContext) drawSun() {
	sun := ctx.scene.Sun

	gl.PushMatrix()
	defer gl.PopMatrix()

	gl.Rotated(90, 1, 0, 0)
	gl.Materialfv(gl.FRONT, gl.EMISSION, &sunEmission[0])
	ctx.drawSphere(ctx.tex.Handle(sun.Texture), sun.VisualRadius)
	gl.Materialfv(gl.FRONT, gl.EMISSION, &noEmission[0])
}

func (ctx *DrawContext) drawOrbit(i int) {
	if i < 0 || i >= len(ctx.orbits) {
		return
	}

	gl.PushAttrib(gl.ENABLE_BIT | gl.CURRENT_BIT | gl.COLOR_BUFFER_BIT)
	defer gl.PopAttrib()

	gl.Disable(gl.LIGHTING)
	gl.Disable(gl.TEXTURE_2D)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Color4d(orbitColor.R, orbitColor.G, orbitColor.B, 0.35)

	gl.Begin(gl.LINE_LOOP)
	for _, p := range ctx.orbits[i] {
		gl.Vertex3d(p.X, p.Y, p.Z)
	}
	gl.End()
}

func (ctx *DrawContext) drawPlanet(i int) {
	o := ctx.scene.Orrery
	b, ok := o.Body(i)
	if !ok {
		return
	}
	s, _ := o.State(i)
	pos, _ := o.Position(i)

	extent := b.VisualRadius
	if b.HasRings {
		r, tube, _ := b.Ring.Layer(b.Ring.Layers-1, b.VisualRadius)
		extent = max(extent, r+tube)
	}
	if !ctx.view.visible(pos, extent) {
		return
	}

	gl.PushMatrix()
	defer gl.PopMatrix()

	gl.Translated(pos.X, pos.Y, pos.Z)
	gl.Rotated(90, 1, 0, 0)
	gl.Rotated(s.SpinAngle, 0, 0, 1)

	gl.Materialfv(gl.FRONT, gl.AMBIENT_AND_DIFFUSE, &planetAmbDiffuse[0])
	gl.Materialfv(gl.FRONT, gl.SPECULAR, &planetSpecular[0])
	gl.Materialf(gl.FRONT, gl.SHININESS, 10)

	ctx.drawSphere(ctx.tex.Handle(b.Texture), b.VisualRadius)

	if b.HasRings {
		ctx.drawRings(i, b.Ring, s.SpinAngle)
	}
}

// drawRings draws the ring layers of body i in its equatorial plane. The
// current matrix has to be the body's, spun by spin degrees.
func (ctx *DrawContext) drawRings(i int, rg orrery.Ring, spin float64) {
	gl.PushAttrib(gl.ENABLE_BIT | gl.CURRENT_BIT | gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	defer gl.PopAttrib()

	gl.Disable(gl.LIGHTING)
	gl.Disable(gl.TEXTURE_2D)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)

	gl.PushMatrix()
	defer gl.PopMatrix()
	// Rings turn at their own pace, not with the body.
	gl.Rotated(ctx.scene.Orrery.RingAngle()-spin, 0, 0, 1)

	for k, layer := range ctx.rings[i] {
		_, _, alpha := rg.Layer(k, 1)
		gl.Color4d(rg.Color.R, rg.Color.G, rg.Color.B, alpha)
		drawStrips(layer, false)
	}
}

func (ctx *DrawContext) drawSphere(tex uint32, r float64) {
	gl.PushMatrix()
	defer gl.PopMatrix()

	if tex != 0 {
		gl.Enable(gl.TEXTURE_2D)
		gl.BindTexture(gl.TEXTURE_2D, tex)
		defer gl.Disable(gl.TEXTURE_2D)
	}
	gl.Color3f(1, 1, 1)

	gl.Scaled(r, r, r)
	drawStrips(ctx.sphere, true)

	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func drawStrips(strips []mesh.Strip, textured bool) {
	for _, s := range strips {
		gl.Begin(gl.QUAD_STRIP)
		for _, v := range s {
			gl.Normal3d(v.Normal.X, v.Normal.Y, v.Normal.Z)
			if textured {
				gl.TexCoord2d(v.U, v.V)
			}
			gl.Vertex3d(v.Pos.X, v.Pos.Y, v.Pos.Z)
		}
		gl.End()
	}
}

func (ctx *DrawContext) onResize(w *glfw.Window, width, height int) {
	ctx.view.resize(width, height)
	slog.Debug(`framebuffer resized`, `width`, width, `height`, height)
}

func (ctx *DrawContext) toggleFullscreen() {
	if ctx.win.GetMonitor() != nil {
		ww := ctx.windowed
		ctx.win.SetMonitor(nil, ww.x, ww.y, ww.w, ww.h, 0)
		slog.Debug(`left fullscreen`)
		return
	}

	ctx.windowed.x, ctx.windowed.y = ctx.win.GetPos()
	ctx.windowed.w, ctx.windowed.h = ctx.win.GetSize()

	mon := glfw.GetPrimaryMonitor()
	mode := mon.GetVideoMode()
	if mode == nil {
		return
	}
	ctx.win.SetMonitor(mon, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	slog.Debug(`entered fullscreen`, `width`, mode.Width, `height`, mode.Height)
}
