package ui

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/lucasb-eyer/go-colorful"

	"git.c3pb.de/farhaven/solarsystem/orrery"
	"git.c3pb.de/farhaven/solarsystem/ui/text"
)

const (
	overlayMargin = 16
	overlayPad    = 8
	titleSize     = 20
	factSize      = 14
)

var (
	overlayBackground = color.RGBA{0, 0, 0, 150}
	overlayTitle, _   = colorful.Hex("#ffd27f")
	overlayText, _    = colorful.Hex("#00ffff")
)

var helpLines = []string{
	"1-7: follow planet   0/Q: free camera   Arrows, PgUp/PgDn: move   F: fullscreen",
}

// panel is a piece of text uploaded as a texture.
type panel struct {
	tex  uint32
	w, h int
}

func (p *panel) release() {
	glUploader{}.Release(p.tex)
	*p = panel{}
}

// overlay draws the info panel for the followed body and the help line.
// The body panel is only re-rendered when the followed body changes.
type overlay struct {
	txt *text.Context

	help    panel
	info    panel
	infoFor int
}

func newOverlay(txt *text.Context) *overlay {
	o := &overlay{txt: txt, infoFor: -1}

	img, err := txt.RenderMultiline(helpLines, factSize, overlayPad, overlayBackground, overlayText)
	if err != nil {
		slog.Warn(`can't render help text`, `err`, err)
		return o
	}
	o.help = upload(img)

	return o
}

func upload(img *image.RGBA) panel {
	id, err := glUploader{}.Upload(img)
	if err != nil {
		slog.Warn(`can't upload overlay`, `err`, err)
		return panel{}
	}
	return panel{tex: id, w: img.Bounds().Dx(), h: img.Bounds().Dy()}
}

// renderInfo builds the panel for body b: the name in a larger face and up
// to three fact lines below it.
func (o *overlay) renderInfo(b orrery.Body) (*image.RGBA, error) {
	title, err := o.txt.Render(b.Name, titleSize, overlayTitle)
	if err != nil {
		return nil, err
	}

	facts := b.Facts
	if len(facts) > orrery.MaxFacts {
		facts = facts[:orrery.MaxFacts]
	}
	body, err := o.txt.RenderMultiline(facts, factSize, 0, color.Transparent, overlayText)
	if err != nil {
		return nil, err
	}

	tb, bb := title.Bounds(), body.Bounds()
	w := max(tb.Dx(), bb.Dx()) + 2*overlayPad
	h := tb.Dy() + bb.Dy() + 2*overlayPad

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(dst, overlayBackground)
	blit(dst, title, image.Pt(overlayPad, overlayPad))
	blit(dst, body, image.Pt(overlayPad, overlayPad+tb.Dy()))

	return dst, nil
}

// setFollowed makes sure the info panel shows body i, or nothing if ok is
// false.
func (o *overlay) setFollowed(orr *orrery.Orrery, i int, ok bool) {
	if !ok {
		i = -1
	}
	if i == o.infoFor {
		return
	}

	o.info.release()
	o.infoFor = i
	if i < 0 {
		return
	}

	b, ok := orr.Body(i)
	if !ok {
		return
	}
	img, err := o.renderInfo(b)
	if err != nil {
		slog.Warn(`can't render body info`, `body`, b.Name, `err`, err)
		return
	}
	o.info = upload(img)
}

func (o *overlay) draw(v *view) {
	if o.info.tex == 0 && o.help.tex == 0 {
		return
	}

	restore := v.ortho()
	defer restore()

	gl.PushAttrib(gl.ENABLE_BIT | gl.CURRENT_BIT | gl.COLOR_BUFFER_BIT)
	defer gl.PopAttrib()

	gl.Disable(gl.LIGHTING)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.TEXTURE_2D)
	gl.Color4f(1, 1, 1, 1)

	drawPanel(o.info, overlayMargin, overlayMargin)
	drawPanel(o.help, overlayMargin, v.height-overlayMargin-o.help.h)
}

func (o *overlay) release() {
	o.info.release()
	o.help.release()
}

func drawPanel(p panel, x, y int) {
	if p.tex == 0 {
		return
	}

	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+p.w), float32(y+p.h)

	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(x0, y0)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(x1, y0)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(x1, y1)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(x0, y1)
	gl.End()
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func fill(dst *image.RGBA, c color.Color) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func blit(dst, src *image.RGBA, at image.Point) {
	sr := src.Bounds()
	draw.Draw(dst, image.Rectangle{Min: at, Max: at.Add(sr.Size())}, src, sr.Min, draw.Over)
}
