// Package text rasterizes overlay text into RGBA images that can be
// uploaded as textures.
package text

import (
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const dpi = 96

type Context struct {
	ft  *freetype.Context
	fnt *truetype.Font
}

// NewContext parses a TrueType font.
func NewContext(ttf []byte) (*Context, error) {
	fnt, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, err
	}

	ctx := freetype.NewContext()
	ctx.SetFont(fnt)
	/* XXX: get appropriate DPI for current display */
	ctx.SetDPI(dpi)
	ctx.SetHinting(font.HintingFull)

	return &Context{ctx, fnt}, nil
}

// NewContextFromFile loads the font at path.
func NewContextFromFile(path string) (*Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewContext(data)
}

// NewDefaultContext uses the built-in Go Regular font.
func NewDefaultContext() *Context {
	c, err := NewContext(goregular.TTF)
	if err != nil {
		panic(`can't parse built-in font: ` + err.Error())
	}
	return c
}

func (c *Context) face(size float64) font.Face {
	return truetype.NewFace(c.fnt, &truetype.Options{Size: size, DPI: dpi, Hinting: font.HintingFull})
}

// Render draws a single line of text on a transparent background.
func (c *Context) Render(txt string, size float64, col color.Color) (*image.RGBA, error) {
	face := c.face(size)
	defer face.Close()

	m := face.Metrics()
	w := font.MeasureString(face, txt).Ceil()
	h := (m.Ascent + m.Descent).Ceil()

	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	c.ft.SetFontSize(size)
	c.ft.SetSrc(image.NewUniform(col))
	c.ft.SetDst(dst)
	c.ft.SetClip(dst.Bounds())

	if _, err := c.ft.DrawString(txt, fixed.Point26_6{Y: m.Ascent}); err != nil {
		return nil, err
	}

	return dst, nil
}

// RenderMultiline stacks lines on top of each other on a bg coloured
// panel with pad pixels of margin.
func (c *Context) RenderMultiline(txt []string, size float64, pad int, bg, fg color.Color) (*image.RGBA, error) {
	w, h := 0, 0
	imgs := []*image.RGBA{}

	for _, l := range txt {
		i, err := c.Render(l, size, fg)
		if err != nil {
			return nil, err
		}
		if i.Bounds().Dx() > w {
			w = i.Bounds().Dx()
		}
		h += i.Bounds().Dy()
		imgs = append(imgs, i)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w+2*pad, h+2*pad))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	y := pad
	for _, src := range imgs {
		sr := src.Bounds()
		dp := image.Point{pad, y}
		r := image.Rectangle{dp, dp.Add(sr.Size())}
		draw.Draw(dst, r, src, sr.Min, draw.Over)
		y += sr.Dy()
	}

	return dst, nil
}
