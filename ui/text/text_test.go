package text

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inked(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestNewContext(t *testing.T) {
	_, err := NewContext([]byte(`not a font`))
	assert.Error(t, err)

	_, err = NewContextFromFile(filepath.Join(t.TempDir(), `missing.ttf`))
	assert.Error(t, err)

	assert.NotNil(t, NewDefaultContext())
}

func TestRender(t *testing.T) {
	c := NewDefaultContext()

	img, err := c.Render(`Saturn`, 20, color.White)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 20)
	assert.Greater(t, img.Bounds().Dy(), 10)
	assert.Greater(t, inked(img), 0)

	longer, err := c.Render(`Saturn has rings`, 20, color.White)
	require.NoError(t, err)
	assert.Greater(t, longer.Bounds().Dx(), img.Bounds().Dx())
	assert.Equal(t, img.Bounds().Dy(), longer.Bounds().Dy())

	bigger, err := c.Render(`Saturn`, 40, color.White)
	require.NoError(t, err)
	assert.Greater(t, bigger.Bounds().Dy(), img.Bounds().Dy())
}

func TestRenderEmpty(t *testing.T) {
	img, err := NewDefaultContext().Render(``, 20, color.White)
	require.NoError(t, err)
	assert.Zero(t, img.Bounds().Dx())
	assert.Zero(t, inked(img))
}

func TestRenderMultiline(t *testing.T) {
	c := NewDefaultContext()

	bg := color.RGBA{0, 0, 0, 160}
	fg := color.RGBA{0, 255, 255, 255}
	lines := []string{`Jupiter`, `Largest planet in the Solar System`, `☺`}

	img, err := c.RenderMultiline(lines, 16, 4, bg, fg)
	require.NoError(t, err)

	one, err := c.Render(lines[1], 16, fg)
	require.NoError(t, err)

	assert.Equal(t, one.Bounds().Dx()+8, img.Bounds().Dx())
	assert.Equal(t, 3*one.Bounds().Dy()+8, img.Bounds().Dy())

	// Margin keeps the background colour.
	assert.Equal(t, bg, img.RGBAAt(0, 0))
	assert.Equal(t, bg, img.RGBAAt(img.Bounds().Dx()-1, img.Bounds().Dy()-1))
}

func TestRenderMultilineEmpty(t *testing.T) {
	img, err := NewDefaultContext().RenderMultiline(nil, 16, 2, color.Black, color.White)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
}
