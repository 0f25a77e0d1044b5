package textures

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	next     uint32
	live     map[uint32]*image.RGBA
	released []uint32
	failOn   int
	uploads  int
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{live: map[uint32]*image.RGBA{}, failOn: -1}
}

func (f *fakeUploader) Upload(img *image.RGBA) (uint32, error) {
	f.uploads++
	if f.uploads-1 == f.failOn {
		return 0, errors.New(`out of texture memory`)
	}
	f.next++
	f.live[f.next] = img
	return f.next, nil
}

func (f *fakeUploader) Release(h uint32) {
	delete(f.live, h)
	f.released = append(f.released, h)
}

func writeJPEG(t *testing.T, path string, w, h int) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 10), uint8(y * 10), 128, 255})
		}
	}

	fh, err := os.Create(path)
	require.NoError(t, err)
	defer fh.Close()
	require.NoError(t, jpeg.Encode(fh, img, nil))
}

func textureDir(t *testing.T) string {
	dir := t.TempDir()
	for _, n := range Names {
		writeJPEG(t, filepath.Join(dir, n), 8, 4)
	}
	return dir
}

func TestLoadAll(t *testing.T) {
	dir := textureDir(t)
	up := newFakeUploader()

	s, err := Load(dir, Names, up, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 9, s.Len())

	seen := map[uint32]bool{}
	for _, n := range Names {
		h := s.Handle(n)
		assert.NotZero(t, h, n)
		assert.False(t, seen[h], `duplicate handle for %s`, n)
		seen[h] = true
	}
	assert.Len(t, up.live, 9)

	assert.Zero(t, s.Handle(`Pluto.jpg`))
}

func TestLoadMissingFile(t *testing.T) {
	for _, missing := range []string{`Sun.jpg`, `Mars.jpg`, `starscape.jpg`} {
		dir := textureDir(t)
		require.NoError(t, os.Remove(filepath.Join(dir, missing)))
		up := newFakeUploader()

		s, err := Load(dir, Names, up, DefaultOptions())
		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), missing)

		var le *LoadError
		require.True(t, errors.As(err, &le))
		assert.Equal(t, missing, le.File)
		assert.True(t, errors.Is(err, os.ErrNotExist))

		assert.Empty(t, up.live, `handles loaded before the failure must be released`)
	}
}

func TestLoadNotAnImage(t *testing.T) {
	dir := textureDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, `Venus.jpg`), []byte(`hello, this is not a picture`), 0o644))

	_, err := Load(dir, Names, newFakeUploader(), DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotImage)
	assert.Contains(t, err.Error(), `Venus.jpg`)
}

func TestLoadCorruptImage(t *testing.T) {
	dir := textureDir(t)
	// A valid JPEG header followed by garbage.
	require.NoError(t, os.WriteFile(filepath.Join(dir, `Earth.jpg`), []byte{0xFF, 0xD8, 0xFF, 0xE0, 1, 2, 3}, 0o644))

	_, err := Load(dir, Names, newFakeUploader(), DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Earth.jpg`)
}

func TestLoadUploadFailure(t *testing.T) {
	dir := textureDir(t)
	up := newFakeUploader()
	up.failOn = 3

	_, err := Load(dir, Names, up, DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), Names[3])
	assert.Contains(t, err.Error(), `out of texture memory`)
	assert.Empty(t, up.live)
	assert.Len(t, up.released, 3)
}

type zeroUploader struct{}

func (zeroUploader) Upload(*image.RGBA) (uint32, error) { return 0, nil }
func (zeroUploader) Release(uint32)                     {}

func TestLoadZeroHandle(t *testing.T) {
	_, err := Load(textureDir(t), Names, zeroUploader{}, DefaultOptions())
	assert.ErrorIs(t, err, ErrZeroHandle)
}

func TestLoadPNGAndDuplicates(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	fh, err := os.Create(filepath.Join(dir, `ring.png`))
	require.NoError(t, err)
	require.NoError(t, png.Encode(fh, img))
	require.NoError(t, fh.Close())

	up := newFakeUploader()
	s, err := Load(dir, []string{`ring.png`, `ring.png`}, up, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, up.uploads)
}

func TestCloseReleasesOnce(t *testing.T) {
	up := newFakeUploader()
	s, err := Load(textureDir(t), Names, up, DefaultOptions())
	require.NoError(t, err)

	s.Close()
	s.Close()
	assert.Empty(t, up.live)
	assert.Len(t, up.released, 9)
	assert.Zero(t, s.Handle(`Sun.jpg`))
}

func TestPrepareFlipsAndShrinks(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	src.Set(0, 0, color.RGBA{255, 0, 0, 255})
	src.Set(0, 1, color.RGBA{0, 0, 255, 255})

	img := prepare(src, Options{FlipY: true})
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.At(0, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.At(0, 1))

	img = prepare(src, Options{})
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.At(0, 0))

	big := image.NewRGBA(image.Rect(0, 0, 64, 16))
	img = prepare(big, Options{MaxSize: 32})
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	tall := image.NewRGBA(image.Rect(0, 0, 16, 64))
	img = prepare(tall, Options{MaxSize: 32})
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}

func TestPrepareOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 13, 12))
	img := prepare(src, DefaultOptions())
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
}
