// Package textures loads the image files the scene is painted with and
// hands them to an Uploader, which owns the GPU side.
package textures

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Names lists the textures the scene needs: the sun, the seven planets in
// table order and the skybox.
var Names = []string{
	"Sun.jpg", "Mercury.jpg", "Venus.jpg", "Earth.jpg",
	"Mars.jpg", "Jupiter.jpg", "Saturn.jpg", "Uranus.jpg",
	"starscape.jpg",
}

// Skybox is the background texture name.
const Skybox = "starscape.jpg"

// DefaultMaxSize caps the longer edge of uploaded textures.
const DefaultMaxSize = 4096

// Uploader moves decoded pixels to wherever textures live and hands out
// non-zero handles for them.
type Uploader interface {
	Upload(img *image.RGBA) (uint32, error)
	Release(handle uint32)
}

// LoadError is returned when a texture file can not be read, decoded or
// uploaded.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf(`can't load texture %s: %s`, e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

var (
	ErrNotImage   = errors.New(`not an image file`)
	ErrZeroHandle = errors.New(`uploader returned handle 0`)
)

type Store struct {
	up      Uploader
	handles map[string]uint32
	order   []string
}

type Options struct {
	MaxSize int
	FlipY   bool
}

func DefaultOptions() Options {
	return Options{MaxSize: DefaultMaxSize, FlipY: true}
}

// Load reads every file in names from dir and uploads it. The first failure
// aborts loading, releases what was uploaded so far and is returned as a
// *LoadError.
func Load(dir string, names []string, up Uploader, opts Options) (*Store, error) {
	s := &Store{up: up, handles: make(map[string]uint32, len(names))}

	for _, n := range names {
		if _, ok := s.handles[n]; ok {
			continue
		}

		img, err := decodeFile(filepath.Join(dir, n), opts)
		if err != nil {
			s.Close()
			return nil, &LoadError{File: n, Err: err}
		}

		h, err := up.Upload(img)
		if err == nil && h == 0 {
			err = ErrZeroHandle
		}
		if err != nil {
			s.Close()
			return nil, &LoadError{File: n, Err: err}
		}

		s.handles[n] = h
		s.order = append(s.order, n)

		b := img.Bounds()
		slog.Debug(`loaded texture`, `file`, n, `handle`, h, `width`, b.Dx(), `height`, b.Dy())
	}

	return s, nil
}

// Handle returns the handle for the named texture, or 0.
func (s *Store) Handle(name string) uint32 {
	if s == nil {
		return 0
	}
	return s.handles[name]
}

func (s *Store) Len() int {
	return len(s.handles)
}

// Close releases all handles. It is safe to call more than once.
func (s *Store) Close() {
	for i := len(s.order) - 1; i >= 0; i-- {
		n := s.order[i]
		s.up.Release(s.handles[n])
		delete(s.handles, n)
	}
	s.order = nil
}

func decodeFile(path string, opts Options) (*image.RGBA, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	head := make([]byte, 262)
	n, err := io.ReadFull(fh, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if !filetype.IsImage(head[:n]) {
		return nil, ErrNotImage
	}
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	src, _, err := image.Decode(fh)
	if err != nil {
		return nil, err
	}

	return prepare(src, opts), nil
}

// prepare converts src to RGBA, shrinks it to fit opts.MaxSize and flips
// it so the first row is the bottom of the image, as GL expects.
func prepare(src image.Image, opts Options) *image.RGBA {
	b := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)

	if m := opts.MaxSize; m > 0 && (b.Dx() > m || b.Dy() > m) {
		w, h := b.Dx(), b.Dy()
		if w >= h {
			w, h = m, max(1, h*m/w)
		} else {
			w, h = max(1, w*m/h), m
		}
		img = transform.Resize(img, w, h, transform.Linear)
	}

	if opts.FlipY {
		img = transform.FlipV(img)
	}

	return img
}
