// Package display presents rendered frames outside of the console, either as
// image files or in a desktop window (see package window).
package display

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// Display shows a finished frame.
type Display interface {
	Present(img image.Image) error
}

type Format int

const (
	PNG Format = iota
	WebP
)

var ErrFormat = errors.New("display: unknown format")

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "png":
		return PNG, nil
	case "webp":
		return WebP, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrFormat, s)
}

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case WebP:
		return "webp"
	}
	return "invalid"
}

// Scale returns img enlarged by an integer factor.  Nearest neighbor keeps
// the pixels sharp, smooth uses Catmull-Rom.
func Scale(img image.Image, factor int, smooth bool) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	var scaler draw.Scaler = draw.NearestNeighbor
	if smooth {
		scaler = draw.CatmullRom
	}
	scaler.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Encode writes img in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case WebP:
		return nativewebp.Encode(w, img, nil)
	}
	return ErrFormat
}

// Headless writes every presented frame to a numbered file in Dir.
type Headless struct {
	Dir    string
	Prefix string
	Format Format
	Scale  int
	Smooth bool

	frames int
}

func NewHeadless(dir string, format Format, scale int) *Headless {
	return &Headless{Dir: dir, Prefix: "frame", Format: format, Scale: scale}
}

// Path returns the file name of frame n.
func (h *Headless) Path(n int) string {
	return filepath.Join(h.Dir, fmt.Sprintf("%s%05d.%s", h.Prefix, n, h.Format))
}

func (h *Headless) Present(img image.Image) (err error) {
	if err = os.MkdirAll(h.Dir, 0755); err != nil {
		return err
	}
	f, err := os.Create(h.Path(h.frames))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err = Encode(f, Scale(img, h.Scale, h.Smooth), h.Format); err != nil {
		return fmt.Errorf("display: encode frame %d: %w", h.frames, err)
	}
	h.frames++
	return nil
}

// Frames returns the number of frames written.
func (h *Headless) Frames() int { return h.frames }

// Discard is a Display dropping all frames.
type Discard struct{}

func (Discard) Present(image.Image) error { return nil }
