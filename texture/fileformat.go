package texture

import (
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/clktmr/agbgfx/framebuffer"
)

type Format uint8

const (
	CI8 Format = iota + 1
)

type header struct {
	Format        Format
	Width, Height uint16
	PaletteSize   uint16
}

var (
	ErrFormat   = errors.New("unsupported format")
	ErrSubImage = errors.New("is subimage")
)

// Load reads a texture written by Store.
func Load(r io.Reader) (tex *Texture, err error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var hdr header
	err = binary.Read(zr, binary.BigEndian, &hdr)
	if err != nil {
		return nil, err
	}
	if hdr.Format != CI8 {
		return nil, fmt.Errorf("texture: %w: %d", ErrFormat, hdr.Format)
	}

	rect := image.Rect(0, 0, int(hdr.Width), int(hdr.Height))
	tex = New(rect, make([]framebuffer.BGR555, hdr.PaletteSize))

	_, err = io.ReadFull(zr, tex.Pix)
	if err != nil {
		return nil, err
	}
	err = binary.Read(zr, binary.BigEndian, tex.Palette)
	if err != nil {
		return nil, err
	}
	return tex, nil
}

// Store writes p zlib compressed: a big-endian header, the pixels and the
// palette.
func (p *Texture) Store(w io.Writer) error {
	if p.Stride != p.Rect.Dx() {
		return fmt.Errorf("texture: %w", ErrSubImage)
	}

	var hdr = header{
		Format:      CI8,
		Width:       uint16(p.Rect.Dx()),
		Height:      uint16(p.Rect.Dy()),
		PaletteSize: uint16(len(p.Palette)),
	}

	zw := zlib.NewWriter(w)
	err := binary.Write(zw, binary.BigEndian, hdr)
	if err != nil {
		return err
	}
	_, err = zw.Write(p.Pix)
	if err != nil {
		return err
	}
	err = binary.Write(zw, binary.BigEndian, p.Palette)
	if err != nil {
		return err
	}
	return zw.Close()
}
