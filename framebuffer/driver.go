package framebuffer

import (
	"image"
	"image/color"
	"image/draw"
)

// Driver implements pix.Driver for a 15 bit buffer, so the buffer can be used
// as pix.Display.
type Driver struct {
	buf  *Buffer[BGR555]
	img  RGB
	fill BGR555
}

func NewDriver(buf *Buffer[BGR555]) *Driver {
	return &Driver{buf: buf, img: RGB{buf}}
}

// SetBuffer redirects all further drawing into buf, e.g. after a Swap.
func (d *Driver) SetBuffer(buf *Buffer[BGR555]) {
	d.buf = buf
	d.img = RGB{buf}
}

func (d *Driver) Draw(r image.Rectangle, src image.Image, sp image.Point,
	mask image.Image, mp image.Point, op draw.Op) {
	if u, ok := src.(*image.Uniform); ok && mask == nil {
		if _, _, _, a := u.C.RGBA(); a == 0xffff || op == draw.Src {
			d.buf.FillRect(r, toBGR555(u.C))
			return
		}
	}
	draw.DrawMask(d.img, r, src, sp, mask, mp, op)
}

func (d *Driver) Fill(r image.Rectangle) {
	d.buf.FillRect(r, d.fill)
}

func (d *Driver) SetColor(c color.Color) {
	d.fill = toBGR555(c)
}

func (d *Driver) SetDir(dir int) image.Rectangle {
	return d.buf.Bounds()
}

func (d *Driver) Flush() {}

func (d *Driver) Err(clear bool) error {
	return nil
}
