// Package mode7 computes per scanline affine transforms that turn a rotated
// and scaled background into a perspective floor plane.
//
// On the console the transforms are written from the horizontal blank
// interrupt, one scanline ahead of the display.  The camera is handed over
// from the main loop through a Latch.
package mode7

import (
	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/linalg"
	"github.com/clktmr/agbgfx/trig"
)

// Camera is the state the scanline projector needs, in the precision of the
// affine registers.  Pos.Z is the height above the floor.
type Camera struct {
	Pos      linalg.Vec3[fixed.Int24_8]
	Cos, Sin fixed.Int24_8
}

// Projector maps scanlines below the horizon onto the floor.  The horizon is
// at Height/2, the vertical field of view fixed to tan(fov/2) = 1/2.
type Projector struct {
	Width, Height int
}

// Lambda returns the floor distance per pixel on scanline vCount as .12 value.
// The horizon line saturates the reciprocal instead of dividing by zero.
func (p Projector) Lambda(cam *Camera, vCount int) int64 {
	return int64(cam.Pos.Z) * int64(trig.Reciprocal(vCount-p.Height/2)) >> 12
}

// Row returns the transform for scanline vCount.
func (p Projector) Row(cam *Camera, vCount int) linalg.Affine2D {
	lambda := p.Lambda(cam, vCount)
	lcf := lambda * int64(cam.Cos) >> 8 // .12
	lsf := lambda * int64(cam.Sin) >> 8

	halfWidth, dist := int64(p.Width/2), int64(p.Height)
	return linalg.Affine2D{
		A: fixed.Int8_8((lcf + 1<<3) >> 4),
		C: fixed.Int8_8((lsf + 1<<3) >> 4),
		X: cam.Pos.X - fixed.Int24_8((lcf*halfWidth-lsf*dist+1<<3)>>4),
		Y: cam.Pos.Y - fixed.Int24_8((lsf*halfWidth+lcf*dist+1<<3)>>4),
	}
}

// Frame writes the transforms of all scanlines below the horizon to sink, the
// same rows the HBlank handler writes during a frame.
func (p Projector) Frame(cam *Camera, sink Sink) {
	for vCount := p.Height/2 - 1; vCount < p.Height-1; vCount++ {
		sink.SetTransform(vCount+1, p.Row(cam, vCount+1))
	}
}

// HBlank is the horizontal blank handler.
type HBlank struct {
	Camera    *Latch[Camera]
	Projector Projector
	Sink      Sink
}

// Handle prepares the scanline after vCount.  Lines above the horizon are
// left alone.
func (h *HBlank) Handle(vCount int) {
	if vCount >= h.Projector.Height || vCount < h.Projector.Height/2-1 {
		return
	}
	cam, _ := h.Camera.Load()
	h.Sink.SetTransform(vCount+1, h.Projector.Row(&cam, vCount+1))
}
