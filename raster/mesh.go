package raster

import (
	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/framebuffer"
	"github.com/clktmr/agbgfx/linalg"
)

// Mesh is an indexed triangle list with one color per triangle.
type Mesh[P framebuffer.Pixel] struct {
	Vertices []linalg.Vec3[fixed.Int16_16]
	Indices  []uint16
	Colors   []P

	screen []linalg.Vec2[fixed.Int24_8]
	valid  []bool
}

// DrawMesh projects the vertices of m with transform and draws its
// triangles.  Triangles without a color use c.  Triangles with a vertex on or
// behind the camera plane are skipped.
func DrawMesh[P framebuffer.Pixel](dst *framebuffer.Buffer[P], m *Mesh[P], transform linalg.Mat44[fixed.Int16_16], c P) {
	if cap(m.screen) < len(m.Vertices) {
		m.screen = make([]linalg.Vec2[fixed.Int24_8], len(m.Vertices))
		m.valid = make([]bool, len(m.Vertices))
	}
	m.screen, m.valid = m.screen[:len(m.Vertices)], m.valid[:len(m.Vertices)]

	hw, hh := fixed.Int16_16U(dst.Width/2), fixed.Int16_16U(dst.Height/2)
	for i, v := range m.Vertices {
		p, ok := linalg.ProjectPosition(transform, v)
		m.valid[i] = ok
		m.screen[i] = linalg.V2(
			fixed.Cast[fixed.Int24_8](p.X.Mul(hw)+hw),
			fixed.Cast[fixed.Int24_8](p.Y.Mul(hh)+hh),
		)
	}

	for tri := 0; tri+2 < len(m.Indices); tri += 3 {
		i0, i1, i2 := m.Indices[tri], m.Indices[tri+1], m.Indices[tri+2]
		if !m.valid[i0] || !m.valid[i1] || !m.valid[i2] {
			continue
		}
		color := c
		if tri/3 < len(m.Colors) {
			color = m.Colors[tri/3]
		}
		Triangle(dst, [3]linalg.Vec2[fixed.Int24_8]{m.screen[i0], m.screen[i1], m.screen[i2]}, color)
	}
}
