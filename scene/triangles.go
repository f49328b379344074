package scene

import (
	"fmt"

	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/framebuffer"
	"github.com/clktmr/agbgfx/input"
	"github.com/clktmr/agbgfx/linalg"
	"github.com/clktmr/agbgfx/pose"
	"github.com/clktmr/agbgfx/raster"
)

// nearPlane is the distance of the near clip plane.
const nearPlane = fixed.Int16_16(1 << 16 / 16)

// Pyramid returns a floorless pyramid of unit size centered at the origin.
func Pyramid() *raster.Mesh[framebuffer.BGR555] {
	h := fixed.Int16_16F(0.5)
	return &raster.Mesh[framebuffer.BGR555]{
		Vertices: []linalg.Vec3[fixed.Int16_16]{
			{X: -h, Y: -h, Z: -h},
			{X: -h, Y: h, Z: -h},
			{X: h, Y: h, Z: -h},
			{X: h, Y: -h, Z: -h},
			{X: 0, Y: 0, Z: h},
		},
		Indices: []uint16{
			0, 1, 4,
			3, 0, 4,
			2, 3, 4,
			1, 2, 4,
		},
		Colors: []framebuffer.BGR555{
			framebuffer.Red,
			framebuffer.Green,
			framebuffer.Blue,
			framebuffer.Yellow,
		},
	}
}

// Triangles shows a mesh through a free moving camera.
type Triangles struct {
	Mesh       *raster.Mesh[framebuffer.BGR555]
	Camera     *pose.Camera
	Controller *pose.FPSController

	backdrop
}

func NewTriangles() *Triangles {
	s := &Triangles{
		Mesh:     Pyramid(),
		Camera:   pose.NewCamera(framebuffer.Width, framebuffer.Height, pose.New(linalg.V3(0, -fixed.Int24_8U(2), 0), 0)),
		backdrop: backdrop{Sky: framebuffer.LightGrey, Ground: framebuffer.DarkGrey},
	}
	s.Controller = pose.NewFPSController(&s.Camera.Pose)
	return s
}

func (s *Triangles) Update(k *input.Keypad) {
	s.Controller.Update(k)
}

func (s *Triangles) Status() string {
	p := s.Camera.Pose.Pos
	return fmt.Sprintf("x %v y %v z %v", p.X, p.Y, p.Z)
}

func (s *Triangles) Render(dst *framebuffer.Buffer[framebuffer.BGR555]) error {
	s.backdrop.render(dst)
	s.Camera.HalfWidth, s.Camera.HalfHeight = dst.Width/2, dst.Height/2
	raster.DrawMesh(dst, s.Mesh, s.Camera.Transform(nearPlane), framebuffer.White)
	return nil
}
