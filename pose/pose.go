// Package pose holds the player and camera state shared by the renderers and
// the controllers mutating it once per frame.
package pose

import (
	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/linalg"
	"github.com/clktmr/agbgfx/trig"
)

// Pose is a position with a heading around the z axis.  A heading of zero
// looks along +y, positive headings turn counter clockwise.
type Pose struct {
	Pos     linalg.Vec3[fixed.Int24_8]
	Heading fixed.UInt0_16

	// Cached by Update
	Sin, Cos fixed.Int16_16
}

func New(pos linalg.Vec3[fixed.Int24_8], heading fixed.UInt0_16) Pose {
	p := Pose{Pos: pos, Heading: heading}
	p.Update()
	return p
}

// Update recomputes Sin and Cos from the heading.
func (p *Pose) Update() {
	p.Sin = trig.Sin(p.Heading)
	p.Cos = trig.Cos(p.Heading)
}

// Move displaces the pose in its own frame, right along the x axis of the
// camera and forward along its y axis.
func (p *Pose) Move(right, forward fixed.Int24_8) {
	dx := fixed.MulWide(right, p.Cos).Sub(fixed.MulWide(forward, p.Sin))
	dy := fixed.MulWide(forward, p.Cos).Add(fixed.MulWide(right, p.Sin))
	p.Pos.X += fixed.Rescale[fixed.Int24_8](dx)
	p.Pos.Y += fixed.Rescale[fixed.Int24_8](dy)
}

// Turn adds a to the heading and updates the cache.
func (p *Pose) Turn(a fixed.UInt0_16) {
	p.Heading += a
	p.Update()
}

// Camera projects world positions onto a clip rectangle.  The vertical field
// of view is fixed to tan(fov/2) = 1/2, pixels are square.
type Camera struct {
	HalfWidth, HalfHeight int
	Pose                  Pose
}

func NewCamera(width, height int, pose Pose) *Camera {
	return &Camera{HalfWidth: width / 2, HalfHeight: height / 2, Pose: pose}
}

// ProjectWorldPos returns the screen position of p in x and y and its linear
// depth in z.  Points in the plane of the camera project to the screen
// center with zero depth.
func (c *Camera) ProjectWorldPos(p linalg.Vec3[fixed.Int24_8]) linalg.Vec3[fixed.Int16_16] {
	rel := p.Sub(c.Pose.Pos)
	vx := fixed.Rescale[fixed.Int16_16](fixed.MulWide(rel.X, c.Pose.Cos).Add(fixed.MulWide(rel.Y, c.Pose.Sin)))
	vy := fixed.Rescale[fixed.Int16_16](fixed.MulWide(rel.Y, c.Pose.Cos).Sub(fixed.MulWide(rel.X, c.Pose.Sin)))
	vz := fixed.Cast[fixed.Int16_16](-rel.Z) // screen y points down

	var invDepth fixed.Int16_16
	if vy != 0 {
		invDepth = fixed.Int16_16U(2).Div(vy)
	}
	hw, hh := fixed.Int16_16(c.HalfWidth), fixed.Int16_16(c.HalfHeight)
	return linalg.Vec3[fixed.Int16_16]{
		X: vx.Mul(invDepth)*hh + hw<<16,
		Y: vz.Mul(invDepth)*hh + hh<<16,
		Z: vy,
	}
}

// View returns the transform from world to camera space, x right, y forward
// and z up.
func (c *Camera) View() linalg.Mat34[fixed.Int16_16] {
	r := linalg.RotationZ(c.Pose.Cos, c.Pose.Sin).Transpose()
	pos := linalg.CastVec3[fixed.Int16_16](c.Pose.Pos)
	return linalg.Affine(r, r.MulVec(pos.Neg()))
}

// Transform returns the transform from world to clip space with the same
// field of view as ProjectWorldPos.
func (c *Camera) Transform(near fixed.Int16_16) linalg.Mat44[fixed.Int16_16] {
	fy := fixed.Int16_16U(2)
	fx := fy.Mul(fixed.Int16_16U(c.HalfHeight)).Div(fixed.Int16_16U(c.HalfWidth))
	return linalg.ProjectionMatrix(fx, fy, near).MulAffine(c.View())
}

// LookAt turns the camera towards target.
func (c *Camera) LookAt(target linalg.Vec3[fixed.Int24_8]) {
	d := target.XY().Sub(c.Pose.Pos.XY())
	if d.X == 0 && d.Y == 0 {
		return
	}
	c.Pose.Heading = fixed.UInt0_16(trig.Atan2(d.X, d.Y) - fixed.Int16_16F(0.25))
	c.Pose.Update()
}
