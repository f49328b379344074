package pose

import (
	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/input"
	"github.com/clktmr/agbgfx/linalg"
	"github.com/clktmr/agbgfx/mode7"
	"github.com/clktmr/agbgfx/trig"
)

// Controller mutates a pose once per frame from the keypad state.
type Controller interface {
	Update(k *input.Keypad)
}

type JumpState int

const (
	Grounded JumpState = iota
	Airborne
)

func (s JumpState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	}
	return "invalid"
}

const (
	JumpImpulse = fixed.Int24_8(7 << 8)
	Gravity     = fixed.Int24_8(10 << 8 / 32) // per tick
	ticksPerSec = 32
)

// CharacterController walks a pose on the floor.  Directional buttons
// move forward and rotate, or strafe while L is held.  A jumps.
type CharacterController struct {
	Pose     *Pose
	HorSpeed fixed.Int24_8
	AngSpeed fixed.UInt0_16

	velocity fixed.Int24_8
}

func NewCharacterController(p *Pose) *CharacterController {
	return &CharacterController{
		Pose:     p,
		HorSpeed: fixed.Int24_8F(0.125),
		AngSpeed: 0x100,
	}
}

func (c *CharacterController) Update(k *input.Keypad) {
	var right fixed.Int24_8
	if k.Held(input.ButtonL) {
		right = c.HorSpeed * fixed.Int24_8(k.Axis(input.ButtonLeft, input.ButtonRight))
	} else {
		c.Pose.Heading += c.AngSpeed * fixed.UInt0_16(k.Axis(input.ButtonRight, input.ButtonLeft))
	}
	forward := c.HorSpeed * fixed.Int24_8(k.Axis(input.ButtonDown, input.ButtonUp))
	c.Pose.Update()
	c.Pose.Move(right, forward)

	if k.Pressed()&input.ButtonA != 0 && c.Pose.Pos.Z == 0 {
		c.velocity = JumpImpulse
	}
	if c.State() == Airborne {
		c.velocity -= Gravity
		c.Pose.Pos.Z += c.velocity / ticksPerSec
		if c.Pose.Pos.Z < 0 {
			c.Pose.Pos.Z = 0
			c.velocity = 0
		}
	}
}

func (c *CharacterController) State() JumpState {
	if c.Pose.Pos.Z > 0 || c.velocity > 0 {
		return Airborne
	}
	return Grounded
}

// Velocity returns the current vertical velocity.
func (c *CharacterController) Velocity() fixed.Int24_8 {
	return c.velocity
}

// FPSController flies a pose freely.  R/L strafe, Up/Down move forward, A/B
// rise and sink, Left/Right rotate.
type FPSController struct {
	Pose               *Pose
	HorSpeed, VerSpeed fixed.Int24_8
	AngSpeed           fixed.UInt0_16
}

func NewFPSController(p *Pose) *FPSController {
	return &FPSController{
		Pose:     p,
		HorSpeed: fixed.Int24_8F(0.125),
		VerSpeed: fixed.Int24_8F(0.0625),
		AngSpeed: 0x100,
	}
}

func (c *FPSController) Update(k *input.Keypad) {
	right := c.HorSpeed * fixed.Int24_8(k.Axis(input.ButtonL, input.ButtonR))
	forward := c.HorSpeed * fixed.Int24_8(k.Axis(input.ButtonDown, input.ButtonUp))
	c.Pose.Move(right, forward)
	c.Pose.Pos.Z += c.VerSpeed * fixed.Int24_8(k.Axis(input.ButtonB, input.ButtonA))
	c.Pose.Turn(c.AngSpeed * fixed.UInt0_16(k.Axis(input.ButtonRight, input.ButtonLeft)))
}

// MaxAltitude limits the height of the FlyController above the floor.
const MaxAltitude = fixed.Int24_8(250 << 8)

// FlyController moves a camera over a floor plane in map space, where y
// points down the map.  R/L strafe, Down/Up move, B/A rise and sink,
// Left/Right yaw.
type FlyController struct {
	Pos     linalg.Vec3[fixed.Int24_8]
	Heading fixed.UInt0_16

	HorSpeed, VerSpeed fixed.Int24_8
	AngSpeed           fixed.UInt0_16

	cos, sin fixed.Int24_8
}

func NewFlyController(pos linalg.Vec3[fixed.Int24_8]) *FlyController {
	c := &FlyController{
		Pos:      pos,
		HorSpeed: fixed.Int24_8U(1),
		VerSpeed: fixed.Int24_8F(0.25),
		AngSpeed: 0x80,
	}
	c.update()
	return c
}

func (c *FlyController) Update(k *input.Keypad) {
	dx := int64(c.HorSpeed) * int64(k.Axis(input.ButtonL, input.ButtonR))
	dy := int64(c.HorSpeed) * int64(k.Axis(input.ButtonUp, input.ButtonDown))
	dz := c.VerSpeed * fixed.Int24_8(k.Axis(input.ButtonA, input.ButtonB))

	c.Pos.X += fixed.Int24_8((dx*int64(c.cos) - dy*int64(c.sin)) >> 8)
	c.Pos.Y += fixed.Int24_8((dx*int64(c.sin) + dy*int64(c.cos)) >> 8)
	c.Pos.Z = min(max(c.Pos.Z+dz, 0), MaxAltitude)

	c.Heading += c.AngSpeed * fixed.UInt0_16(k.Axis(input.ButtonLeft, input.ButtonRight))
	c.update()
}

func (c *FlyController) update() {
	c.cos = fixed.Round[fixed.Int24_8](trig.Cos(c.Heading))
	c.sin = fixed.Round[fixed.Int24_8](trig.Sin(c.Heading))
}

// Snapshot returns the camera state for the scanline projector.
func (c *FlyController) Snapshot() mode7.Camera {
	return mode7.Camera{Pos: c.Pos, Cos: c.cos, Sin: c.sin}
}
