package bsp

import (
	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/linalg"
)

// ClipWall clips the camera space wall from v0 to v1 against the y = 0
// plane and reports whether anything is left.  The endpoint behind the
// camera is moved onto the plane.  A wall parallel to the plane is returned
// unmodified.
func ClipWall(v0, v1 *linalg.Vec2[fixed.Int24_8]) bool {
	if v0.Y <= 0 && v1.Y <= 0 {
		return false
	}
	if (v0.Y > 0 && v1.Y > 0) || v0.Y == v1.Y {
		return true
	}

	// x at y = 0, computed at scale 16
	dx := int64(v1.X - v0.X)
	dy := int64(v1.Y - v0.Y)
	x16 := int64(v0.X)<<8 + (dx*int64(-v0.Y)<<8)/dy
	x := fixed.FromShifted[fixed.Int24_8](x16, 16)

	if v0.Y <= 0 {
		*v0 = linalg.Vec2[fixed.Int24_8]{X: x, Y: 0}
	} else {
		*v1 = linalg.Vec2[fixed.Int24_8]{X: x, Y: 0}
	}
	return true
}

// backFacing reports whether the wall faces away from the camera, including
// walls seen exactly edge on.
func backFacing(v0, v1 linalg.Vec2[fixed.Int24_8]) bool {
	return int64(v0.X)*int64(v1.Y) >= int64(v1.X)*int64(v0.Y)
}
