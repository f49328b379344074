package linalg

import "github.com/clktmr/agbgfx/fixed"

// Affine2D has the layout of the background affine registers: a 2x2 matrix
// of 8.8 coefficients and a 20.8 reference point in texture space.
type Affine2D struct {
	A, B, C, D fixed.Int8_8
	X, Y       fixed.Int24_8
}

// At returns the texture coordinate of pixel x on the scanline the transform
// was latched for.
func (t Affine2D) At(x int) (u, v fixed.Int24_8) {
	u = t.X + fixed.Int24_8(int32(t.A)*int32(x))
	v = t.Y + fixed.Int24_8(int32(t.C)*int32(x))
	return
}
