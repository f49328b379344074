package linalg

// ProjectionMatrix maps camera space (x right, y forward, z up) to clip space
// (x right, y down, z into the screen).  fx and fy are the horizontal and
// vertical focal lengths, near the distance of the near plane.  After the
// perspective division z is 0 on the near plane and approaches 1 at infinity,
// w is the depth.
func ProjectionMatrix[T Scalar[T]](fx, fy, near T) Mat44[T] {
	return Mat44[T]{
		fx, 0, 0, 0,
		0, 0, -fy, 0,
		0, one[T](), 0, -near,
		0, one[T](), 0, 0,
	}
}

// ProjectPosition applies m to p and divides by the resulting w.  Points on
// or behind the camera plane (w <= 0) are reported with ok == false, callers
// are expected to clip such points before projecting.
func ProjectPosition[T Scalar[T]](m Mat44[T], p Vec3[T]) (v Vec3[T], ok bool) {
	h := m.MulVec(p.Point())
	if h.W <= 0 {
		return v, false
	}
	return Vec3[T]{h.X.Div(h.W), h.Y.Div(h.W), h.Z.Div(h.W)}, true
}
