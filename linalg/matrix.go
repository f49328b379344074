package linalg

// Matrices are stored row-major.  Only the products the renderers need are
// implemented.

type Mat33[T Scalar[T]] [9]T

// Mat34 is an affine transform.  Its implicit fourth row is (0, 0, 0, 1).
type Mat34[T Scalar[T]] [12]T

type Mat44[T Scalar[T]] [16]T

func one[T Scalar[T]]() T {
	var zero T
	return zero.One()
}

func Identity33[T Scalar[T]]() (m Mat33[T]) {
	m[0], m[4], m[8] = one[T](), one[T](), one[T]()
	return
}

func Identity34[T Scalar[T]]() (m Mat34[T]) {
	m[0], m[5], m[10] = one[T](), one[T](), one[T]()
	return
}

func Identity44[T Scalar[T]]() (m Mat44[T]) {
	m[0], m[5], m[10], m[15] = one[T](), one[T](), one[T](), one[T]()
	return
}

// RotationZ returns the rotation about the z axis by the angle with the given
// cosine and sine.
func RotationZ[T Scalar[T]](cos, sin T) Mat33[T] {
	return Mat33[T]{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, one[T](),
	}
}

func (m Mat33[T]) At(i, j int) T { return m[i*3+j] }

func (m Mat33[T]) Mul(n Mat33[T]) (r Mat33[T]) {
	for i := range 3 {
		for j := range 3 {
			r[i*3+j] = m[i*3].Mul(n[j]) + m[i*3+1].Mul(n[3+j]) + m[i*3+2].Mul(n[6+j])
		}
	}
	return
}

func (m Mat33[T]) MulVec(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m[0].Mul(v.X) + m[1].Mul(v.Y) + m[2].Mul(v.Z),
		m[3].Mul(v.X) + m[4].Mul(v.Y) + m[5].Mul(v.Z),
		m[6].Mul(v.X) + m[7].Mul(v.Y) + m[8].Mul(v.Z),
	}
}

func (m Mat33[T]) Transpose() Mat33[T] {
	return Mat33[T]{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Affine combines a linear part and a translation.
func Affine[T Scalar[T]](l Mat33[T], t Vec3[T]) Mat34[T] {
	return Mat34[T]{
		l[0], l[1], l[2], t.X,
		l[3], l[4], l[5], t.Y,
		l[6], l[7], l[8], t.Z,
	}
}

func (m Mat34[T]) At(i, j int) T { return m[i*4+j] }

func (m Mat34[T]) Translation() Vec3[T] { return Vec3[T]{m[3], m[7], m[11]} }

// Mul returns m*n, both with the implicit row (0, 0, 0, 1).
func (m Mat34[T]) Mul(n Mat34[T]) (r Mat34[T]) {
	for i := range 3 {
		for j := range 3 {
			r[i*4+j] = m[i*4].Mul(n[j]) + m[i*4+1].Mul(n[4+j]) + m[i*4+2].Mul(n[8+j])
		}
		r[i*4+3] = m[i*4].Mul(n[3]) + m[i*4+1].Mul(n[7]) + m[i*4+2].Mul(n[11]) + m[i*4+3]
	}
	return
}

// MulPoint transforms the point v, translation included.
func (m Mat34[T]) MulPoint(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m[0].Mul(v.X) + m[1].Mul(v.Y) + m[2].Mul(v.Z) + m[3],
		m[4].Mul(v.X) + m[5].Mul(v.Y) + m[6].Mul(v.Z) + m[7],
		m[8].Mul(v.X) + m[9].Mul(v.Y) + m[10].Mul(v.Z) + m[11],
	}
}

func (m Mat44[T]) At(i, j int) T { return m[i*4+j] }

// MulAffine returns m*n where the missing fourth row of n is (0, 0, 0, 1).
// The fourth column of m therefore only contributes to the translation.
func (m Mat44[T]) MulAffine(n Mat34[T]) (r Mat44[T]) {
	for i := range 4 {
		for j := range 3 {
			r[i*4+j] = m[i*4].Mul(n[j]) + m[i*4+1].Mul(n[4+j]) + m[i*4+2].Mul(n[8+j])
		}
		r[i*4+3] = m[i*4].Mul(n[3]) + m[i*4+1].Mul(n[7]) + m[i*4+2].Mul(n[11]) + m[i*4+3]
	}
	return
}

func (m Mat44[T]) MulVec(v Vec4[T]) Vec4[T] {
	row := func(i int) T {
		return m[i*4].Mul(v.X) + m[i*4+1].Mul(v.Y) + m[i*4+2].Mul(v.Z) + m[i*4+3].Mul(v.W)
	}
	return Vec4[T]{row(0), row(1), row(2), row(3)}
}
