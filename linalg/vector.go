// Package linalg implements the small vectors and matrices used by the
// renderers, generic over fixed-point and float scalars.
package linalg

import (
	"github.com/clktmr/agbgfx/fixed"

	"golang.org/x/exp/constraints"
)

// Scalar is a number type usable in vectors and matrices.  Fixed-point types
// multiply and divide at their own scale.
type Scalar[T any] interface {
	constraints.Signed | constraints.Float
	Mul(T) T
	Div(T) T
	One() T
}

// Fixed restricts Scalar to the fixed-point types.
type Fixed[T any] interface {
	fixed.Fixed
	Scalar[T]
}

type Vec2[T Scalar[T]] struct{ X, Y T }

func V2[T Scalar[T]](x, y T) Vec2[T] { return Vec2[T]{x, y} }

func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X + w.X, v.Y + w.Y} }
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X - w.X, v.Y - w.Y} }
func (v Vec2[T]) Neg() Vec2[T]          { return Vec2[T]{-v.X, -v.Y} }
func (v Vec2[T]) Scale(s T) Vec2[T]     { return Vec2[T]{v.X.Mul(s), v.Y.Mul(s)} }
func (v Vec2[T]) Dot(w Vec2[T]) T       { return v.X.Mul(w.X) + v.Y.Mul(w.Y) }

// Cross returns the z component of the 3D cross product of v and w.
func (v Vec2[T]) Cross(w Vec2[T]) T { return v.X.Mul(w.Y) - v.Y.Mul(w.X) }

type Vec3[T Scalar[T]] struct{ X, Y, Z T }

func V3[T Scalar[T]](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] { return Vec3[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] { return Vec3[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }
func (v Vec3[T]) Neg() Vec3[T]          { return Vec3[T]{-v.X, -v.Y, -v.Z} }
func (v Vec3[T]) Scale(s T) Vec3[T]     { return Vec3[T]{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)} }
func (v Vec3[T]) Dot(w Vec3[T]) T       { return v.X.Mul(w.X) + v.Y.Mul(w.Y) + v.Z.Mul(w.Z) }
func (v Vec3[T]) XY() Vec2[T]           { return Vec2[T]{v.X, v.Y} }

func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y.Mul(w.Z) - v.Z.Mul(w.Y),
		v.Z.Mul(w.X) - v.X.Mul(w.Z),
		v.X.Mul(w.Y) - v.Y.Mul(w.X),
	}
}

type Vec4[T Scalar[T]] struct{ X, Y, Z, W T }

// Point returns v as homogeneous point with w = 1.
func (v Vec3[T]) Point() Vec4[T] {
	var z T
	return Vec4[T]{v.X, v.Y, v.Z, z.One()}
}

func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v.X, v.Y, v.Z} }

// CastVec2 converts v to another fixed-point scale, truncating.
func CastVec2[To Fixed[To], From Fixed[From]](v Vec2[From]) Vec2[To] {
	return Vec2[To]{fixed.Cast[To](v.X), fixed.Cast[To](v.Y)}
}

// CastVec3 converts v to another fixed-point scale, truncating.
func CastVec3[To Fixed[To], From Fixed[From]](v Vec3[From]) Vec3[To] {
	return Vec3[To]{fixed.Cast[To](v.X), fixed.Cast[To](v.Y), fixed.Cast[To](v.Z)}
}

// RoundVec3 converts v to another fixed-point scale, rounding half away from
// zero.
func RoundVec3[To Fixed[To], From Fixed[From]](v Vec3[From]) Vec3[To] {
	return Vec3[To]{fixed.Round[To](v.X), fixed.Round[To](v.Y), fixed.Round[To](v.Z)}
}
