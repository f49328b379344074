// Package oam models the object attribute memory of the display.  Object
// attributes and affine transforms share the same memory: every fourth
// halfword of four consecutive objects forms one transform.
package oam

import (
	"unsafe"

	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/linalg"
)

const (
	Size       = 0x400
	NumObjects = Size / 8
	NumBlocks  = NumObjects / 4
)

type Shape uint16

const (
	Square Shape = iota
	Wide
	Tall
)

// Object holds the attributes of one sprite.  The fourth attribute belongs
// to a Transform.
type Object struct {
	Attr [4]uint16
}

func NewObject(x, y int, shape Shape, size uint16) Object {
	var o Object
	o.Attr[0] = uint16(shape) << 14
	o.Attr[1] = (size & 0x3) << 14
	o.SetPos(x, y)
	return o
}

func (o *Object) SetPos(x, y int) {
	o.Attr[0] = o.Attr[0]&0xff00 | uint16(y)&0xff
	o.Attr[1] = o.Attr[1]&0xff00 | uint16(x)&0xff
}

func (o *Object) Pos() (x, y int) {
	return int(o.Attr[1] & 0xff), int(o.Attr[0] & 0xff)
}

// Transform is an affine sprite transform interleaved with four objects.
type Transform struct {
	_  [3]uint16
	PA fixed.Int8_8
	_  [3]uint16
	PB fixed.Int8_8
	_  [3]uint16
	PC fixed.Int8_8
	_  [3]uint16
	PD fixed.Int8_8
}

// Set copies the matrix of t.  The reference point isn't part of a sprite
// transform and is ignored.
func (tf *Transform) Set(t linalg.Affine2D) {
	tf.PA, tf.PB, tf.PC, tf.PD = t.A, t.B, t.C, t.D
}

// Block is four objects, or one transform.
type Block [16]uint16

func (b *Block) Objects() *[4]Object {
	return (*[4]Object)(unsafe.Pointer(b))
}

func (b *Block) Transform() *Transform {
	return (*Transform)(unsafe.Pointer(b))
}

// Memory is a copy of the object attribute memory.
type Memory [NumBlocks]Block

func (m *Memory) Object(i int) *Object {
	return &m[i/4].Objects()[i%4]
}

func (m *Memory) Transform(i int) *Transform {
	return m[i].Transform()
}

// Allocator hands out consecutive objects.
type Allocator struct {
	next int
}

// Alloc reserves n objects and returns the index of the first.  It returns
// false if not enough objects are left.
func (a *Allocator) Alloc(n int) (int, bool) {
	if a.next+n > NumObjects {
		return 0, false
	}
	first := a.next
	a.next += n
	return first, true
}

func (a *Allocator) Reset() { a.next = 0 }
