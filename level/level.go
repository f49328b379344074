// Package level holds the static BSP geometry of an indoor level.
//
// The records mirror the classic WAD map lumps, with coordinates stored as
// 8.8 fixed-point values that have been centered and scaled during asset
// preparation.  A Level is populated once at startup and treated as read-only
// afterwards.
package level

import (
	"github.com/clktmr/agbgfx/fixed"
)

const (
	// LeafFlag marks a Node child that indexes a SubSector.
	LeafFlag = 0x8000

	// FlagTwoSided marks a LineDef with sectors on both sides.
	FlagTwoSided = 0x04

	// NoSide is the SideDef index of a missing side.
	NoSide = 0xffff
)

type Vertex struct {
	X, Y fixed.Int8_8
}

type LineDef struct {
	V0, V1  uint16
	Flags   uint16
	Special uint16
	Tag     uint16
	Right   uint16
	Left    uint16
}

// Side returns the SideDef index facing direction 0 (right) or 1 (left).
func (l *LineDef) Side(direction int) uint16 {
	if direction == 0 {
		return l.Right
	}
	return l.Left
}

type SideDef struct {
	XOffset, YOffset int16
	Upper            [8]byte
	Lower            [8]byte
	Middle           [8]byte
	Sector           uint16
}

// Seg is the part of a LineDef that lies within one SubSector.
type Seg struct {
	Start, End int16
	Angle      int16 // full turn is 1<<16
	LineDef    int16
	Direction  int16 // 0: same as the LineDef, 1: opposite
	Offset     fixed.Int8_8
}

// SubSector is a convex leaf of the BSP, Count Segs starting at First.
type SubSector struct {
	Count, First int16
}

type Sector struct {
	Floor, Ceiling fixed.Int8_8
	FloorTex       [8]byte
	CeilTex        [8]byte
	Light          fixed.Int8_8
	Type           int16
	Tag            int16
}

type AABB struct {
	Top, Bottom, Left, Right fixed.Int8_8
}

// Contains reports whether the point lies within b, edges included.
func (b AABB) Contains(x, y fixed.Int8_8) bool {
	return x >= b.Left && x <= b.Right && y <= b.Top && y >= b.Bottom
}

// Node splits space along the line through (X, Y) with direction (DX, DY).
// Child 0 and Box 0 belong to the right side.
type Node struct {
	X, Y   fixed.Int8_8
	DX, DY fixed.Int8_8
	Box    [2]AABB
	Child  [2]uint16
}

// IsLeaf reports whether a child value refers to a SubSector.
func IsLeaf(child uint16) bool { return child&LeafFlag != 0 }

// ChildIndex strips the leaf flag from a child value.
func ChildIndex(child uint16) int { return int(child &^ LeafFlag) }

// Level aggregates the record arrays of one map.
type Level struct {
	Vertices   []Vertex
	LineDefs   []LineDef
	SideDefs   []SideDef
	Segs       []Seg
	SubSectors []SubSector
	Sectors    []Sector
	Nodes      []Node
}

// Root returns the child value the BSP traversal starts at.  This is the last
// node, or the only SubSector of a level without nodes.
func (l *Level) Root() uint16 {
	if len(l.Nodes) == 0 {
		return LeafFlag
	}
	return uint16(len(l.Nodes) - 1)
}

// SegSector returns the sector on the front side of a Seg.
func (l *Level) SegSector(s *Seg) (*Sector, bool) {
	ld := &l.LineDefs[s.LineDef]
	side := ld.Side(int(s.Direction))
	if side == NoSide {
		return nil, false
	}
	return &l.Sectors[l.SideDefs[side].Sector], true
}
