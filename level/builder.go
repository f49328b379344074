package level

import (
	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/trig"
)

// Builder assembles a Level from index based references.  It is used by the
// asset tools and tests, the runtime only reads finished levels.
type Builder struct {
	lvl Level
}

// Leaf returns the node child value referring to a subsector.
func Leaf(subsector uint16) uint16 { return subsector | LeafFlag }

func (b *Builder) Vertex(x, y fixed.Int8_8) uint16 {
	b.lvl.Vertices = append(b.lvl.Vertices, Vertex{x, y})
	return uint16(len(b.lvl.Vertices) - 1)
}

func (b *Builder) Sector(floor, ceiling, light fixed.Int8_8, floorTex, ceilTex string) uint16 {
	s := Sector{Floor: floor, Ceiling: ceiling, Light: light}
	s.FloorTex, _ = EncodeName(floorTex)
	s.CeilTex, _ = EncodeName(ceilTex)
	b.lvl.Sectors = append(b.lvl.Sectors, s)
	return uint16(len(b.lvl.Sectors) - 1)
}

func (b *Builder) SideDef(sector uint16, middle string) uint16 {
	s := SideDef{Sector: sector}
	s.Middle, _ = EncodeName(middle)
	b.lvl.SideDefs = append(b.lvl.SideDefs, s)
	return uint16(len(b.lvl.SideDefs) - 1)
}

func (b *Builder) LineDef(v0, v1, right, left, flags uint16) uint16 {
	b.lvl.LineDefs = append(b.lvl.LineDefs, LineDef{
		V0: v0, V1: v1, Flags: flags, Right: right, Left: left,
	})
	return uint16(len(b.lvl.LineDefs) - 1)
}

// Seg adds a seg spanning the whole linedef, oriented by direction.
func (b *Builder) Seg(linedef uint16, direction int) int16 {
	ld := b.lvl.LineDefs[linedef]
	start, end := ld.V0, ld.V1
	if direction != 0 {
		start, end = end, start
	}
	v0, v1 := b.lvl.Vertices[start], b.lvl.Vertices[end]
	dx := fixed.Cast[fixed.Int24_8](v1.X - v0.X)
	dy := fixed.Cast[fixed.Int24_8](v1.Y - v0.Y)
	b.lvl.Segs = append(b.lvl.Segs, Seg{
		Start:     int16(start),
		End:       int16(end),
		Angle:     int16(trig.Atan2(dx, dy)),
		LineDef:   int16(linedef),
		Direction: int16(direction),
	})
	return int16(len(b.lvl.Segs) - 1)
}

// Loop adds one-sided walls along the closed polygon through vertices,
// facing sector on their right side, and returns the range of their segs.
func (b *Builder) Loop(sector uint16, texture string, vertices ...uint16) (first, count int16) {
	first = int16(len(b.lvl.Segs))
	for i, v0 := range vertices {
		v1 := vertices[(i+1)%len(vertices)]
		side := b.SideDef(sector, texture)
		b.Seg(b.LineDef(v0, v1, side, NoSide, 0), 0)
	}
	return first, int16(len(vertices))
}

func (b *Builder) SubSector(first, count int16) uint16 {
	b.lvl.SubSectors = append(b.lvl.SubSectors, SubSector{Count: count, First: first})
	return uint16(len(b.lvl.SubSectors) - 1)
}

// Node adds a splitting node.  The bounding boxes are computed from the
// children, which must already exist.
func (b *Builder) Node(x, y, dx, dy fixed.Int8_8, right, left uint16) uint16 {
	n := Node{X: x, Y: y, DX: dx, DY: dy, Child: [2]uint16{right, left}}
	n.Box[0] = b.bounds(right)
	n.Box[1] = b.bounds(left)
	b.lvl.Nodes = append(b.lvl.Nodes, n)
	return uint16(len(b.lvl.Nodes) - 1)
}

func (b *Builder) bounds(child uint16) AABB {
	if !IsLeaf(child) {
		n := b.lvl.Nodes[ChildIndex(child)]
		return union(n.Box[0], n.Box[1])
	}
	box := AABB{Top: -0x8000, Bottom: 0x7fff, Left: 0x7fff, Right: -0x8000}
	ss := b.lvl.SubSectors[ChildIndex(child)]
	for _, s := range b.lvl.Segs[ss.First : ss.First+ss.Count] {
		for _, v := range [2]Vertex{b.lvl.Vertices[s.Start], b.lvl.Vertices[s.End]} {
			box = union(box, AABB{Top: v.Y, Bottom: v.Y, Left: v.X, Right: v.X})
		}
	}
	return box
}

func union(a, b AABB) AABB {
	return AABB{
		Top:    max(a.Top, b.Top),
		Bottom: min(a.Bottom, b.Bottom),
		Left:   min(a.Left, b.Left),
		Right:  max(a.Right, b.Right),
	}
}

// Level returns the assembled level.  The Builder must not be used
// afterwards.
func (b *Builder) Level() *Level {
	return &b.lvl
}
