package scene

import (
	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/level"
)

// Quadrants returns a 4×4 room split into four subsectors by three nodes, with
// a pillar in the north east quadrant.
func Quadrants() *level.Level {
	var b level.Builder
	c := func(x, y float32) uint16 { return b.Vertex(fixed.Int8_8F(x), fixed.Int8_8F(y)) }
	corners := []uint16{
		c(-2, 0), c(-2, 2), c(0, 2), c(2, 2),
		c(2, 0), c(2, -2), c(0, -2), c(-2, -2),
	}
	sec := b.Sector(0, fixed.Int8_8U(1), fixed.Int8_8U(1), "FLOOR", "CEIL")

	var leaves []uint16
	for q := range 4 {
		first, count := int16(-1), int16(0)
		if q == 1 {
			// Listed counter clockwise to face outwards.  The pillar goes
			// first, it is always in front of the room's walls.
			first, count = b.Loop(sec, "PILLAR", c(1, 1), c(1.5, 1), c(1.5, 1.5), c(1, 1.5))
		}
		for i := range 2 {
			v0, v1 := corners[2*q+i], corners[(2*q+i+1)%len(corners)]
			s := b.Seg(b.LineDef(v0, v1, b.SideDef(sec, "WALL"), level.NoSide, 0), 0)
			if first < 0 {
				first = s
			}
			count++
		}
		leaves = append(leaves, b.SubSector(first, count))
	}
	one := fixed.Int8_8U(1)
	left := b.Node(0, 0, -one, 0, level.Leaf(leaves[0]), level.Leaf(leaves[3]))
	right := b.Node(0, 0, one, 0, level.Leaf(leaves[2]), level.Leaf(leaves[1]))
	b.Node(0, 0, 0, one, right, left)
	return b.Level()
}
