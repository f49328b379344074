package bsp

import (
	"errors"
	"testing"

	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/level"
	"github.com/clktmr/agbgfx/linalg"
)

func v2(x, y float32) linalg.Vec2[fixed.Int24_8] {
	return linalg.V2(fixed.Int24_8F(x), fixed.Int24_8F(y))
}

func TestClipWall(t *testing.T) {
	tests := map[string]struct {
		v0, v1  linalg.Vec2[fixed.Int24_8]
		visible bool
		c0, c1  linalg.Vec2[fixed.Int24_8]
	}{
		"behind":       {v2(-1, -1), v2(1, -2), false, v2(-1, -1), v2(1, -2)},
		"on plane":     {v2(-1, 0), v2(1, 0), false, v2(-1, 0), v2(1, 0)},
		"in front":     {v2(-1, 1), v2(1, 2), true, v2(-1, 1), v2(1, 2)},
		"parallel":     {v2(-1, 3), v2(1, 3), true, v2(-1, 3), v2(1, 3)},
		"start behind": {v2(0, -1), v2(2, 1), true, v2(1, 0), v2(2, 1)},
		"end behind":   {v2(2, 1), v2(0, -1), true, v2(2, 1), v2(1, 0)},
		"end on plane": {v2(-2, 4), v2(2, 0), true, v2(-2, 4), v2(2, 0)},
		"fraction":     {v2(-1, -3), v2(3, 1), true, v2(2, 0), v2(3, 1)},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			v0, v1 := tc.v0, tc.v1
			visible := ClipWall(&v0, &v1)
			if visible != tc.visible {
				t.Fatalf("expected %v, got %v", tc.visible, visible)
			}
			if visible && (v0 != tc.c0 || v1 != tc.c1) {
				t.Fatalf("expected %v %v, got %v %v", tc.c0, tc.c1, v0, v1)
			}
		})
	}
}

// Clipped endpoints must lie on the y = 0 plane and on the original line.
func TestClipWallOnLine(t *testing.T) {
	for i := -8; i <= 8; i++ {
		a, b := v2(float32(i), -2), v2(float32(3-i), 5)
		c0, c1 := a, b
		if !ClipWall(&c0, &c1) {
			t.Fatalf("wall %v %v rejected", a, b)
		}
		if c0.Y != 0 || c1 != b {
			t.Fatalf("expected endpoint on plane, got %v %v", c0, c1)
		}
		// cross product of (b - a) and (c0 - a) at .16
		d, e := b.Sub(a), c0.Sub(a)
		cross := int64(d.X)*int64(e.Y) - int64(d.Y)*int64(e.X)
		if cross < -8<<8 || cross > 8<<8 {
			t.Fatalf("clipped endpoint %v off line %v %v: %d", c0, a, b, cross)
		}
	}
}

func TestSide(t *testing.T) {
	node := &level.Node{DX: 0, DY: fixed.Int8_8U(1)}
	tests := map[string]struct {
		pos      linalg.Vec2[fixed.Int24_8]
		expected int
	}{
		"right": {v2(1, 0), 0},
		"left":  {v2(-1, 5), 1},
		"on":    {v2(0, 3), 1},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if side := Side(node, tc.pos); side != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, side)
			}
		})
	}
}

func TestView(t *testing.T) {
	view := NewView(v2(1, 1), fixed.UInt0_16F(0.25), 240)
	// A quarter turn counter clockwise looks along -x.
	p := view.ToCamera(v2(-1, 1))
	if p != v2(0, 2) {
		t.Fatalf("expected %v, got %v", v2(0, 2), p)
	}
	p = view.ToCamera(v2(1, 2))
	if p != v2(1, 0) {
		t.Fatalf("expected %v, got %v", v2(1, 0), p)
	}

	x, invDepth := view.Project(v2(1, 4))
	if x != fixed.Int24_8U(180) || invDepth != fixed.Int20_12F(0.5) {
		t.Fatalf("expected (180, 0.5), got (%v, %v)", x, invDepth)
	}
	if h := view.Height(invDepth); h != fixed.Int24_8U(15) {
		t.Fatalf("expected %v, got %v", fixed.Int24_8U(15), h)
	}
	// Points on the camera plane are projected at the near clip depth.
	if _, invDepth := view.Project(v2(1, 0)); invDepth != fixed.Int20_12U(128) {
		t.Fatalf("expected %v, got %v", fixed.Int20_12U(128), invDepth)
	}
}

// unitSquare returns a single room bounded by the unit square, without any
// nodes.
// unitSquare returns a single sector bounded by the unit square.  With split
// set, the diagonal from (0, 0) to (1, 1) splits it into two subsectors, the
// west and north walls on the left and the east and south walls on the right.
func unitSquare(split bool) *level.Level {
	var b level.Builder
	va := b.Vertex(0, 0)
	vb := b.Vertex(0, fixed.Int8_8U(1))
	vc := b.Vertex(fixed.Int8_8U(1), fixed.Int8_8U(1))
	vd := b.Vertex(fixed.Int8_8U(1), 0)
	sec := b.Sector(0, fixed.Int8_8U(1), fixed.Int8_8U(1), "FLOOR", "CEIL")
	first, count := b.Loop(sec, "WALL", va, vb, vc, vd)
	if !split {
		b.SubSector(first, count)
		return b.Level()
	}
	left := b.SubSector(first, 2)
	right := b.SubSector(first+2, 2)
	one := fixed.Int8_8U(1)
	b.Node(0, 0, one, one, level.Leaf(right), level.Leaf(left))
	return b.Level()
}

// quadrants returns the square [-2, 2]² split into four subsectors by three
// nodes.  Each quadrant holds its two outer walls.  The leaves are created in
// the order top left, top right, bottom right, bottom left.
func quadrants() *level.Level {
	var b level.Builder
	c := func(x, y int) uint16 { return b.Vertex(fixed.Int8_8U(x), fixed.Int8_8U(y)) }
	corners := []uint16{
		c(-2, 0), c(-2, 2), c(0, 2), c(2, 2),
		c(2, 0), c(2, -2), c(0, -2), c(-2, -2),
	}
	sec := b.Sector(0, fixed.Int8_8U(1), fixed.Int8_8U(1), "FLOOR", "CEIL")
	var leaves []uint16
	for q := range 4 {
		var first int16
		for i := range 2 {
			v0, v1 := corners[2*q+i], corners[(2*q+i+1)%len(corners)]
			s := b.Seg(b.LineDef(v0, v1, b.SideDef(sec, "WALL"), level.NoSide, 0), 0)
			if i == 0 {
				first = s
			}
		}
		leaves = append(leaves, b.SubSector(first, 2))
	}
	one := fixed.Int8_8U(1)
	left := b.Node(0, 0, -one, 0, level.Leaf(leaves[0]), level.Leaf(leaves[3]))
	right := b.Node(0, 0, one, 0, level.Leaf(leaves[2]), level.Leaf(leaves[1]))
	b.Node(0, 0, 0, one, right, left)
	return b.Level()
}

func TestWalkUnitSquare(t *testing.T) {
	tests := map[string]struct {
		split bool
		stats Stats
	}{
		"leaf": {false, Stats{Nodes: 0, Leaves: 1, Segs: 4, Walls: 1}},
		"node": {true, Stats{Nodes: 1, Leaves: 1, Segs: 2, Walls: 1}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			lvl := unitSquare(tc.split)
			if err := level.Validate(lvl); err != nil {
				t.Fatal(err)
			}

			var walls []Wall
			var w Walker
			view := NewView(v2(0.5, 0.5), 0, 240)
			if err := w.Walk(lvl, view, func(wall *Wall) { walls = append(walls, *wall) }); err != nil {
				t.Fatal(err)
			}
			if len(walls) != 1 {
				t.Fatalf("expected 1 wall, got %d: %v", len(walls), walls)
			}
			wall := walls[0]
			if wall.Seg != 1 {
				t.Fatalf("expected top wall, got seg %d", wall.Seg)
			}
			if wall.X0 != -120 || wall.X1 != 361 {
				t.Fatalf("expected span [-120, 361), got [%d, %d)", wall.X0, wall.X1)
			}
			if wall.Depth0 != fixed.Int20_12U(4) || wall.Depth1 != fixed.Int20_12U(4) {
				t.Fatalf("expected inverse depth 4, got %v %v", wall.Depth0, wall.Depth1)
			}
			if wall.H0 != fixed.Int24_8U(120) || wall.H1 != fixed.Int24_8U(120) {
				t.Fatalf("expected height 120, got %v %v", wall.H0, wall.H1)
			}
			if wall.Sector != &lvl.Sectors[0] {
				t.Fatalf("unexpected sector %v", wall.Sector)
			}
			if w.Stats != tc.stats {
				t.Fatalf("expected %+v, got %+v", tc.stats, w.Stats)
			}
		})
	}
}

func TestWalkSplitNoOcclusion(t *testing.T) {
	lvl := unitSquare(true)
	w := Walker{NoOcclusion: true}
	var segs []int
	err := w.Walk(lvl, NewView(v2(0.5, 0.5), 0, 240), func(wall *Wall) { segs = append(segs, wall.Seg) })
	if err != nil {
		t.Fatal(err)
	}
	expected := Stats{Nodes: 1, Leaves: 2, Segs: 4, Walls: 1}
	if w.Stats != expected {
		t.Fatalf("expected %+v, got %+v", expected, w.Stats)
	}
	if len(segs) != 1 || segs[0] != 1 {
		t.Fatalf("expected %v, got %v", []int{1}, segs)
	}
}

func TestWalkOrder(t *testing.T) {
	lvl := quadrants()
	if err := level.Validate(lvl); err != nil {
		t.Fatal(err)
	}

	tests := map[string]struct {
		walker   Walker
		pos      linalg.Vec2[fixed.Int24_8]
		segs     []int
		expected Stats
	}{
		// Leaves are visited bottom left, top left, bottom right, top right.
		"bottom left": {
			pos:      v2(-1, -1),
			segs:     []int{0, 1, 2},
			expected: Stats{Nodes: 3, Leaves: 4, Segs: 8, Walls: 3},
		},
		// The top left wall covers the screen, the walk ends after the
		// first leaf.
		"top left": {
			pos:      v2(-1, 1),
			segs:     []int{1},
			expected: Stats{Nodes: 2, Leaves: 1, Segs: 2, Walls: 1},
		},
		"no occlusion": {
			walker:   Walker{NoOcclusion: true},
			pos:      v2(-1, 1),
			segs:     []int{1},
			expected: Stats{Nodes: 3, Leaves: 4, Segs: 8, Walls: 1},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var segs []int
			w := tc.walker
			err := w.Walk(lvl, NewView(tc.pos, 0, 240), func(wall *Wall) { segs = append(segs, wall.Seg) })
			if err != nil {
				t.Fatal(err)
			}
			if len(segs) != len(tc.segs) {
				t.Fatalf("expected %v, got %v", tc.segs, segs)
			}
			for i := range segs {
				if segs[i] != tc.segs[i] {
					t.Fatalf("expected %v, got %v", tc.segs, segs)
				}
			}
			if w.Stats != tc.expected {
				t.Fatalf("expected %+v, got %+v", tc.expected, w.Stats)
			}
		})
	}
}

func TestWalkOccluded(t *testing.T) {
	var b level.Builder
	c := func(x, y int) uint16 { return b.Vertex(fixed.Int8_8U(x), fixed.Int8_8U(y)) }
	sec := b.Sector(0, fixed.Int8_8U(1), fixed.Int8_8U(1), "FLOOR", "CEIL")
	wall := func(v0, v1 uint16) int16 {
		return b.Seg(b.LineDef(v0, v1, b.SideDef(sec, "WALL"), level.NoSide, 0), 0)
	}
	near := wall(c(-1, 2), c(1, 2))
	wall(c(-1, 4), c(1, 4))
	b.SubSector(near, 2)
	lvl := b.Level()

	var w Walker
	var segs []int
	if err := w.Walk(lvl, NewView(v2(0, 0), 0, 240), func(wall *Wall) { segs = append(segs, wall.Seg) }); err != nil {
		t.Fatal(err)
	}
	if len(segs) != 1 || segs[0] != int(near) {
		t.Fatalf("expected [%d], got %v", near, segs)
	}
	if w.Stats.Occluded != 1 {
		t.Fatalf("expected 1 occluded wall, got %d", w.Stats.Occluded)
	}
}

func TestWalkTwoSided(t *testing.T) {
	lvl := unitSquare(false)
	lvl.LineDefs[1].Flags |= level.FlagTwoSided
	var w Walker
	err := w.Walk(lvl, NewView(v2(0.5, 0.5), 0, 240), func(wall *Wall) {
		t.Fatalf("unexpected wall %+v", wall)
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestWalkErrors(t *testing.T) {
	tests := map[string]struct {
		modify   func(*level.Level)
		expected error
	}{
		"cycle":      {func(l *level.Level) { l.Nodes[2].Child[1] = 2 }, ErrCycle},
		"node range": {func(l *level.Level) { l.Nodes[2].Child[1] = 7 }, ErrChildRange},
		"leaf range": {func(l *level.Level) { l.Nodes[0].Child[0] = level.Leaf(9) }, ErrChildRange},
		"seg range":  {func(l *level.Level) { l.SubSectors[0].Count = 100 }, ErrChildRange},
		"vertex":     {func(l *level.Level) { l.Segs[0].End = int16(len(l.Vertices)) }, ErrChildRange},
		"negative":   {func(l *level.Level) { l.Segs[0].Start = -1 }, ErrChildRange},
		"linedef":    {func(l *level.Level) { l.Segs[0].LineDef = 100 }, ErrChildRange},
		"sidedef":    {func(l *level.Level) { l.LineDefs[l.Segs[0].LineDef].Right = 100 }, ErrChildRange},
		"sector":     {func(l *level.Level) { l.SideDefs[0].Sector = 100 }, ErrChildRange},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			lvl := quadrants()
			tc.modify(lvl)
			w := Walker{NoOcclusion: true}
			err := w.Walk(lvl, NewView(v2(-1, 1), 0, 240), func(*Wall) {})
			if !errors.Is(err, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}
