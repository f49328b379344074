package bsp

import (
	"fmt"
	"math/bits"

	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/level"
	"github.com/clktmr/agbgfx/linalg"
)

// Wall is a projected, single sided wall.  Columns are unclipped, X1 is
// exclusive.  H0 and H1 are the half heights at X0 and X1.
type Wall struct {
	Seg            int
	Sector         *level.Sector
	X0, X1         int
	H0, H1         fixed.Int24_8
	Depth0, Depth1 fixed.Int20_12 // inverse depth
}

type Stats struct {
	Nodes    int // nodes entered
	Leaves   int // subsectors entered
	Segs     int // segs considered
	Walls    int // walls emitted
	Occluded int // walls hidden behind nearer walls
}

// Walker traverses a level front to back.  A Walker can be reused for
// subsequent frames but must not be used concurrently.
type Walker struct {
	// NoOcclusion disables the column coverage test.  All potentially
	// visible walls are emitted and the whole tree is walked.
	NoOcclusion bool

	Stats Stats

	visited  []bool
	coverage []uint64
	free     int
}

// Walk calls visit for each visible wall of lvl, nearest leaf first.  Walls
// entirely behind nearer walls are skipped and the walk ends as soon as all
// screen columns are covered.
func (w *Walker) Walk(lvl *level.Level, view *View, visit func(*Wall)) error {
	w.Stats = Stats{}
	w.visited = resize(w.visited, len(lvl.Nodes))
	w.coverage = resize(w.coverage, (view.Width+63)/64)
	w.free = view.Width

	err := w.walk(lvl, view, lvl.Root(), visit)
	if err != nil {
		logger.Printf("walk aborted after %d nodes: %v", w.Stats.Nodes, err)
	}
	return err
}

func resize[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	s = s[:n]
	clear(s)
	return s
}

func (w *Walker) walk(lvl *level.Level, view *View, child uint16, visit func(*Wall)) error {
	if !w.NoOcclusion && w.free == 0 {
		return nil
	}

	idx := level.ChildIndex(child)
	if level.IsLeaf(child) {
		if idx >= len(lvl.SubSectors) {
			return fmt.Errorf("bsp: subsector %d: %w", idx, ErrChildRange)
		}
		return w.leaf(lvl, view, &lvl.SubSectors[idx], visit)
	}

	if idx >= len(lvl.Nodes) {
		return fmt.Errorf("bsp: node %d: %w", idx, ErrChildRange)
	}
	if w.visited[idx] {
		return fmt.Errorf("bsp: node %d: %w", idx, ErrCycle)
	}
	w.visited[idx] = true
	w.Stats.Nodes++

	node := &lvl.Nodes[idx]
	near := Side(node, view.Pos)
	if err := w.walk(lvl, view, node.Child[near], visit); err != nil {
		return err
	}
	return w.walk(lvl, view, node.Child[near^1], visit)
}

func (w *Walker) leaf(lvl *level.Level, view *View, ss *level.SubSector, visit func(*Wall)) error {
	w.Stats.Leaves++
	first, last := int(ss.First), int(ss.First)+int(ss.Count)
	if first < 0 || last > len(lvl.Segs) {
		return fmt.Errorf("bsp: segs [%d, %d): %w", first, last, ErrChildRange)
	}

	for i := first; i < last; i++ {
		w.Stats.Segs++
		seg := &lvl.Segs[i]
		if !checkSeg(lvl, seg) {
			return fmt.Errorf("bsp: seg %d: %w", i, ErrChildRange)
		}
		if lvl.LineDefs[seg.LineDef].Flags&level.FlagTwoSided != 0 {
			continue
		}
		sector, ok := lvl.SegSector(seg)
		if !ok {
			continue
		}

		v0 := view.ToCamera(vertexPos(lvl.Vertices[seg.Start]))
		v1 := view.ToCamera(vertexPos(lvl.Vertices[seg.End]))
		if !ClipWall(&v0, &v1) || backFacing(v0, v1) {
			continue
		}

		x0, d0 := view.Project(v0)
		x1, d1 := view.Project(v1)
		wall := Wall{
			Seg:    i,
			Sector: sector,
			X0:     x0.Floor(),
			X1:     x1.Floor() + 1,
			H0:     view.Height(d0),
			H1:     view.Height(d1),
			Depth0: d0,
			Depth1: d1,
		}
		if wall.X0 >= view.Width || wall.X1 <= 0 || wall.X0 >= wall.X1 {
			continue
		}
		if !w.NoOcclusion && !w.cover(max(wall.X0, 0), min(wall.X1, view.Width)) {
			w.Stats.Occluded++
			continue
		}
		w.Stats.Walls++
		visit(&wall)
	}
	return nil
}

// cover marks the columns [x0, x1) as covered and reports whether any of
// them was still free.
func (w *Walker) cover(x0, x1 int) bool {
	marked := 0
	for x := x0; x < x1; {
		word, bit := x/64, uint(x%64)
		n := min(64-int(bit), x1-x)
		mask := (^uint64(0) >> (64 - uint(n))) << bit
		marked += bits.OnesCount64(mask &^ w.coverage[word])
		w.coverage[word] |= mask
		x += n
	}
	w.free -= marked
	return marked > 0
}

func vertexPos(v level.Vertex) linalg.Vec2[fixed.Int24_8] {
	return linalg.Vec2[fixed.Int24_8]{
		X: fixed.Cast[fixed.Int24_8](v.X),
		Y: fixed.Cast[fixed.Int24_8](v.Y),
	}
}

// checkSeg reports whether all records referenced by seg exist.
func checkSeg(lvl *level.Level, seg *level.Seg) bool {
	if !inRange(seg.Start, len(lvl.Vertices)) || !inRange(seg.End, len(lvl.Vertices)) ||
		!inRange(seg.LineDef, len(lvl.LineDefs)) || seg.Direction&^1 != 0 {
		return false
	}
	ld := &lvl.LineDefs[seg.LineDef]
	for _, side := range [2]uint16{ld.Right, ld.Left} {
		if side == level.NoSide {
			continue
		}
		if int(side) >= len(lvl.SideDefs) || int(lvl.SideDefs[side].Sector) >= len(lvl.Sectors) {
			return false
		}
	}
	return true
}

func inRange(i int16, n int) bool { return i >= 0 && int(i) < n }
