package level

import "fmt"

// Validate checks all cross references of l and that the BSP is a tree
// reaching every node and subsector from the root.
func Validate(l *Level) error {
	for i, ld := range l.LineDefs {
		if int(ld.V0) >= len(l.Vertices) || int(ld.V1) >= len(l.Vertices) {
			return fmt.Errorf("level: linedef %d: vertex: %w", i, ErrIndexRange)
		}
		for _, side := range [2]uint16{ld.Right, ld.Left} {
			if side != NoSide && int(side) >= len(l.SideDefs) {
				return fmt.Errorf("level: linedef %d: sidedef %d: %w", i, side, ErrIndexRange)
			}
		}
	}
	for i, sd := range l.SideDefs {
		if int(sd.Sector) >= len(l.Sectors) {
			return fmt.Errorf("level: sidedef %d: sector %d: %w", i, sd.Sector, ErrIndexRange)
		}
	}
	for i, s := range l.Segs {
		if !inRange(s.Start, len(l.Vertices)) || !inRange(s.End, len(l.Vertices)) {
			return fmt.Errorf("level: seg %d: vertex: %w", i, ErrIndexRange)
		}
		if !inRange(s.LineDef, len(l.LineDefs)) {
			return fmt.Errorf("level: seg %d: linedef %d: %w", i, s.LineDef, ErrIndexRange)
		}
		if s.Direction != 0 && s.Direction != 1 {
			return fmt.Errorf("level: seg %d: direction %d: %w", i, s.Direction, ErrIndexRange)
		}
	}
	for i, ss := range l.SubSectors {
		if ss.First < 0 || ss.Count < 0 || int(ss.First)+int(ss.Count) > len(l.Segs) {
			return fmt.Errorf("level: subsector %d: segs [%d, %d): %w",
				i, ss.First, int(ss.First)+int(ss.Count), ErrIndexRange)
		}
	}
	return validateTree(l)
}

func inRange(i int16, n int) bool { return i >= 0 && int(i) < n }

func validateTree(l *Level) error {
	if len(l.Nodes) == 0 {
		if len(l.SubSectors) != 1 {
			return fmt.Errorf("level: %d subsectors without nodes: %w", len(l.SubSectors), ErrUnreachable)
		}
		return nil
	}

	visitedNodes := make([]bool, len(l.Nodes))
	visitedLeaves := make([]bool, len(l.SubSectors))

	// Iterative depth first search.  Every node may only be entered once,
	// otherwise the graph is not a tree.
	stack := []uint16{l.Root()}
	for len(stack) > 0 {
		child := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx := ChildIndex(child)
		if IsLeaf(child) {
			if idx >= len(l.SubSectors) {
				return fmt.Errorf("level: subsector %d: %w", idx, ErrIndexRange)
			}
			if visitedLeaves[idx] {
				return fmt.Errorf("level: subsector %d referenced twice: %w", idx, ErrCycle)
			}
			visitedLeaves[idx] = true
			continue
		}
		if idx >= len(l.Nodes) {
			return fmt.Errorf("level: node %d: %w", idx, ErrIndexRange)
		}
		if visitedNodes[idx] {
			return fmt.Errorf("level: node %d entered twice: %w", idx, ErrCycle)
		}
		visitedNodes[idx] = true
		stack = append(stack, l.Nodes[idx].Child[0], l.Nodes[idx].Child[1])
	}

	for i, ok := range visitedNodes {
		if !ok {
			return fmt.Errorf("level: node %d: %w", i, ErrUnreachable)
		}
	}
	for i, ok := range visitedLeaves {
		if !ok {
			return fmt.Errorf("level: subsector %d: %w", i, ErrUnreachable)
		}
	}
	return nil
}
