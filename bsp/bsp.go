// Package bsp walks the BSP tree of a level and emits the visible walls as
// projected screen spans, nearest first.
//
// Camera space has x to the right and y forward.  Walls are clipped against
// the y = 0 plane before projection, back faces and walls outside the screen
// are culled.
package bsp

import (
	"io"
	"log"

	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/level"
	"github.com/clktmr/agbgfx/linalg"
)

var (
	ErrCycle      = level.ErrCycle
	ErrChildRange = level.ErrIndexRange
)

var logger *log.Logger = log.New(io.Discard, "", log.LstdFlags)

// SetLogger sets the logger for walk diagnostics.  Output is discarded by
// default.
func SetLogger(l *log.Logger) {
	logger = l
}

// Side returns the child of node whose half space contains pos, 0 for the
// right side and 1 for the left side.  Points on the splitting line belong to
// the left side.
func Side(node *level.Node, pos linalg.Vec2[fixed.Int24_8]) int {
	// Both operands are .8, the scale is irrelevant for the sign.
	relX := int64(pos.X) - int64(node.X)
	relY := int64(pos.Y) - int64(node.Y)
	cross := relX*int64(node.DY) - relY*int64(node.DX)
	if cross > 0 {
		return 0
	}
	return 1
}
