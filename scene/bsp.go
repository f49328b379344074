package scene

import (
	"fmt"

	"github.com/clktmr/agbgfx/bsp"
	"github.com/clktmr/agbgfx/fixed"
	"github.com/clktmr/agbgfx/framebuffer"
	"github.com/clktmr/agbgfx/input"
	"github.com/clktmr/agbgfx/level"
	"github.com/clktmr/agbgfx/linalg"
	"github.com/clktmr/agbgfx/pose"
	"github.com/clktmr/agbgfx/raster"
)

// BSP walks a level front to back and draws its walls in reverse, nearest
// last.
type BSP struct {
	Level      *level.Level
	Pose       pose.Pose
	Controller *pose.CharacterController

	backdrop
	walker bsp.Walker
	walls  []bsp.Wall
}

func NewBSP(lvl *level.Level) *BSP {
	s := &BSP{
		Level:    lvl,
		Pose:     pose.New(linalg.V3(0, -fixed.Int24_8U(1), 0), 0),
		backdrop: backdrop{Sky: framebuffer.SkyBlue, Ground: framebuffer.Black},
	}
	s.Controller = pose.NewCharacterController(&s.Pose)
	return s
}

func (s *BSP) Update(k *input.Keypad) {
	s.Controller.Update(k)
}

func (s *BSP) Status() string {
	st := s.walker.Stats
	return fmt.Sprintf("%s walls %d occluded %d", s.Controller.State(), st.Walls, st.Occluded)
}

// Stats returns the counters of the last walk.
func (s *BSP) Stats() bsp.Stats { return s.walker.Stats }

func (s *BSP) Render(dst *framebuffer.Buffer[framebuffer.BGR555]) error {
	s.backdrop.render(dst)

	view := bsp.NewView(s.Pose.Pos.XY(), s.Pose.Heading, dst.Width)
	s.walls = s.walls[:0]
	err := s.walker.Walk(s.Level, view, func(w *bsp.Wall) {
		s.walls = append(s.walls, *w)
	})
	for i := len(s.walls) - 1; i >= 0; i-- {
		w := &s.walls[i]
		raster.Wall(dst, w, WallColors[w.Seg%len(WallColors)])
	}
	return err
}
