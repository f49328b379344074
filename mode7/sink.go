package mode7

import "github.com/clktmr/agbgfx/linalg"

// Sink receives the transform of a scanline, e.g. the background affine
// registers.
type Sink interface {
	SetTransform(row int, t linalg.Affine2D)
}

type Call struct {
	Row       int
	Transform linalg.Affine2D
}

// Recorder is a Sink remembering all calls in order.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) SetTransform(row int, t linalg.Affine2D) {
	r.Calls = append(r.Calls, Call{row, t})
}

func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Registers simulates the background affine registers as latched by the
// display for each scanline of a frame.
type Registers struct {
	rows []linalg.Affine2D
	set  []bool
}

func NewRegisters(height int) *Registers {
	return &Registers{
		rows: make([]linalg.Affine2D, height),
		set:  make([]bool, height),
	}
}

// SetTransform latches t for row.  Rows outside of the screen are ignored.
func (r *Registers) SetTransform(row int, t linalg.Affine2D) {
	if row < 0 || row >= len(r.rows) {
		return
	}
	r.rows[row] = t
	r.set[row] = true
}

// Row returns the transform latched for row and whether there was one in the
// current frame.
func (r *Registers) Row(row int) (linalg.Affine2D, bool) {
	if row < 0 || row >= len(r.rows) {
		return linalg.Affine2D{}, false
	}
	return r.rows[row], r.set[row]
}

// Reset starts a new frame.
func (r *Registers) Reset() {
	clear(r.set)
}
