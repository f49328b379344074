//go:build !debug

// Package debug provides precondition checks for the arithmetic and
// rasterization code.  They are enabled with the debug build tag and compile
// to no-ops otherwise, since the hot paths run once per pixel or scanline.
package debug

// Guard assertions that are expensive to evaluate with `if debug.Enabled
// {...}`, otherwise the argument is still computed in release builds.
const Enabled = false

// Assert panics with message if b is false.
func Assert(b bool, message string) {}

// Assertf panics with a formatted message if b is false.
func Assertf(b bool, format string, args ...any) {}

// AssertErrNil panics if err is not nil.
func AssertErrNil(err error) {}
