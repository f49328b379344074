package fixed

import (
	"fmt"

	"github.com/clktmr/agbgfx/debug"
)

func Int20_12U(i int) Int20_12     { return Int20_12(i << 12) }
func Int20_12F(f float32) Int20_12 { return Int20_12(f * (1 << 12)) }

func (x Int20_12) Shift() uint    { return 12 }
func (x Int20_12) Raw() int32     { return int32(x) }
func (x Int20_12) Float() float32 { return float32(x) / (1 << 12) }
func (x Int20_12) One() Int20_12  { return 1 << 12 }

func (x Int20_12) Floor() int { return int(int64(x) >> 12) }
func (x Int20_12) Ceil() int  { return int((int64(x) + (1<<12 - 1)) >> 12) }

// Round returns the nearest integer, ties away from zero.
func (x Int20_12) Round() int {
	const half = 1 << (12 - 1)
	if x < 0 {
		return -int((-int64(x) + half) >> 12)
	}
	return int((int64(x) + half) >> 12)
}

func (x Int20_12) Abs() Int20_12 {
	if x < 0 {
		return -x
	}
	return x
}

func (x Int20_12) Mul(y Int20_12) Int20_12 {
	return Int20_12((int64(x) * int64(y)) >> 12)
}

func (x Int20_12) Div(y Int20_12) Int20_12 {
	debug.Assert(y != 0, "fixed: division by zero")
	return Int20_12((int64(x) << 12) / int64(y))
}

func (x Int20_12) String() string {
	const shift, mask = 12, 1<<12 - 1
	return fmt.Sprintf("%d:%04d", int64(x)>>shift, int64(x)&mask)
}
