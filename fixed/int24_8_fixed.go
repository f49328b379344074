package fixed

import (
	"fmt"

	"github.com/clktmr/agbgfx/debug"
)

func Int24_8U(i int) Int24_8     { return Int24_8(i << 8) }
func Int24_8F(f float32) Int24_8 { return Int24_8(f * (1 << 8)) }

func (x Int24_8) Shift() uint    { return 8 }
func (x Int24_8) Raw() int32     { return int32(x) }
func (x Int24_8) Float() float32 { return float32(x) / (1 << 8) }
func (x Int24_8) One() Int24_8   { return 1 << 8 }

func (x Int24_8) Floor() int { return int(int64(x) >> 8) }
func (x Int24_8) Ceil() int  { return int((int64(x) + (1<<8 - 1)) >> 8) }

// Round returns the nearest integer, ties away from zero.
func (x Int24_8) Round() int {
	const half = 1 << (8 - 1)
	if x < 0 {
		return -int((-int64(x) + half) >> 8)
	}
	return int((int64(x) + half) >> 8)
}

func (x Int24_8) Abs() Int24_8 {
	if x < 0 {
		return -x
	}
	return x
}

func (x Int24_8) Mul(y Int24_8) Int24_8 {
	return Int24_8((int64(x) * int64(y)) >> 8)
}

func (x Int24_8) Div(y Int24_8) Int24_8 {
	debug.Assert(y != 0, "fixed: division by zero")
	return Int24_8((int64(x) << 8) / int64(y))
}

func (x Int24_8) String() string {
	const shift, mask = 8, 1<<8 - 1
	return fmt.Sprintf("%d:%03d", int64(x)>>shift, int64(x)&mask)
}
