package fixed

import (
	"fmt"

	"github.com/clktmr/agbgfx/debug"
)

func Int8_24U(i int) Int8_24     { return Int8_24(i << 24) }
func Int8_24F(f float32) Int8_24 { return Int8_24(f * (1 << 24)) }

func (x Int8_24) Shift() uint    { return 24 }
func (x Int8_24) Raw() int32     { return int32(x) }
func (x Int8_24) Float() float32 { return float32(x) / (1 << 24) }
func (x Int8_24) One() Int8_24   { return 1 << 24 }

func (x Int8_24) Floor() int { return int(int64(x) >> 24) }
func (x Int8_24) Ceil() int  { return int((int64(x) + (1<<24 - 1)) >> 24) }

// Round returns the nearest integer, ties away from zero.
func (x Int8_24) Round() int {
	const half = 1 << (24 - 1)
	if x < 0 {
		return -int((-int64(x) + half) >> 24)
	}
	return int((int64(x) + half) >> 24)
}

func (x Int8_24) Abs() Int8_24 {
	if x < 0 {
		return -x
	}
	return x
}

func (x Int8_24) Mul(y Int8_24) Int8_24 {
	return Int8_24((int64(x) * int64(y)) >> 24)
}

func (x Int8_24) Div(y Int8_24) Int8_24 {
	debug.Assert(y != 0, "fixed: division by zero")
	return Int8_24((int64(x) << 24) / int64(y))
}

func (x Int8_24) String() string {
	const shift, mask = 24, 1<<24 - 1
	return fmt.Sprintf("%d:%08d", int64(x)>>shift, int64(x)&mask)
}
