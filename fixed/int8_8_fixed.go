package fixed

import (
	"fmt"

	"github.com/clktmr/agbgfx/debug"
)

func Int8_8U(i int) Int8_8     { return Int8_8(i << 8) }
func Int8_8F(f float32) Int8_8 { return Int8_8(f * (1 << 8)) }

func (x Int8_8) Shift() uint    { return 8 }
func (x Int8_8) Raw() int16     { return int16(x) }
func (x Int8_8) Float() float32 { return float32(x) / (1 << 8) }
func (x Int8_8) One() Int8_8    { return 1 << 8 }

func (x Int8_8) Floor() int { return int(int32(x) >> 8) }
func (x Int8_8) Ceil() int  { return int((int32(x) + (1<<8 - 1)) >> 8) }

// Round returns the nearest integer, ties away from zero.
func (x Int8_8) Round() int {
	const half = 1 << (8 - 1)
	if x < 0 {
		return -int((-int32(x) + half) >> 8)
	}
	return int((int32(x) + half) >> 8)
}

func (x Int8_8) Abs() Int8_8 {
	if x < 0 {
		return -x
	}
	return x
}

func (x Int8_8) Mul(y Int8_8) Int8_8 {
	return Int8_8((int32(x) * int32(y)) >> 8)
}

func (x Int8_8) Div(y Int8_8) Int8_8 {
	debug.Assert(y != 0, "fixed: division by zero")
	return Int8_8((int32(x) << 8) / int32(y))
}

func (x Int8_8) String() string {
	const shift, mask = 8, 1<<8 - 1
	return fmt.Sprintf("%d:%03d", int32(x)>>shift, int32(x)&mask)
}
