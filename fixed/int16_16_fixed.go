package fixed

import (
	"fmt"

	"github.com/clktmr/agbgfx/debug"
)

func Int16_16U(i int) Int16_16     { return Int16_16(i << 16) }
func Int16_16F(f float32) Int16_16 { return Int16_16(f * (1 << 16)) }

func (x Int16_16) Shift() uint    { return 16 }
func (x Int16_16) Raw() int32     { return int32(x) }
func (x Int16_16) Float() float32 { return float32(x) / (1 << 16) }
func (x Int16_16) One() Int16_16  { return 1 << 16 }

func (x Int16_16) Floor() int { return int(int64(x) >> 16) }
func (x Int16_16) Ceil() int  { return int((int64(x) + (1<<16 - 1)) >> 16) }

// Round returns the nearest integer, ties away from zero.
func (x Int16_16) Round() int {
	const half = 1 << (16 - 1)
	if x < 0 {
		return -int((-int64(x) + half) >> 16)
	}
	return int((int64(x) + half) >> 16)
}

func (x Int16_16) Abs() Int16_16 {
	if x < 0 {
		return -x
	}
	return x
}

func (x Int16_16) Mul(y Int16_16) Int16_16 {
	return Int16_16((int64(x) * int64(y)) >> 16)
}

func (x Int16_16) Div(y Int16_16) Int16_16 {
	debug.Assert(y != 0, "fixed: division by zero")
	return Int16_16((int64(x) << 16) / int64(y))
}

func (x Int16_16) String() string {
	const shift, mask = 16, 1<<16 - 1
	return fmt.Sprintf("%d:%05d", int64(x)>>shift, int64(x)&mask)
}
