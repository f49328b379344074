package fixed

import (
	"fmt"

	"github.com/clktmr/agbgfx/debug"
)

func UInt0_16U(i int) UInt0_16     { return UInt0_16(i << 16) }
func UInt0_16F(f float32) UInt0_16 { return UInt0_16(f * (1 << 16)) }

func (x UInt0_16) Shift() uint    { return 16 }
func (x UInt0_16) Raw() uint16    { return uint16(x) }
func (x UInt0_16) Float() float32 { return float32(x) / (1 << 16) }

func (x UInt0_16) Floor() int { return int(uint32(x) >> 16) }
func (x UInt0_16) Ceil() int  { return int((uint32(x) + (1<<16 - 1)) >> 16) }

// Round returns the nearest integer, ties rounded up.
func (x UInt0_16) Round() int {
	const half = 1 << (16 - 1)
	return int((uint32(x) + half) >> 16)
}

func (x UInt0_16) Mul(y UInt0_16) UInt0_16 {
	return UInt0_16((uint32(x) * uint32(y)) >> 16)
}

func (x UInt0_16) Div(y UInt0_16) UInt0_16 {
	debug.Assert(y != 0, "fixed: division by zero")
	return UInt0_16((uint32(x) << 16) / uint32(y))
}

func (x UInt0_16) String() string {
	const shift, mask = 16, 1<<16 - 1
	return fmt.Sprintf("%d:%05d", uint32(x)>>shift, uint32(x)&mask)
}
