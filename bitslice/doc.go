// Package bitslice implements a fixed or variable width bit vector that
// behaves like a hardware register.
//
// A BitVector holds an unsigned magnitude of at most 64 bits, an optional
// declared width, and a signedness flag. Bits and inclusive ranges are
// addressed VHDL style, high index first:
//
//	v := bitslice.MustNew(0xCAFEBABE)
//	low, _ := v.Slice(7, 0) // 0x00BE (190)
//	_ = v.Set(3, bitslice.Int(0))
//
// Arithmetic and bitwise operators evaluate exactly and then re-wrap the
// result into the width of the left operand. A result that does not fit
// is reported as ErrOverflow rather than wrapped around. Bit and slice
// assignment are the only operations that modify a BitVector; every other
// operation returns a new one.
//
// BitVector values are not safe for concurrent mutation.
package bitslice
