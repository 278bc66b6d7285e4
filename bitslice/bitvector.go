// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package bitslice

import (
	"iter"
	"math/bits"

	"github.com/holiman/uint256"

	"github.com/ezrec/bitslice/internal"
)

const (
	MAX_WIDTH = 64 // Widest representable bit vector.
)

// BitVector is a hardware-register-like bit vector.
//
// The zero value is an unsized, unsigned vector holding 0.
type BitVector struct {
	magnitude uint64 // Bit pattern, two's complement if signed.
	width     int    // Declared width, valid if sized.
	sized     bool
	signed    bool
}

type options struct {
	width  int
	sized  bool
	signed bool
}

// Option configures construction of a BitVector.
type Option func(o *options)

// WithWidth declares the bit width of the vector.
func WithWidth(width int) Option {
	return func(o *options) {
		o.width = width
		o.sized = true
	}
}

// WithSigned marks the vector as a two's complement signed quantity.
// A signed vector requires a declared width.
func WithSigned() Option {
	return func(o *options) {
		o.signed = true
	}
}

// New creates a BitVector from a signed value.
// A negative value is stored in two's complement, and marks the
// vector as signed.
func New(value int64, opts ...Option) (v *BitVector, err error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return newVector(fromInt64(value), o)
}

// NewUnsigned creates a BitVector from an unsigned value.
func NewUnsigned(value uint64, opts ...Option) (v *BitVector, err error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return newVector(uint256.NewInt(value), o)
}

// MustNew is New, but panics on error.
func MustNew(value int64, opts ...Option) (v *BitVector) {
	v, err := New(value, opts...)
	if err != nil {
		panic(err)
	}
	return
}

// newVector encodes value into a vector. A negative value is stored in
// two's complement, and marks the vector as signed.
func newVector(value *uint256.Int, o options) (v *BitVector, err error) {
	if o.sized && (o.width < 0 || o.width > MAX_WIDTH) {
		err = ErrWidth(o.width)
		return
	}

	if value.Sign() < 0 {
		o.signed = true
	}

	if o.signed && !o.sized {
		err = ErrMissingWidth
		return
	}

	width := o.width
	if !o.sized {
		width = MAX_WIDTH
	}

	if !fits(value, width, false) {
		err = ErrOverflow{Value: decimal(value), Width: width}
		return
	}

	v = &BitVector{
		magnitude: value.Uint64() & widthMask(width),
		width:     o.width,
		sized:     o.sized,
		signed:    o.signed,
	}

	return
}

// fits returns true if value is representable in width bits.
func fits(value *uint256.Int, width int, signedRange bool) bool {
	if value.Sign() < 0 {
		if width == 0 {
			return false
		}
		limit := new(uint256.Int).Lsh(uint256.NewInt(1), uint(width-1))
		return !new(uint256.Int).Abs(value).Gt(limit)
	}

	if signedRange {
		return value.BitLen() < width
	}

	return value.BitLen() <= width
}

// widthMask returns a mask of the low width bits.
func widthMask(width int) uint64 {
	return ^uint64(0) >> (MAX_WIDTH - width)
}

// Len returns the effective width; the declared width if set, otherwise
// the minimal number of bits needed for the magnitude.
func (v *BitVector) Len() int {
	if v.sized {
		return v.width
	}
	return bits.Len64(v.magnitude)
}

// Width returns the declared width, if any.
func (v *BitVector) Width() (width int, ok bool) {
	return v.width, v.sized
}

// IsSigned returns true for a two's complement signed vector.
func (v *BitVector) IsSigned() bool {
	return v.signed
}

// Uint64 returns the unsigned magnitude.
func (v *BitVector) Uint64() uint64 {
	return v.magnitude
}

// Signed returns the two's complement decode of the magnitude over the
// effective width.
func (v *BitVector) Signed() int64 {
	width := v.Len()
	if width == 0 {
		return 0
	}

	if (v.magnitude>>(width-1))&1 == 0 {
		return int64(v.magnitude)
	}

	// Sign extend
	return int64(v.magnitude | ^widthMask(width))
}

// sliceMask validates [high:low] and returns its mask.
func (v *BitVector) sliceMask(high, low int) (mask uint64, err error) {
	width := v.Len()
	if low < 0 || low > high || high >= width {
		err = ErrIndex{High: high, Low: low, Width: width}
		return
	}

	mask = widthMask(high-low+1) << low
	return
}

// Get returns the single bit at index as a 1-bit vector.
func (v *BitVector) Get(index int) (bit *BitVector, err error) {
	return v.Slice(index, index)
}

// Slice returns the inclusive bit range [high:low] as an unsigned vector
// of high-low+1 bits.
func (v *BitVector) Slice(high, low int) (slice *BitVector, err error) {
	mask, err := v.sliceMask(high, low)
	if err != nil {
		return
	}

	slice = &BitVector{
		magnitude: (v.magnitude & mask) >> low,
		width:     high - low + 1,
		sized:     true,
	}

	return
}

// Set replaces the bit at index with the low bit of value.
func (v *BitVector) Set(index int, value Operand) (err error) {
	return v.SetSlice(index, index, value)
}

// SetSlice replaces the inclusive bit range [high:low] with value.
// Bits of value that do not fit in the range are discarded.
func (v *BitVector) SetSlice(high, low int, value Operand) (err error) {
	mask, err := v.sliceMask(high, low)
	if err != nil {
		return
	}

	data := value.Integer().Uint64()
	v.magnitude = (v.magnitude &^ mask) | ((data << low) & mask)

	return
}

// Resize re-encodes the two's complement decode of the vector into width
// bits. Narrowing that drops significant bits fails with ErrOverflow.
// Widening always sign-extends, whether or not the vector is signed.
func (v *BitVector) Resize(width int) (resized *BitVector, err error) {
	return newVector(fromInt64(v.Signed()), options{width: width, sized: true})
}

// Bits iterates over the bits of the effective width, most significant first.
func (v *BitVector) Bits() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for n := v.Len() - 1; n >= 0; n-- {
			if !yield((v.magnitude>>n)&1 == 1) {
				return
			}
		}
	}
}

// Concat joins vectors, the first being the most significant, into an
// unsigned vector as wide as all of the parts.
func Concat(parts ...*BitVector) (v *BitVector, err error) {
	seqs := make([]iter.Seq[bool], len(parts))
	for n, part := range parts {
		seqs[n] = part.Bits()
	}

	all := internal.IterSeqConcat(seqs...)

	width := internal.IterSeqCount(all)
	if width > MAX_WIDTH {
		err = ErrWidth(width)
		return
	}

	v = &BitVector{width: width, sized: true}
	for bit := range all {
		v.magnitude <<= 1
		if bit {
			v.magnitude |= 1
		}
	}

	return
}
