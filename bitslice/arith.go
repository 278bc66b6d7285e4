package bitslice

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

// Operand is a value usable on the right hand side of an operator.
//
// Integer returns the value as a 256-bit two's complement integer.
type Operand interface {
	Integer() *uint256.Int
}

// Int is a native signed integer operand.
type Int int64

func (i Int) Integer() *uint256.Int {
	return fromInt64(int64(i))
}

// Uint is a native unsigned integer operand.
type Uint uint64

func (u Uint) Integer() *uint256.Int {
	return uint256.NewInt(uint64(u))
}

// Integer returns the value of the vector: the signed value of a signed
// vector, otherwise the unsigned magnitude. Comparisons use this value on
// both sides, and operators use it for the left hand side.
func (v *BitVector) Integer() *uint256.Int {
	if v.signed {
		return fromInt64(v.Signed())
	}
	return uint256.NewInt(v.magnitude)
}

// coerce returns the value of the operand that is not the receiver of an
// operator. A BitVector there is cast to its unsigned magnitude.
func coerce(other Operand) *uint256.Int {
	if vec, ok := other.(*BitVector); ok {
		return uint256.NewInt(vec.magnitude)
	}
	return other.Integer()
}

func fromInt64(value int64) *uint256.Int {
	if value < 0 {
		return new(uint256.Int).Neg(uint256.NewInt(uint64(-value)))
	}
	return uint256.NewInt(uint64(value))
}

// decimal formats a two's complement value in base 10.
func decimal(value *uint256.Int) string {
	if value.Sign() < 0 {
		return "-" + new(uint256.Int).Neg(value).ToBig().String()
	}
	return value.ToBig().String()
}

// errTooLarge is returned by an operator whose result is known to exceed
// any representable width before it is computed.
var errTooLarge = errors.New("too large")

type binaryFunc func(x, y *uint256.Int) (z *uint256.Int, err error)

var (
	one = uint256.NewInt(1)
	two = uint256.NewInt(2)
)

// Every operand fits in 65 bits signed, so sums and products of two
// operands cannot overflow 256 bits.
var binaryOps = [...]binaryFunc{
	OP_ADD: func(x, y *uint256.Int) (*uint256.Int, error) {
		return new(uint256.Int).Add(x, y), nil
	},
	OP_SUB: func(x, y *uint256.Int) (*uint256.Int, error) {
		return new(uint256.Int).Sub(x, y), nil
	},
	OP_MUL: func(x, y *uint256.Int) (*uint256.Int, error) {
		return new(uint256.Int).Mul(x, y), nil
	},
	OP_DIV:      floorDiv,
	OP_FLOORDIV: floorDiv,
	OP_MOD:      floorMod,
	OP_AND: func(x, y *uint256.Int) (*uint256.Int, error) {
		return new(uint256.Int).And(x, y), nil
	},
	OP_OR: func(x, y *uint256.Int) (*uint256.Int, error) {
		return new(uint256.Int).Or(x, y), nil
	},
	OP_XOR: func(x, y *uint256.Int) (*uint256.Int, error) {
		return new(uint256.Int).Xor(x, y), nil
	},
	OP_LSH: shiftLeft,
	OP_RSH: shiftRight,
	OP_POW: pow,
}

// floorDiv divides, rounding towards negative infinity.
func floorDiv(x, y *uint256.Int) (z *uint256.Int, err error) {
	if y.IsZero() {
		err = ErrDivideByZero
		return
	}

	z = new(uint256.Int).SDiv(x, y)
	rem := new(uint256.Int).SMod(x, y)
	if !rem.IsZero() && (rem.Sign() < 0) != (y.Sign() < 0) {
		z.Sub(z, one)
	}

	return
}

// floorMod is the remainder of floorDiv; it takes the sign of the divisor.
func floorMod(x, y *uint256.Int) (z *uint256.Int, err error) {
	if y.IsZero() {
		err = ErrDivideByZero
		return
	}

	z = new(uint256.Int).SMod(x, y)
	if !z.IsZero() && (z.Sign() < 0) != (y.Sign() < 0) {
		z.Add(z, y)
	}

	return
}

func shiftLeft(x, y *uint256.Int) (z *uint256.Int, err error) {
	if y.Sign() < 0 {
		err = ErrNegativeShift
		return
	}

	z = new(uint256.Int)
	if x.IsZero() {
		return
	}

	// Anything non-zero shifted this far is wider than MAX_WIDTH.
	if !y.IsUint64() || y.Uint64() > 2*MAX_WIDTH {
		z, err = nil, errTooLarge
		return
	}

	z.Lsh(x, uint(y.Uint64()))
	return
}

func shiftRight(x, y *uint256.Int) (z *uint256.Int, err error) {
	if y.Sign() < 0 {
		err = ErrNegativeShift
		return
	}

	n := uint(255)
	if y.IsUint64() && y.Uint64() < 255 {
		n = uint(y.Uint64())
	}

	z = new(uint256.Int).SRsh(x, n)
	return
}

func pow(x, y *uint256.Int) (z *uint256.Int, err error) {
	if y.Sign() < 0 {
		err = ErrNegativeExponent
		return
	}

	z = uint256.NewInt(1)
	if y.IsZero() {
		return
	}

	base := new(uint256.Int).Abs(x)
	if base.Lt(two) {
		// 0, 1, or -1
		z.Set(x)
		if x.Sign() < 0 && y.Uint64()&1 == 0 {
			z.SetOne()
		}
		return
	}

	// |x| >= 2, so the result is at least 2**y.
	if !y.IsUint64() || y.Uint64() > MAX_WIDTH+1 {
		z, err = nil, errTooLarge
		return
	}

	for range y.Uint64() {
		z.Mul(z, x)
		if new(uint256.Int).Abs(z).BitLen() > MAX_WIDTH+1 {
			z, err = nil, errTooLarge
			return
		}
	}

	return
}

// evaluate applies op to x and y. A result known to be too large is
// reported as an overflow of width bits.
func evaluate(op Op, x, y *uint256.Int, width int) (z *uint256.Int, err error) {
	if op < 0 || int(op) >= len(binaryOps) {
		err = errors.Join(ErrOperator, fmt.Errorf("%v", op))
		return
	}

	z, err = binaryOps[op](x, y)
	if errors.Is(err, errTooLarge) {
		err = ErrOverflow{
			Value: fmt.Sprintf("%v %v %v", decimal(x), op, decimal(y)),
			Width: width,
		}
	}

	return
}

// Apply computes v op other, and re-wraps the result into the effective
// width of v. A result that does not fit fails with ErrOverflow; a
// negative result is signed.
func (v *BitVector) Apply(op Op, other Operand) (result *BitVector, err error) {
	width := v.Len()

	z, err := evaluate(op, v.Integer(), coerce(other), width)
	if err != nil {
		return
	}

	return newVector(z, options{width: width, sized: true})
}

// Reflect computes other op v as a native integer, without imposing the
// width of v on the result.
func (v *BitVector) Reflect(op Op, other Operand) (result int64, err error) {
	z, err := evaluate(op, coerce(other), v.Integer(), 64)
	if err != nil {
		return
	}

	if !fits(z, 64, true) {
		err = ErrOverflow{Value: decimal(z), Width: 64}
		return
	}

	result = int64(z.Uint64())
	return
}

// ApplyUnary computes op v, re-wrapped into the effective width of v.
func (v *BitVector) ApplyUnary(op UnaryOp) (result *BitVector, err error) {
	width := v.Len()
	x := v.Integer()

	var z *uint256.Int
	switch op {
	case UNARY_INVERT:
		result = &BitVector{
			magnitude: v.magnitude ^ widthMask(width),
			width:     width,
			sized:     true,
			signed:    v.signed,
		}
		return
	case UNARY_NEG:
		z = new(uint256.Int).Neg(x)
	case UNARY_POS:
		z = new(uint256.Int).Set(x)
	case UNARY_ABS:
		z = new(uint256.Int).Abs(x)
	default:
		err = errors.Join(ErrOperator, fmt.Errorf("%v", op))
		return
	}

	return newVector(z, options{width: width, sized: true})
}

// Add returns v + other.
func (v *BitVector) Add(other Operand) (*BitVector, error) { return v.Apply(OP_ADD, other) }

// Sub returns v - other.
func (v *BitVector) Sub(other Operand) (*BitVector, error) { return v.Apply(OP_SUB, other) }

// Mul returns v * other.
func (v *BitVector) Mul(other Operand) (*BitVector, error) { return v.Apply(OP_MUL, other) }

// Div returns v / other. There is no fractional representation, so this
// is the same as FloorDiv.
func (v *BitVector) Div(other Operand) (*BitVector, error) { return v.Apply(OP_DIV, other) }

// FloorDiv returns v // other, rounded towards negative infinity.
func (v *BitVector) FloorDiv(other Operand) (*BitVector, error) { return v.Apply(OP_FLOORDIV, other) }

// Mod returns v % other, with the sign of other.
func (v *BitVector) Mod(other Operand) (*BitVector, error) { return v.Apply(OP_MOD, other) }

// And returns v & other.
func (v *BitVector) And(other Operand) (*BitVector, error) { return v.Apply(OP_AND, other) }

// Or returns v | other.
func (v *BitVector) Or(other Operand) (*BitVector, error) { return v.Apply(OP_OR, other) }

// Xor returns v ^ other.
func (v *BitVector) Xor(other Operand) (*BitVector, error) { return v.Apply(OP_XOR, other) }

// Lsh returns v << other.
func (v *BitVector) Lsh(other Operand) (*BitVector, error) { return v.Apply(OP_LSH, other) }

// Rsh returns v >> other. Signed vectors shift arithmetically.
func (v *BitVector) Rsh(other Operand) (*BitVector, error) { return v.Apply(OP_RSH, other) }

// Pow returns v ** other.
func (v *BitVector) Pow(other Operand) (*BitVector, error) { return v.Apply(OP_POW, other) }

// Neg returns -v.
func (v *BitVector) Neg() (*BitVector, error) { return v.ApplyUnary(UNARY_NEG) }

// Pos returns +v.
func (v *BitVector) Pos() (*BitVector, error) { return v.ApplyUnary(UNARY_POS) }

// Abs returns |v|.
func (v *BitVector) Abs() (*BitVector, error) { return v.ApplyUnary(UNARY_ABS) }

// Invert returns ~v, the complement of all bits of the effective width.
func (v *BitVector) Invert() *BitVector {
	result, _ := v.ApplyUnary(UNARY_INVERT)
	return result
}

// Cmp compares the value of v with other, returning -1, 0 or +1.
func (v *BitVector) Cmp(other Operand) int {
	x := v.Integer()
	y := other.Integer()

	switch {
	case x.Slt(y):
		return -1
	case x.Eq(y):
		return 0
	}

	return 1
}

// Equal returns true if v == other.
func (v *BitVector) Equal(other Operand) bool {
	return v.Cmp(other) == 0
}

// Less returns true if v < other.
func (v *BitVector) Less(other Operand) bool {
	return v.Cmp(other) < 0
}

// LessEqual returns true if v <= other.
func (v *BitVector) LessEqual(other Operand) bool {
	return v.Cmp(other) <= 0
}
