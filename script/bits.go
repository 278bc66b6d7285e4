package script

import (
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/bitslice/bitslice"
)

// Bits is the Starlark value wrapping a BitVector.
type Bits struct {
	vec    *bitslice.BitVector
	frozen bool
}

var (
	_ starlark.Value       = (*Bits)(nil)
	_ starlark.HasBinary   = (*Bits)(nil)
	_ starlark.HasUnary    = (*Bits)(nil)
	_ starlark.HasSetIndex = (*Bits)(nil)
	_ starlark.HasAttrs    = (*Bits)(nil)
	_ starlark.Comparable  = (*Bits)(nil)
)

// NewBits wraps a BitVector.
func NewBits(vec *bitslice.BitVector) *Bits {
	return &Bits{vec: vec}
}

// Vector returns the wrapped BitVector.
func (b *Bits) Vector() *bitslice.BitVector {
	return b.vec
}

func (b *Bits) String() string { return b.vec.String() }
func (b *Bits) Type() string { return "bits" }
func (b *Bits) Freeze() { b.frozen = true }
func (b *Bits) Truth() starlark.Bool { return b.vec.Uint64() != 0 }
func (b *Bits) Hash() (uint32, error) { return 0, ErrHash }
func (b *Bits) Len() int { return b.vec.Len() }

// Index returns bit i. The interpreter has already checked the range.
func (b *Bits) Index(i int) starlark.Value {
	bit, err := b.vec.Get(i)
	if err != nil {
		return starlark.None
	}
	return NewBits(bit)
}

// SetIndex implements x[i] = v.
func (b *Bits) SetIndex(i int, v starlark.Value) (err error) {
	if b.frozen {
		return ErrFrozen
	}

	value, err := operand(v)
	if err != nil {
		return
	}

	return b.vec.Set(i, value)
}

var binaryTokens = map[syntax.Token]bitslice.Op{
	syntax.PLUS:       bitslice.OP_ADD,
	syntax.MINUS:      bitslice.OP_SUB,
	syntax.STAR:       bitslice.OP_MUL,
	syntax.SLASH:      bitslice.OP_DIV,
	syntax.SLASHSLASH: bitslice.OP_FLOORDIV,
	syntax.PERCENT:    bitslice.OP_MOD,
	syntax.AMP:        bitslice.OP_AND,
	syntax.PIPE:       bitslice.OP_OR,
	syntax.CIRCUMFLEX: bitslice.OP_XOR,
	syntax.LTLT:       bitslice.OP_LSH,
	syntax.GTGT:       bitslice.OP_RSH,
}

// Binary implements the operator family. With bits on the right of an
// int, the result is an int.
func (b *Bits) Binary(op syntax.Token, y starlark.Value, side starlark.Side) (starlark.Value, error) {
	bop, ok := binaryTokens[op]
	if !ok {
		return nil, nil
	}

	other, err := operand(y)
	if err != nil {
		if _, ok := y.(starlark.Int); ok {
			return nil, err
		}
		// Unsupported; let the interpreter report it.
		return nil, nil
	}

	if side == starlark.Right {
		result, err := b.vec.Reflect(bop, other)
		if err != nil {
			return nil, err
		}
		return starlark.MakeInt64(result), nil
	}

	result, err := b.vec.Apply(bop, other)
	if err != nil {
		return nil, err
	}
	return NewBits(result), nil
}

// Unary implements -x, +x and ~x.
func (b *Bits) Unary(op syntax.Token) (starlark.Value, error) {
	var uop bitslice.UnaryOp
	switch op {
	case syntax.MINUS:
		uop = bitslice.UNARY_NEG
	case syntax.PLUS:
		uop = bitslice.UNARY_POS
	case syntax.TILDE:
		uop = bitslice.UNARY_INVERT
	default:
		return nil, nil
	}

	result, err := b.vec.ApplyUnary(uop)
	if err != nil {
		return nil, err
	}
	return NewBits(result), nil
}

// CompareSameType compares by value; signed or unsigned as declared.
func (b *Bits) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	cmp := b.vec.Cmp(y.(*Bits).vec)
	switch op {
	case syntax.EQL:
		return cmp == 0, nil
	case syntax.NEQ:
		return cmp != 0, nil
	case syntax.LT:
		return cmp < 0, nil
	case syntax.LE:
		return cmp <= 0, nil
	case syntax.GT:
		return cmp > 0, nil
	case syntax.GE:
		return cmp >= 0, nil
	}
	return false, nil
}

var bitsMethods = map[string]*starlark.Builtin{
	"pow":    starlark.NewBuiltin("pow", bitsPow),
	"resize": starlark.NewBuiltin("resize", bitsResize),
	"set":    starlark.NewBuiltin("set", bitsSet),
	"slice":  starlark.NewBuiltin("slice", bitsSlice),
}

var bitsFields = []string{"is_signed", "signed", "unsigned", "width"}

func (b *Bits) Attr(name string) (starlark.Value, error) {
	switch name {
	case "is_signed":
		return starlark.Bool(b.vec.IsSigned()), nil
	case "signed":
		return starlark.MakeInt64(b.vec.Signed()), nil
	case "unsigned":
		return starlark.MakeUint64(b.vec.Uint64()), nil
	case "width":
		return starlark.MakeInt(b.vec.Len()), nil
	}

	if method, ok := bitsMethods[name]; ok {
		return method.BindReceiver(b), nil
	}

	return nil, nil
}

func (b *Bits) AttrNames() (names []string) {
	names = append(names, bitsFields...)
	for name := range bitsMethods {
		names = append(names, name)
	}
	slices.Sort(names)
	return
}

// operand converts a Starlark int, bool or bits to an operand.
func operand(v starlark.Value) (value bitslice.Operand, err error) {
	switch v := v.(type) {
	case *Bits:
		value = v.vec
	case starlark.Bool:
		value = bitslice.Int(0)
		if v {
			value = bitslice.Int(1)
		}
	case starlark.Int:
		if i64, ok := v.Int64(); ok {
			value = bitslice.Int(i64)
		} else if u64, ok := v.Uint64(); ok {
			value = bitslice.Uint(u64)
		} else {
			err = bitslice.ErrOverflow{Value: v.String(), Width: bitslice.MAX_WIDTH}
		}
	default:
		err = ErrOperand(v.Type())
	}
	return
}

// makeBits is the bits(value, width=None, signed=False) builtin.
func makeBits(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var value starlark.Value
	var width starlark.Value = starlark.None
	var signed bool

	err := starlark.UnpackArgs(fn.Name(), args, kwargs, "value", &value, "width?", &width, "signed?", &signed)
	if err != nil {
		return nil, err
	}

	var opts []bitslice.Option
	if width != starlark.None {
		w, err := starlark.AsInt32(width)
		if err != nil {
			return nil, err
		}
		opts = append(opts, bitslice.WithWidth(w))
	}
	if signed {
		opts = append(opts, bitslice.WithSigned())
	}

	var vec *bitslice.BitVector
	switch v := value.(type) {
	case *Bits:
		// Re-declare the bit pattern.
		vec, err = bitslice.NewUnsigned(v.vec.Uint64(), opts...)
	case starlark.Int:
		if i64, ok := v.Int64(); ok {
			vec, err = bitslice.New(i64, opts...)
		} else if u64, ok := v.Uint64(); ok {
			vec, err = bitslice.NewUnsigned(u64, opts...)
		} else {
			err = bitslice.ErrOverflow{Value: v.String(), Width: bitslice.MAX_WIDTH}
		}
	default:
		err = ErrOperand(value.Type())
	}
	if err != nil {
		return nil, err
	}

	return NewBits(vec), nil
}

func bitsPow(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	b := fn.Receiver().(*Bits)

	var exponent starlark.Value
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &exponent); err != nil {
		return nil, err
	}

	other, err := operand(exponent)
	if err != nil {
		return nil, err
	}

	result, err := b.vec.Pow(other)
	if err != nil {
		return nil, err
	}
	return NewBits(result), nil
}

func bitsResize(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	b := fn.Receiver().(*Bits)

	var width int
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &width); err != nil {
		return nil, err
	}

	result, err := b.vec.Resize(width)
	if err != nil {
		return nil, err
	}
	return NewBits(result), nil
}

func bitsSlice(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	b := fn.Receiver().(*Bits)

	var high, low int
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &high, &low); err != nil {
		return nil, err
	}

	result, err := b.vec.Slice(high, low)
	if err != nil {
		return nil, err
	}
	return NewBits(result), nil
}

func bitsSet(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	b := fn.Receiver().(*Bits)

	var high, low int
	var value starlark.Value
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 3, &high, &low, &value); err != nil {
		return nil, err
	}

	if b.frozen {
		return nil, ErrFrozen
	}

	other, err := operand(value)
	if err != nil {
		return nil, err
	}

	if err = b.vec.SetSlice(high, low, other); err != nil {
		return nil, err
	}
	return starlark.None, nil
}
