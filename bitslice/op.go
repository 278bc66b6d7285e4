package bitslice

// Op is a binary operator kind.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ADD      = Op(0)  // +
	OP_SUB      = Op(1)  // -
	OP_MUL      = Op(2)  // *
	OP_DIV      = Op(3)  // /
	OP_FLOORDIV = Op(4)  // //
	OP_MOD      = Op(5)  // %
	OP_AND      = Op(6)  // &
	OP_OR       = Op(7)  // |
	OP_XOR      = Op(8)  // ^
	OP_LSH      = Op(9)  // <<
	OP_RSH      = Op(10) // >>
	OP_POW      = Op(11) // **
)

// UnaryOp is a unary operator kind.
type UnaryOp int

//go:generate go tool stringer -linecomment -type=UnaryOp
const (
	UNARY_NEG    = UnaryOp(0) // -
	UNARY_POS    = UnaryOp(1) // +
	UNARY_ABS    = UnaryOp(2) // abs
	UNARY_INVERT = UnaryOp(3) // ~
)
