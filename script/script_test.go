package script

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.starlark.net/starlark"

	"github.com/ezrec/bitslice/bitslice"
)

func TestEval(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Expr string
		Type string
		Text string
	}){
		{Expr: "bits(0xCAFEBABE).slice(7, 0)", Type: "bits", Text: "0x00BE (190)"},
		{Expr: "bits(7, width=8) + bits(12, width=8)", Type: "bits", Text: "0x0013 (19)"},
		{Expr: "bits(6, width=3) + 1", Type: "bits", Text: "0x0007 (7)"},
		{Expr: "bits(-2, width=3)", Type: "bits", Text: "0x0006 (-2)"},
		{Expr: "bits(-2, width=3).resize(5).signed", Type: "int", Text: "-2"},
		{Expr: "bits(-2, width=3).unsigned", Type: "int", Text: "6"},
		{Expr: "bits(6, 3, True).signed", Type: "int", Text: "-2"},
		{Expr: "~bits(2, width=8)", Type: "bits", Text: "0x00FD (253)"},
		{Expr: "-bits(3, width=8)", Type: "bits", Text: "0x00FD (-3)"},
		{Expr: "+bits(3, width=8)", Type: "bits", Text: "0x0003 (3)"},
		{Expr: "10 - bits(3, width=8)", Type: "int", Text: "7"},
		{Expr: "1000 * bits(3, width=8)", Type: "int", Text: "3000"},
		{Expr: "True + bits(3, width=8)", Type: "int", Text: "4"},
		{Expr: "bits(0xF0, width=8) & 0x3C", Type: "bits", Text: "0x0030 (48)"},
		{Expr: "bits(0xF0, width=8) | 0x3C", Type: "bits", Text: "0x00FC (252)"},
		{Expr: "bits(0xF0, width=8) ^ 0x3C", Type: "bits", Text: "0x00CC (204)"},
		{Expr: "bits(1, width=8) << 7", Type: "bits", Text: "0x0080 (128)"},
		{Expr: "bits(-8, width=8) >> 1", Type: "bits", Text: "0x00FC (-4)"},
		{Expr: "bits(-7, width=8) // 2", Type: "bits", Text: "0x00FC (-4)"},
		{Expr: "bits(-7, width=8) / 2", Type: "bits", Text: "0x00FC (-4)"},
		{Expr: "bits(7, width=8) % -2", Type: "bits", Text: "0x00FF (-1)"},
		{Expr: "bits(2, width=8).pow(7)", Type: "bits", Text: "0x0080 (128)"},
		{Expr: "bits(5)[0]", Type: "bits", Text: "0x0001 (1)"},
		{Expr: "bits(5)[1]", Type: "bits", Text: "0x0000 (0)"},
		{Expr: "bits(5)[-1]", Type: "bits", Text: "0x0001 (1)"},
		{Expr: "len(bits(5))", Type: "int", Text: "3"},
		{Expr: "bits(5, width=16).width", Type: "int", Text: "16"},
		{Expr: "bits(5).is_signed", Type: "bool", Text: "False"},
		{Expr: "bool(bits(0, width=8))", Type: "bool", Text: "False"},
		{Expr: "bits(3, width=8) == bits(3, width=16)", Type: "bool", Text: "True"},
		{Expr: "bits(-2, width=3) < bits(0, width=3)", Type: "bool", Text: "True"},
		{Expr: "bits(6, width=3) >= bits(-2, width=3)", Type: "bool", Text: "True"},
		{Expr: "bits(bits(-2, width=3), width=3)", Type: "bits", Text: "0x0006 (6)"},
		{Expr: "bits(0xFFFFFFFFFFFFFFFF)", Type: "bits", Text: "0xFFFFFFFFFFFFFFFF (18446744073709551615)"},
		{Expr: "str(bits(7))", Type: "string", Text: "\"0x0007 (7)\""},
		{Expr: "\"resize\" in dir(bits(1))", Type: "bool", Text: "True"},
		{Expr: "-bits(-4, width=3)", Type: "bits", Text: "0x0004 (4)"},
		{Expr: "bits(100, width=8, signed=True) + 28", Type: "bits", Text: "0x0080 (128)"},
		{Expr: "bits(0xFF, width=8).resize(16)", Type: "bits", Text: "0xFFFF (-1)"},
		{Expr: "bits(3, width=8).unsigned == 3", Type: "bool", Text: "True"},
		{Expr: "bits(-3, width=8).signed < 0", Type: "bool", Text: "True"},
		{Expr: "bits(3, width=8) == 3", Type: "bool", Text: "False"},
	}

	in := NewInterpreter()
	for _, testcase := range table {
		value, err := in.Eval(testcase.Expr)
		if !assert.NoError(err, testcase.Expr) {
			continue
		}
		assert.Equal(testcase.Type, value.Type(), testcase.Expr)
		assert.Equal(testcase.Text, value.String(), testcase.Expr)
	}
}

func TestEval_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Expr string
		Text string
	}){
		{Expr: "bits(7, width=3) + 1", Text: "cannot be represented in 3 bits"},
		{Expr: "bits(7, width=2)", Text: "cannot be represented in 2 bits"},
		{Expr: "bits(-1)", Text: "signed value requires a width"},
		{Expr: "bits(1, width=70)", Text: "width 70 invalid"},
		{Expr: "bits(1 << 64)", Text: "cannot be represented in 64 bits"},
		{Expr: "bits(\"a\")", Text: "got string, want int or bits"},
		{Expr: "bits(5).slice(0, 1)", Text: "out of range"},
		{Expr: "bits(5)[3]", Text: "out of range"},
		{Expr: "bits(1, width=8) // 0", Text: "division by zero"},
		{Expr: "bits(1, width=8) + \"a\"", Text: "unknown binary op"},
		{Expr: "bits(100, width=8) + bits(-1, width=8)", Text: "355 cannot be represented in 8 bits"},
		{Expr: "bits(1, width=8) + (1 << 70)", Text: "cannot be represented in 64 bits"},
		{Expr: "(1 << 70) - bits(1, width=8)", Text: "cannot be represented in 64 bits"},
		{Expr: "bits(3, width=8) < 3", Text: "not implemented"},
		{Expr: "{bits(1): 1}", Text: "unhashable"},
		{Expr: "bits(1).nope", Text: "no .nope field or method"},
	}

	in := NewInterpreter()
	for _, testcase := range table {
		_, err := in.Eval(testcase.Expr)
		assert.ErrorContains(err, testcase.Text, testcase.Expr)
	}
}

func TestExec(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"x = bits(0xCAFEBABE)",
		"x[3] = 0",
		"y = x.unsigned",
		"r = bits(5, width=3)",
		"r += 2",
		"z = bits(0, width=8)",
		"z.set(7, 4, 0xA)",
		"z.set(3, 0, -1)",
		"print(z)",
	}

	var out bytes.Buffer
	in := NewInterpreter()
	in.Output = &out

	err := in.Exec("test.star", strings.Join(program, "\n"))
	assert.NoError(err)
	assert.Equal("0x00AF (175)\n", out.String())

	assert.Equal("3405691574", in.Globals["y"].String())
	assert.Equal("0x0007 (7)", in.Globals["r"].String())

	x, ok := in.Globals["x"].(*Bits)
	assert.True(ok)
	assert.Equal(uint64(0xCAFEBAB6), x.Vector().Uint64())

	// Globals are visible to later evaluations.
	value, err := in.Eval("x.slice(3, 0)")
	assert.NoError(err)
	assert.Equal("0x0006 (6)", value.String())

	// Globals are frozen once executed.
	err = in.Exec("more.star", "x[0] = 1")
	assert.ErrorContains(err, "frozen")
	_, err = in.Eval("x.set(0, 0, 1)")
	assert.ErrorContains(err, "frozen")
	assert.Equal(uint64(0xCAFEBAB6), x.Vector().Uint64())

	// Overflow traps, and leaves the register alone.
	err = in.Exec("trap.star", "s = r + 1")
	assert.ErrorContains(err, "cannot be represented in 3 bits")
	assert.Equal("0x0007 (7)", in.Globals["r"].String())
	assert.NotContains(in.Globals, "s")
}

func TestExec_Verbose(t *testing.T) {
	assert := assert.New(t)

	in := &Interpreter{Verbose: true, Output: &bytes.Buffer{}}
	assert.NoError(in.Exec("v.star", "a = bits(1)"))
	assert.Contains(in.Globals, "a")
}

func TestBits(t *testing.T) {
	assert := assert.New(t)

	b := NewBits(bitslice.MustNew(0xA5, bitslice.WithWidth(8)))
	assert.Equal("bits", b.Type())
	assert.Equal(starlark.Bool(true), b.Truth())
	assert.Equal(8, b.Len())

	assert.NoError(b.SetIndex(0, starlark.MakeInt(0)))
	assert.Equal(uint64(0xA4), b.Vector().Uint64())
	assert.NoError(b.SetIndex(1, starlark.True))
	assert.Equal(uint64(0xA6), b.Vector().Uint64())
	assert.Error(b.SetIndex(1, starlark.String("x")))

	b.Freeze()
	assert.ErrorIs(b.SetIndex(0, starlark.MakeInt(1)), ErrFrozen)

	_, err := b.Hash()
	assert.ErrorIs(err, ErrHash)

	assert.Equal([]string{"is_signed", "pow", "resize", "set", "signed", "slice", "unsigned", "width"}, b.AttrNames())
}
