package bitslice

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestString(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Vector *BitVector
		Text   string
	}){
		{Vector: MustNew(7), Text: "0x0007 (7)"},
		{Vector: MustNew(7, WithWidth(4)), Text: "0x0007 (7)"},
		{Vector: MustNew(0xCAFEBABE), Text: "0xCAFEBABE (3405691582)"},
		{Vector: MustNew(-2, WithWidth(3)), Text: "0x0006 (-2)"},
		{Vector: MustNew(6, WithWidth(3)), Text: "0x0006 (6)"},
		{Vector: MustNew(0), Text: "0x0000 (0)"},
		{Vector: MustNew(-1, WithWidth(64)), Text: "0xFFFFFFFFFFFFFFFF (-1)"},
	}

	for _, testcase := range table {
		assert.Equal(testcase.Text, testcase.Vector.String())
		assert.Equal(testcase.Text, fmt.Sprintf("%v", testcase.Vector))
		assert.Equal(testcase.Text, fmt.Sprintf("%s", testcase.Vector))
	}
}

func TestFormat(t *testing.T) {
	assert := assert.New(t)

	v := MustNew(0xCAFEBABE)
	assert.Equal("cafebabe", fmt.Sprintf("%x", v))
	assert.Equal("0XCAFEBABE", fmt.Sprintf("%#X", v))
	assert.Equal("0xcafebabe", fmt.Sprintf("%#x", v))
	assert.Equal("3405691582", fmt.Sprintf("%d", v))
	assert.Equal("00000101", fmt.Sprintf("%08b", MustNew(5)))
	assert.Equal("  17", fmt.Sprintf("%4o", MustNew(15)))

	// Generic formatting always uses the unsigned magnitude.
	assert.Equal("6", fmt.Sprintf("%d", MustNew(-2, WithWidth(3))))
}

func TestLocalized(t *testing.T) {
	assert := assert.New(t)

	p := message.NewPrinter(language.AmericanEnglish)
	assert.Equal("0xBEEF (48,879)", MustNew(0xBEEF).Localized(p))
	assert.Equal("0xFFFFFC18 (-1,000)", MustNew(-1000, WithWidth(32)).Localized(p))

	assert.NotEmpty(MustNew(1).Localized(nil))
}
