package bitslice

import (
	"fmt"
	"io"

	"golang.org/x/text/message"

	"github.com/ezrec/bitslice/translate"
)

// decimalValue is the value shown in the canonical form.
func (v *BitVector) decimalValue() any {
	if v.signed {
		return v.Signed()
	}
	return v.magnitude
}

// String returns the canonical form: at least four hex digits of the
// magnitude, and the decimal value.
//
//	0x00BE (190)
//	0x0006 (-2)
func (v *BitVector) String() string {
	return fmt.Sprintf("0x%04X (%d)", v.magnitude, v.decimalValue())
}

// Format implements fmt.Formatter. The %v and %s verbs use the canonical
// form, all other verbs format the unsigned magnitude.
func (v *BitVector) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		io.WriteString(state, v.String())
	default:
		fmt.Fprintf(state, fmt.FormatString(state, verb), v.magnitude)
	}
}

// Localized returns the canonical form, with the decimal value grouped
// per the printer's locale. A nil printer uses the user's locale.
func (v *BitVector) Localized(p *message.Printer) string {
	if p == nil {
		p = translate.Printer()
	}
	return p.Sprintf("0x%04X (%d)", v.magnitude, v.decimalValue())
}
