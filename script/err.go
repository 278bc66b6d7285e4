package script

import (
	"errors"

	"github.com/ezrec/bitslice/translate"
)

var f = translate.From

var (
	ErrFrozen = errors.New(f("cannot modify frozen bits"))
	ErrHash   = errors.New(f("unhashable type: bits"))
)

// ErrOperand is returned for a value that cannot be used as bits.
type ErrOperand string

func (err ErrOperand) Error() string {
	return f("got %v, want int or bits", string(err))
}
