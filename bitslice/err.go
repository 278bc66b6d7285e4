package bitslice

import (
	"errors"

	"github.com/ezrec/bitslice/translate"
)

var f = translate.From

var (
	// Construction errors
	ErrMissingWidth = errors.New(f("signed value requires a width"))

	// Operator errors
	ErrDivideByZero     = errors.New(f("division by zero"))
	ErrNegativeShift    = errors.New(f("negative shift count"))
	ErrNegativeExponent = errors.New(f("negative exponent"))
	ErrOperator         = errors.New(f("operator invalid"))
)

// ErrOverflow is returned when a value cannot be represented in a width.
type ErrOverflow struct {
	Value string // Decimal (or expression) form of the value.
	Width int
}

func (err ErrOverflow) Error() string {
	return f("a value of %v cannot be represented in %d bits", err.Value, err.Width)
}

func (err ErrOverflow) Is(target error) (ok bool) {
	_, ok = target.(ErrOverflow)
	return
}

// ErrIndex is returned when a bit or slice index is out of range.
type ErrIndex struct {
	High  int
	Low   int
	Width int
}

func (err ErrIndex) Error() string {
	if err.High == err.Low {
		return f("bit %d out of range for %d bits", err.High, err.Width)
	}
	return f("slice [%d:%d] out of range for %d bits", err.High, err.Low, err.Width)
}

func (err ErrIndex) Is(target error) (ok bool) {
	_, ok = target.(ErrIndex)
	return
}

// ErrWidth is returned for a width outside of [0, 64].
type ErrWidth int

func (err ErrWidth) Error() string {
	return f("width %d invalid", int(err))
}

func (err ErrWidth) Is(target error) (ok bool) {
	_, ok = target.(ErrWidth)
	return
}
