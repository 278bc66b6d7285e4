// Package script exposes bit vectors to Starlark.
//
// The predeclared builtin bits(value, width=None, signed=False) creates a
// bits value. Arithmetic and bitwise operators work between bits values,
// and with ints on either side; an int on the left yields an int. Bits are
// read with x[i] or x.slice(high, low), and written with x[i] = v or
// x.set(high, low, v).
//
// Comparison operators only work between two bits values; bits(3) == 3 is
// False, and bits(3) < 3 is an error. Compare against an int through the
// .unsigned or .signed field instead, as in x.unsigned == 3.
package script
