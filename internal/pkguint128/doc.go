// Package pkguint128 implements unsigned 128-bit integer arithmetic.
//
// Values are held as two 64-bit limbs and all operations are exact; the
// multiply-and-add path reports overflow instead of wrapping so callers can
// reject inputs that do not fit in 128 bits.
package pkguint128
