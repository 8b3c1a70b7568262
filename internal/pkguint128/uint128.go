package pkguint128

import (
	"encoding/binary"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer held as two 64-bit limbs.
//
// The zero value is the number zero. Values are immutable and comparable;
// two Uint128 are == exactly when they represent the same number.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// New returns the Uint128 with the given high and low 64-bit limbs.
func New(hi, lo uint64) Uint128 {
	return Uint128{Hi: hi, Lo: lo}
}

// FromUint64 widens a native unsigned integer to 128 bits.
func FromUint64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// FromBytes interprets b as a big-endian 128-bit unsigned integer.
func FromBytes(b [16]byte) Uint128 {
	return Uint128{
		Hi: binary.BigEndian.Uint64(b[:8]),
		Lo: binary.BigEndian.Uint64(b[8:]),
	}
}

// Bytes returns the value as 16 big-endian bytes.
func (u Uint128) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], u.Hi)
	binary.BigEndian.PutUint64(b[8:], u.Lo)
	return b
}

// IsZero reports whether the value is zero.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Cmp returns -1, 0, or 1 depending on whether u is less than, equal to, or
// greater than v. The ordering matches comparing the big-endian byte forms.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi != v.Hi:
		if u.Hi < v.Hi {
			return -1
		}
		return 1
	case u.Lo != v.Lo:
		if u.Lo < v.Lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// QuoRem64 divides u by d and returns the quotient and remainder.
// The division is exact long division over the two limbs; d must be nonzero.
func (u Uint128) QuoRem64(d uint64) (Uint128, uint64) {
	qHi := u.Hi / d
	rem := u.Hi % d
	// rem < d, so the bits.Div64 precondition holds.
	qLo, rem := bits.Div64(rem, u.Lo, d)
	return Uint128{Hi: qHi, Lo: qLo}, rem
}

// MulAdd64 computes u*m + a. The second result is false when the true value
// does not fit in 128 bits; the first result is meaningless in that case.
func (u Uint128) MulAdd64(m, a uint64) (Uint128, bool) {
	carryHi, prodHi := bits.Mul64(u.Hi, m)
	if carryHi != 0 {
		return Uint128{}, false
	}

	midHi, prodLo := bits.Mul64(u.Lo, m)
	hi, carry := bits.Add64(prodHi, midHi, 0)
	if carry != 0 {
		return Uint128{}, false
	}

	lo, carry := bits.Add64(prodLo, a, 0)
	hi, carry = bits.Add64(hi, 0, carry)
	if carry != 0 {
		return Uint128{}, false
	}

	return Uint128{Hi: hi, Lo: lo}, true
}
