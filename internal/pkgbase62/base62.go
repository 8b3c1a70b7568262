package pkgbase62

import (
	"errors"
	"fmt"

	"github.com/shandysiswandi/gofuid/internal/pkguint128"
)

// Base is the radix of the encoding.
const Base = 62

// MaxLen is the number of Base62 digits needed to represent 2^128 - 1.
const MaxLen = 22

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var (
	// ErrEmptyInput indicates Decode was called with a zero-length string.
	ErrEmptyInput = errors.New("gofuid: empty input")

	// ErrInvalidCharacter indicates a byte outside the Base62 alphabet.
	ErrInvalidCharacter = errors.New("gofuid: invalid character")

	// ErrOverflow indicates the decoded value exceeds 2^128 - 1.
	ErrOverflow = errors.New("gofuid: value overflows 128 bits")
)

// digits maps a byte to its digit value, or -1 for bytes outside the alphabet.
var digits [256]int8

func init() {
	for i := range digits {
		digits[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		digits[alphabet[i]] = int8(i)
	}
}

// Encode renders v as a canonical Base62 string, most-significant digit
// first, with no padding.
func Encode(v pkguint128.Uint128) string {
	if v.IsZero() {
		return alphabet[:1]
	}

	buf := make([]byte, 0, MaxLen)
	for !v.IsZero() {
		var rem uint64
		v, rem = v.QuoRem64(Base)
		buf = append(buf, alphabet[rem])
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// Decode parses a Base62 string into a 128-bit unsigned integer.
//
// Redundant leading zero digits are accepted. Decode fails with
// ErrEmptyInput, ErrInvalidCharacter, or ErrOverflow; the invalid-character
// error carries the offending byte and its 1-based position.
func Decode(s string) (pkguint128.Uint128, error) {
	if s == "" {
		return pkguint128.Uint128{}, ErrEmptyInput
	}

	var v pkguint128.Uint128
	for i := 0; i < len(s); i++ {
		d := digits[s[i]]
		if d < 0 {
			return pkguint128.Uint128{}, fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, s[i], i+1)
		}

		next, ok := v.MulAdd64(Base, uint64(d))
		if !ok {
			return pkguint128.Uint128{}, fmt.Errorf("%w: %q", ErrOverflow, s)
		}
		v = next
	}

	return v, nil
}
