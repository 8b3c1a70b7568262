package gofuid

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/shandysiswandi/gofuid/internal/pkgbase62"
	"github.com/shandysiswandi/gofuid/internal/pkguint128"
)

// FUID is a Friendly Universal Identifier: an immutable 128-bit unsigned
// integer sharing the RFC 4122 UUID byte layout.
//
// The zero value is Nil. FUIDs are comparable with == and usable as map keys.
type FUID struct {
	v pkguint128.Uint128
}

// Nil is the zero FUID, all 128 bits unset.
var Nil FUID

// New generates a random version-4 FUID from crypto/rand, panicking if the
// system random source fails. Use NewRandom to handle that failure instead.
func New() FUID {
	f, err := NewRandom()
	if err != nil {
		panic(err)
	}
	return f
}

// NewRandom generates a random version-4 FUID from crypto/rand.
func NewRandom() (FUID, error) {
	return NewRandomFromReader(rand.Reader)
}

// NewRandomFromReader generates a random version-4 FUID using r as the source
// of random bytes. The version nibble and RFC 4122 variant bits are fixed;
// the remaining 122 bits come from r. If r fails, the error wraps
// ErrRandomSource and no value is produced.
func NewRandomFromReader(r io.Reader) (FUID, error) {
	u, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return Nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return FromUUID(u), nil
}

// Parse parses a Base62 string into a FUID. It fails with ErrEmptyInput,
// ErrInvalidCharacter, or ErrOverflow.
func Parse(s string) (FUID, error) {
	v, err := pkgbase62.Decode(s)
	if err != nil {
		return Nil, err
	}
	return FUID{v: v}, nil
}

// MustParse is like Parse but panics on error. It simplifies initializing
// package variables from identifiers known to be valid.
func MustParse(s string) FUID {
	f, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("gofuid: MustParse(%q): %v", s, err))
	}
	return f
}

// FromBytes constructs a FUID from 16 big-endian bytes. It fails if b is not
// exactly 16 bytes long.
func FromBytes(b []byte) (FUID, error) {
	if len(b) != 16 {
		return Nil, fmt.Errorf("%w: got %d bytes, want 16", ErrInvalidFormat, len(b))
	}
	var raw [16]byte
	copy(raw[:], b)
	return FUID{v: pkguint128.FromBytes(raw)}, nil
}

// FromUint64 constructs a FUID whose low 64 bits are v and whose high 64 bits
// are zero.
func FromUint64(v uint64) FUID {
	return FUID{v: pkguint128.FromUint64(v)}
}

// String returns the canonical Base62 encoding: most-significant digit first,
// at most 22 characters, no padding, no leading zero digits.
func (f FUID) String() string {
	return pkgbase62.Encode(f.v)
}

// Bytes returns the identifier as 16 big-endian bytes, matching the RFC 4122
// UUID byte ordering.
func (f FUID) Bytes() [16]byte {
	return f.v.Bytes()
}

// Compare returns -1, 0, or 1 depending on whether f sorts before, equal to,
// or after o. The ordering is numeric and matches comparing the byte forms.
func (f FUID) Compare(o FUID) int {
	return f.v.Cmp(o.v)
}
