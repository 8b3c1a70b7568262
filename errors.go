package gofuid

import (
	"errors"

	"github.com/shandysiswandi/gofuid/internal/pkgbase62"
)

// Base62 decode failure modes, re-exported so callers can test with
// errors.Is without importing internal packages.
var (
	// ErrEmptyInput indicates Parse was called with a zero-length string.
	ErrEmptyInput = pkgbase62.ErrEmptyInput

	// ErrInvalidCharacter indicates a character outside the expected
	// alphabet: a non-Base62 byte in Parse, or a non-hexadecimal digit in
	// ParseUUID.
	ErrInvalidCharacter = pkgbase62.ErrInvalidCharacter

	// ErrOverflow indicates a Base62 string encoding a value beyond 128 bits.
	ErrOverflow = pkgbase62.ErrOverflow
)

var (
	// ErrInvalidFormat indicates a UUID string that does not match the
	// 8-4-4-4-12 hyphenated layout.
	ErrInvalidFormat = errors.New("gofuid: invalid uuid format")

	// ErrRandomSource indicates the injected random source failed to supply
	// the 16 bytes needed for generation.
	ErrRandomSource = errors.New("gofuid: random source failed")
)
