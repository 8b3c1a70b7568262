package gofuid

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shandysiswandi/gofuid/internal/pkguint128"
)

// FromUUID constructs a FUID holding the same 128 bits as u.
func FromUUID(u uuid.UUID) FUID {
	return FUID{v: pkguint128.FromBytes(u)}
}

// UUID returns the identifier as a uuid.UUID, bit for bit.
func (f FUID) UUID() uuid.UUID {
	return uuid.UUID(f.v.Bytes())
}

// UUIDString renders the identifier in the canonical hyphenated form:
// lowercase hexadecimal in 8-4-4-4-12 groups, 36 characters.
func (f FUID) UUIDString() string {
	return f.UUID().String()
}

// ParseUUID parses a hyphenated 8-4-4-4-12 UUID string into a FUID. Hex
// digits of either case are accepted. It fails with ErrInvalidFormat when the
// length or hyphen positions deviate from that layout, and with
// ErrInvalidCharacter when a group contains a non-hexadecimal digit.
func ParseUUID(s string) (FUID, error) {
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return Nil, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	// Structure is already validated, so the only way uuid.Parse can fail
	// here is a non-hex digit.
	u, err := uuid.Parse(s)
	if err != nil {
		return Nil, fmt.Errorf("%w in %q", ErrInvalidCharacter, s)
	}

	return FromUUID(u), nil
}
