// Package gofuid implements the Friendly Universal Identifier (FUID): a
// 128-bit value that is bit-compatible with an RFC 4122 UUID but renders as a
// short Base62 string instead of the hyphenated hexadecimal form.
//
// The Base62 alphabet is fixed as digits '0'-'9', then uppercase 'A'-'Z',
// then lowercase 'a'-'z'; this ordering defines both the canonical encoding
// and the lexicographic sort behavior of encoded strings. Canonical output
// never carries leading zero digits (zero itself encodes as "0"); parsing
// tolerates redundant leading zeros and strips them on re-encoding.
//
// Randomly generated FUIDs follow the version-4 UUID layout, so every FUID
// produced by New or NewRandom is also a valid random UUID and can be
// exchanged with UUID-consuming systems byte for byte.
package gofuid
