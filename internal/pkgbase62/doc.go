// Package pkgbase62 converts 128-bit unsigned integers to and from Base62
// text.
//
// The alphabet is fixed as "0123456789" followed by "A-Z" followed by "a-z",
// so digit values 0..61 map to '0'..'9', 'A'..'Z', 'a'..'z' in that order.
// Encoding is canonical: most-significant digit first, no padding, and no
// leading zero digits except for the value zero itself, which encodes as "0".
// Decoding accepts redundant leading zero digits; re-encoding a decoded value
// always yields the canonical form.
package pkgbase62
