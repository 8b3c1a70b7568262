package gofuid

// MarshalText implements encoding.TextMarshaler. The text form is the
// canonical Base62 string, so encoding/json renders a FUID as a short quoted
// string rather than an object.
func (f FUID) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing the Base62 form.
func (f *FUID) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler, returning the 16-byte
// big-endian form.
func (f FUID) MarshalBinary() ([]byte, error) {
	b := f.Bytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It requires exactly
// 16 bytes.
func (f *FUID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
