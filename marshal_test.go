package gofuid

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	f := MustParse("6fTiplVKIi6bJFe8rTXPcu")

	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got := string(data); got != `"6fTiplVKIi6bJFe8rTXPcu"` {
		t.Fatalf("Marshal = %s", got)
	}

	var back FUID
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != f {
		t.Fatalf("round trip changed value: %v != %v", back, f)
	}
}

func TestJSONStructField(t *testing.T) {
	type record struct {
		ID   FUID   `json:"id"`
		Name string `json:"name"`
	}

	in := record{ID: MustParse("F0ob4rZ"), Name: "friendly"}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got := string(data); got != `{"id":"F0ob4rZ","name":"friendly"}` {
		t.Fatalf("Marshal = %s", got)
	}

	var out record
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Fatalf("round trip changed record: %+v != %+v", out, in)
	}
}

func TestUnmarshalTextInvalid(t *testing.T) {
	var f FUID
	if err := f.UnmarshalText([]byte("ab!")); !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("error = %v, want ErrInvalidCharacter", err)
	}
	if err := f.UnmarshalText(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("error = %v, want ErrEmptyInput", err)
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	f := New()

	data, err := f.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(data) != 16 {
		t.Fatalf("MarshalBinary length = %d, want 16", len(data))
	}

	var back FUID
	if err := back.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if back != f {
		t.Fatalf("round trip changed value: %v != %v", back, f)
	}

	if err := back.UnmarshalBinary(data[:8]); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("short input error = %v, want ErrInvalidFormat", err)
	}
}
