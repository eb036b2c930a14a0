package inplace

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

func TestText(t *testing.T) {
	s := MustNew[[14]byte]("Hello, World!")
	text, err := s.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "Hello, World!" {
		t.Fatalf("got %q", text)
	}
	var back String[[14]byte]
	if err = back.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if back != s {
		t.Fatal("round trip mismatch")
	}
	var small String[[4]byte]
	if err = small.UnmarshalText(text); err != ErrOverflow {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
	if !small.Empty() {
		t.Fatal("value must be unchanged on failure")
	}
}

func TestJSON(t *testing.T) {
	s := MustNew[[17]byte](`he said "hi"`)
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"he said \"hi\""` {
		t.Fatalf("got %s", data)
	}
	var back String[[17]byte]
	if err = back.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if back != s {
		t.Fatal("round trip mismatch")
	}
	var small String[[4]byte]
	if err = small.UnmarshalJSON(data); err != ErrOverflow {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
	if err = back.UnmarshalJSON([]byte(`{"not":"a string"}`)); err == nil {
		t.Fatal("expected a lexer error")
	}
	if back != s {
		t.Fatal("value must be unchanged on failure")
	}
}

func TestJSONField(t *testing.T) {
	type record struct {
		Name String[[17]byte] `json:"name"`
		Age  int              `json:"age"`
	}
	in := record{Name: MustNew[[17]byte]("Ada"), Age: 36}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"name":"Ada","age":36}` {
		t.Fatalf("got %s", data)
	}
	var out record
	if err = json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Fatalf("got %+v", out)
	}
}

func TestEasyJSON(t *testing.T) {
	s := MustNew[[14]byte]("Hello, World!")
	var w jwriter.Writer
	s.MarshalEasyJSON(&w)
	data, err := w.BuildBytes()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"Hello, World!"` {
		t.Fatalf("got %s", data)
	}

	var back String[[14]byte]
	l := jlexer.Lexer{Data: data}
	back.UnmarshalEasyJSON(&l)
	if err = l.Error(); err != nil {
		t.Fatal(err)
	}
	if back != s {
		t.Fatal("round trip mismatch")
	}

	var small String[[4]byte]
	l = jlexer.Lexer{Data: data}
	small.UnmarshalEasyJSON(&l)
	if l.Error() == nil {
		t.Fatal("expected the lexer to carry ErrOverflow")
	}
	if !small.Empty() {
		t.Fatal("value must be unchanged on failure")
	}
}

func TestBinary(t *testing.T) {
	s := MustNew[[14]byte]("Hello, World!")
	data, err := s.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 14 || data[13] != 0 {
		t.Fatalf("wire form %d %v", len(data), data)
	}
	var back String[[14]byte]
	if err = back.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}
	if back != s {
		t.Fatal("round trip mismatch")
	}
	if err = back.UnmarshalBinary(data[:13]); err != io.ErrShortBuffer {
		t.Fatalf("expected io.ErrShortBuffer, got %v", err)
	}

	// Junk after the terminator is cleared on the way in.
	junk := make([]byte, 14)
	copy(junk, "Hi\x00")
	for i := 3; i < len(junk); i++ {
		junk[i] = 0xFF
	}
	if err = back.UnmarshalBinary(junk); err != nil {
		t.Fatal(err)
	}
	if back != MustNew[[14]byte]("Hi") {
		t.Fatalf("got %v", back.Raw())
	}

	out := s.MarshalBinaryTo([]byte("head:"))
	if len(out) != 5+14 || string(out[:5]) != "head:" {
		t.Fatalf("got %q", out)
	}
}

func TestWriteToReadFrom(t *testing.T) {
	s := MustNew[[14]byte]("Hello, World!")
	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	if err != nil || n != 14 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	var back String[[14]byte]
	if n, err = back.ReadFrom(&buf); err != nil || n != 14 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if back != s {
		t.Fatal("round trip mismatch")
	}

	var short String[[14]byte]
	if _, err = short.ReadFrom(bytes.NewReader([]byte("tiny"))); err != io.ErrUnexpectedEOF {
		t.Fatalf("expected io.ErrUnexpectedEOF, got %v", err)
	}
	if !short.Empty() {
		t.Fatal("value must be unchanged on a short read")
	}
}
