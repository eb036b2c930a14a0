package inplace

import (
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// SetBytes replaces the content with v under the same rules as Set.
func (s *String[A]) SetBytes(v []byte) error {
	b := s.raw()
	if len(v) > len(b)-1 {
		return ErrOverflow
	}
	n := s.Len()
	copy(b, v)
	if len(v) < n {
		zeroUnits(b, len(v), n)
	}
	b[len(v)] = 0
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s String[A]) MarshalText() ([]byte, error) {
	return append([]byte(nil), s.Bytes()...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Fails with
// ErrOverflow if the text does not fit; the value is unchanged on
// failure.
func (s *String[A]) UnmarshalText(text []byte) error {
	return s.SetBytes(text)
}

// MarshalJSON implements json.Marshaler: the content as a JSON string.
func (s String[A]) MarshalJSON() ([]byte, error) {
	var w jwriter.Writer
	w.String(s.Unsafe())
	return w.Buffer.BuildBytes(), w.Error
}

// UnmarshalJSON implements json.Unmarshaler under UnmarshalText's
// rules.
func (s *String[A]) UnmarshalJSON(data []byte) error {
	l := jlexer.Lexer{Data: data}
	v := l.String()
	if err := l.Error(); err != nil {
		return err
	}
	return s.Set(v)
}

// MarshalEasyJSON implements easyjson.Marshaler.
func (s String[A]) MarshalEasyJSON(w *jwriter.Writer) {
	w.String(s.Unsafe())
}

// UnmarshalEasyJSON implements easyjson.Unmarshaler. A too-long value
// records ErrOverflow on the lexer and leaves the string unchanged.
func (s *String[A]) UnmarshalEasyJSON(l *jlexer.Lexer) {
	v := l.String()
	if !l.Ok() {
		return
	}
	if err := s.Set(v); err != nil {
		l.AddError(err)
	}
}
