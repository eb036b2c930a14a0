package inplace

import "io"

// normalize forces the terminator and clears everything after the
// first zero unit.
func (s *String[A]) normalize() {
	b := s.raw()
	b[len(b)-1] = 0
	n := termIndex(b)
	zeroUnits(b, n+1, len(b))
}

// MarshalBinary implements encoding.BinaryMarshaler. The wire form is
// the whole backing buffer, so content and capacity round-trip.
func (s String[A]) MarshalBinary() ([]byte, error) {
	return append([]byte(nil), s.raw()...), nil
}

// MarshalBinaryTo appends the wire form to b and returns the extended
// slice.
func (s *String[A]) MarshalBinaryTo(b []byte) []byte {
	return append(b, s.raw()...)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Fails with
// io.ErrShortBuffer when data holds less than one buffer; extra bytes
// are ignored. The result is normalized: everything past the first
// zero unit is cleared.
func (s *String[A]) UnmarshalBinary(data []byte) error {
	b := s.raw()
	if len(data) < len(b) {
		return io.ErrShortBuffer
	}
	copy(b, data)
	s.normalize()
	return nil
}

// WriteTo implements io.WriterTo, writing exactly one buffer.
func (s *String[A]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.raw())
	return int64(n), err
}

// ReadFrom implements io.ReaderFrom, reading exactly one buffer. The
// value is unchanged unless the full buffer arrives.
func (s *String[A]) ReadFrom(r io.Reader) (int64, error) {
	var tmp String[A]
	b := tmp.raw()
	n, err := io.ReadFull(r, b)
	if err != nil {
		return int64(n), err
	}
	tmp.normalize()
	*s = tmp
	return int64(n), nil
}
