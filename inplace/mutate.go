package inplace

// Set replaces the content with v. Fails with ErrOverflow if v is
// longer than the capacity; the value is unchanged on failure.
func (s *String[A]) Set(v string) error {
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

// Clear resets the string to empty.
func (s *String[A]) Clear() {
	var zero A
	s.buf = zero
}

// Insert shifts the content at index right by count and fills the gap
// with ch. Fails with ErrOutOfRange if index is not in [0, Len] and
// with ErrOverflow if the result would not fit; either way nothing is
// written. A count <= 0 is a no-op.
func (s *String[A]) Insert(index, count int, ch byte) error {
	b := s.raw()
	n := s.Len()
	if index < 0 || index > n {
		return ErrOutOfRange
	}
	if count <= 0 {
		return nil
	}
	if n+count > len(b)-1 {
		return ErrOverflow
	}
	insertUnits(b, n, index, count, ch)
	return nil
}

// InsertString inserts v at index under the same rules as Insert.
// v must not alias the buffer.
func (s *String[A]) InsertString(index int, v string) error {
	b := s.raw()
	n := s.Len()
	if index < 0 || index > n {
		return ErrOutOfRange
	}
	if len(v) == 0 {
		return nil
	}
	if n+len(v) > len(b)-1 {
		return ErrOverflow
	}
	copy(b[index+len(v):n+len(v)], b[index:n])
	copy(b[index:], v)
	b[n+len(v)] = 0
	return nil
}

// Erase removes min(count, Len-index) units at index, shifting the
// remainder left. Fails with ErrOutOfRange if index is not in [0, Len];
// erasing at exactly Len is a no-op. A count <= 0 erases nothing.
func (s *String[A]) Erase(index, count int) error {
	b := s.raw()
	n := s.Len()
	if index < 0 || index > n {
		return ErrOutOfRange
	}
	if count <= 0 {
		return nil
	}
	removed := n - index
	if count < removed {
		removed = count
	}
	eraseUnits(b, n, index, removed)
	return nil
}

// Push appends a single unit. Fails with ErrOverflow when full.
func (s *String[A]) Push(ch byte) error {
	b := s.raw()
	n := s.Len()
	if n >= len(b)-1 {
		return ErrOverflow
	}
	b[n] = ch
	b[n+1] = 0
	return nil
}

// Pop removes the last unit. The caller guarantees the string is not
// empty.
func (s *String[A]) Pop() {
	s.raw()[s.Len()-1] = 0
}

// AppendString appends v. Fails with ErrOverflow if the result would
// not fit; nothing is written on failure.
func (s *String[A]) AppendString(v string) error {
	b := s.raw()
	n := s.Len()
	if n+len(v) > len(b)-1 {
		return ErrOverflow
	}
	copy(b[n:], v)
	b[n+len(v)] = 0
	return nil
}

// AppendBytes appends v under the same rules as AppendString.
func (s *String[A]) AppendBytes(v []byte) error {
	b := s.raw()
	n := s.Len()
	if n+len(v) > len(b)-1 {
		return ErrOverflow
	}
	copy(b[n:], v)
	b[n+len(v)] = 0
	return nil
}

// Append appends o to s. The capacities may differ.
func Append[A, B Buf](s *String[A], o *String[B]) error {
	return s.AppendBytes(o.Bytes())
}

// Resize truncates to n or, when growing, writes zero units. Under
// terminator-scan semantics zero fill leaves the logical size
// unchanged; use ResizeFill to grow visibly. Fails with ErrOutOfRange
// for a negative n and ErrOverflow when n exceeds the capacity.
func (s *String[A]) Resize(n int) error {
	if n < 0 {
		return ErrOutOfRange
	}
	b := s.raw()
	if n > len(b)-1 {
		return ErrOverflow
	}
	if l := s.Len(); n < l {
		zeroUnits(b, n, l)
	}
	return nil
}

// ResizeFill truncates to n or grows to n by appending ch units.
func (s *String[A]) ResizeFill(n int, ch byte) error {
	if n < 0 {
		return ErrOutOfRange
	}
	b := s.raw()
	if n > len(b)-1 {
		return ErrOverflow
	}
	l := s.Len()
	if n < l {
		zeroUnits(b, n, l)
		return nil
	}
	for i := l; i < n; i++ {
		b[i] = ch
	}
	b[n] = 0
	return nil
}

// Swap exchanges the contents of two strings of the same capacity.
func (s *String[A]) Swap(o *String[A]) {
	s.buf, o.buf = o.buf, s.buf
}

// Write implements io.Writer with all-or-nothing semantics: on
// ErrOverflow it reports zero bytes written and the value is unchanged.
func (s *String[A]) Write(v []byte) (int, error) {
	if err := s.AppendBytes(v); err != nil {
		return 0, err
	}
	return len(v), nil
}

// WriteString implements io.StringWriter under the same rules as Write.
func (s *String[A]) WriteString(v string) (int, error) {
	if err := s.AppendString(v); err != nil {
		return 0, err
	}
	return len(v), nil
}

// WriteByte implements io.ByteWriter.
func (s *String[A]) WriteByte(ch byte) error {
	return s.Push(ch)
}
