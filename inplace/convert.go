package inplace

// Convert copies s into a string of a different capacity. Fails with
// ErrOverflow if the content does not fit.
func Convert[To, From Buf](s *String[From]) (String[To], error) {
	return FromBytes[To](s.Bytes())
}

// Concat joins a and b into a string whose capacity is chosen by the To
// argument. Picking cap(To) >= cap(A)+cap(B) can never fail; a smaller
// To fails with ErrOverflow when the joined content does not fit.
func Concat[To, A, B Buf](a *String[A], b *String[B]) (String[To], error) {
	var s String[To]
	buf := s.raw()
	an := a.Len()
	bn := b.Len()
	if an+bn > len(buf)-1 {
		return String[To]{}, ErrOverflow
	}
	copy(buf, a.Bytes())
	copy(buf[an:], b.Bytes())
	buf[an+bn] = 0
	return s, nil
}

// MustConcat is Concat for literal-style code; it panics instead of
// returning an error.
func MustConcat[To, A, B Buf](a *String[A], b *String[B]) String[To] {
	s, err := Concat[To](a, b)
	if err != nil {
		panic(err)
	}
	return s
}
