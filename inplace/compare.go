package inplace

import (
	"bytes"
	"strings"
)

// EqualString reports content equality with v.
func (s *String[A]) EqualString(v string) bool {
	return s.Unsafe() == v
}

// EqualBytes reports content equality with v.
func (s *String[A]) EqualBytes(v []byte) bool {
	return bytes.Equal(s.Bytes(), v)
}

// Compare orders the content against v: -1, 0 or +1 by unit value.
func (s *String[A]) Compare(v string) int {
	return strings.Compare(s.Unsafe(), v)
}

// Equal reports content equality across capacities. Same-capacity
// values can use == directly.
func Equal[A, B Buf](a *String[A], b *String[B]) bool {
	return a.Unsafe() == b.Unsafe()
}

// Compare orders a against b across capacities.
func Compare[A, B Buf](a *String[A], b *String[B]) int {
	return strings.Compare(a.Unsafe(), b.Unsafe())
}
