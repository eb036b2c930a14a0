// Package inplace provides fixed-capacity strings that live entirely
// within their own footprint: a String[A] is a plain value wrapping a
// backing array, with no pointer, no heap storage and no sharing. The
// capacity is part of the type. Content is zero-terminated inside the
// buffer; the logical size is the index of the first zero unit, found
// by scanning, so foreign code can treat the raw buffer as a C string.
//
// The zero value is the empty string. Mutations are all-or-nothing: an
// operation that would overflow the capacity or use a bad index fails
// before touching the buffer, leaving the value bit-for-bit unchanged.
// Two values of the same capacity compare with ==.
//
//	name := inplace.MustNew[[14]byte]("Hello, World!")
//	name.Len() // 13
//	name.Cap() // 13
//
// Common capacities have aliases: String8 through String256. Any
// capacity up to 64, and the coarser ladder beyond, can be named
// directly as String[[N+1]byte].
package inplace

import (
	"bytes"
	"errors"
	"io"
	"unsafe"
)

//go:generate go run gen.go

var (
	// ErrOverflow reports content that cannot fit the fixed capacity.
	ErrOverflow = errors.New("capacity exceeded")
	// ErrOutOfRange reports an index outside the valid range.
	ErrOutOfRange = errors.New("index out of range")
)

// NotFound is returned by the search methods when there is no match.
const NotFound = -1

// String is a fixed-capacity byte string backed by the array type A.
// See the package documentation for the representation rules.
type String[A Buf] struct {
	buf A
}

// raw exposes the whole buffer, terminator slot included.
func (s *String[A]) raw() []byte {
	return unsafe.Slice(&s.buf[0], len(s.buf))
}

// New copies v into a fresh string. Fails with ErrOverflow if v is
// longer than the capacity.
func New[A Buf](v string) (String[A], error) {
	var s String[A]
	b := s.raw()
	if len(v) > len(b)-1 {
		return String[A]{}, ErrOverflow
	}
	copy(b, v)
	b[len(v)] = 0
	return s, nil
}

// MustNew is New for literals; it panics instead of returning an error.
func MustNew[A Buf](v string) String[A] {
	s, err := New[A](v)
	if err != nil {
		panic(err)
	}
	return s
}

// FromBytes copies v into a fresh string. Fails with ErrOverflow if v
// is longer than the capacity.
func FromBytes[A Buf](v []byte) (String[A], error) {
	var s String[A]
	b := s.raw()
	if len(v) > len(b)-1 {
		return String[A]{}, ErrOverflow
	}
	copy(b, v)
	b[len(v)] = 0
	return s, nil
}

// Repeat builds a string of count copies of ch. A count <= 0 yields the
// empty string. Fails with ErrOverflow if count exceeds the capacity.
func Repeat[A Buf](ch byte, count int) (String[A], error) {
	var s String[A]
	b := s.raw()
	if count > len(b)-1 {
		return String[A]{}, ErrOverflow
	}
	for i := 0; i < count; i++ {
		b[i] = ch
	}
	return s, nil
}

// FromReader reads r to EOF into a fresh string. Fails with ErrOverflow
// if the stream is longer than the capacity; on any failure the result
// is the zero value.
func FromReader[A Buf](r io.Reader) (String[A], error) {
	var s String[A]
	b := s.raw()
	max := len(b) - 1
	n := 0
	for {
		if n == max {
			var probe [1]byte
			m, err := r.Read(probe[:])
			if m > 0 {
				return String[A]{}, ErrOverflow
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				return String[A]{}, err
			}
			continue
		}
		m, err := r.Read(b[n:max])
		n += m
		if err == io.EOF {
			break
		}
		if err != nil {
			return String[A]{}, err
		}
	}
	b[n] = 0
	return s, nil
}

// Clip copies as much of v as fits and silently drops the rest.
func Clip[A Buf](v string) String[A] {
	var s String[A]
	b := s.raw()
	l := len(v)
	if l > len(b)-1 {
		l = len(b) - 1
	}
	copy(b[0:], v[0:l])
	b[l] = 0
	return s
}

// Len returns the logical size: the index of the first zero unit.
// It scans, so it costs O(Len).
func (s *String[A]) Len() int {
	b := s.raw()
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return i
	}
	return len(b) - 1
}

// Cap returns the fixed capacity N.
func (s *String[A]) Cap() int {
	return len(s.buf) - 1
}

// Empty reports whether the string has no content.
func (s *String[A]) Empty() bool {
	return s.buf[0] == 0
}

// At returns the unit at index i, or ErrOutOfRange when i is not below
// Len.
func (s *String[A]) At(i int) (byte, error) {
	b := s.raw()
	if i < 0 || i >= s.Len() {
		return 0, ErrOutOfRange
	}
	return b[i], nil
}

// Get returns the unit at index i without bounds checking against the
// logical size. Get(Len()) reads the terminator and returns zero;
// anything past the buffer is a caller bug and panics.
func (s *String[A]) Get(i int) byte {
	return s.raw()[i]
}

// Front returns the first unit. The caller guarantees the string is not
// empty; on an empty string it reads the terminator.
func (s *String[A]) Front() byte {
	return s.buf[0]
}

// Back returns the last unit. The caller guarantees the string is not
// empty.
func (s *String[A]) Back() byte {
	return s.raw()[s.Len()-1]
}

// Bytes returns a view of the content, terminator excluded. The view
// aliases the buffer and is valid until the next mutation.
func (s *String[A]) Bytes() []byte {
	n := s.Len()
	return s.raw()[0:n:n]
}

// Raw returns the whole backing buffer including the terminator slot.
// Raw()[Len()] is always zero. Writing through Raw is the caller's
// responsibility.
func (s *String[A]) Raw() []byte {
	return s.raw()
}

// String returns a copy of the content.
func (s String[A]) String() string {
	if s.buf[0] == 0 {
		return ""
	}
	return string(s.Bytes())
}

// Unsafe returns the content as a string without copying. The result
// aliases the buffer and is valid until the next mutation.
func (s *String[A]) Unsafe() string {
	n := s.Len()
	if n == 0 {
		return ""
	}
	return unsafe.String(&s.buf[0], n)
}

// Each calls fn for every unit in order until fn returns false.
func (s *String[A]) Each(fn func(i int, ch byte) bool) {
	b := s.raw()
	n := s.Len()
	for i := 0; i < n; i++ {
		if !fn(i, b[i]) {
			return
		}
	}
}

// EachReverse calls fn for every unit in reverse order until fn returns
// false.
func (s *String[A]) EachReverse(fn func(i int, ch byte) bool) {
	b := s.raw()
	for i := s.Len() - 1; i >= 0; i-- {
		if !fn(i, b[i]) {
			return
		}
	}
}
