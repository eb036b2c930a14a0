package inplace

import (
	"unicode/utf16"
	"unsafe"
)

// U16String is a fixed-capacity string of 16-bit units backed by the
// array type A. It carries the core surface of String; byte-oriented
// interop (JSON, io, glob, hash) stays with the byte family.
type U16String[A U16Buf] struct {
	buf A
}

func (s *U16String[A]) raw() []uint16 {
	return unsafe.Slice(&s.buf[0], len(s.buf))
}

// NewU16 copies v into a fresh string. Fails with ErrOverflow if v is
// longer than the capacity.
func NewU16[A U16Buf](v []uint16) (U16String[A], error) {
	var s U16String[A]
	b := s.raw()
	if len(v) > len(b)-1 {
		return U16String[A]{}, ErrOverflow
	}
	copy(b, v)
	return s, nil
}

// U16FromString encodes v as UTF-16 units.
func U16FromString[A U16Buf](v string) (U16String[A], error) {
	return NewU16[A](utf16.Encode([]rune(v)))
}

// MustU16 is U16FromString for literals; it panics instead of
// returning an error.
func MustU16[A U16Buf](v string) U16String[A] {
	s, err := U16FromString[A](v)
	if err != nil {
		panic(err)
	}
	return s
}

// RepeatU16 builds a string of count copies of ch.
func RepeatU16[A U16Buf](ch uint16, count int) (U16String[A], error) {
	var s U16String[A]
	b := s.raw()
	if count > len(b)-1 {
		return U16String[A]{}, ErrOverflow
	}
	for i := 0; i < count; i++ {
		b[i] = ch
	}
	return s, nil
}

// ConvertU16 copies s into a string of a different capacity.
func ConvertU16[To, From U16Buf](s *U16String[From]) (U16String[To], error) {
	return NewU16[To](s.Units())
}

// ConcatU16 joins a and b; the To argument picks the result capacity.
func ConcatU16[To, A, B U16Buf](a *U16String[A], b *U16String[B]) (U16String[To], error) {
	var s U16String[To]
	buf := s.raw()
	an := a.Len()
	bn := b.Len()
	if an+bn > len(buf)-1 {
		return U16String[To]{}, ErrOverflow
	}
	copy(buf, a.Units())
	copy(buf[an:], b.Units())
	return s, nil
}

// Len returns the logical size by scanning for the terminator.
func (s *U16String[A]) Len() int {
	return termIndex(s.raw())
}

// Cap returns the fixed capacity N.
func (s *U16String[A]) Cap() int {
	return len(s.buf) - 1
}

func (s *U16String[A]) Empty() bool {
	return s.buf[0] == 0
}

// At returns the unit at index i, or ErrOutOfRange when i is not below
// Len.
func (s *U16String[A]) At(i int) (uint16, error) {
	if i < 0 || i >= s.Len() {
		return 0, ErrOutOfRange
	}
	return s.raw()[i], nil
}

// Get returns the unit at index i without checking the logical size.
func (s *U16String[A]) Get(i int) uint16 {
	return s.raw()[i]
}

func (s *U16String[A]) Front() uint16 {
	return s.buf[0]
}

func (s *U16String[A]) Back() uint16 {
	return s.raw()[s.Len()-1]
}

// Units returns a view of the content, terminator excluded. The view
// aliases the buffer and is valid until the next mutation.
func (s *U16String[A]) Units() []uint16 {
	n := s.Len()
	return s.raw()[0:n:n]
}

// String decodes the content as UTF-16.
func (s U16String[A]) String() string {
	if s.buf[0] == 0 {
		return ""
	}
	return string(utf16.Decode(s.Units()))
}

func (s *U16String[A]) Each(fn func(i int, ch uint16) bool) {
	b := s.raw()
	n := s.Len()
	for i := 0; i < n; i++ {
		if !fn(i, b[i]) {
			return
		}
	}
}

func (s *U16String[A]) EachReverse(fn func(i int, ch uint16) bool) {
	b := s.raw()
	for i := s.Len() - 1; i >= 0; i-- {
		if !fn(i, b[i]) {
			return
		}
	}
}

// SetUnits replaces the content with v. The value is unchanged on
// failure.
func (s *U16String[A]) SetUnits(v []uint16) error {
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

func (s *U16String[A]) Clear() {
	var zero A
	s.buf = zero
}

// Insert follows the same rules as String.Insert.
func (s *U16String[A]) Insert(index, count int, ch uint16) error {
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

// Erase follows the same rules as String.Erase.
func (s *U16String[A]) Erase(index, count int) error {
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

func (s *U16String[A]) Push(ch uint16) error {
	b := s.raw()
	n := s.Len()
	if n >= len(b)-1 {
		return ErrOverflow
	}
	b[n] = ch
	b[n+1] = 0
	return nil
}

func (s *U16String[A]) Pop() {
	s.raw()[s.Len()-1] = 0
}

// AppendUnits appends v. Nothing is written on failure.
func (s *U16String[A]) AppendUnits(v []uint16) error {
	b := s.raw()
	n := s.Len()
	if n+len(v) > len(b)-1 {
		return ErrOverflow
	}
	copy(b[n:], v)
	b[n+len(v)] = 0
	return nil
}

// AppendU16 appends o to s. The capacities may differ.
func AppendU16[A, B U16Buf](s *U16String[A], o *U16String[B]) error {
	return s.AppendUnits(o.Units())
}

// Resize follows the same rules as String.Resize.
func (s *U16String[A]) Resize(n int) error {
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

// ResizeFill follows the same rules as String.ResizeFill.
func (s *U16String[A]) ResizeFill(n int, ch uint16) error {
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

func (s *U16String[A]) Swap(o *U16String[A]) {
	s.buf, o.buf = o.buf, s.buf
}

// Find returns the first start of needle at or after pos, or NotFound.
func (s *U16String[A]) Find(needle []uint16, pos int) int {
	return findUnits(s.Units(), needle, pos)
}

func (s *U16String[A]) FindUnit(ch uint16, pos int) int {
	b := s.Units()
	if pos < 0 {
		pos = 0
	}
	for i := pos; i < len(b); i++ {
		if b[i] == ch {
			return i
		}
	}
	return NotFound
}

// RFind returns the last start of needle that is <= pos, or NotFound.
func (s *U16String[A]) RFind(needle []uint16, pos int) int {
	return rfindUnits(s.Units(), needle, pos)
}

func (s *U16String[A]) RFindUnit(ch uint16, pos int) int {
	b := s.Units()
	if pos < 0 {
		return NotFound
	}
	hi := len(b) - 1
	if pos < hi {
		hi = pos
	}
	for i := hi; i >= 0; i-- {
		if b[i] == ch {
			return i
		}
	}
	return NotFound
}

// FindAny returns the first index at or after pos whose unit appears
// in set, or NotFound.
func (s *U16String[A]) FindAny(set []uint16, pos int) int {
	return findAnyUnits(s.Units(), set, pos)
}

// EqualUnits reports content equality with v.
func (s *U16String[A]) EqualUnits(v []uint16) bool {
	return equalUnits(s.Units(), v)
}

// CompareUnits orders the content against v by unit value.
func (s *U16String[A]) CompareUnits(v []uint16) int {
	return compareUnits(s.Units(), v)
}

// EqualU16 reports content equality across capacities.
func EqualU16[A, B U16Buf](a *U16String[A], b *U16String[B]) bool {
	return equalUnits(a.Units(), b.Units())
}

// CompareU16 orders a against b across capacities.
func CompareU16[A, B U16Buf](a *U16String[A], b *U16String[B]) int {
	return compareUnits(a.Units(), b.Units())
}
