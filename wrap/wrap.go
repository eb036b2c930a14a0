// Package wrap provides zero-cost wrappers that turn a value of some
// type T into a distinct type. A Strong value is distinguished by a
// phantom tag type; a Named value additionally carries a compile-time
// name for labeled output.
//
// The wrappers exist to let the compiler catch mixups between values
// that share a representation but not a meaning:
//
//	type userID struct{}
//	type groupID struct{}
//
//	type UserID = wrap.Strong[uint64, userID]
//	type GroupID = wrap.Strong[uint64, groupID]
//
// A UserID no longer assigns to a GroupID even though both are uint64
// underneath. The tag is never stored, so a wrapper is exactly as big
// as the value it wraps.
package wrap

import (
	"encoding/json"
	"fmt"
)

// Strong wraps a value of type T in a distinct type selected by the
// phantom tag G. Two instantiations with different tags are unrelated
// types. The zero value holds T's zero value, and a Strong of a
// comparable T compares with ==.
type Strong[T any, G any] struct {
	value T
}

// New wraps v. The tag parameter comes first so the value type can be
// inferred: wrap.New[kelvin](296.0).
func New[G any, T any](v T) Strong[T, G] {
	return Strong[T, G]{value: v}
}

// Value returns the wrapped value.
func (s Strong[T, G]) Value() T {
	return s.value
}

// Ptr returns a pointer to the wrapped value for in-place updates.
func (s *Strong[T, G]) Ptr() *T {
	return &s.value
}

// Set replaces the wrapped value.
func (s *Strong[T, G]) Set(v T) {
	s.value = v
}

// Reset restores the wrapped value to T's zero value.
func (s *Strong[T, G]) Reset() {
	var zero T
	s.value = zero
}

// Swap exchanges the wrapped values.
func (s *Strong[T, G]) Swap(o *Strong[T, G]) {
	s.value, o.value = o.value, s.value
}

// Transform returns a wrapper of the same type holding fn of the
// value.
func (s Strong[T, G]) Transform(fn func(T) T) Strong[T, G] {
	return Strong[T, G]{value: fn(s.value)}
}

// String renders the wrapped value.
func (s Strong[T, G]) String() string {
	return fmt.Sprint(s.value)
}

// MarshalJSON implements json.Marshaler. The wrapper is invisible on
// the wire; only the value is encoded.
func (s Strong[T, G]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Strong[T, G]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &s.value)
}
