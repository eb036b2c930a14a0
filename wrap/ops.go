package wrap

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Add returns a + b.
func Add[T Arithmetic, G any](a, b Strong[T, G]) Strong[T, G] {
	return Strong[T, G]{value: a.value + b.value}
}

// Sub returns a - b.
func Sub[T Arithmetic, G any](a, b Strong[T, G]) Strong[T, G] {
	return Strong[T, G]{value: a.value - b.value}
}

// Mul returns a * b.
func Mul[T Arithmetic, G any](a, b Strong[T, G]) Strong[T, G] {
	return Strong[T, G]{value: a.value * b.value}
}

// Div returns a / b.
func Div[T Arithmetic, G any](a, b Strong[T, G]) Strong[T, G] {
	return Strong[T, G]{value: a.value / b.value}
}

// Mod returns a % b. Unlike the other arithmetic helpers it is
// integer only.
func Mod[T Integer, G any](a, b Strong[T, G]) Strong[T, G] {
	return Strong[T, G]{value: a.value % b.value}
}

// Neg returns -a.
func Neg[T Signed, G any](a Strong[T, G]) Strong[T, G] {
	return Strong[T, G]{value: -a.value}
}

// Inc increments the wrapped value in place.
func Inc[T Arithmetic, G any](s *Strong[T, G]) {
	s.value++
}

// Dec decrements the wrapped value in place.
func Dec[T Arithmetic, G any](s *Strong[T, G]) {
	s.value--
}

// And returns a & b.
func And[T Unsigned, G any](a, b Strong[T, G]) Strong[T, G] {
	return Strong[T, G]{value: a.value & b.value}
}

// Or returns a | b.
func Or[T Unsigned, G any](a, b Strong[T, G]) Strong[T, G] {
	return Strong[T, G]{value: a.value | b.value}
}

// Xor returns a ^ b.
func Xor[T Unsigned, G any](a, b Strong[T, G]) Strong[T, G] {
	return Strong[T, G]{value: a.value ^ b.value}
}

// Not returns the bitwise complement of a.
func Not[T Unsigned, G any](a Strong[T, G]) Strong[T, G] {
	return Strong[T, G]{value: ^a.value}
}

// Shl returns a shifted left by bits.
func Shl[T Unsigned, G any](a Strong[T, G], bits uint) Strong[T, G] {
	return Strong[T, G]{value: a.value << bits}
}

// Shr returns a shifted right by bits.
func Shr[T Unsigned, G any](a Strong[T, G], bits uint) Strong[T, G] {
	return Strong[T, G]{value: a.value >> bits}
}

// Less reports a < b.
func Less[T Ordered, G any](a, b Strong[T, G]) bool {
	return a.value < b.value
}

// Compare orders a against b, returning -1, 0 or 1.
func Compare[T Ordered, G any](a, b Strong[T, G]) int {
	switch {
	case a.value < b.value:
		return -1
	case a.value > b.value:
		return 1
	}
	return 0
}

// Min returns the smaller of a and b.
func Min[T Ordered, G any](a, b Strong[T, G]) Strong[T, G] {
	if b.value < a.value {
		return b
	}
	return a
}

// Max returns the larger of a and b.
func Max[T Ordered, G any](a, b Strong[T, G]) Strong[T, G] {
	if b.value > a.value {
		return b
	}
	return a
}

// Hash64 returns the xxhash of the wrapped integer's fixed-width
// little-endian form. Tag separation is the type system's job; values
// hash by content alone.
func Hash64[T Integer, G any](s Strong[T, G]) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(s.value))
	return xxhash.Sum64(b[:])
}
