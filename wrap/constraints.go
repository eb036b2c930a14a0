package wrap

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of integer types.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating-point types.
type Float interface {
	~float32 | ~float64
}

// Arithmetic is the set of types the arithmetic helpers accept.
type Arithmetic interface {
	Integer | Float
}

// Ordered is the set of types that order with < and friends.
type Ordered interface {
	Integer | Float | ~string
}
