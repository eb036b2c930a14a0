package inplace

// Unit is the set of character-unit widths a fixed string can be
// instantiated over. The byte family carries the full surface; see
// U16String for the wide-unit family.
type Unit interface {
	~byte | ~uint16 | ~rune
}

// termIndex returns the index of the first zero unit. The buffer always
// holds a terminator at or before its last slot.
func termIndex[E Unit](b []E) int {
	for i := 0; i < len(b); i++ {
		if b[i] == 0 {
			return i
		}
	}
	return len(b) - 1
}

// insertUnits shifts b[index:n] right by count and fills the gap with ch.
// Bounds and capacity are the caller's problem.
func insertUnits[E Unit](b []E, n, index, count int, ch E) {
	copy(b[index+count:n+count], b[index:n])
	for i := 0; i < count; i++ {
		b[index+i] = ch
	}
	b[n+count] = 0
}

// eraseUnits removes removed units at index from a string of length n,
// shifting the remainder left and zeroing the vacated tail.
func eraseUnits[E Unit](b []E, n, index, removed int) {
	copy(b[index:], b[index+removed:n])
	for i := n - removed; i < n; i++ {
		b[i] = 0
	}
}

// zeroUnits zeroes b[from:to].
func zeroUnits[E Unit](b []E, from, to int) {
	for i := from; i < to; i++ {
		b[i] = 0
	}
}

func equalUnits[E Unit](a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// compareUnits orders lexicographically by unit value, like bytes.Compare.
func compareUnits[E Unit](a, b []E) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// findUnits returns the first start >= pos of needle in hay, or NotFound.
// An empty needle matches at pos when pos <= len(hay).
func findUnits[E Unit](hay, needle []E, pos int) int {
	if pos < 0 {
		pos = 0
	}
	if pos > len(hay) {
		return NotFound
	}
	if len(needle) == 0 {
		return pos
	}
	for i := pos; i+len(needle) <= len(hay); i++ {
		if equalUnits(hay[i:i+len(needle)], needle) {
			return i
		}
	}
	return NotFound
}

// rfindUnits returns the last start <= pos of needle in hay, or NotFound.
func rfindUnits[E Unit](hay, needle []E, pos int) int {
	if pos < 0 {
		return NotFound
	}
	if len(needle) == 0 {
		if pos > len(hay) {
			return len(hay)
		}
		return pos
	}
	hi := len(hay) - len(needle)
	if pos < hi {
		hi = pos
	}
	for i := hi; i >= 0; i-- {
		if equalUnits(hay[i:i+len(needle)], needle) {
			return i
		}
	}
	return NotFound
}

// findAnyUnits returns the first index >= pos whose unit appears in set,
// or NotFound.
func findAnyUnits[E Unit](hay, set []E, pos int) int {
	if pos < 0 {
		pos = 0
	}
	for i := pos; i < len(hay); i++ {
		for j := 0; j < len(set); j++ {
			if hay[i] == set[j] {
				return i
			}
		}
	}
	return NotFound
}
