package inplace

func isUpper(ch byte) bool {
	return ch >= 'A' && ch <= 'Z'
}

func isLower(ch byte) bool {
	return ch >= 'a' && ch <= 'z'
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// ToUpper uppercases ASCII letters in place.
func (s *String[A]) ToUpper() {
	b := s.raw()
	n := s.Len()
	for i := 0; i < n; i++ {
		if isLower(b[i]) {
			b[i] -= 32
		}
	}
}

// ToLower lowercases ASCII letters in place.
func (s *String[A]) ToLower() {
	b := s.raw()
	n := s.Len()
	for i := 0; i < n; i++ {
		if isUpper(b[i]) {
			b[i] += 32
		}
	}
}

// TrimSpace removes leading and trailing ASCII whitespace in place.
func (s *String[A]) TrimSpace() {
	b := s.raw()
	n := s.Len()
	lo := 0
	for lo < n && isSpace(b[lo]) {
		lo++
	}
	hi := n
	for hi > lo && isSpace(b[hi-1]) {
		hi--
	}
	if lo == 0 && hi == n {
		return
	}
	copy(b, b[lo:hi])
	zeroUnits(b, hi-lo, n)
}
