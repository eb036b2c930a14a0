package inplace

import (
	"strings"

	"github.com/tidwall/match"
)

// Find returns the first start of needle at or after pos, or NotFound.
// A negative pos is treated as 0; pos > Len never matches. An empty
// needle matches at pos.
func (s *String[A]) Find(needle string, pos int) int {
	n := s.Len()
	if pos < 0 {
		pos = 0
	}
	if pos > n {
		return NotFound
	}
	i := strings.Index(s.Unsafe()[pos:], needle)
	if i < 0 {
		return NotFound
	}
	return pos + i
}

// FindByte returns the first index of ch at or after pos, or NotFound.
func (s *String[A]) FindByte(ch byte, pos int) int {
	n := s.Len()
	if pos < 0 {
		pos = 0
	}
	if pos >= n {
		return NotFound
	}
	i := strings.IndexByte(s.Unsafe()[pos:], ch)
	if i < 0 {
		return NotFound
	}
	return pos + i
}

// RFind returns the last start of needle that is <= pos, or NotFound.
// Pass Len or anything larger to search the whole string. A negative
// pos never matches. An empty needle matches at min(pos, Len).
func (s *String[A]) RFind(needle string, pos int) int {
	n := s.Len()
	if pos < 0 {
		return NotFound
	}
	m := len(needle)
	if m == 0 {
		if pos > n {
			return n
		}
		return pos
	}
	hi := n - m
	if pos < hi {
		hi = pos
	}
	if hi < 0 {
		return NotFound
	}
	i := strings.LastIndex(s.Unsafe()[:hi+m], needle)
	if i < 0 {
		return NotFound
	}
	return i
}

// RFindByte returns the last index of ch that is <= pos, or NotFound.
func (s *String[A]) RFindByte(ch byte, pos int) int {
	n := s.Len()
	if pos < 0 || n == 0 {
		return NotFound
	}
	hi := n - 1
	if pos < hi {
		hi = pos
	}
	i := strings.LastIndexByte(s.Unsafe()[:hi+1], ch)
	if i < 0 {
		return NotFound
	}
	return i
}

// FindAny returns the first index at or after pos whose unit appears in
// set, or NotFound. The set is a set of byte values, not code points.
func (s *String[A]) FindAny(set string, pos int) int {
	n := s.Len()
	if pos < 0 {
		pos = 0
	}
	if pos >= n {
		return NotFound
	}
	b := s.raw()
	for i := pos; i < n; i++ {
		for j := 0; j < len(set); j++ {
			if b[i] == set[j] {
				return i
			}
		}
	}
	return NotFound
}

// Find is the fixed-string needle form of String.Find.
func Find[A, B Buf](s *String[A], needle *String[B], pos int) int {
	return s.Find(needle.Unsafe(), pos)
}

// RFind is the fixed-string needle form of String.RFind.
func RFind[A, B Buf](s *String[A], needle *String[B], pos int) int {
	return s.RFind(needle.Unsafe(), pos)
}

// FindAny is the fixed-string set form of String.FindAny.
func FindAny[A, B Buf](s *String[A], set *String[B], pos int) int {
	return s.FindAny(set.Unsafe(), pos)
}

// Match reports whether the content matches pattern, where pattern is a
// glob with '*' and '?' wildcards.
func (s *String[A]) Match(pattern string) bool {
	return match.Match(s.Unsafe(), pattern)
}
