package inplace

import "github.com/cespare/xxhash/v2"

// Hash64 returns the xxHash64 of the content. Equal content hashes
// equal regardless of capacity.
func (s *String[A]) Hash64() uint64 {
	return xxhash.Sum64String(s.Unsafe())
}
