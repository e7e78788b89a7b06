package istr

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether s and other render to the same text. Equality is
// textual, not structural: instances with different fragment/value shapes
// are equal whenever their renderings coincide, and an instance holding a
// callable with varying output may compare unequal to itself across calls.
// Both operands are rendered; a rendering failure panics (see String).
func (s *String) Equal(other *String) bool {
	return s.String() == other.String()
}

// Compare orders s against other lexicographically by rendered text,
// returning -1, 0, or +1 in the manner of strings.Compare.
func (s *String) Compare(other *String) int {
	return strings.Compare(s.String(), other.String())
}

// Hash returns the xxhash of the rendered text, consistent with Equal:
// instances that are equal hash identically. The hash is recomputed per
// call; rendering is never cached, since callable slots may vary.
func (s *String) Hash() uint64 {
	return xxhash.Sum64String(s.String())
}

// Len returns the byte length of the rendered text.
func (s *String) Len() int {
	return len(s.String())
}

// At returns the byte at position i of the rendered text, mirroring Go
// string indexing. The text is re-rendered per call.
func (s *String) At(i int) byte {
	return s.String()[i]
}
