package sso

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Comparisons are defined on content alone - which representation backs
// either operand never influences the result, and every operation agrees
// with the equivalent comparison between plain strings.

// Equal reports whether s and o hold the same content.
func (s *String) Equal(o *String) bool {
	return s.String() == o.String()
}

// EqualString reports whether s holds the same content as str.
func (s *String) EqualString(str string) bool {
	return s.String() == str
}

// Compare returns an integer comparing the content of s and o
// lexicographically: -1 when s sorts first, 0 when equal, +1 when o sorts
// first.
func (s *String) Compare(o *String) int {
	return strings.Compare(s.String(), o.String())
}

// CompareString is Compare against a plain string.
func (s *String) CompareString(str string) int {
	return strings.Compare(s.String(), str)
}

// Hash64 returns the 64-bit xxHash digest of the content. Two Strings with
// equal content hash identically regardless of representation, as does the
// equivalent plain string through xxhash.Sum64String.
func (s *String) Hash64() uint64 {
	return xxhash.Sum64String(s.String())
}
