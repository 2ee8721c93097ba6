package sso

import (
	"iter"
	"strings"
)

// Read-only operations delegated to the borrowed content view. Results that
// are strings or slices of strings alias the String's current storage and
// share its validity contract: they remain correct until the next mutating
// call. None of these copy and none hold state of their own.

// Contains reports whether substr is within the content.
func (s *String) Contains(substr string) bool {
	return strings.Contains(s.String(), substr)
}

// Index returns the index of the first instance of substr in the content,
// or -1 if it is not present.
func (s *String) Index(substr string) int {
	return strings.Index(s.String(), substr)
}

// HasPrefix reports whether the content begins with prefix.
func (s *String) HasPrefix(prefix string) bool {
	return strings.HasPrefix(s.String(), prefix)
}

// HasSuffix reports whether the content ends with suffix.
func (s *String) HasSuffix(suffix string) bool {
	return strings.HasSuffix(s.String(), suffix)
}

// Split slices the content around each instance of sep, as strings.Split.
func (s *String) Split(sep string) []string {
	return strings.Split(s.String(), sep)
}

// SplitN slices the content around each instance of sep, yielding at most n
// substrings, as strings.SplitN.
func (s *String) SplitN(sep string, n int) []string {
	return strings.SplitN(s.String(), sep, n)
}

// Cut slices the content around the first instance of sep, as strings.Cut.
func (s *String) Cut(sep string) (before, after string, found bool) {
	return strings.Cut(s.String(), sep)
}

// Fields splits the content around runs of whitespace, as strings.Fields.
func (s *String) Fields() []string {
	return strings.Fields(s.String())
}

// Chars returns an iterator over the runes of the content and their byte
// indices, in order - the for-range shape of a plain string.
func (s *String) Chars() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for i, r := range s.String() {
			if !yield(i, r) {
				return
			}
		}
	}
}
