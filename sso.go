package sso

import (
	"unicode/utf8"

	"github.com/muyo/sso/internal"
)

// From copies s into a new String. Content up to SizeInline bytes is
// inlined; longer content moves to an owned buffer sized exactly to it.
func From(s string) String {
	var v String

	if len(s) <= SizeInline {
		copy(v.data[:], s)
		v.setMeta(inlined(len(s)))

		return v
	}

	buf := make([]byte, len(s))
	copy(buf, s)
	v.adopt(buf, len(s))

	return v
}

// FromStatic returns a String referencing the backing memory of s without
// copying, regardless of how short s is. Capacity equals length exactly -
// the first append relocates the content into the value or a fresh buffer.
//
// Two Strings built from (or cloned off) the same static content alias the
// same memory until one of them is mutated; they never coordinate, each
// simply copies out on its own first write.
func FromStatic(s string) String {
	var v String

	v.ptr = internal.StringData(s)
	v.setLenWord(len(s))
	v.setCapWord(len(s))
	v.setMeta(flagStatic)

	return v
}

// FromBytes validates that b is well-formed UTF-8 and, on success, adopts
// its pointer, length and capacity as an owned heap buffer without copying.
// The caller must not use b afterwards. On failure an InvalidUTF8Error is
// returned, no value is produced and b remains the caller's.
func FromBytes(b []byte) (String, error) {
	if !utf8.Valid(b) {
		return String{}, errInvalidUTF8
	}

	return FromBytesUnchecked(b), nil
}

// FromBytesUnchecked adopts b as an owned heap buffer without copying and
// without validating its content. The caller guarantees that b is
// well-formed UTF-8 and must not use it afterwards.
func FromBytesUnchecked(b []byte) String {
	var v String

	v.ptr = internal.SliceData(b)
	v.setLenWord(len(b))
	v.setCapWord(cap(b))

	return v
}

// WithCapacity returns an empty String owning a heap buffer of capacity n.
func WithCapacity(n int) String {
	var v String

	v.adopt(make([]byte, n), 0)

	return v
}
