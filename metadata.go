package sso

// metadata is the tag byte of a String. It lives in the last byte of the
// value's data block - the most significant byte of the capacity slot - and
// is never part of addressable payload while the content is out of line.
//
// Layout (bit 7 = most significant):
//
//	bits 0-4  length of the content when inlined (0..SizeInline)
//	bit  5    all-ASCII hint - reserved, never set currently
//	bit  6    static: content is externally owned and possibly shared;
//	          any mutation must copy out first
//	bit  7    inlined: content lives inside the value itself
//
// Bits 6 and 7 select exactly one of the three states. Both clear means the
// content sits in an owned heap buffer; setting both never happens.
type metadata byte

const (
	flagInlined metadata = 1 << 7
	flagStatic  metadata = 1 << 6
	flagASCII   metadata = 1 << 5 // Reserved.

	maskInlineLen metadata = 1<<5 - 1
)

// isInlined reports whether the content lives inside the value itself.
func (m metadata) isInlined() bool {
	return m&flagInlined != 0
}

// isStatic reports whether the content references external, immutable memory.
func (m metadata) isStatic() bool {
	return m&flagStatic != 0
}

// isHeap reports whether the content sits in an owned heap buffer. This is
// also true for the zero value, which owns nothing yet.
func (m metadata) isHeap() bool {
	return m&(flagInlined|flagStatic) == 0
}

// inlineLen returns the content length encoded in the low bits. Only
// meaningful while isInlined.
func (m metadata) inlineLen() int {
	return int(m & maskInlineLen)
}

// inlined returns the metadata byte for inlined content of length n.
// n must be in 0..SizeInline.
func inlined(n int) metadata {
	return flagInlined | metadata(n)
}
