package sso

import (
	"unsafe"

	"github.com/muyo/sso/internal"
)

// Representation tags for the *As operation set. Each one names a state the
// caller asserts the String is currently in:
//
//   - Inline: content is inlined.
//   - InlineSpare: content is inlined and the inline region has room for the
//     entire addition.
//   - Static: content references external memory.
//   - Heap: content sits in an owned buffer.
//   - HeapSpare: content sits in an owned buffer with room for the entire
//     addition.
//   - ASCII: reserved for a future all-ASCII specialization; currently
//     behaves like the general operation.
type (
	Inline      struct{}
	InlineSpare struct{}
	Static      struct{}
	Heap        struct{}
	HeapSpare   struct{}
	ASCII       struct{}
)

// Rep constrains the *As operations to the representation tags above.
type Rep interface {
	Inline | InlineSpare | Static | Heap | HeapSpare | ASCII
}

// AppendAs appends str, performing only the branch of Append that matches
// the asserted representation - the metadata decode and state dispatch are
// skipped, and the Spare variants skip the capacity check as well.
//
// These variants exist for call sites where the state is statically known
// and measured to matter. They are not the default API: calling one while
// the String is not in the asserted state (or lacks the asserted spare
// capacity) corrupts the value by contract - it is not a detectable error.
func AppendAs[R Rep](s *String, str string) {
	if len(str) == 0 {
		return
	}

	var tag R

	switch any(tag).(type) {
	case Inline:
		cur := s.meta().inlineLen()

		if n := cur + len(str); n <= SizeInline {
			copy(s.data[cur:], str)
			s.setMeta(inlined(n))

			return
		}

		s.spill(s.data[:cur], internal.Bytes(str))

	case InlineSpare:
		cur := s.meta().inlineLen()
		copy(s.data[cur:], str)
		s.setMeta(inlined(cur + len(str)))

	case Static:
		cur := s.lenWord()
		src := internal.Slice(s.ptr, cur, cur)

		if n := cur + len(str); n <= SizeInline {
			copy(s.data[:], src)
			copy(s.data[cur:], str)
			s.ptr = nil
			s.setMeta(inlined(n))

			return
		}

		s.spill(src, internal.Bytes(str))

	case Heap:
		cur := s.lenWord()
		n := cur + len(str)

		if n > s.capWord() {
			s.regrow(grownCap(n))
		}

		copy(internal.Slice(s.ptr, s.capWord(), s.capWord())[cur:], str)
		s.setLenWord(n)

	case HeapSpare:
		cur := s.lenWord()
		copy(internal.Slice(s.ptr, s.capWord(), s.capWord())[cur:], str)
		s.setLenWord(cur + len(str))

	case ASCII:
		s.Append(str)
	}
}

// StringAs returns the borrowed content view for the asserted
// representation, skipping the metadata decode. Same contract as AppendAs.
func StringAs[R Rep](s *String) string {
	var tag R

	switch any(tag).(type) {
	case Inline, InlineSpare:
		return internal.View(unsafe.Pointer(&s.data[0]), s.meta().inlineLen())
	case Static, Heap, HeapSpare:
		return internal.View(s.ptr, s.lenWord())
	default:
		return s.String()
	}
}

// BytesAs returns the borrowed content bytes for the asserted
// representation. Same contract as AppendAs; the bytes are read-only.
func BytesAs[R Rep](s *String) []byte {
	var tag R

	switch any(tag).(type) {
	case Inline, InlineSpare:
		n := s.meta().inlineLen()
		return internal.Slice(unsafe.Pointer(&s.data[0]), n, n)
	case Static, Heap, HeapSpare:
		n := s.lenWord()
		return internal.Slice(s.ptr, n, n)
	default:
		return s.Bytes()
	}
}

// LenAs returns the content length for the asserted representation.
// Same contract as AppendAs.
func LenAs[R Rep](s *String) int {
	var tag R

	switch any(tag).(type) {
	case Inline, InlineSpare:
		return s.meta().inlineLen()
	case Static, Heap, HeapSpare:
		return s.lenWord()
	default:
		return s.Len()
	}
}
