// Package sso provides a small-string-optimized, growable UTF-8 string value.
//
// A String keeps short content inside its own footprint (no allocation),
// references externally owned immutable content without copying, and
// otherwise owns an exclusively held heap buffer that grows geometrically on
// append. Which of the three backs a given instance is invisible to
// comparisons: equality, ordering and hashing are defined on content alone.
package sso

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/muyo/sso/internal"
)

const (
	wordSize = int(unsafe.Sizeof(uintptr(0)))

	// SizeInline is the payload capacity of an inlined String - 23 bytes on
	// 64-bit platforms and 11 bytes on 32-bit platforms.
	SizeInline = 3*wordSize - 1
)

// String is a growable UTF-8 string in one of three representations:
//
//   - Inline: the content occupies the value's own data block. No allocation
//     exists and none is released. Capacity is fixed at SizeInline.
//   - Static: the value references the backing memory of a string it was
//     constructed from, without copying. Go strings are immutable for their
//     whole lifetime, so the reference stays valid and read-only; the first
//     mutation copies the content out (copy-on-write).
//   - Heap: the value owns a buffer of an independent capacity. Content and
//     spare room live there; growth reallocates at a 1.5x factor.
//
// The layout is one pointer word followed by a data block of three more
// words. The last byte of the block is the metadata byte (see metadata);
// while inlined, the rest of the block is payload, otherwise it holds the
// length and capacity words and the pointer word holds the content. The
// pointer word is nil exactly while the content is inlined (or the value is
// zero), which keeps the garbage collector out of payload bytes.
//
// The zero value is an empty, ready-to-use String. It carries the Heap tag
// with no buffer; the first append allocates one.
//
// A String must not be mutated concurrently, and holds no internal pointers
// into itself, so plain assignment is a valid copy of Inline and Static
// values - but it aliases the buffer of a Heap value. Use Clone for a copy
// that is safe to mutate independently. The type is deliberately not
// comparable with ==; use Equal, which compares content.
type String struct {
	_ [0]chan int // Make the type incomparable - == on raw words would not match Equal.

	ptr  unsafe.Pointer
	data [SizeInline + 1]byte
}

// Len returns the length of the content in bytes.
func (s *String) Len() int {
	if m := s.meta(); m.isInlined() {
		return m.inlineLen()
	}

	return s.lenWord()
}

// Cap returns the number of content bytes the String can hold without
// reallocating - SizeInline while inlined, the exact content length while
// static, and the owned buffer's size on the heap.
func (s *String) Cap() int {
	if s.meta().isInlined() {
		return SizeInline
	}

	return s.capWord()
}

// IsInlined reports whether the content currently lives inside the value.
func (s *String) IsInlined() bool {
	return s.meta().isInlined()
}

// IsStatic reports whether the content currently references external memory.
func (s *String) IsStatic() bool {
	return s.meta().isStatic()
}

// String returns the content as a borrowed, zero-copy view.
// It implements the std fmt Stringer interface.
//
// The view aliases the String's current storage: it remains valid until the
// next mutating call. Callers that need the content to outlive the String
// (or further appends to it) should take a copy, e.g. with strings.Clone.
func (s *String) String() string {
	if m := s.meta(); m.isInlined() {
		return internal.View(unsafe.Pointer(&s.data[0]), m.inlineLen())
	}

	return internal.View(s.ptr, s.lenWord())
}

// Bytes returns the content as a borrowed, zero-copy view with the same
// validity contract as String. The bytes must be treated as read-only.
func (s *String) Bytes() []byte {
	if m := s.meta(); m.isInlined() {
		n := m.inlineLen()
		return internal.Slice(unsafe.Pointer(&s.data[0]), n, n)
	}

	n := s.lenWord()

	return internal.Slice(s.ptr, n, n)
}

// StringCopy returns the content in a newly allocated plain string, safe to
// keep across later mutations of s.
func (s *String) StringCopy() string {
	return strings.Clone(s.String())
}

// Append appends the content of str, growing or relocating storage as
// required. Appending an empty string changes nothing.
func (s *String) Append(str string) {
	s.append(internal.Bytes(str))
}

// AppendBytes appends the content of b. The caller guarantees b is
// well-formed UTF-8 (or completes a sequence with a subsequent append).
func (s *String) AppendBytes(b []byte) {
	s.append(b)
}

// AppendRune appends the UTF-8 encoding of r. Invalid runes append the
// replacement character, keeping the content well-formed.
func (s *String) AppendRune(r rune) {
	var buf [utf8.UTFMax]byte

	n := utf8.EncodeRune(buf[:], r)
	s.append(buf[:n])
}

// AppendByte appends a single byte. The caller guarantees the byte keeps the
// content well-formed UTF-8 - in practice: ASCII, or a continuation of a
// sequence being written byte by byte.
func (s *String) AppendByte(c byte) {
	var buf [1]byte

	buf[0] = c
	s.append(buf[:])
}

// Write appends p and returns len(p) with a nil error, always.
// It implements the std io Writer interface.
func (s *String) Write(p []byte) (int, error) {
	s.append(p)

	return len(p), nil
}

// WriteString appends str and returns len(str) with a nil error, always.
// It implements the std io StringWriter interface.
func (s *String) WriteString(str string) (int, error) {
	s.append(internal.Bytes(str))

	return len(str), nil
}

func (s *String) append(p []byte) {
	if len(p) == 0 {
		return
	}

	m := s.meta()

	if m.isInlined() {
		cur := m.inlineLen()

		if n := cur + len(p); n <= SizeInline {
			copy(s.data[cur:], p)
			s.setMeta(inlined(n))

			return
		}

		s.spill(s.data[:cur], p)

		return
	}

	cur := s.lenWord()
	n := cur + len(p)

	if m.isStatic() {
		// Read through the static pointer before any of the value gets
		// overwritten. Static memory is external, so src never overlaps
		// the destination below.
		src := internal.Slice(s.ptr, cur, cur)

		if n <= SizeInline {
			copy(s.data[:], src)
			copy(s.data[cur:], p)
			s.ptr = nil
			s.setMeta(inlined(n))

			return
		}

		s.spill(src, p)

		return
	}

	if n > s.capWord() {
		s.regrow(grownCap(n))
	}

	copy(internal.Slice(s.ptr, s.capWord(), s.capWord())[cur:], p)
	s.setLenWord(n)
}

// Reserve grows capacity to at least Cap() + additional. An Inline or Static
// value relocates into an owned heap buffer even when additional is 0 -
// Reserve is the explicit way to force the Heap state. A Heap value only
// reallocates when the target actually exceeds its current capacity.
func (s *String) Reserve(additional int) {
	target := s.Cap() + additional

	if s.meta().isHeap() {
		if target > s.capWord() {
			s.regrow(target)
		}

		return
	}

	n := s.Len()
	buf := make([]byte, target)
	copy(buf, s.String())
	s.adopt(buf, n)
}

// Clone returns a copy that is safe to mutate independently of s.
//
// An Inline value copies bitwise - the payload travels with it. A Heap value
// gets a fresh buffer of identical capacity with the content copied over.
// A Static value copies bitwise including the shared pointer: both copies
// keep aliasing the same external memory until either one is mutated, at
// which point that one alone copies out and the other keeps the reference.
func (s *String) Clone() String {
	c := String{ptr: s.ptr, data: s.data}

	if s.meta().isHeap() && s.ptr != nil {
		n := s.lenWord()
		buf := make([]byte, s.capWord())
		copy(buf, internal.Slice(s.ptr, n, n))
		c.ptr = internal.SliceData(buf)
	}

	return c
}

// Reset returns s to the empty zero value. A Heap buffer becomes unreferenced
// and is reclaimed by the garbage collector; Inline and Static states own
// nothing to release.
func (s *String) Reset() {
	*s = String{}
}

// MarshalText returns a copy of the content as a byte slice.
// It implements the std encoding TextMarshaler interface.
func (s *String) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText validates src as UTF-8 and replaces the receiver's content
// with a copy of it. Returns an InvalidUTF8Error without touching the
// receiver if validation fails.
// It implements the std encoding TextUnmarshaler interface.
func (s *String) UnmarshalText(src []byte) error {
	if !utf8.Valid(src) {
		return errInvalidUTF8
	}

	buf := make([]byte, len(src))
	copy(buf, src)
	*s = FromBytesUnchecked(buf)

	return nil
}

// MarshalJSON returns the content as a quoted, escaped JSON string.
// It implements the std encoding/json Marshaler interface.
func (s *String) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a JSON string into the receiver.
// It implements the std encoding/json Unmarshaler interface.
func (s *String) UnmarshalJSON(src []byte) error {
	var str string

	if err := json.Unmarshal(src, &str); err != nil {
		return err
	}

	*s = From(str)

	return nil
}

// Value returns a copy of the content as a driver.Value.
// It implements the std database/sql/driver Valuer interface.
func (s *String) Value() (driver.Value, error) {
	return strings.Clone(s.String()), nil
}

// Scan copies the given string or byte slice content into the receiver. A nil
// value resets the receiver. Byte content gets validated as UTF-8.
// It implements the std database/sql Scanner interface.
func (s *String) Scan(v any) error {
	switch v := v.(type) {
	case nil:
		s.Reset()
		return nil
	case string:
		*s = From(v)
		return nil
	case []byte:
		return s.UnmarshalText(v)
	default:
		return &InvalidTypeError{Value: v}
	}
}

func (s *String) meta() metadata {
	return metadata(s.data[SizeInline])
}

func (s *String) setMeta(m metadata) {
	s.data[SizeInline] = byte(m)
}

func (s *String) lenWord() int {
	return int(internal.LoadWord(s.data[:]))
}

func (s *String) setLenWord(n int) {
	internal.StoreWord(s.data[:], uintptr(n))
}

func (s *String) capWord() int {
	return int(internal.LoadWord(s.data[wordSize:]))
}

func (s *String) setCapWord(n int) {
	internal.StoreWord(s.data[wordSize:], uintptr(n))
}

// adopt takes ownership of buf as the heap buffer, with n content bytes
// already in place.
func (s *String) adopt(buf []byte, n int) {
	s.ptr = internal.SliceData(buf)
	s.setLenWord(n)
	s.setCapWord(len(buf))
	s.setMeta(0)
}

// spill moves old content plus an addition into a fresh heap buffer sized by
// the growth factor. old may alias the value's own data block - it gets read
// before any field is overwritten.
func (s *String) spill(old, add []byte) {
	n := len(old) + len(add)
	buf := make([]byte, grownCap(n))
	copy(buf, old)
	copy(buf[len(old):], add)
	s.adopt(buf, n)
}

// regrow reallocates the owned buffer to newCap, carrying the content over.
// Only valid in the Heap state.
func (s *String) regrow(newCap int) {
	n := s.lenWord()
	buf := make([]byte, newCap)
	copy(buf, internal.Slice(s.ptr, n, n))
	s.ptr = internal.SliceData(buf)
	s.setCapWord(newCap)
}

// grownCap returns the capacity to allocate for content of length n when
// growth is driven by an append: floor(n * 1.5).
func grownCap(n int) int {
	return n + n>>1
}
