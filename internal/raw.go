package internal

import "unsafe"

// The helpers in this package construct zero-copy views and move native words
// in and out of byte blocks. They are the only place in the module that casts
// raw pointers, so every lifetime assumption the root package makes funnels
// through here.
//
// None of the functions allocate and none depend on byte order.

// View returns a zero-copy string over the n bytes at p.
//
// The caller guarantees that p stays valid (and unmodified, as far as any
// consumer of the string can observe) for the lifetime of the returned value.
func View(p unsafe.Pointer, n int) string {
	if n == 0 {
		return ""
	}

	return unsafe.String((*byte)(p), n)
}

// Slice returns a zero-copy byte slice of length n and capacity c over p.
//
// The same lifetime contract as for View applies.
func Slice(p unsafe.Pointer, n, c int) []byte {
	if c == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(p), c)[:n]
}

// StringData returns the pointer to the backing array of s.
func StringData(s string) unsafe.Pointer {
	return unsafe.Pointer(unsafe.StringData(s))
}

// SliceData returns the pointer to the backing array of b.
func SliceData(b []byte) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(b))
}

// Bytes returns a zero-copy view of the bytes of s.
//
// The result must be treated as read-only - writing through it is a fault on
// some platforms and silent corruption of shared string data on the rest.
func Bytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// LoadWord reads a native word from the start of b. b must be at least one
// word long and word-aligned.
func LoadWord(b []byte) uintptr {
	return *(*uintptr)(unsafe.Pointer(&b[0]))
}

// StoreWord writes a native word to the start of b. b must be at least one
// word long and word-aligned.
func StoreWord(b []byte, w uintptr) {
	*(*uintptr)(unsafe.Pointer(&b[0])) = w
}
