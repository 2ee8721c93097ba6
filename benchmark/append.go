package benchmark

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muyo/sso"
	"github.com/valyala/bytebufferpool"
)

const (
	pieces = 16
	piece  = "0123456789abcdef" // 16 bytes per append.
)

func benchmarkAppend(b *testing.B) {
	println("\n-- Append ------------------------------------------------------------------------------------\n")
	b.Run("sso", benchmarkAppendSso)
	b.Run("sso-reserved", benchmarkAppendSsoReserved)
	b.Run("strings.Builder", benchmarkAppendStringsBuilder)
	b.Run("bytes.Buffer", benchmarkAppendBytesBuffer)
	b.Run("bytebufferpool", benchmarkAppendByteBufferPool)
}

func benchmarkAppendSso(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var v sso.String
		for j := 0; j < pieces; j++ {
			v.Append(piece)
		}
		sink = v.Len()
	}
}

func benchmarkAppendSsoReserved(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v := sso.WithCapacity(pieces * len(piece))
		for j := 0; j < pieces; j++ {
			v.Append(piece)
		}
		sink = v.Len()
	}
}

func benchmarkAppendStringsBuilder(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var v strings.Builder
		for j := 0; j < pieces; j++ {
			v.WriteString(piece)
		}
		sink = v.Len()
	}
}

func benchmarkAppendBytesBuffer(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var v bytes.Buffer
		for j := 0; j < pieces; j++ {
			v.WriteString(piece)
		}
		sink = v.Len()
	}
}

func benchmarkAppendByteBufferPool(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v := bytebufferpool.Get()
		for j := 0; j < pieces; j++ {
			_, _ = v.WriteString(piece)
		}
		sink = v.Len()
		bytebufferpool.Put(v)
	}
}
