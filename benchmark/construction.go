package benchmark

import (
	"strings"
	"testing"

	"github.com/muyo/sso"
)

var (
	short = "short content" // Fits inline.
	long  = strings.Repeat("long content ", 8)
)

func benchmarkConstruction(b *testing.B) {
	println("\n-- Construction ------------------------------------------------------------------------------\n")
	b.Run("short", benchmarkConstructShort)
	b.Run("long", benchmarkConstructLong)
	b.Run("static", benchmarkConstructStatic)
}

func benchmarkConstructShort(b *testing.B) {
	b.Run("sso", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := sso.From(short)
			sink = v.Len()
		}
	})

	b.Run("string", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := strings.Clone(short)
			sink = len(v)
		}
	})
}

func benchmarkConstructLong(b *testing.B) {
	b.Run("sso", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := sso.From(long)
			sink = v.Len()
		}
	})

	b.Run("string", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := strings.Clone(long)
			sink = len(v)
		}
	})
}

func benchmarkConstructStatic(b *testing.B) {
	b.Run("sso", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := sso.FromStatic(long)
			sink = v.Len()
		}
	})
}

// sink keeps the compiler from eliding the benchmarked work.
var sink int
