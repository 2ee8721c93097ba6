package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/muyo/sso"
)

const inspectFmt = `
-- Content

     Length: %d byte(s)
      Runes: %d
     Inline: fits in %d byte(s): %v

-- sso.From (owned copy)

      State: %s
     Length: %d
   Capacity: %d

-- sso.FromStatic (zero-copy)

      State: %s
     Length: %d
   Capacity: %d

`

func inspect(in string) {
	if !utf8.ValidString(in) {
		_, _ = os.Stderr.Write([]byte(fmt.Sprintf("Failed to inspect: [%s] is not valid UTF-8.\n", in)))
		os.Exit(1)
	}

	owned := sso.From(in)
	static := sso.FromStatic(in)

	fmt.Printf(inspectFmt,
		len(in),
		utf8.RuneCountInString(in),
		sso.SizeInline,
		len(in) <= sso.SizeInline,
		state(&owned),
		owned.Len(),
		owned.Cap(),
		state(&static),
		static.Len(),
		static.Cap(),
	)

	os.Exit(0)
}

func state(s *sso.String) string {
	switch {
	case s.IsInlined():
		return "inline"
	case s.IsStatic():
		return "static"
	default:
		return "heap"
	}
}
