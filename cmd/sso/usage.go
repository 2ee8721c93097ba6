package main

import (
	"os"
)

const usageFmt = `
sso inspects how string content gets represented by the sso library.

Usage:

    sso <command> [parameters ...]

Commands:

    inspect   Displays how the given content would be stored - its
              representation state, length and capacity - both for an
              owned copy and for a zero-copy static reference

              sso inspect <content>

    version   Displays the version of this program
    help      Displays this information
`

const versionFmt = "sso 1.0.0\n"

func usage() {
	_, _ = os.Stdout.Write([]byte(usageFmt))
	os.Exit(0)
}

func version() {
	_, _ = os.Stdout.Write([]byte(versionFmt))
	os.Exit(0)
}
