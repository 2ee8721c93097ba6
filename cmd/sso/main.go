package main

import (
	"os"
)

const (
	cmdInspect = "inspect"
	cmdVersion = "version"
	cmdHelp    = "help"
)

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		usage()
	}

	switch args[0] {
	case cmdInspect:
		if len(args) == 2 {
			inspect(args[1])
		}
	case cmdVersion:
		version()
	case cmdHelp:
		usage()
	}

	usage()
}
