// Command spiral is a small command-line front end for the identifier
// splitters in this module: useful for exploration and oracle-accuracy
// checks, not as the primary interface to the library (spec §6).
package main

import (
	"os"

	"github.com/casics/spiral/cmd/spiral/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
