// Command crystal renders Crystal UI scene files to SVG or PNG.
package main

import (
	"os"

	"github.com/go-crystal/crystal/cmd/crystal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
