// Command brsc compiles BRS source files to target-specific assembly
// text.
package main

import (
	"fmt"
	"os"

	"github.com/brslang/brsc/cmd/brsc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
