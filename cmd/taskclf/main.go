// Command taskclf classifies task descriptions from the command line using
// the same arbitration as the HTTP service.
package main

import (
	"fmt"
	"os"
)

// version is set via -ldflags at build time.
var version = "(devel)"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
