package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/docflow/cmd/docflow"
)

// Writes the top-level man page to stdout, for packaging.
func main() {
	rootCmd := docflow.NewRootCmd()

	if err := doc.GenMan(rootCmd, docflow.ManHeader(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
