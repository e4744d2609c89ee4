package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/docflow/cmd/docflow"
	"github.com/arthur-debert/docflow/pkg/errors"
	"github.com/arthur-debert/docflow/pkg/ui/styles"
)

func main() {
	rootCmd := docflow.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		if problems, ok := errors.GetErrorDetails(err)["problems"].([]string); ok {
			for _, p := range problems {
				fmt.Fprintf(os.Stderr, "  - %s\n", p)
			}
		}
		os.Exit(1)
	}
}
