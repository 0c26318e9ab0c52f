package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/easyfile/cmd/easyfile"
	"github.com/arthur-debert/easyfile/pkg/ui/output/styles"
)

func main() {
	rootCmd := easyfile.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
