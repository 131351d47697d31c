package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/termtint/cmd/termtint"
	"github.com/arthur-debert/termtint/pkg/tint"
)

func main() {
	rootCmd := termtint.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tint.Red("Error: %v", err))
		os.Exit(1)
	}
}
