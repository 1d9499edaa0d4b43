// Package main is the entry point for the lablog CLI/TUI.
package main

import (
	"fmt"
	"os"

	"github.com/lablog-io/lablog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
