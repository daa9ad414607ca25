// Package main provides the tablepath CLI.
//
// tablepath inspects fixture table headers and files:
//   - parse splits header paths into their segments
//   - check lints YAML table files for malformed headers and ragged rows
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
