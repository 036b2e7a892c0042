package main

import (
	"errors"
	"fmt"
	"os"

	"kantan-bindgen/cmd"
	"kantan-bindgen/pkg/parser"
)

// Version information (injected at build time)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes
const (
	exitFailure     = 1
	exitSyntaxError = 2 // Malformed declaration input
)

func main() {
	cmd.SetVersionInfo(version, commit, date)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var syntaxErr *parser.SyntaxError
		if errors.As(err, &syntaxErr) {
			os.Exit(exitSyntaxError)
		}
		os.Exit(exitFailure)
	}
}
