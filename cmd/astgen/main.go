package main

import (
	"fmt"
	"os"

	"github.com/loxkit/astgen/astgen"
	"github.com/loxkit/astgen/cmd/astgen/cmd"
	"github.com/loxkit/astgen/errors"
)

func main() {
	if err := cmd.AstgenCmd.Execute(); err != nil {
		var parseErr *astgen.ParseError
		if errors.As(err, &parseErr) {
			fmt.Fprintln(os.Stderr, parseErr.FormatTerminal())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
