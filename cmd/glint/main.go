// Command glint is the CLI entry point: run, tokens, ast, and version
// subcommands live in cmd/glint/cmd.
package main

import (
	"fmt"
	"os"

	"github.com/glintlang/glint/cmd/glint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
