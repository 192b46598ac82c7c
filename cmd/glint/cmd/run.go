package cmd

import (
	"fmt"
	"os"

	"github.com/glintlang/glint/internal/errors"
	"github.com/glintlang/glint/internal/runner"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Glint program",
	Long: `Lex, parse, and evaluate a Glint program from a file or an inline
expression.

Examples:
  # Run a script file
  glint run script.glint

  # Evaluate inline source
  glint run -e 'let a = 1; puts(a + 1);'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading from a file")
}

func runScript(_ *cobra.Command, args []string) error {
	source, origin, err := readSource(args)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "running %s (%d bytes)\n", origin, len(source))
	}

	sink := errors.NewSink(os.Stderr, origin)
	r := runner.New(os.Stdout, sink)

	if evalErr := r.Eval(source); evalErr != nil {
		// The sink has already printed the formatted report; only the
		// exit code needs to reflect failure here.
		return fmt.Errorf("evaluation failed")
	}
	return nil
}

// readSource resolves the run/tokens/ast commands' shared input
// convention: -e for inline source, or a single file argument.
func readSource(args []string) (source, origin string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], readErr)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline source")
}
