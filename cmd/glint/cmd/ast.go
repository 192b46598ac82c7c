package cmd

import (
	"fmt"

	"github.com/glintlang/glint/internal/runner"
	"github.com/spf13/cobra"
)

var astStats bool

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Dump the parsed program's tree form",
	Long: `Parse a Glint program and print its AST's String() form, for
debugging the parser. --stats additionally prints arena node/string
counts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: dumpAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
	astCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline source instead of reading from a file")
	astCmd.Flags().BoolVar(&astStats, "stats", false, "print arena node/string counts")
}

func dumpAST(_ *cobra.Command, args []string) error {
	source, _, err := readSource(args)
	if err != nil {
		return err
	}

	program, a, parseErr := runner.Parse(source)
	if parseErr != nil {
		return parseErr
	}

	fmt.Print(program.String())

	if astStats {
		stats := a.Stats()
		fmt.Printf("\n--- arena stats ---\nnodes:    %d\nslabs:    %d\ninterned: %d\n",
			stats.Nodes, stats.Slabs, stats.InternedKeys)
	}
	return nil
}
