package cmd

import (
	"fmt"

	"github.com/glintlang/glint/internal/lexer"
	"github.com/glintlang/glint/pkg/token"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Dump the token stream produced by the lexer",
	Long: `Tokenize a Glint program and print one line per token, for
debugging the lexer:

  TYPE literal @ line:col`,
	Args: cobra.MaximumNArgs(1),
	RunE: dumpTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline source instead of reading from a file")
}

func dumpTokens(_ *cobra.Command, args []string) error {
	source, _, err := readSource(args)
	if err != nil {
		return err
	}

	l := lexer.New(source)
	for {
		tok := l.NextToken()
		fmt.Printf("%s %q @ %s\n", tok.Type, tok.Literal, tok.Pos)
		if tok.Type == token.EOF {
			break
		}
	}
	return nil
}
