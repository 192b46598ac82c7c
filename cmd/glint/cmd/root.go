// Package cmd implements the glint CLI's subcommands: a cobra root
// command with persistent global flags, and one file per subcommand
// registering itself with rootCmd from an init func.
package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags (-ldflags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "glint",
	Short: "Glint language lexer, parser, and evaluator",
	Long: `glint runs programs written in Glint, a small dynamically-typed
scripting language with value semantics, closures that snapshot their
captured bindings at definition-scope exit, and a tiny host-builtin
surface (puts, map, assert, len, type).`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored error output")
}
