package cmd

import (
	"fmt"
	"strings"

	"github.com/josephlewis42/vsh/core/lexer"
	"github.com/josephlewis42/vsh/core/parser"
	"github.com/spf13/cobra"
)

// parseCmd shows how a line is understood without running it
var parseCmd = &cobra.Command{
	Use:   "parse LINE...",
	Short: "Print the tokens and command trees of a line without evaluating it.",
	Long: `Print the tokens and command trees of a line without evaluating it.

Multiple arguments are joined with spaces, quote the line to keep the shell
from interpreting it first:

    vsh parse 'ls | grep "go" > matches.txt'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		line := strings.Join(args, " ")
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "tokens:")
		tokens, err := lexer.Lex(line)
		if err != nil {
			fmt.Fprintf(out, "  %v\n", err)
		}
		for _, tok := range tokens {
			fmt.Fprintf(out, "  %s\n", tok)
		}

		fmt.Fprintln(out, "commands:")
		for _, c := range parser.ParseLine(line) {
			fmt.Fprintf(out, "  %s\n", c)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
