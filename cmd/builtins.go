package cmd

import (
	"fmt"
	"sort"

	"github.com/josephlewis42/vsh/core/parser"
	"github.com/spf13/cobra"
)

// builtinsCmd lists the names that never resolve to programs
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin commands of the shell.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		builtins := parser.BuiltinNames()
		sort.Strings(builtins)

		for _, v := range builtins {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
