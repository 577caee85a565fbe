package cmd

import (
	"errors"
	"fmt"

	"github.com/josephlewis42/vsh/core/history"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the stored command history, oldest first.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		path := cfg.HistoryPath()
		if path == "" {
			return errors.New("history is disabled in the configuration")
		}

		store, err := history.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()

		cmds, err := store.Cmds(historyLimit)
		if err != nil {
			return err
		}

		for i, line := range cmds {
			fmt.Fprintf(cmd.OutOrStdout(), "%5d  %s\n", i+1, line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "only show the last N entries, 0 shows everything")
}
