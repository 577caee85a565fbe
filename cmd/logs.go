package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/josephlewis42/vsh/core/logger"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var reportJSON bool

var logsCmd = &cobra.Command{
	Use:     "logs",
	Aliases: []string{"log"},
	Short:   "Explore the event log of evaluated lines.",
}

var reportCommand = &cobra.Command{
	Use:   "report [FILE]",
	Short: "Show a report of events.",
	Long: `Summarize an event log: sessions, statements, the commands that were
invoked and the errors they produced. Reads the configured event log unless a
FILE is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		fd, err := openEventLog(args)
		if err != nil {
			return err
		}
		defer fd.Close()

		report := logger.NewReport()
		if err := logger.ReadJSONLinesLog(fd, report.Update); err != nil {
			return err
		}

		var out []byte
		if reportJSON {
			out, err = json.MarshalIndent(report, "", "  ")
		} else {
			out, err = yaml.Marshal(report)
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		return nil
	},
}

func openEventLog(args []string) (io.ReadCloser, error) {
	if len(args) > 0 {
		return os.Open(args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.ReadEventLog()
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(reportCommand)

	reportCommand.Flags().BoolVar(&reportJSON, "json", false, "print the report as JSON rather than YAML")
}
