package cmd

import (
	"errors"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/josephlewis42/vsh/core/config"
	"github.com/josephlewis42/vsh/core/history"
	"github.com/josephlewis42/vsh/core/logger"
	"github.com/josephlewis42/vsh/core/shell"
	"github.com/josephlewis42/vsh/core/value"
	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	colorMode   string
	commandLine string
	verbose     bool

	osExit = os.Exit
)

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vsh",
	Short: "Value shell",
	Long: `An interactive shell where every command evaluates to a typed value.

Strings, numbers, booleans, file listings and program output are kept as
values and rendered in color, pipes feed the rendered value of the left side
to the program on the right.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		code, err := runShell(cmd)
		if err != nil {
			return err
		}
		if code != 0 {
			osExit(code)
		}
		return nil
	},
}

func runShell(cmd *cobra.Command) (int, error) {
	diagnostics := log.New(cmd.ErrOrStderr(), "[vsh] ", 0)

	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return 0, err
	}
	if colorMode != "" {
		cfg.Color = colorMode
		if err := cfg.Validate(); err != nil {
			return 0, err
		}
	}
	value.SetColor(cfg.ShouldColor(os.Stdout))

	s := shell.NewShell(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	s.Logger = diagnostics
	if verbose {
		s.Evaluator.Logger = diagnostics
	}

	if cfg.Dir() != "" && cfg.EventLog != "" {
		logFd, err := cfg.OpenEventLog()
		if err != nil {
			return 0, err
		}
		defer logFd.Close()
		s.Events = logger.NewJSONLinesRecorder(logFd).NewSession()
	}

	if cmd.Flags().Changed("command") {
		return exitStatus(s.RunCommand(commandLine)), nil
	}

	if path := cfg.HistoryPath(); path != "" {
		store, err := history.Open(path)
		if err != nil {
			diagnostics.Printf("History disabled: %v", err)
		} else {
			defer store.Close()
			s.History = store
		}
	}

	if err := s.RunInteractive(); err != nil {
		return 0, err
	}
	return s.ExitCode(), nil
}

// exitStatus is 1 if any statement failed.
func exitStatus(results []value.Value) int {
	for _, v := range results {
		if _, ok := value.IsError(v); ok {
			return 1
		}
	}
	return 0
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rand.Seed(time.Now().UnixNano())
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultDir(), "config path")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "override the configured color mode (always, auto or never)")
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "evaluate a single line and exit")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each builtin as it runs")
}
