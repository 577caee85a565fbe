// Package shell reads lines from the user and prints what they evaluate to.
package shell

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/vsh/core/config"
	"github.com/josephlewis42/vsh/core/eval"
	"github.com/josephlewis42/vsh/core/history"
	"github.com/josephlewis42/vsh/core/logger"
	"github.com/josephlewis42/vsh/core/parser"
	"github.com/josephlewis42/vsh/core/value"
)

type Shell struct {
	Config    *config.Configuration
	Evaluator *eval.Evaluator

	// Events records every evaluated line.
	Events *logger.SessionLogger
	// History is optional persistent storage for entered lines.
	History *history.Store
	Logger  *log.Logger

	// Getwd and HomeDir feed the prompt.
	Getwd   func() (string, error)
	HomeDir func() (string, error)

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// Set to true to quit the shell
	Quit     bool
	exitCode int
}

// NewShell creates a shell that evaluates against the operating system.
func NewShell(cfg *config.Configuration, stdin io.Reader, stdout, stderr io.Writer) *Shell {
	s := &Shell{
		Config:  cfg,
		Events:  logger.Discard().NewSession(),
		Logger:  log.New(ioutil.Discard, "", 0),
		Getwd:   os.Getwd,
		HomeDir: os.UserHomeDir,
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
	}

	s.Evaluator = eval.New(
		eval.WithIO(stdin, stderr),
		eval.WithExit(s.exit),
	)

	return s
}

func (s *Shell) exit(code int) {
	s.Quit = true
	s.exitCode = code
}

// ExitCode is the status passed to the exit builtin.
func (s *Shell) ExitCode() int {
	return s.exitCode
}

func (s *Shell) prompt() string {
	cwd, err := s.Getwd()
	if err != nil {
		cwd = "?"
	}
	home, _ := s.HomeDir()
	return s.Config.ExpandPrompt(cwd, home)
}

// RunCommand evaluates a line, prints each result as it's produced and
// returns the results. Evaluation stops early if a statement exits the shell.
func (s *Shell) RunCommand(line string) []value.Value {
	var results []value.Value
	for _, cmd := range parser.ParseLine(line) {
		v := s.Evaluator.Eval(cmd)
		results = append(results, v)
		s.print(v)

		if s.Quit || s.Evaluator.Exited() {
			break
		}
	}

	if err := s.Events.RecordLine(line, results); err != nil {
		s.Logger.Printf("Error recording event: %v", err)
	}
	return results
}

func (s *Shell) print(v value.Value) {
	if value.IsNull(v) {
		return
	}

	rendered := v.Decorated()
	if strings.HasSuffix(rendered, "\n") {
		fmt.Fprint(s.stdout, rendered)
	} else {
		fmt.Fprintln(s.stdout, rendered)
	}
}

func (s *Shell) newReadline() (*readline.Instance, error) {
	cfg := &readline.Config{
		Stdin:        readline.NewCancelableStdin(s.stdin),
		Stdout:       s.stdout,
		Stderr:       s.stderr,
		HistoryLimit: s.Config.HistoryLimit,
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	if s.History != nil {
		cmds, err := s.History.Cmds(s.Config.HistoryLimit)
		if err != nil {
			s.Logger.Printf("Error loading history: %v", err)
		}
		for _, cmd := range cmds {
			rl.SaveHistory(cmd)
		}
	}

	return rl, nil
}

// RunInteractive reads and evaluates lines until the input closes or the
// exit builtin runs.
func (s *Shell) RunInteractive() error {
	rl, err := s.newReadline()
	if err != nil {
		return err
	}
	defer rl.Close()

	return s.runInteractive(rl)
}

type lineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

func (s *Shell) runInteractive(rl lineReader) error {
	for !s.Quit {
		rl.SetPrompt(s.prompt())
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears line.
			continue
		case err != nil:
			s.Logger.Printf("Error readline: %v", err)
			continue

		case strings.TrimSpace(line) == "":
			continue // empty line

		default:
			s.addHistory(line)
			s.RunCommand(line)
		}
	}
	return nil
}

func (s *Shell) addHistory(line string) {
	if s.History == nil {
		return
	}
	if _, err := s.History.AddCmd(line); err != nil {
		s.Logger.Printf("Error saving history: %v", err)
	}
}
