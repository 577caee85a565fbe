// Package eval walks command trees and produces values.
package eval

import (
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/josephlewis42/vsh/core/parser"
	"github.com/josephlewis42/vsh/core/value"
	"github.com/spf13/afero"
)

// Evaluator runs commands against the operating system.
//
// The working directory is process wide state, so evaluations that run cd
// must not happen concurrently.
type Evaluator struct {
	// Fs is used for redirect targets and directory listings.
	Fs afero.Fs
	// Stdin is inherited by external programs that aren't fed by a pipe.
	Stdin io.Reader
	// Stderr receives non-fatal reports.
	Stderr io.Writer
	// Exit ends the process.
	Exit func(code int)
	// HomeDir finds the directory cd goes to without arguments.
	HomeDir func() (string, error)

	Logger *log.Logger

	exited bool
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithFs sets the file system used for redirects and listings.
func WithFs(fs afero.Fs) Option {
	return func(e *Evaluator) { e.Fs = fs }
}

// WithIO sets the inherited standard input and the report writer.
func WithIO(stdin io.Reader, stderr io.Writer) Option {
	return func(e *Evaluator) {
		e.Stdin = stdin
		e.Stderr = stderr
	}
}

// WithExit replaces the function called by the exit builtin.
func WithExit(exit func(code int)) Option {
	return func(e *Evaluator) { e.Exit = exit }
}

// WithHomeDir replaces the home directory lookup used by cd.
func WithHomeDir(homeDir func() (string, error)) Option {
	return func(e *Evaluator) { e.HomeDir = homeDir }
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *log.Logger) Option {
	return func(e *Evaluator) { e.Logger = logger }
}

// New creates an Evaluator backed by the real operating system.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		Fs:      afero.NewOsFs(),
		Stdin:   os.Stdin,
		Stderr:  os.Stderr,
		Exit:    os.Exit,
		HomeDir: os.UserHomeDir,
		Logger:  log.New(ioutil.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunLine parses a line and evaluates each statement in order, stopping after
// the statement that ran exit.
func (e *Evaluator) RunLine(line string) []value.Value {
	var out []value.Value
	for _, cmd := range parser.ParseLine(line) {
		out = append(out, e.Eval(cmd))
		if e.exited {
			break
		}
	}
	return out
}

// Exited reports whether the exit builtin has run. Nothing is evaluated
// after it.
func (e *Evaluator) Exited() bool {
	return e.exited
}

// Eval evaluates a single statement.
func (e *Evaluator) Eval(cmd parser.Command) value.Value {
	return e.eval(cmd, nil)
}

// eval evaluates cmd, upstream is the value piped into it or nil.
func (e *Evaluator) eval(cmd parser.Command, upstream value.Value) value.Value {
	if e.exited {
		return value.Null{}
	}

	switch cmd := cmd.(type) {
	case parser.String:
		return value.String(cmd)
	case parser.Boolean:
		return value.Boolean(cmd)
	case parser.Integer:
		return value.Integer(cmd)
	case parser.Float:
		return value.Float(cmd)
	case parser.None:
		return value.Null{}
	case parser.Error:
		return value.Error{Message: cmd.Message, Code: value.UnknownError}

	case parser.Builtin:
		return e.runBuiltin(cmd)
	case parser.External:
		return e.runExternal(cmd, upstream)

	case parser.Redirect:
		return e.runRedirect(cmd, upstream)
	case parser.Pipe:
		source := e.eval(cmd.Source, upstream)
		if e.exited {
			return value.Null{}
		}
		return e.eval(cmd.Destination, source)

	case nil:
		return value.Null{}
	}

	return value.NewError(value.UnknownError, "unknown command %T", cmd)
}

// argv renders arguments the way programs receive them.
func (e *Evaluator) argv(args []parser.Command) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		out = append(out, e.eval(arg, nil).Undecorated())
	}
	return out
}
