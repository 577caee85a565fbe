package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/josephlewis42/vsh/core/lexer"
)

// Command is a node of a parsed statement.
type Command interface {
	fmt.Stringer
	command()
}

// Builtin runs a command implemented by the shell.
type Builtin struct {
	Kind BuiltinKind
	Args []Command
}

// External runs a program found on the system.
type External struct {
	Name lexer.Token
	Args []Command
}

// String is a text literal.
type String string

// Boolean is a true or false literal.
type Boolean bool

// Integer is a whole number literal.
type Integer int64

// Float is a floating point literal.
type Float float64

// Redirect writes the result of Source to the path Destination evaluates to.
type Redirect struct {
	Source      Command
	Destination Command
}

// Pipe feeds the result of Source to Destination.
type Pipe struct {
	Source      Command
	Destination Command
}

// None is an empty statement.
type None struct{}

// Error marks a line that couldn't be parsed.
type Error struct {
	Message string
}

func (b Builtin) String() string {
	return call("Builtin", b.Kind.String(), b.Args)
}

func (e External) String() string {
	return call("External", e.Name.Value, e.Args)
}

func call(node, name string, args []Command) string {
	parts := []string{name}
	for _, arg := range args {
		parts = append(parts, arg.String())
	}
	return fmt.Sprintf("%s(%s)", node, strings.Join(parts, " "))
}

func (s String) String() string { return strconv.Quote(string(s)) }

func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }

func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }

func (f Float) String() string { return strconv.FormatFloat(float64(f), 'f', -1, 64) }

func (r Redirect) String() string {
	return fmt.Sprintf("Redirect(%s, %s)", r.Source, r.Destination)
}

func (p Pipe) String() string {
	return fmt.Sprintf("Pipe(%s, %s)", p.Source, p.Destination)
}

func (None) String() string { return "None" }

func (e Error) String() string { return fmt.Sprintf("Error(%q)", e.Message) }

func (Builtin) command()  {}
func (External) command() {}
func (String) command()   {}
func (Boolean) command()  {}
func (Integer) command()  {}
func (Float) command()    {}
func (Redirect) command() {}
func (Pipe) command()     {}
func (None) command()     {}
func (Error) command()    {}
