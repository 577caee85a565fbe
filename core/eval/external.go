package eval

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"

	"github.com/josephlewis42/vsh/core/parser"
	"github.com/josephlewis42/vsh/core/value"
)

// runExternal starts a program and waits for it to exit. If upstream is set
// its undecorated rendering becomes the program's standard input.
func (e *Evaluator) runExternal(cmd parser.External, upstream value.Value) value.Value {
	args := e.argv(cmd.Args)
	e.Logger.Printf("exec %s %q", cmd.Name.Value, args)

	proc := exec.Command(cmd.Name.Value, args...)

	// A non *os.File reader is copied by a goroutine while output is drained,
	// so large inputs can't deadlock against a full stdout pipe.
	if upstream != nil {
		proc.Stdin = strings.NewReader(upstream.Undecorated())
	} else {
		proc.Stdin = e.Stdin
	}

	var stdout, stderr bytes.Buffer
	proc.Stdout = &stdout
	proc.Stderr = &stderr

	err := proc.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
	default:
		return value.FromOSError(err)
	}

	return value.ProcessOutput{
		Status: proc.ProcessState.ExitCode(),
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
}
