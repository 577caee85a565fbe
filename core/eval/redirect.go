package eval

import (
	"fmt"
	"os"

	"github.com/josephlewis42/vsh/core/parser"
	"github.com/josephlewis42/vsh/core/value"
)

// runRedirect writes the undecorated source value to the destination path.
func (e *Evaluator) runRedirect(cmd parser.Redirect, upstream value.Value) value.Value {
	source := e.eval(cmd.Source, upstream)
	if e.exited {
		return value.Null{}
	}
	dest := e.eval(cmd.Destination, nil)

	path, ok := redirectPath(dest)
	if !ok {
		report := value.NewError(value.UnknownError, "destination must be a path, got %s", dest.Kind())
		fmt.Fprintln(e.Stderr, report.Colorless())
		return value.Null{}
	}

	fd, err := e.Fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return value.FromOSError(err)
	}

	if _, err := fd.Write([]byte(source.Undecorated())); err != nil {
		fd.Close()
		return value.FromOSError(err)
	}
	if err := fd.Close(); err != nil {
		return value.FromOSError(err)
	}

	return value.Null{}
}

func redirectPath(v value.Value) (string, bool) {
	switch v := v.(type) {
	case value.String:
		return string(v), string(v) != ""
	case value.FileRef:
		return v.Path, true
	}
	return "", false
}
