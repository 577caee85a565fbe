package eval

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/josephlewis42/vsh/core/parser"
	"github.com/josephlewis42/vsh/core/value"
	"github.com/spf13/afero"
)

func (e *Evaluator) runBuiltin(cmd parser.Builtin) value.Value {
	args := e.argv(cmd.Args)
	e.Logger.Printf("builtin %s %q", cmd.Kind, args)

	switch cmd.Kind {
	case parser.Cd:
		return e.cd(args)
	case parser.Exit:
		e.exited = true
		e.Exit(0)
		return value.Null{}
	case parser.Ls:
		return e.ls(args)
	case parser.Pwd:
		return e.pwd(args)
	}

	return value.NewError(value.UnknownError, "unknown builtin %s", cmd.Kind)
}

// cd changes the process working directory, with no arguments it changes to
// the user's home directory.
func (e *Evaluator) cd(args []string) value.Value {
	var dir string

	switch len(args) {
	case 0:
		home, err := e.HomeDir()
		if err != nil || home == "" {
			return value.NewError(value.HomeDirNotFound, "Could not find home directory")
		}
		dir = home
	case 1:
		dir = args[0]
	default:
		return value.ErrTooManyArguments
	}

	if err := os.Chdir(dir); err != nil {
		return value.FromOSError(err)
	}
	return value.Null{}
}

// ls lists a directory, sorted by name.
func (e *Evaluator) ls(args []string) value.Value {
	dir := "."

	switch len(args) {
	case 0:
	case 1:
		dir = args[0]
	default:
		return value.ErrTooManyArguments
	}

	entries, err := afero.ReadDir(e.Fs, dir)
	if err != nil {
		return value.FromOSError(err)
	}

	files := make(value.Array, 0, len(entries))
	for _, entry := range entries {
		files = append(files, value.FileRef{
			Path: filepath.Join(dir, entry.Name()),
			Mode: entry.Mode(),
		})
	}
	return files
}

// pwd reports the process working directory.
func (e *Evaluator) pwd(args []string) value.Value {
	if len(args) > 0 {
		return value.ErrTooManyArguments
	}

	wd, err := os.Getwd()
	if err != nil {
		return value.FromOSError(err)
	}

	return value.FileRef{Path: wd, FullPath: true, Mode: fs.ModeDir}
}
