package value

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
)

// Code is the numeric status attached to an Error.
type Code int

const (
	TooManyArguments Code = 1
	HomeDirNotFound  Code = 25
	FileNotFound     Code = 50
	PermissionDenied Code = 100
	UnknownError     Code = 200
)

// Error is a failed evaluation.
type Error struct {
	Message string
	Code    Code
}

// NewError creates an Error value with the given code.
func NewError(code Code, format string, a ...interface{}) Error {
	return Error{Message: fmt.Sprintf(format, a...), Code: code}
}

// FromOSError translates an operating system error into an Error value.
func FromOSError(err error) Error {
	code := UnknownError
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, exec.ErrNotFound):
		code = FileNotFound
	case errors.Is(err, fs.ErrPermission):
		code = PermissionDenied
	}

	return Error{Message: err.Error(), Code: code}
}

// ErrTooManyArguments is returned by builtins given more arguments than they accept.
var ErrTooManyArguments = Error{Message: "Too many arguments", Code: TooManyArguments}

func (e Error) Error() string { return e.Message }

func (e Error) Kind() Kind { return KindError }

func (e Error) Decorated() string {
	return colorError.Sprint("Error: ") + e.body()
}

func (e Error) Colorless() string {
	return "Error: " + e.body()
}

func (e Error) body() string {
	return fmt.Sprintf("%s\nExited With status %d", e.Message, e.Code)
}

func (e Error) Undecorated() string { return e.Message }

func (e Error) Equal(other Value) bool {
	o, ok := other.(Error)
	return ok && e == o
}

// IsError reports whether v is an Error, optionally returning it.
func IsError(v Value) (Error, bool) {
	e, ok := v.(Error)
	return e, ok
}
