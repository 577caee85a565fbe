// Package value holds the typed results produced by evaluating commands.
package value

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
)

// Kind identifies the variant of a Value.
type Kind int

const (
	KindProcessOutput Kind = iota
	KindFileRef
	KindString
	KindArray
	KindInteger
	KindFloat
	KindBoolean
	KindNull
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindProcessOutput:
		return "output"
	case KindFileRef:
		return "file"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	case KindError:
		return "error"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is the result of evaluating a command.
type Value interface {
	Kind() Kind

	// Decorated renders the value for interactive display.
	Decorated() string
	// Colorless renders the value like Decorated but without color codes.
	Colorless() string
	// Undecorated renders only the raw value, used for files and process input.
	Undecorated() string

	// Equal compares values by their variant specific key.
	Equal(other Value) bool

	value()
}

// ProcessOutput is the captured result of an external process.
type ProcessOutput struct {
	Status int
	Stdout []byte
	Stderr []byte
}

// Success reports whether the process exited with status 0.
func (p ProcessOutput) Success() bool {
	return p.Status == 0
}

func (p ProcessOutput) Kind() Kind { return KindProcessOutput }

func (p ProcessOutput) Decorated() string { return p.Undecorated() }

func (p ProcessOutput) Colorless() string { return p.Undecorated() }

func (p ProcessOutput) Undecorated() string {
	if p.Success() {
		return string(p.Stdout)
	}
	return string(p.Stderr)
}

func (p ProcessOutput) Equal(other Value) bool {
	o, ok := other.(ProcessOutput)
	return ok &&
		p.Status == o.Status &&
		bytes.Equal(p.Stdout, o.Stdout) &&
		bytes.Equal(p.Stderr, o.Stderr)
}

// FileRef points at a file system entry.
type FileRef struct {
	Path string
	// FullPath renders the whole path rather than the base name.
	FullPath bool
	// Mode of the entry when it was observed, used for coloring.
	Mode fs.FileMode
}

func (f FileRef) Kind() Kind { return KindFileRef }

// Name is the rendered name of the entry.
func (f FileRef) Name() string {
	if f.FullPath {
		return f.Path
	}
	return filepath.Base(f.Path)
}

func (f FileRef) Decorated() string {
	return fileColor(f).Sprint(f.Name())
}

func (f FileRef) Colorless() string { return f.Name() }

func (f FileRef) Undecorated() string { return f.Name() }

func (f FileRef) Equal(other Value) bool {
	o, ok := other.(FileRef)
	return ok && f.Path == o.Path
}

// String is a text value.
type String string

func (s String) Kind() Kind { return KindString }

func (s String) Decorated() string { return colorString.Sprint(s.Colorless()) }

func (s String) Colorless() string { return `"` + string(s) + `"` }

func (s String) Undecorated() string { return string(s) }

func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && s == o
}

// Array is an ordered list of values.
type Array []Value

func (a Array) Kind() Kind { return KindArray }

func (a Array) Decorated() string {
	return a.render(Value.Decorated)
}

func (a Array) Colorless() string {
	return a.render(Value.Colorless)
}

func (a Array) render(item func(Value) string) string {
	if len(a) == 0 {
		return "[]"
	}

	var sb strings.Builder
	sb.WriteString("[\n")
	for i, v := range a {
		if i > 0 {
			sb.WriteString(",\n")
		}
		sb.WriteString("  ")
		sb.WriteString(strings.ReplaceAll(strings.TrimSuffix(item(v), "\n"), "\n", "\n  "))
	}
	sb.WriteString("\n]")
	return sb.String()
}

func (a Array) Undecorated() string {
	items := make([]string, len(a))
	for i, v := range a {
		items[i] = v.Undecorated()
	}
	return strings.Join(items, "\n")
}

func (a Array) Equal(other Value) bool {
	o, ok := other.(Array)
	if !ok || len(a) != len(o) {
		return false
	}
	for i := range a {
		if !a[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Integer is a signed 64 bit number.
type Integer int64

func (i Integer) Kind() Kind { return KindInteger }

func (i Integer) Decorated() string { return colorNumber.Sprint(i.Undecorated()) }

func (i Integer) Colorless() string { return i.Undecorated() }

func (i Integer) Undecorated() string { return strconv.FormatInt(int64(i), 10) }

func (i Integer) Equal(other Value) bool {
	o, ok := other.(Integer)
	return ok && i == o
}

// Float is a 64 bit floating point number.
type Float float64

func (f Float) Kind() Kind { return KindFloat }

func (f Float) Decorated() string { return colorNumber.Sprint(f.Undecorated()) }

func (f Float) Colorless() string { return f.Undecorated() }

func (f Float) Undecorated() string { return strconv.FormatFloat(float64(f), 'f', -1, 64) }

func (f Float) Equal(other Value) bool {
	o, ok := other.(Float)
	return ok && f == o
}

// Boolean is true or false.
type Boolean bool

func (b Boolean) Kind() Kind { return KindBoolean }

func (b Boolean) Decorated() string { return colorBoolean.Sprint(b.Undecorated()) }

func (b Boolean) Colorless() string { return b.Undecorated() }

func (b Boolean) Undecorated() string { return strconv.FormatBool(bool(b)) }

func (b Boolean) Equal(other Value) bool {
	o, ok := other.(Boolean)
	return ok && b == o
}

// Null is the absence of a result, it's never echoed.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

func (Null) Decorated() string { return colorNull.Sprint("null") }

func (Null) Colorless() string { return "null" }

func (Null) Undecorated() string { return "" }

func (Null) Equal(other Value) bool {
	_, ok := other.(Null)
	return ok
}

// IsNull reports whether v is the null value.
func IsNull(v Value) bool {
	_, ok := v.(Null)
	return ok
}

func (ProcessOutput) value() {}
func (FileRef) value()       {}
func (String) value()        {}
func (Array) value()         {}
func (Integer) value()       {}
func (Float) value()         {}
func (Boolean) value()       {}
func (Null) value()          {}
func (Error) value()         {}

var (
	_ Value = ProcessOutput{}
	_ Value = FileRef{}
	_ Value = String("")
	_ Value = Array(nil)
	_ Value = Integer(0)
	_ Value = Float(0)
	_ Value = Boolean(false)
	_ Value = Null{}
	_ Value = Error{}
)
