package parser

import "fmt"

// BuiltinKind names a command implemented by the shell itself.
type BuiltinKind int

const (
	Cd BuiltinKind = iota
	Exit
	Ls
	Pwd
)

var builtinNames = map[string]BuiltinKind{
	"cd":   Cd,
	"exit": Exit,
	"ls":   Ls,
	"pwd":  Pwd,
}

// LookupBuiltin resolves a reserved command name.
func LookupBuiltin(name string) (BuiltinKind, bool) {
	kind, ok := builtinNames[name]
	return kind, ok
}

// BuiltinNames lists the reserved command names.
func BuiltinNames() []string {
	return []string{Cd.String(), Exit.String(), Ls.String(), Pwd.String()}
}

func (b BuiltinKind) String() string {
	switch b {
	case Cd:
		return "cd"
	case Exit:
		return "exit"
	case Ls:
		return "ls"
	case Pwd:
		return "pwd"
	}
	return fmt.Sprintf("BuiltinKind(%d)", int(b))
}
