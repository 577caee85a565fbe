package lexer

import "fmt"

// Kind classifies a token.
type Kind int

const (
	Word Kind = iota
	String
	Boolean
	Integer
	Float

	GreaterThan
	Pipe

	SemiColon
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case String:
		return "string"
	case Boolean:
		return "boolean"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case GreaterThan:
		return "greater-than"
	case Pipe:
		return "pipe"
	case SemiColon:
		return "semicolon"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsLiteral reports whether tokens of the kind can be used as an argument.
func (k Kind) IsLiteral() bool {
	switch k {
	case Word, String, Boolean, Integer, Float:
		return true
	}
	return false
}

// Token is a single lexical unit of an input line.
type Token struct {
	Value string
	Kind  Kind
}

func (t Token) String() string {
	switch t.Kind {
	case String:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
	}
}
