// Package lexer splits a single input line into tokens.
package lexer

import (
	"strconv"
	"strings"
	"unicode"
)

// SyntaxError is returned when a line can't be tokenized.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Msg
}

// ErrUnterminatedString is returned when a quoted string is never closed.
var ErrUnterminatedString = &SyntaxError{Msg: "unterminated string"}

// Lex converts the line into an ordered list of tokens.
func Lex(line string) ([]Token, error) {
	var (
		tokens  []Token
		pending strings.Builder
		quote   rune
	)

	flush := func() {
		if pending.Len() == 0 {
			return
		}
		tokens = append(tokens, Classify(pending.String()))
		pending.Reset()
	}

	for _, r := range line {
		if quote != 0 {
			if r == quote {
				tokens = append(tokens, Token{Value: pending.String(), Kind: String})
				pending.Reset()
				quote = 0
				continue
			}
			pending.WriteRune(r)
			continue
		}

		switch {
		case r == '\'' || r == '"':
			flush()
			quote = r
		case r == '>' || r == '|' || r == ';':
			flush()
			tokens = append(tokens, Classify(string(r)))
		case unicode.IsSpace(r):
			flush()
		default:
			pending.WriteRune(r)
		}
	}

	if quote != 0 {
		return nil, ErrUnterminatedString
	}
	flush()

	return tokens, nil
}

// Classify determines the kind of an unquoted piece of text.
func Classify(text string) Token {
	switch text {
	case ">":
		return Token{Value: text, Kind: GreaterThan}
	case "|":
		return Token{Value: text, Kind: Pipe}
	case ";":
		return Token{Value: text, Kind: SemiColon}
	case "true", "false":
		return Token{Value: text, Kind: Boolean}
	}

	if isCanonicalInteger(text) {
		return Token{Value: text, Kind: Integer}
	}
	if isCanonicalFloat(text) {
		return Token{Value: text, Kind: Float}
	}
	return Token{Value: text, Kind: Word}
}

// Numbers are only recognized when formatting the parsed value gives back
// the same text, arguments passed to programs must not change.

func isCanonicalInteger(text string) bool {
	i, err := strconv.ParseInt(text, 10, 64)
	return err == nil && strconv.FormatInt(i, 10) == text
}

func isCanonicalFloat(text string) bool {
	if !strings.Contains(text, ".") {
		return false
	}
	f, err := strconv.ParseFloat(text, 64)
	return err == nil && strconv.FormatFloat(f, 'f', -1, 64) == text
}
