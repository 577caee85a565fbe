// Package parser turns tokens into command trees, one per statement.
//
// The grammar is:
//
//	program    := statement (';' statement)* ';'?
//	statement  := expression ( ('>' | '|') expression )*
//	expression := WORD args* | STRING | BOOLEAN | INTEGER | FLOAT | ';'
//	args       := (WORD | STRING | BOOLEAN | INTEGER | FLOAT)*
//
// Redirects and pipes are left associative and share a precedence level.
package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/josephlewis42/vsh/core/lexer"
)

var (
	ErrUnexpectedToken = errors.New("Unexpected token")
	ErrUnexpectedEnd   = errors.New("Unexpected end of input")
)

// ParseLine lexes and parses a single input line.
func ParseLine(line string) []Command {
	tokens, err := lexer.Lex(line)
	if err != nil {
		return []Command{Error{Message: err.Error()}}
	}
	return Parse(tokens)
}

// Parse converts tokens into statements. A syntax error ends the program:
// the statements before it are kept and the rest of the line is replaced by a
// single Error node.
func Parse(tokens []lexer.Token) []Command {
	p := &parser{tokens: tokens}
	return p.program()
}

type parser struct {
	tokens []lexer.Token
	pos    int
}

func (p *parser) peek() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (lexer.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *parser) done() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) program() []Command {
	commands := []Command{}

	for !p.done() {
		if len(commands) > 0 {
			// Statements only end at a separator, so this consumes it.
			if tok, _ := p.next(); tok.Kind != lexer.SemiColon {
				return append(commands, Error{Message: ErrUnexpectedToken.Error()})
			}
			if p.done() {
				break
			}
		}

		stmt, err := p.statement()
		if err != nil {
			return append(commands, Error{Message: err.Error()})
		}
		commands = append(commands, stmt)
	}

	return commands
}

func (p *parser) statement() (Command, error) {
	cmd, err := p.expression()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.peek()
		if !ok || tok.Kind == lexer.SemiColon {
			return cmd, nil
		}

		switch tok.Kind {
		case lexer.GreaterThan:
			p.next()
			dest, err := p.path()
			if err != nil {
				return nil, err
			}
			cmd = Redirect{Source: cmd, Destination: dest}

		case lexer.Pipe:
			p.next()
			dest, err := p.expression()
			if err != nil {
				return nil, err
			}
			cmd = Pipe{Source: cmd, Destination: dest}

		default:
			return nil, ErrUnexpectedToken
		}
	}
}

func (p *parser) expression() (Command, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, ErrUnexpectedEnd
	}

	switch tok.Kind {
	case lexer.Word:
		return p.word()
	case lexer.String, lexer.Boolean, lexer.Integer, lexer.Float:
		p.next()
		return literal(tok)
	case lexer.SemiColon:
		// Left in place for the statement to terminate on.
		return None{}, nil
	default:
		return nil, ErrUnexpectedToken
	}
}

// path parses a redirect destination, where a bare word names a file rather
// than a program.
func (p *parser) path() (Command, error) {
	if tok, ok := p.peek(); ok && tok.Kind == lexer.Word {
		p.next()
		return String(tok.Value), nil
	}
	return p.expression()
}

func (p *parser) word() (Command, error) {
	name, _ := p.next()

	args, err := p.args()
	if err != nil {
		return nil, err
	}

	if kind, ok := LookupBuiltin(name.Value); ok {
		return Builtin{Kind: kind, Args: args}, nil
	}
	return External{Name: name, Args: args}, nil
}

func (p *parser) args() ([]Command, error) {
	args := []Command{}
	for {
		tok, ok := p.peek()
		if !ok || !tok.Kind.IsLiteral() {
			return args, nil
		}
		p.next()

		arg, err := literal(tok)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
}

func literal(tok lexer.Token) (Command, error) {
	switch tok.Kind {
	case lexer.Word, lexer.String:
		return String(tok.Value), nil
	case lexer.Boolean:
		b, err := strconv.ParseBool(tok.Value)
		if err != nil {
			return nil, invalidLiteral(tok)
		}
		return Boolean(b), nil
	case lexer.Integer:
		i, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, invalidLiteral(tok)
		}
		return Integer(i), nil
	case lexer.Float:
		f, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, invalidLiteral(tok)
		}
		return Float(f), nil
	}
	return nil, ErrUnexpectedToken
}

func invalidLiteral(tok lexer.Token) error {
	return fmt.Errorf("Invalid %s literal `%s`", tok.Kind, tok.Value)
}
