package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/josephlewis42/vsh/core/lexer"
	"github.com/stretchr/testify/assert"
)

func word(s string) lexer.Token {
	return lexer.Token{Value: s, Kind: lexer.Word}
}

func ext(name string, args ...Command) External {
	return External{Name: word(name), Args: args}
}

func TestParseLine(t *testing.T) {
	cases := map[string]struct {
		line string
		want []Command
	}{
		"empty": {
			line: "",
			want: []Command{},
		},
		"cd": {
			line: "cd",
			want: []Command{Builtin{Kind: Cd}},
		},
		"cd with arg": {
			line: "cd /home",
			want: []Command{Builtin{Kind: Cd, Args: []Command{String("/home")}}},
		},
		"cd with args": {
			line: "cd /home arg2",
			want: []Command{Builtin{Kind: Cd, Args: []Command{String("/home"), String("arg2")}}},
		},
		"exit": {
			line: "exit",
			want: []Command{Builtin{Kind: Exit}},
		},
		"pwd": {
			line: "pwd",
			want: []Command{Builtin{Kind: Pwd}},
		},
		"external with typed args": {
			line: `echo hi "there" true 42 2.5`,
			want: []Command{ext("echo", String("hi"), String("there"), Boolean(true), Integer(42), Float(2.5))},
		},
		"literals": {
			line: `"hello"; true; 7; 1.5`,
			want: []Command{String("hello"), Boolean(true), Integer(7), Float(1.5)},
		},
		"single semicolon": {
			line: ";",
			want: []Command{None{}},
		},
		"double semicolon": {
			line: ";;",
			want: []Command{None{}, None{}},
		},
		"trailing semicolon": {
			line: "ls;",
			want: []Command{Builtin{Kind: Ls}},
		},
		"empty statement between": {
			line: "ls;;pwd",
			want: []Command{Builtin{Kind: Ls}, None{}, Builtin{Kind: Pwd}},
		},
		"pipe": {
			line: "ls | grep x",
			want: []Command{Pipe{Source: Builtin{Kind: Ls}, Destination: ext("grep", String("x"))}},
		},
		"redirect": {
			line: "ls > out.txt",
			want: []Command{Redirect{Source: Builtin{Kind: Ls}, Destination: String("out.txt")}},
		},
		"redirect from string": {
			line: `"ls" > "output.txt"`,
			want: []Command{Redirect{Source: String("ls"), Destination: String("output.txt")}},
		},
		"pipes are left associative": {
			line: "a | b | c",
			want: []Command{Pipe{
				Source:      Pipe{Source: ext("a"), Destination: ext("b")},
				Destination: ext("c"),
			}},
		},
		"redirect and pipe share precedence": {
			line: "a > f | c",
			want: []Command{Pipe{
				Source:      Redirect{Source: ext("a"), Destination: String("f")},
				Destination: ext("c"),
			}},
		},
		"pipe then redirect": {
			line: "a | b > f",
			want: []Command{Redirect{
				Source:      Pipe{Source: ext("a"), Destination: ext("b")},
				Destination: String("f"),
			}},
		},
		"pipe to empty statement": {
			line: "ls | ;",
			want: []Command{Pipe{Source: Builtin{Kind: Ls}, Destination: None{}}},
		},
		"unexpected operator": {
			line: "| ls",
			want: []Command{Error{Message: "Unexpected token"}},
		},
		"stray literal": {
			line: `"a" b`,
			want: []Command{Error{Message: "Unexpected token"}},
		},
		"dangling pipe": {
			line: "ls |",
			want: []Command{Error{Message: "Unexpected end of input"}},
		},
		"dangling redirect": {
			line: "ls >",
			want: []Command{Error{Message: "Unexpected end of input"}},
		},
		"error keeps earlier statements": {
			line: "pwd; ls |",
			want: []Command{Builtin{Kind: Pwd}, Error{Message: "Unexpected end of input"}},
		},
		"error replaces later statements": {
			line: "echo a; >; pwd; ls",
			want: []Command{ext("echo", String("a")), Error{Message: "Unexpected token"}},
		},
		"unterminated string drops every statement": {
			line: "pwd; echo 'oops",
			want: []Command{Error{Message: "syntax error: unterminated string"}},
		},
		"unterminated string": {
			line: "echo 'oops",
			want: []Command{Error{Message: "syntax error: unterminated string"}},
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got := ParseLine(tc.line)
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ParseLine(%q) mismatch (-want +got):\n%s", tc.line, diff)
			}
		})
	}
}

func TestParse_emptyTokens(t *testing.T) {
	assert.Empty(t, Parse(nil))
	assert.Empty(t, Parse([]lexer.Token{}))
}

func TestParse_invalidLiteral(t *testing.T) {
	got := Parse([]lexer.Token{{Value: "forty", Kind: lexer.Integer}})
	assert.Equal(t, []Command{Error{Message: "Invalid integer literal `forty`"}}, got)
}

func TestParse_keepsExternalName(t *testing.T) {
	got := Parse([]lexer.Token{word("grep"), {Value: "x", Kind: lexer.String}})
	assert.Equal(t, []Command{External{Name: word("grep"), Args: []Command{String("x")}}}, got)
}

func TestLookupBuiltin(t *testing.T) {
	for _, name := range BuiltinNames() {
		kind, ok := LookupBuiltin(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, kind.String())
	}

	_, ok := LookupBuiltin("helloworld")
	assert.False(t, ok)
}

func TestCommand_String(t *testing.T) {
	cases := map[string]string{
		"ls | grep x":        `Pipe(Builtin(ls), External(grep "x"))`,
		"echo 1 2.5 true":    `External(echo 1 2.5 true)`,
		`"a" > out`:          `Redirect("a", "out")`,
		";":                  `None`,
		"|":                  `Error("Unexpected token")`,
		"cd /tmp; pwd | cat": `Builtin(cd "/tmp")`,
	}

	for line, want := range cases {
		t.Run(line, func(t *testing.T) {
			got := ParseLine(line)
			assert.NotEmpty(t, got)
			assert.Equal(t, want, got[0].String())
		})
	}
}
