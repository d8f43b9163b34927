package lexer

import (
	"testing"

	"github.com/funvibe/derivex/internal/token"
)

func TestNextToken(t *testing.T) {
	input := "2 * x ^ 2 + (1 / y) - 3.5"

	want := []token.TokenType{
		token.NUMBER, token.ASTERISK, token.IDENT, token.CARET, token.NUMBER,
		token.PLUS, token.LPAREN, token.NUMBER, token.SLASH, token.IDENT, token.RPAREN,
		token.MINUS, token.NUMBER, token.EOF,
	}

	l := New(input)
	for i, tt := range want {
		tok := l.NextToken()
		if tok.Type != tt {
			t.Fatalf("token %d: got %s, want %s (lexeme %q)", i, tok.Type, tt, tok.Lexeme)
		}
	}
}

func TestPowerAlias(t *testing.T) {
	l := New("x ** 2")
	l.NextToken() // x
	tok := l.NextToken()
	if tok.Type != token.POWER || tok.Lexeme != "**" {
		t.Fatalf("got %+v, want POWER '**'", tok)
	}
}

func TestWildcardTokens(t *testing.T) {
	tests := []struct {
		input string
		want  token.TokenType
	}{
		{"_1", token.WILD_ANY},
		{"_lit2", token.WILD_LIT},
		{"_nonlit3", token.WILD_NONLIT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := New(tt.input).NextToken()
			if tok.Type != tt.want {
				t.Fatalf("got %s, want %s", tok.Type, tt.want)
			}
			if tok.Lexeme != tt.input {
				t.Fatalf("got lexeme %q, want %q", tok.Lexeme, tt.input)
			}
		})
	}
}

func TestIllegalTokens(t *testing.T) {
	tests := []string{"$", "1.2.3", "_", "_lit", "_nonlit"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			tok := New(in).NextToken()
			if tok.Type != token.ILLEGAL {
				t.Fatalf("input %q: got %s, want ILLEGAL", in, tok.Type)
			}
		})
	}
}

func TestEOFIsSticky(t *testing.T) {
	l := New("")
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Type != token.EOF {
			t.Fatalf("call %d: got %s, want EOF", i, tok.Type)
		}
	}
}

func TestWhitespaceSkipped(t *testing.T) {
	l := New("  \t\n x \f ")
	tok := l.NextToken()
	if tok.Type != token.IDENT || tok.Lexeme != "x" {
		t.Fatalf("got %+v, want IDENT 'x'", tok)
	}
}
