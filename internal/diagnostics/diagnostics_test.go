package diagnostics

import (
	"testing"

	"github.com/funvibe/derivex/internal/token"
)

func TestEmptyInputMessage(t *testing.T) {
	got := EmptyInput().Error()
	want := "no input found, skipping"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPositionedMessage(t *testing.T) {
	tok := token.Token{Type: token.ILLEGAL, Lexeme: "$", Line: 1, Column: 3}
	err := New(ErrNoExpression, tok)
	want := "1:3: unexpected token, expected an expression"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMissingParenMessage(t *testing.T) {
	err := New(ErrMissingParen, token.Token{Type: token.EOF, Line: 2, Column: 1})
	want := "2:1: unexpected token, expected a '(' token"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIterationCapHasNoPositionPrefix(t *testing.T) {
	err := &DiagnosticError{
		Code:  ErrIterationCap,
		Phase: PhaseRewrite,
		Args:  []interface{}{"rewrite: exceeded iteration cap, returning current expression"},
	}
	want := "rewrite: exceeded iteration cap, returning current expression"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
