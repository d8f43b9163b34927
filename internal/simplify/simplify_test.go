package simplify

import (
	"math"
	"testing"

	"github.com/funvibe/derivex/internal/ast"
	"github.com/funvibe/derivex/internal/lexer"
	"github.com/funvibe/derivex/internal/parser"
)

func parse(t *testing.T, src string) ast.Expr {
	t.Helper()
	p := parser.New(lexer.New(src))
	e := p.Parse()
	if len(p.Errors) != 0 {
		t.Fatalf("parse %q: %v", src, p.Errors)
	}
	return e
}

func TestSimplifyRules(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0 + x", "x"},
		{"x + 0", "x"},
		{"0 * x", "0"},
		{"x * 0", "0"},
		{"1 * x", "x"},
		{"x * 1", "x"},
		{"x / 1", "x"},
		{"x - x", "0"},
		{"x + -x", "0"},
		{"x / x", "1"},
		{"x + x", "(2 * x)"},
		{"x ^ 0", "1"},
		{"x ^ 1", "x"},
		{"1 ^ x", "1"},
		{"(x ^ 2) ^ 3", "(x ^ 6)"},
		{"(x ^ 2) * (x ^ 3)", "(x ^ 5)"},
		{"(2 * x) / 2", "x"},
		{"2 + 3", "5"},
		{"2 * 3", "6"},
		{"6 / 2", "3"},
		{"2 ^ 3", "8"},
		{"x + 2", "(2 + x)"},
		{"x - 2", "((-2) + x)"},
		{"x * 2", "(2 * x)"},
		{"2 * x ^ 2", "(2 * (x ^ 2))"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ast.Format(Simplify(parse(t, tt.input), nil))
			if got != tt.want {
				t.Errorf("Simplify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestIdempotence checks the §8 property S ∘ S = S.
func TestIdempotence(t *testing.T) {
	inputs := []string{
		"2 * x ^ 2", "x + x", "1 / x", "(x + 1) * (x + 1)", "x - 2 + 3 - x", "0.5 * x",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			once := Simplify(parse(t, in), nil)
			twice := Simplify(ast.Clone(once), nil)
			if !ast.Equal(once, twice) {
				t.Errorf("S∘S != S for %q: %s vs %s", in, ast.Format(once), ast.Format(twice))
			}
		})
	}
}

func TestDivisionByZeroYieldsNonFiniteLiteral(t *testing.T) {
	got := Simplify(parse(t, "1 / 0"), nil)
	lit, ok := got.(*ast.Literal)
	if !ok {
		t.Fatalf("got %#v, want a Literal", got)
	}
	if lit.Value == lit.Value && lit.Value != math.Inf(1) {
		// sanity check: it should be +Inf, not some folded finite value.
		t.Fatalf("got %v, want +Inf", lit.Value)
	}
}
