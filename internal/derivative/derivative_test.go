package derivative

import (
	"testing"

	"github.com/funvibe/derivex/internal/ast"
	"github.com/funvibe/derivex/internal/lexer"
	"github.com/funvibe/derivex/internal/parser"
	"github.com/funvibe/derivex/internal/simplify"
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

// derive parses, simplifies (the orchestrator always differentiates an
// already-simplified tree, §4.8), differentiates, then simplifies once
// more so the comparison isn't sensitive to rule-ordering cosmetics.
func derive(t *testing.T, src string) string {
	t.Helper()
	tree := simplify.Simplify(parse(t, src), nil)
	d := simplify.Simplify(Differentiate(tree), nil)
	return ast.Format(d)
}

func TestConstantDerivative(t *testing.T) {
	for _, in := range []string{"5", "0", "3.25"} {
		t.Run(in, func(t *testing.T) {
			if got := derive(t, in); got != "0" {
				t.Errorf("d(%s) = %s, want 0", in, got)
			}
		})
	}
}

func TestVariableDerivative(t *testing.T) {
	if got := derive(t, "x"); got != "1" {
		t.Errorf("d(x) = %s, want 1", got)
	}
}

func TestOtherIdentifierDerivesToZero(t *testing.T) {
	if got := derive(t, "y"); got != "0" {
		t.Errorf("d(y) = %s, want 0", got)
	}
}

func TestUnaryMinus(t *testing.T) {
	if got := derive(t, "-x"); got != "(-1)" {
		t.Errorf("d(-x) = %s, want (-1)", got)
	}
}

func TestSumRule(t *testing.T) {
	if got := derive(t, "x + y"); got != "1" {
		t.Errorf("d(x + y) = %s, want 1", got)
	}
}

func TestProductRule(t *testing.T) {
	if got := derive(t, "x * x"); got != "(2 * x)" {
		t.Errorf("d(x * x) = %s, want (2 * x)", got)
	}
}

func TestQuotientRule(t *testing.T) {
	got := derive(t, "1 / x")
	want := "((-1) / (x ^ 2))"
	if got != want {
		t.Errorf("d(1 / x) = %s, want %s", got, want)
	}
}

func TestPowerRule(t *testing.T) {
	got := derive(t, "2 * x ^ 2")
	want := "(4 * x)"
	if got != want {
		t.Errorf("d(2 * x ^ 2) = %s, want %s", got, want)
	}
}

func TestCatchAllProducesError(t *testing.T) {
	out := Differentiate(&ast.Error{})
	if _, ok := out.(*ast.Error); !ok {
		t.Fatalf("got %#v, want *ast.Error", out)
	}
}

// TestLinearity checks the §8 property d(X + Y) ≡ d(X) + d(Y) after
// Simplify, by comparing simplified derivative trees structurally.
func TestLinearity(t *testing.T) {
	x := parse(t, "x ^ 2")
	y := parse(t, "3 * x")

	sum := &ast.Binary{Left: ast.Clone(x), Op: ast.Plus, Right: ast.Clone(y)}
	dSum := simplify.Simplify(Differentiate(simplify.Simplify(sum, nil)), nil)

	dx := simplify.Simplify(Differentiate(simplify.Simplify(ast.Clone(x), nil)), nil)
	dy := simplify.Simplify(Differentiate(simplify.Simplify(ast.Clone(y), nil)), nil)
	combined := simplify.Simplify(&ast.Binary{Left: dx, Op: ast.Plus, Right: dy}, nil)

	if !ast.Equal(dSum, combined) {
		t.Errorf("d(X+Y) = %s, d(X)+d(Y) = %s", ast.Format(dSum), ast.Format(combined))
	}
}
