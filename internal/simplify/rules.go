// Package simplify implements component S: the algebraic simplification
// rule set of §4.5, driven to a fixed point by the generic rewrite engine
// (F). Templates are authored as pattern-string pairs; the four arithmetic
// folding rules are handlers because they compute a literal value rather
// than rearranging a tree (Design note 9).
package simplify

import (
	"math"

	"github.com/funvibe/derivex/internal/ast"
	"github.com/funvibe/derivex/internal/parser"
	"github.com/funvibe/derivex/internal/rewrite"
)

func pat(src string) rewrite.Pattern {
	return parser.MustParse(src)
}

// foldRule builds an arithmetic-folding handler for the shape "_lit1 op
// _lit2": it evaluates op on the two bound literal values and emits the
// result as a Literal (§4.5).
func foldRule(src string, op func(a, b float64) float64) rewrite.Rule {
	return rewrite.Rule{
		Pattern: pat(src),
		Handler: func(b rewrite.Bindings) (ast.Expr, bool) {
			x := b[1].(*ast.Literal).Value
			y := b[2].(*ast.Literal).Value
			return &ast.Literal{Value: op(x, y)}, true
		},
	}
}

// Rules is the ordered list from §4.5. Reductive and normalizing rules are
// placed before the canonical-ordering rules so the fixed point is
// monotone (§4.4 authoring guidance): if the literal-left rules ran
// before folding, a freshly-ordered pair could be re-folded and
// re-ordered forever.
var Rules = rewrite.RuleSet{
	// Identities.
	{Pattern: pat("0 + _1"), Template: pat("_1")},
	{Pattern: pat("_1 + 0"), Template: pat("_1")},
	{Pattern: pat("0 * _1"), Template: pat("0")},
	{Pattern: pat("_1 * 0"), Template: pat("0")},
	{Pattern: pat("1 * _1"), Template: pat("_1")},
	{Pattern: pat("_1 * 1"), Template: pat("_1")},
	{Pattern: pat("_1 / 1"), Template: pat("_1")},
	{Pattern: pat("_1 - _1"), Template: pat("0")},
	{Pattern: pat("_1 + -_1"), Template: pat("0")},
	{Pattern: pat("_1 / _1"), Template: pat("1")},
	{Pattern: pat("_1 + _1"), Template: pat("2 * _1")},

	// Exponent identities.
	{Pattern: pat("_1 ^ 0"), Template: pat("1")},
	{Pattern: pat("_1 ^ 1"), Template: pat("_1")},
	{Pattern: pat("1 ^ _1"), Template: pat("1")},
	{Pattern: pat("(_1 ^ _lit2) ^ _lit3"), Template: pat("_1 ^ (_lit2 * _lit3)")},
	{Pattern: pat("(_1 ^ _2) * (_1 ^ _3)"), Template: pat("_1 ^ (_2 + _3)")},

	// Cancellation and factoring.
	{Pattern: pat("(_lit1 * _2) / _lit1"), Template: pat("_2")},
	{Pattern: pat("(_lit1 * _2) / _lit3"), Template: pat("(_lit1 / _lit3) * _2")},
	{Pattern: pat("(_2 * _1) + _1"), Template: pat("_1 * (_2 + 1)")},

	// Associative regrouping to surface constants.
	{Pattern: pat("_lit1 + (_lit2 + _3)"), Template: pat("(_lit1 + _lit2) + _3")},
	{Pattern: pat("_lit1 * (_lit2 * _3)"), Template: pat("(_lit1 * _lit2) * _3")},
	{Pattern: pat("_lit1 * (_lit2 / _3)"), Template: pat("(_lit1 * _lit2) / _3")},

	// Arithmetic folding. Division by zero yields a non-finite literal;
	// it is not reported as an error (§4.5).
	foldRule("_lit1 + _lit2", func(a, b float64) float64 { return a + b }),
	foldRule("_lit1 * _lit2", func(a, b float64) float64 { return a * b }),
	foldRule("_lit1 / _lit2", func(a, b float64) float64 { return a / b }),
	foldRule("_lit1 ^ _lit2", math.Pow),

	// Canonical ordering: literal on the left, subtraction as addition.
	{Pattern: pat("_nonlit1 + _lit2"), Template: pat("_lit2 + _nonlit1")},
	{Pattern: pat("_1 - _lit2"), Template: pat("-_lit2 + _1")},
	{Pattern: pat("_nonlit1 * _lit2"), Template: pat("_lit2 * _nonlit1")},
}
