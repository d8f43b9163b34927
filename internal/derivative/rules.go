// Package derivative implements component D: the differentiation rule set
// of §4.7, applied once per node and recursing into sub-expressions via
// handlers rather than by re-iterating the rule set to a fixed point (that
// distinction from F is deliberate - a derivative is computed once, not by
// repeated rewriting of the same node).
//
// Every rule here needs a handler rather than a plain template, because
// differentiating a sub-expression is itself a recursive call to
// Differentiate, not something the matcher/writer can express on its own.
// Each recursing handler (negation, sum, product, quotient, power) still
// builds its result by merging the recursively computed derivatives into
// the match's bindings and instantiating a template with Write, per the
// spec's insistence on templates over hand-written tree constructors for
// the chain/product/quotient rules; the literal, identifier and catch-all
// handlers return their single node directly.
package derivative

import (
	"github.com/funvibe/derivex/internal/ast"
	"github.com/funvibe/derivex/internal/parser"
	"github.com/funvibe/derivex/internal/pattern"
	"github.com/funvibe/derivex/internal/rewrite"
)

func pat(src string) rewrite.Pattern {
	return parser.MustParse(src)
}

// merge returns a fresh Bindings containing b plus the synthetic ids in
// extra, so a handler's template can reference both the original wildcard
// bindings and any freshly-computed derivatives without mutating b.
func merge(b rewrite.Bindings, extra map[int]ast.Expr) rewrite.Bindings {
	out := make(rewrite.Bindings, len(b)+len(extra))
	for k, v := range b {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// Rules is the ordered list from §4.7. Order is the contract: each
// pattern's first match wins, and the open question about non-x
// identifiers (GLOSSARY: "every other identifier differentiates to zero")
// is resolved by folding it into the same handler that recognizes x,
// rather than leaving it to fall through to the catch-all.
var Rules = rewrite.RuleSet{
	// d(literal) = 0.
	{
		Pattern: pat("_lit1"),
		Handler: func(b rewrite.Bindings) (ast.Expr, bool) {
			return &ast.Literal{Value: 0}, true
		},
	},
	// d(x) = 1; d(other identifier) = 0; anything else vetoes.
	{
		Pattern: pat("_1"),
		Handler: func(b rewrite.Bindings) (ast.Expr, bool) {
			id, ok := b[1].(*ast.Identifier)
			if !ok {
				return nil, false
			}
			if id.IsX() {
				return &ast.Literal{Value: 1}, true
			}
			return &ast.Literal{Value: 0}, true
		},
	},
	// d(-u) = -d(u).
	{
		Pattern: pat("-_1"),
		Handler: func(b rewrite.Bindings) (ast.Expr, bool) {
			du := Differentiate(b[1])
			return rewrite.Write(pat("-_1"), rewrite.Bindings{1: du}), true
		},
	},
	// d(u + v) = d(u) + d(v). There is no subtraction rule: Simplify
	// rewrites u - lit as -lit + u before D runs, but any other
	// subtraction (e.g. x - y) reaches the catch-all and becomes Error.
	{
		Pattern: pat("_1 + _2"),
		Handler: func(b rewrite.Bindings) (ast.Expr, bool) {
			du := Differentiate(b[1])
			dv := Differentiate(b[2])
			return rewrite.Write(pat("_1 + _2"), rewrite.Bindings{1: du, 2: dv}), true
		},
	},
	// Product rule: d(u * v) = d(u)*v + d(v)*u.
	{
		Pattern: pat("_1 * _2"),
		Handler: func(b rewrite.Bindings) (ast.Expr, bool) {
			du := Differentiate(b[1])
			dv := Differentiate(b[2])
			tpl := pat("_10 * _2 + _20 * _1")
			bb := merge(b, map[int]ast.Expr{10: du, 20: dv})
			return rewrite.Write(tpl, bb), true
		},
	},
	// Quotient rule: d(u / v) = (d(u)*v - d(v)*u) / v^2.
	{
		Pattern: pat("_1 / _2"),
		Handler: func(b rewrite.Bindings) (ast.Expr, bool) {
			du := Differentiate(b[1])
			dv := Differentiate(b[2])
			tpl := pat("(_10 * _2 - _20 * _1) / _2 ^ 2")
			bb := merge(b, map[int]ast.Expr{10: du, 20: dv})
			return rewrite.Write(tpl, bb), true
		},
	},
	// Power rule via chain rule: d(u ^ n) = n * u^(n-1) * d(u). Exact when
	// n does not depend on x; when it does, this omits the ln(u)*d(n)
	// term - a known limitation reproduced deliberately (§9 open
	// questions), not "fixed" here.
	{
		Pattern: pat("_1 ^ _2"),
		Handler: func(b rewrite.Bindings) (ast.Expr, bool) {
			du := Differentiate(b[1])
			tpl := pat("_2 * _1 ^ (_2 - 1) * _10")
			bb := merge(b, map[int]ast.Expr{10: du})
			return rewrite.Write(tpl, bb), true
		},
	},
	// Catch-all: surface unhandled shapes as Error (§4.7, §4.9).
	{
		Pattern: &pattern.AnySubExpr{ID: 1},
		Handler: func(b rewrite.Bindings) (ast.Expr, bool) {
			return &ast.Error{}, true
		},
	},
}
