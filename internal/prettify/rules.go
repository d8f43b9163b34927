// Package prettify implements component Y: the small rule set of §4.6 that
// re-expands aggressively-folded forms for display. It runs after
// Simplify, on a clone of the parsed tree and on the derivative tree,
// purely for presentation.
package prettify

import (
	"github.com/funvibe/derivex/internal/ast"
	"github.com/funvibe/derivex/internal/parser"
	"github.com/funvibe/derivex/internal/rewrite"
)

func pat(src string) rewrite.Pattern {
	return parser.MustParse(src)
}

// Rules re-expands 0.5 as a fraction and rewrites a negative exponent as a
// division, so neither renders as a bare decimal or a "^(-n)" form (§4.6).
var Rules = rewrite.RuleSet{
	{Pattern: pat("0.5"), Template: pat("1 / 2")},
	{
		Pattern: pat("_1 ^ _lit2"),
		Handler: func(b rewrite.Bindings) (ast.Expr, bool) {
			exp := b[2].(*ast.Literal)
			if exp.Value >= 0 {
				return nil, false
			}
			return rewrite.Write(pat("1 / _1 ^ (-_lit2)"), b), true
		},
	},
}
