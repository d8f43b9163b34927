package simplify

import (
	"github.com/funvibe/derivex/internal/ast"
	"github.com/funvibe/derivex/internal/rewrite"
)

// Simplify drives Rules to a fixed point over e (component S). warn
// receives iteration-cap warnings from the underlying engine; it may be
// nil. Property: applying Simplify twice equals applying it once (§8).
func Simplify(e ast.Expr, warn func(string)) ast.Expr {
	return rewrite.New(Rules, warn).Run(e)
}
