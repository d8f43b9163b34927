package prettify

import (
	"github.com/funvibe/derivex/internal/ast"
	"github.com/funvibe/derivex/internal/rewrite"
)

// Prettify drives Rules over e with the same post-order, re-walk-the-
// replacement traversal as Simplify (§4.6: "a second post-order walk to
// catch nested creations").
func Prettify(e ast.Expr, warn func(string)) ast.Expr {
	return rewrite.New(Rules, warn).Run(e)
}
