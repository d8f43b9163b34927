package derivative

import (
	"github.com/funvibe/derivex/internal/ast"
	"github.com/funvibe/derivex/internal/rewrite"
)

// rules is the rule set Differentiate iterates. It is assigned from Rules in
// init, because Rules' handlers call Differentiate and a direct reference
// would make the two an initialization cycle.
var rules rewrite.RuleSet

func init() { rules = Rules }

// Differentiate computes d/dx of e (component D). Unlike Simplify and
// Prettify, which drive a rule set to a fixed point at every node, D tries
// Rules in order and takes the first successful match; recursion into
// sub-expressions happens inside the matching rule's own handler, not by
// re-walking the tree afterward (§4.7). Every node shape reaching the
// catch-all rule still produces a result, so Differentiate never returns
// ok=false to its own caller.
func Differentiate(e ast.Expr) ast.Expr {
	for _, r := range rules {
		b := rewrite.Bindings{}
		if !rewrite.Match(r.Pattern, e, b) {
			continue
		}
		if r.Handler == nil {
			return rewrite.Write(r.Template, b)
		}
		out, ok := r.Handler(b)
		if !ok {
			continue
		}
		return out
	}
	return &ast.Error{}
}
