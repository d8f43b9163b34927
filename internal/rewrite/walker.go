package rewrite

import "github.com/funvibe/derivex/internal/ast"

// Walker is the traversal driver shared by Simplify and Prettify (§4.4
// "Traversal"). It is a value holding its own state - here, nothing more
// than the rule set and where to send iteration-cap warnings - and it
// dispatches per node kind with a plain type switch rather than a class
// hierarchy (Design note 9).
type Walker struct {
	Rules RuleSet
	Warn  func(string)
}

func New(rules RuleSet, warn func(string)) *Walker {
	return &Walker{Rules: rules, Warn: warn}
}

// Run walks root in post-order, applies the rule set at each node, and
// re-walks the replacement to catch nested opportunities the rewrite
// created - repeating until a full walk makes no further change.
func (w *Walker) Run(root ast.Expr) ast.Expr {
	for {
		next, changed := w.pass(root)
		if !changed {
			return next
		}
		root = next
	}
}

func (w *Walker) pass(node ast.Expr) (ast.Expr, bool) {
	changed := false

	switch n := node.(type) {
	case *ast.Binary:
		left, c1 := w.pass(n.Left)
		n.Left = left
		right, c2 := w.pass(n.Right)
		n.Right = right
		changed = c1 || c2
	case *ast.Unary:
		right, c := w.pass(n.Right)
		n.Right = right
		changed = c
	}

	before := node
	after := ApplyAtNode(w.Rules, node, w.Warn)
	if !ast.Equal(before, after) {
		changed = true
	}
	return after, changed
}
