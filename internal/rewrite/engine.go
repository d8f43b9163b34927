package rewrite

import (
	"github.com/funvibe/derivex/internal/ast"
	"github.com/funvibe/derivex/internal/pattern"
)

// Pattern is re-exported from the pattern package so callers authoring
// rule sets only need to import rewrite.
type Pattern = pattern.Pattern

// MaxIterationsPerApply bounds the per-node fixed-point loop (§4.4). This
// guards against an oscillating rule set; exceeding it is a soft failure,
// not a crash.
const MaxIterationsPerApply = 500

// Rule pairs a pattern with either a template to instantiate or a handler
// callback. A handler returning ok=false acts as a veto: the rule is
// considered inapplicable and the driver moves on to the next rule (§3
// Transformation).
type Rule struct {
	Pattern  Pattern
	Template Pattern // instantiated via Write when Handler is nil
	Handler  func(Bindings) (ast.Expr, bool)
}

// apply attempts this rule at node. ok is false if the pattern did not
// match, or if a handler vetoed.
func (r Rule) apply(node ast.Expr) (ast.Expr, bool) {
	b := Bindings{}
	if !Match(r.Pattern, node, b) {
		return nil, false
	}
	if r.Handler != nil {
		return r.Handler(b)
	}
	return Write(r.Template, b), true
}

// RuleSet is an ordered list of transformations; order is the contract -
// earlier rules commit first (§4.4).
type RuleSet []Rule

// applyPass makes one pass over the rule set in order, committing every
// match it finds and carrying the replacement forward to the next rule.
func (rs RuleSet) applyPass(node ast.Expr) (ast.Expr, bool) {
	changed := false
	for _, r := range rs {
		out, ok := r.apply(node)
		if !ok {
			continue
		}
		node = out
		changed = true
	}
	return node, changed
}

// ApplyAtNode drives rs to a fixed point at a single node: repeated passes
// until one yields no change, bounded by MaxIterationsPerApply. Exceeding
// the cap emits a warning via warn (if non-nil) and returns the current
// expression as-is (§4.4, §4.9).
func ApplyAtNode(rs RuleSet, node ast.Expr, warn func(string)) ast.Expr {
	for i := 0; i < MaxIterationsPerApply; i++ {
		next, changed := rs.applyPass(node)
		node = next
		if !changed {
			return node
		}
	}
	if warn != nil {
		warn("rewrite: exceeded iteration cap, returning current expression")
	}
	return node
}
