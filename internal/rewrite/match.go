// Package rewrite implements the matcher/writer (M) and the fixed-point
// rewrite engine (F) from §4.3 and §4.4. It is the generic machinery that
// Simplify, Prettify and Derivative each parameterize with their own
// ordered rule set.
package rewrite

import (
	"github.com/funvibe/derivex/internal/ast"
	"github.com/funvibe/derivex/internal/pattern"
)

// Bindings maps a wildcard id to the expression it matched. Bindings
// accumulate during a match attempt; a failed match may leave partial
// bindings, so the result is only meaningful when Match returned true
// (§3 Match result).
type Bindings map[int]ast.Expr

// Match walks pat and e in lock-step per §4.3. It returns false as soon as
// any sub-match fails; bindings already inserted are left as-is (callers
// must start from a fresh Bindings for each attempt).
func Match(pat pattern.Pattern, e ast.Expr, b Bindings) bool {
	switch p := pat.(type) {
	case *pattern.Literal:
		lit, ok := e.(*ast.Literal)
		return ok && lit.Value == p.Value

	case *pattern.AnySubExpr:
		return insert(b, p.ID, e)

	case *pattern.AnyLiteral:
		if !ast.IsLiteral(e) {
			return false
		}
		return insert(b, p.ID, e)

	case *pattern.AnyNonLiteral:
		if ast.IsLiteral(e) {
			return false
		}
		return insert(b, p.ID, e)

	case *pattern.Binary:
		bin, ok := e.(*ast.Binary)
		if !ok || bin.Op != p.Op {
			return false
		}
		return Match(p.Left, bin.Left, b) && Match(p.Right, bin.Right, b)

	case *pattern.Unary:
		un, ok := e.(*ast.Unary)
		if !ok || un.Op != p.Op {
			return false
		}
		return Match(p.Right, un.Right, b)

	case *pattern.Error:
		_, ok := e.(*ast.Error)
		return ok

	default:
		return false
	}
}

// insert records id -> e, or verifies coherence against an existing
// binding for the same id (§3 Invariants, §4.3 binding coherence): two
// wildcards sharing an id must bind to structurally equal sub-expressions.
func insert(b Bindings, id int, e ast.Expr) bool {
	if existing, ok := b[id]; ok {
		return ast.Equal(existing, e)
	}
	b[id] = e
	return true
}
