package rewrite

import (
	"fmt"

	"github.com/funvibe/derivex/internal/ast"
	"github.com/funvibe/derivex/internal/pattern"
)

// Write instantiates a template pattern into an expression using bindings,
// per §4.3. An absent or mistyped binding is a programmer error - a rule
// authoring bug, not user input - and panics rather than failing
// gracefully (§3 Invariants, §4.3 failure mode).
func Write(tpl pattern.Pattern, b Bindings) ast.Expr {
	switch p := tpl.(type) {
	case *pattern.Literal:
		return &ast.Literal{Value: p.Value}

	case *pattern.AnySubExpr:
		return ast.Clone(lookup(b, p.ID))

	case *pattern.AnyLiteral:
		bound := lookup(b, p.ID)
		if !ast.IsLiteral(bound) {
			panic(fmt.Sprintf("rewrite: binding for _lit%d is not a literal", p.ID))
		}
		return ast.Clone(bound)

	case *pattern.AnyNonLiteral:
		bound := lookup(b, p.ID)
		if ast.IsLiteral(bound) {
			panic(fmt.Sprintf("rewrite: binding for _nonlit%d is a literal", p.ID))
		}
		return ast.Clone(bound)

	case *pattern.Binary:
		return &ast.Binary{Left: Write(p.Left, b), Op: p.Op, Right: Write(p.Right, b)}

	case *pattern.Unary:
		if p.Op != ast.Minus {
			// Any other unary op in a template is a pass-through: this is
			// how a template-level unary Plus would evaporate (§4.3).
			return Write(p.Right, b)
		}
		child := Write(p.Right, b)
		if lit, ok := child.(*ast.Literal); ok {
			return &ast.Literal{Value: -lit.Value}
		}
		return &ast.Unary{Op: ast.Minus, Right: child}

	case *pattern.Error:
		return &ast.Error{}

	default:
		panic("rewrite: unknown pattern node in template")
	}
}

func lookup(b Bindings, id int) ast.Expr {
	e, ok := b[id]
	if !ok {
		panic(fmt.Sprintf("rewrite: template references unbound id %d", id))
	}
	return e
}
