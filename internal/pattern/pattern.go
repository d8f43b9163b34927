// Package pattern defines the pattern tree produced by the rewrite-pattern
// parser (R) and consumed by the matcher/writer (M). Per §3 it is a tagged
// variant over {Literal, AnySubExpr, AnyLiteral, AnyNonLiteral, Binary,
// Unary, Error}; wildcards carry a non-negative integer id, and identical
// ids within one pattern denote the same sub-expression.
package pattern

import "github.com/funvibe/derivex/internal/ast"

// Pattern is the base type of every pattern-tree node.
type Pattern interface {
	patternNode()
}

// Literal matches only an ast.Literal with an equal value.
type Literal struct {
	Value float64
}

func (*Literal) patternNode() {}

// AnySubExpr binds to any expression, including *ast.Error.
type AnySubExpr struct {
	ID int
}

func (*AnySubExpr) patternNode() {}

// AnyLiteral binds only to an *ast.Literal.
type AnyLiteral struct {
	ID int
}

func (*AnyLiteral) patternNode() {}

// AnyNonLiteral binds to anything except an *ast.Literal.
type AnyNonLiteral struct {
	ID int
}

func (*AnyNonLiteral) patternNode() {}

// Binary and Unary reuse the expression algebra's Operator kinds (§3).
type Binary struct {
	Left  Pattern
	Op    ast.Operator
	Right Pattern
}

func (*Binary) patternNode() {}

type Unary struct {
	Op    ast.Operator
	Right Pattern
}

func (*Unary) patternNode() {}

// Error matches only an *ast.Error.
type Error struct{}

func (*Error) patternNode() {}
