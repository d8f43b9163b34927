// Package ast defines the expression tree produced by the parser (P) and
// consumed by every rewrite stage (S, Y, D) and the orchestrator (O). Per
// §3, the tree is a tagged variant over {Literal, Identifier, Binary,
// Unary, Error}; nodes are exclusively owned by their parent, there is no
// sharing or cycles, and equality is purely structural.
package ast

import "github.com/funvibe/derivex/internal/token"

// Operator is the tagged operator kind shared by Binary and Unary nodes.
// Binary uses all five; Unary uses only Minus (§3).
type Operator int

const (
	Plus Operator = iota
	Minus
	Asterisk
	Slash
	Exponent
)

// FromToken maps a token type to its Operator, for the operators the
// expression grammar supports. ok is false for anything else.
func FromToken(t token.TokenType) (Operator, bool) {
	switch t {
	case token.PLUS:
		return Plus, true
	case token.MINUS:
		return Minus, true
	case token.ASTERISK:
		return Asterisk, true
	case token.SLASH:
		return Slash, true
	case token.CARET, token.POWER:
		return Exponent, true
	default:
		return 0, false
	}
}

func (op Operator) String() string {
	switch op {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Asterisk:
		return "*"
	case Slash:
		return "/"
	case Exponent:
		return "^"
	default:
		return "?"
	}
}

// Expr is the base type of every expression tree node. Concrete types are
// *Literal, *Identifier, *Binary, *Unary and *Error.
type Expr interface {
	exprNode()
}

// Literal holds a 64-bit real value.
type Literal struct {
	Value float64
}

func (*Literal) exprNode() {}

// Identifier holds a name drawn from [A-Za-z]+. The differentiation
// variable is hard-wired to the name "x" (§3).
type Identifier struct {
	Name string
}

func (*Identifier) exprNode() {}

// IsX reports whether this identifier is the differentiation variable.
func (id *Identifier) IsX() bool { return id.Name == "x" }

// Binary is a two-child node; Op is one of Plus, Minus, Asterisk, Slash,
// Exponent.
type Binary struct {
	Left  Expr
	Op    Operator
	Right Expr
}

func (*Binary) exprNode() {}

// Unary is a one-child node; Op is always Minus (§3). A parsed prefix '+'
// is absorbed by the parser and never produces a Unary node.
type Unary struct {
	Op    Operator
	Right Expr
}

func (*Unary) exprNode() {}

// Error is the sentinel the parser fills in for invalid syntax. Downstream
// components treat it as opaque and propagate it unchanged (§3, §4.9).
type Error struct{}

func (*Error) exprNode() {}

// Clone deep-copies an expression tree. Trees are pure values with no
// sharing, so every rewrite that wants to retain the original takes a
// Clone first (§3 Lifecycles).
func Clone(e Expr) Expr {
	switch n := e.(type) {
	case *Literal:
		return &Literal{Value: n.Value}
	case *Identifier:
		return &Identifier{Name: n.Name}
	case *Binary:
		return &Binary{Left: Clone(n.Left), Op: n.Op, Right: Clone(n.Right)}
	case *Unary:
		return &Unary{Op: n.Op, Right: Clone(n.Right)}
	case *Error:
		return &Error{}
	default:
		return &Error{}
	}
}

// Equal reports whether two expressions are structurally equal. It is used
// both by the matcher's binding-coherence check (§4.3) and by the
// idempotence properties in §8.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *Literal:
		y, ok := b.(*Literal)
		return ok && x.Value == y.Value
	case *Identifier:
		y, ok := b.(*Identifier)
		return ok && x.Name == y.Name
	case *Binary:
		y, ok := b.(*Binary)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Unary:
		y, ok := b.(*Unary)
		return ok && x.Op == y.Op && Equal(x.Right, y.Right)
	case *Error:
		_, ok := b.(*Error)
		return ok
	default:
		return false
	}
}

// IsLiteral reports whether e is a *Literal - the distinction the matcher
// uses to decide AnyLiteral / AnyNonLiteral wildcard eligibility (§4.3).
func IsLiteral(e Expr) bool {
	_, ok := e.(*Literal)
	return ok
}
