package ast

import (
	"strconv"
	"strings"
)

// Format renders an expression using the canonical emission grammar from
// §4.8 and §6: every internal node fully parenthesized, binary operators
// single-spaced, unary minus glued to its operand, '**' never emitted. It
// is used for both the "parsed as" and derivative output texts.
func Format(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

func writeExpr(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Literal:
		b.WriteString(formatNumber(n.Value))
	case *Identifier:
		b.WriteString(n.Name)
	case *Binary:
		b.WriteByte('(')
		writeExpr(b, n.Left)
		b.WriteByte(' ')
		b.WriteString(n.Op.String())
		b.WriteByte(' ')
		writeExpr(b, n.Right)
		b.WriteByte(')')
	case *Unary:
		b.WriteByte('(')
		b.WriteString(n.Op.String())
		writeExpr(b, n.Right)
		b.WriteByte(')')
	case *Error:
		b.WriteString("err")
	default:
		b.WriteString("err")
	}
}

// formatNumber renders a literal as "n" if n >= 0, else "(n)" - a
// parenthesized negative (§4.8).
func formatNumber(n float64) string {
	s := strconv.FormatFloat(n, 'g', -1, 64)
	if n < 0 {
		return "(" + s + ")"
	}
	return s
}
