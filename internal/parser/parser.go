// Package parser implements component P from §4.2: a Pratt
// precedence-climbing parser that turns a token stream into an
// ast.Expr tree. Diagnostics accumulate on the Parser and are read by the
// caller after Parse returns; a syntax error never aborts parsing, it
// fills in an *ast.Error and keeps going (§4.9).
package parser

import (
	"strconv"

	"github.com/funvibe/derivex/internal/ast"
	"github.com/funvibe/derivex/internal/diagnostics"
	"github.com/funvibe/derivex/internal/lexer"
	"github.com/funvibe/derivex/internal/token"
)

// Parser holds the state of one parse: the lexer it reads from, a
// one-token lookahead, and the diagnostics collected so far.
type Parser struct {
	lex       *lexer.Lexer
	curToken  token.Token
	peekToken token.Token
	Errors    []*diagnostics.DiagnosticError
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{lex: l}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

// Parse consumes the whole input and returns its expression tree. A
// trailing token past the end of a complete expression is reported as a
// diagnostic but does not change the returned tree (§4.2).
func (p *Parser) Parse() ast.Expr {
	expr := p.parseExpression(0)
	if p.curToken.Type != token.EOF {
		p.Errors = append(p.Errors, diagnostics.New(diagnostics.ErrTrailingToken, p.curToken))
	}
	return expr
}

func (p *Parser) parseExpression(minBP int) ast.Expr {
	left := p.parsePrefix()

	for {
		lbp := token.LeftBindingPower(p.curToken.Type)
		if lbp == token.NoBindingPower || lbp <= minBP {
			break
		}
		op, _ := ast.FromToken(p.curToken.Type)
		rbp := token.RightBindingPower(p.curToken.Type)
		p.nextToken()
		right := p.parseExpression(rbp - 1)
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}

	return left
}

func (p *Parser) parsePrefix() ast.Expr {
	switch p.curToken.Type {
	case token.NUMBER:
		return p.parseNumberLiteral()
	case token.IDENT:
		ident := &ast.Identifier{Name: p.curToken.Lexeme}
		p.nextToken()
		return ident
	case token.LPAREN:
		return p.parseGroupedExpression()
	case token.PLUS:
		p.nextToken()
		// Prefix '+' is a semantic no-op (§4.2): it is absorbed, no node
		// is emitted for it.
		return p.parseExpression(token.PrefixBindingPower - 1)
	case token.MINUS:
		p.nextToken()
		right := p.parseExpression(token.PrefixBindingPower - 1)
		if lit, ok := right.(*ast.Literal); ok {
			return &ast.Literal{Value: -lit.Value}
		}
		return &ast.Unary{Op: ast.Minus, Right: right}
	default:
		p.Errors = append(p.Errors, diagnostics.New(diagnostics.ErrNoExpression, p.curToken))
		return &ast.Error{}
	}
}

// parseNumberLiteral assumes the lexer already validated the lexeme: a
// token.NUMBER is only ever produced for a string strconv can parse.
func (p *Parser) parseNumberLiteral() ast.Expr {
	v, _ := strconv.ParseFloat(p.curToken.Lexeme, 64)
	p.nextToken()
	return &ast.Literal{Value: v}
}

func (p *Parser) parseGroupedExpression() ast.Expr {
	p.nextToken() // consume '('
	expr := p.parseExpression(0)
	if p.curToken.Type != token.RPAREN {
		p.Errors = append(p.Errors, diagnostics.New(diagnostics.ErrMissingParen, p.curToken))
		return &ast.Error{}
	}
	p.nextToken() // consume ')'
	return expr
}
