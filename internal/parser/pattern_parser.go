package parser

import (
	"strconv"
	"strings"

	"github.com/funvibe/derivex/internal/ast"
	"github.com/funvibe/derivex/internal/lexer"
	"github.com/funvibe/derivex/internal/pattern"
	"github.com/funvibe/derivex/internal/token"
)

// PatternParser implements component R from §4.2: the same Pratt grammar
// and binding-power table as Parser, with atoms additionally accepting the
// three wildcard token kinds. Rule sets are authored as short pattern
// strings (§3 Lifecycles, Design note 9), so this parser is not expected to
// handle malformed input gracefully - a bad pattern string is a programmer
// error and panics rather than returning a diagnostic.
type PatternParser struct {
	lex       *lexer.Lexer
	curToken  token.Token
	peekToken token.Token
}

func NewPattern(l *lexer.Lexer) *PatternParser {
	p := &PatternParser{lex: l}
	p.nextToken()
	p.nextToken()
	return p
}

// MustParse parses a single pattern source string, panicking on malformed
// input. It is used at package init time to compile the fixed rule sets of
// S, Y and D (§3 Lifecycles: "compiled once from their source strings at
// program start and then immutable").
func MustParse(src string) pattern.Pattern {
	p := NewPattern(lexer.New(src))
	pat := p.parsePattern(0)
	if p.curToken.Type != token.EOF {
		panic("pattern: trailing token after " + src)
	}
	return pat
}

func (p *PatternParser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

func (p *PatternParser) parsePattern(minBP int) pattern.Pattern {
	left := p.parsePrefix()

	for {
		lbp := token.LeftBindingPower(p.curToken.Type)
		if lbp == token.NoBindingPower || lbp <= minBP {
			break
		}
		op, _ := ast.FromToken(p.curToken.Type)
		rbp := token.RightBindingPower(p.curToken.Type)
		p.nextToken()
		right := p.parsePattern(rbp - 1)
		left = &pattern.Binary{Left: left, Op: op, Right: right}
	}

	return left
}

func (p *PatternParser) parsePrefix() pattern.Pattern {
	switch p.curToken.Type {
	case token.NUMBER:
		v, _ := strconv.ParseFloat(p.curToken.Lexeme, 64)
		p.nextToken()
		return &pattern.Literal{Value: v}
	case token.WILD_ANY:
		id := mustWildcardID(p.curToken.Lexeme, "_")
		p.nextToken()
		return &pattern.AnySubExpr{ID: id}
	case token.WILD_LIT:
		id := mustWildcardID(p.curToken.Lexeme, "_lit")
		p.nextToken()
		return &pattern.AnyLiteral{ID: id}
	case token.WILD_NONLIT:
		id := mustWildcardID(p.curToken.Lexeme, "_nonlit")
		p.nextToken()
		return &pattern.AnyNonLiteral{ID: id}
	case token.LPAREN:
		p.nextToken()
		inner := p.parsePattern(0)
		if p.curToken.Type != token.RPAREN {
			panic("pattern: expected ')'")
		}
		p.nextToken()
		return inner
	case token.PLUS:
		p.nextToken()
		return p.parsePattern(token.PrefixBindingPower - 1)
	case token.MINUS:
		p.nextToken()
		right := p.parsePattern(token.PrefixBindingPower - 1)
		if lit, ok := right.(*pattern.Literal); ok {
			return &pattern.Literal{Value: -lit.Value}
		}
		return &pattern.Unary{Op: ast.Minus, Right: right}
	default:
		panic("pattern: unexpected token " + string(p.curToken.Type))
	}
}

func mustWildcardID(lexeme, prefix string) int {
	digits := strings.TrimPrefix(lexeme, prefix)
	n, err := strconv.Atoi(digits)
	if err != nil {
		panic("pattern: malformed wildcard " + lexeme)
	}
	return n
}
