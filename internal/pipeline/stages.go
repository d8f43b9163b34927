package pipeline

import (
	"github.com/funvibe/derivex/internal/ast"
	"github.com/funvibe/derivex/internal/derivative"
	"github.com/funvibe/derivex/internal/lexer"
	"github.com/funvibe/derivex/internal/parser"
	"github.com/funvibe/derivex/internal/prettify"
	"github.com/funvibe/derivex/internal/simplify"
)

// ParseStage runs L and P over ctx.Input and leaves the raw tree on
// ctx.Tree. A syntax error is recorded as a diagnostic but still yields a
// (possibly partial) tree - the pipeline never stops here (§4.2, §4.9).
type ParseStage struct{}

func (ParseStage) Name() string { return "parse" }

func (ParseStage) Process(ctx *Context) *Context {
	p := parser.New(lexer.New(ctx.Input))
	ctx.Tree = p.Parse()
	ctx.Errors = append(ctx.Errors, p.Errors...)
	return ctx
}

// SimplifyStage drives S to a fixed point over ctx.Tree in place (§4.8:
// "simplify the parsed tree in place before anything else touches it").
type SimplifyStage struct{}

func (SimplifyStage) Name() string { return "simplify" }

func (SimplifyStage) Process(ctx *Context) *Context {
	ctx.Tree = simplify.Simplify(ctx.Tree, ctx.warn)
	return ctx
}

// ParsedAsStage renders the "parsed as" output string: a clone of the
// already-simplified tree, prettified for display, re-simplified to clean
// up anything prettify's expansions introduced, then formatted (§4.6, §4.8).
type ParsedAsStage struct{}

func (ParsedAsStage) Name() string { return "parsed-as" }

func (ParsedAsStage) Process(ctx *Context) *Context {
	display := ast.Clone(ctx.Tree)
	display = prettify.Prettify(display, ctx.warn)
	display = simplify.Simplify(display, ctx.warn)
	ctx.ParsedAs = ast.Format(display)
	return ctx
}

// DerivativeStage computes D over the simplified tree, then simplifies,
// prettifies and simplifies again before formatting - the same
// simplify/prettify/simplify presentation pass as ParsedAsStage, run over
// the differentiated tree instead of a clone of the original (§4.7, §4.8).
type DerivativeStage struct{}

func (DerivativeStage) Name() string { return "derivative" }

func (DerivativeStage) Process(ctx *Context) *Context {
	d := derivative.Differentiate(ctx.Tree)
	d = simplify.Simplify(d, ctx.warn)
	d = prettify.Prettify(d, ctx.warn)
	d = simplify.Simplify(d, ctx.warn)
	ctx.Derivative = ast.Format(d)
	return ctx
}
