package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/funvibe/derivex/internal/ast"
	"github.com/funvibe/derivex/internal/diagnostics"
)

// Context holds everything passed between pipeline stages: the source
// text, the tree as it is progressively simplified in place, the two
// rendered output strings, and any diagnostics collected along the way
// (§4.8, §4.9 - diagnostics are collected, never fatal).
type Context struct {
	RequestID uuid.UUID
	Input     string

	Tree ast.Expr

	ParsedAs   string
	Derivative string

	Errors []*diagnostics.DiagnosticError

	// RecordTimings enables per-stage timing collection; Timings is left
	// nil when it is false.
	RecordTimings bool
	Timings       map[string]time.Duration

	warn func(string)
}

// NewContext starts a fresh pipeline run over source.
func NewContext(source string, recordTimings bool) *Context {
	ctx := &Context{
		RequestID:     uuid.New(),
		Input:         source,
		RecordTimings: recordTimings,
	}
	if recordTimings {
		ctx.Timings = make(map[string]time.Duration)
	}
	ctx.warn = func(msg string) {
		ctx.Errors = append(ctx.Errors, &diagnostics.DiagnosticError{
			Code:  diagnostics.ErrIterationCap,
			Phase: diagnostics.PhaseRewrite,
			Args:  []interface{}{msg},
		})
	}
	return ctx
}
