// Package orchestrator implements component O (§4.8, §4.9): the top-level
// entry point that drives the pipeline over one input string and renders a
// Result.
package orchestrator

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/funvibe/derivex/internal/diagnostics"
	"github.com/funvibe/derivex/internal/pipeline"
)

// Result is the outcome of running one input through the pipeline. Errors
// holds every diagnostic collected along the way, rendered to text; it is
// never used to short-circuit the pipeline (§4.9).
type Result struct {
	RequestID  uuid.UUID
	Input      string
	ParsedAs   string
	Derivative string
	Errors     []string
	Timings    map[string]time.Duration
}

// Process runs one input through the full pipeline: parse, simplify in
// place, then the parsed-as and derivative presentation passes (§4.8). An
// input that is empty or all whitespace is reported without attempting to
// parse it at all (§4.9 empty-input case).
func Process(input string, debugTimings bool) Result {
	if strings.TrimSpace(input) == "" {
		return Result{
			RequestID: uuid.New(),
			Input:     input,
			Errors:    []string{diagnostics.EmptyInput().Error()},
		}
	}

	ctx := pipeline.NewContext(input, debugTimings)
	p := pipeline.New(
		pipeline.ParseStage{},
		pipeline.SimplifyStage{},
		pipeline.ParsedAsStage{},
		pipeline.DerivativeStage{},
	)
	ctx = p.Run(ctx)

	result := Result{
		RequestID:  ctx.RequestID,
		Input:      input,
		ParsedAs:   ctx.ParsedAs,
		Derivative: ctx.Derivative,
	}
	for _, e := range ctx.Errors {
		result.Errors = append(result.Errors, e.Error())
	}
	if debugTimings {
		result.Timings = ctx.Timings
	}
	return result
}
