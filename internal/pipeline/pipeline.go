package pipeline

import "time"

// Pipeline runs an ordered list of stages over a Context, optionally timing
// each one. Errors accumulated on the Context are never fatal to the chain
// (§4.9): every stage runs regardless of what earlier stages recorded.
type Pipeline struct {
	stages []Processor
}

func New(stages ...Processor) *Pipeline {
	return &Pipeline{stages: stages}
}

func (p *Pipeline) Run(ctx *Context) *Context {
	for _, stage := range p.stages {
		if !ctx.RecordTimings {
			ctx = stage.Process(ctx)
			continue
		}
		start := time.Now()
		ctx = stage.Process(ctx)
		ctx.Timings[stage.Name()] = time.Since(start)
	}
	return ctx
}
