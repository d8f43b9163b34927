// Package pipeline chains the stages of component O (§4.8): parse,
// simplify, and the two presentation passes that produce the "parsed as"
// and derivative output strings. Stages implement Processor so the chain
// itself stays generic (adapted from the teacher's Processor/Context
// chain); only Context carries domain state.
package pipeline

// Processor is one named stage of the pipeline. Name is used only for
// optional per-stage timing (§4.8 debug timings).
type Processor interface {
	Process(ctx *Context) *Context
	Name() string
}
