// Package pipeline chains the lexer and parser stages over a shared
// PipelineContext, in the manner of a small compiler front end that may
// one day grow further stages (analysis, codegen) without its callers
// needing to change.
package pipeline

import "github.com/ketdev/jiffle/internal/diagnostics"

// Pipeline runs an ordered sequence of Processors.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order. Stages do not abort the pipeline on
// error, in keeping with the front end's errors-are-values design. Once
// every stage has run, and if a tree was produced, ctx.Errors is
// (re)populated by walking ctx.TreeRoot for in-band SyntaxError/UserError
// nodes, so a caller never has to walk the tree itself just to learn
// whether anything went wrong. Without a tree, ctx.Errors is left as is.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	if ctx.TreeRoot != nil {
		ctx.Errors = diagnostics.Collect(ctx.TreeRoot)
	}
	return ctx
}
