package parser

import "github.com/ketdev/jiffle/internal/pipeline"

// ParserProcessor is the pipeline stage wrapping Parse. It expects
// ctx.Tokens to have already been populated by lexer.LexerProcessor.
type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.TreeRoot = Parse(ctx.Tokens, ctx.SourceCode)
	return ctx
}
