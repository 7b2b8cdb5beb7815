package lexer

import "github.com/ketdev/jiffle/internal/pipeline"

// LexerProcessor is the pipeline stage wrapping Tokenize.
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.Tokens = Tokenize(ctx.SourceCode)
	return ctx
}
