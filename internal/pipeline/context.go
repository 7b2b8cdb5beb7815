package pipeline

import (
	"github.com/ketdev/jiffle/internal/ast"
	"github.com/ketdev/jiffle/internal/diagnostics"
	"github.com/ketdev/jiffle/internal/token"
)

// PipelineContext holds the data passed between pipeline stages. Tokens
// and TreeRoot are filled in by LexerProcessor and ParserProcessor
// respectively; Errors accumulates structured diagnostics collected
// alongside (not instead of) the in-band SyntaxError nodes in TreeRoot.
type PipelineContext struct {
	SourceCode string
	FilePath   string

	Tokens   []token.Token
	TreeRoot *ast.Module

	Errors []*diagnostics.DiagnosticError
}

// NewPipelineContext creates and initializes a new PipelineContext.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{
		SourceCode: source,
		Errors:     []*diagnostics.DiagnosticError{},
	}
}
