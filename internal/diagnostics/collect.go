package diagnostics

import "github.com/ketdev/jiffle/internal/ast"

// Collect walks m and returns a DiagnosticError for every in-band
// SyntaxError and UserError node it finds, in tree order. It's the bridge
// between the parser's in-tree error values and pipeline.PipelineContext's
// Errors slice, so a caller can report on what went wrong without writing
// its own tree walk.
func Collect(m *ast.Module) []*DiagnosticError {
	if m == nil {
		return nil
	}
	c := &collector{}
	m.Accept(c)
	return c.errors
}

type collector struct {
	errors []*DiagnosticError
}

func (c *collector) VisitModule(n *ast.Module) {
	for _, item := range n.Items {
		item.Accept(c)
	}
}

func (c *collector) VisitSequence(n *ast.Sequence) {
	for _, item := range n.Items {
		item.Accept(c)
	}
}

func (c *collector) VisitEvaluation(n *ast.Evaluation) {
	for _, term := range n.Terms {
		term.Accept(c)
	}
}

func (c *collector) VisitObject(n *ast.Object) {
	for _, child := range n.Children {
		child.Accept(c)
	}
}

func (c *collector) VisitDefinition(n *ast.Definition) {
	if n.Body != nil {
		n.Body.Accept(c)
	}
}

func (c *collector) VisitNull(*ast.NullLiteral)       {}
func (c *collector) VisitBool(*ast.BoolLiteral)       {}
func (c *collector) VisitInteger(*ast.IntegerLiteral) {}
func (c *collector) VisitReal(*ast.RealLiteral)       {}
func (c *collector) VisitString(*ast.StringLiteral)   {}

func (c *collector) VisitUserError(n *ast.UserError) {
	c.errors = append(c.errors, New(PhaseUser, ErrU001, n.Pos, n.Value))
}

func (c *collector) VisitSyntaxError(n *ast.SyntaxError) {
	c.errors = append(c.errors, &DiagnosticError{
		Phase:   Phase(n.Phase),
		Code:    ErrorCode(n.Code),
		Pos:     n.Pos,
		Message: n.Message,
	})
}

var _ ast.Visitor = (*collector)(nil)
