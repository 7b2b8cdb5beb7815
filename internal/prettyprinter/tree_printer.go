// Package prettyprinter dumps an ast.Module tree for debugging and tests.
// It carries no semantic opinion: every node is rendered the same way
// regardless of what a downstream evaluator might later do with it.
package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ketdev/jiffle/internal/ast"
	"github.com/ketdev/jiffle/internal/token"
)

// TreePrinter renders a tree as indented lines, one construct per line.
type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *TreePrinter) writeIndent() {
	p.write(strings.Repeat("  ", p.indent))
}

func (p *TreePrinter) line(s string) {
	p.writeIndent()
	p.write(s)
	p.write("\n")
}

// Print renders m and returns the accumulated text.
func Print(m *ast.Module) string {
	p := NewTreePrinter()
	m.Accept(p)
	return p.String()
}

func (p *TreePrinter) VisitModule(n *ast.Module) {
	p.line(fmt.Sprintf("Module %s explicit=%v", posStr(n.Pos), n.Explicit))
	p.indent++
	for _, item := range n.Items {
		item.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitSequence(n *ast.Sequence) {
	p.line(fmt.Sprintf("Sequence(%s) %s explicit=%v", sequenceKindName(n.Kind), posStr(n.Pos), n.Explicit))
	p.indent++
	for _, item := range n.Items {
		item.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitEvaluation(n *ast.Evaluation) {
	p.line(fmt.Sprintf("Evaluation %s", posStr(n.Pos)))
	p.indent++
	for _, term := range n.Terms {
		term.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitObject(n *ast.Object) {
	p.line(fmt.Sprintf("Object(%s) %s", n.Symbol, posStr(n.Pos)))
	p.indent++
	for _, child := range n.Children {
		child.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitDefinition(n *ast.Definition) {
	p.line(fmt.Sprintf("Definition %s", posStr(n.Pos)))
	p.indent++
	if n.Body != nil {
		n.Body.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitNull(n *ast.NullLiteral) {
	p.line(fmt.Sprintf("Null %s", posStr(n.Pos)))
}

func (p *TreePrinter) VisitBool(n *ast.BoolLiteral) {
	p.line(fmt.Sprintf("Bool(%v) %s", n.Value, posStr(n.Pos)))
}

func (p *TreePrinter) VisitInteger(n *ast.IntegerLiteral) {
	p.line(fmt.Sprintf("Integer(%d) %s", n.Value, posStr(n.Pos)))
}

func (p *TreePrinter) VisitReal(n *ast.RealLiteral) {
	p.line(fmt.Sprintf("Real(%v) %s", n.Value, posStr(n.Pos)))
}

func (p *TreePrinter) VisitString(n *ast.StringLiteral) {
	p.line(fmt.Sprintf("String(%q) %s", n.Value, posStr(n.Pos)))
}

func (p *TreePrinter) VisitUserError(n *ast.UserError) {
	p.line(fmt.Sprintf("UserError(%q) %s", n.Value, posStr(n.Pos)))
}

func (p *TreePrinter) VisitSyntaxError(n *ast.SyntaxError) {
	p.line(fmt.Sprintf("SyntaxError(%s) %s", n.Message, posStr(n.Pos)))
}

func posStr(pos token.Position) string {
	return pos.String()
}

func sequenceKindName(k ast.SequenceKind) string {
	switch k {
	case ast.SeqDefinitionBody:
		return "definition-body"
	case ast.SeqParameterList:
		return "parameter-list"
	default:
		return "default"
	}
}

var _ ast.Visitor = (*TreePrinter)(nil)
