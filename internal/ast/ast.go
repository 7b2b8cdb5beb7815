// Package ast defines the expression tree produced by the parser: Module,
// Sequence, Evaluation, Object, Definition, and the primitive/error leaf
// values, as described in spec.md §3. Every node carries its source
// position; dispatch over the node kinds is by the Visitor interface
// rather than by downcasting.
package ast

import "github.com/ketdev/jiffle/internal/token"

// Node is satisfied by every tree node, including Module.
type Node interface {
	Position() token.Position
	Accept(v Visitor)
}

// Visitor dispatches over every concrete Node kind.
type Visitor interface {
	VisitModule(*Module)
	VisitSequence(*Sequence)
	VisitEvaluation(*Evaluation)
	VisitObject(*Object)
	VisitDefinition(*Definition)
	VisitNull(*NullLiteral)
	VisitBool(*BoolLiteral)
	VisitInteger(*IntegerLiteral)
	VisitReal(*RealLiteral)
	VisitString(*StringLiteral)
	VisitUserError(*UserError)
	VisitSyntaxError(*SyntaxError)
}

// Module is the root of every parse: the outermost sequence of top-level
// Evaluations. It has no parent and is never itself a child.
type Module struct {
	Pos      token.Position
	Explicit bool // set when a visible ',' separator appeared at top level
	Items    []Node
}

func (m *Module) Position() token.Position { return m.Pos }
func (m *Module) Accept(v Visitor)         { v.VisitModule(m) }

// SequenceKind records which bracket (if any) introduced a Sequence.
type SequenceKind int

const (
	SeqDefault SequenceKind = iota
	SeqDefinitionBody
	SeqParameterList
)

// Sequence is an ordered collection of Evaluations, optionally wrapped in
// ( ), { }, or [ ]. Explicit is set the first time a visible ',' appears
// directly inside it; a bare '\n' never sets it.
//
// Items is normally a run of *Evaluation, but may also directly hold a
// *SyntaxError — synthesised when end of input is reached with this
// Sequence still open (see parser.Parse's drain step).
type Sequence struct {
	Pos      token.Position
	Kind     SequenceKind
	Explicit bool
	Items    []Node
}

func (s *Sequence) Position() token.Position { return s.Pos }
func (s *Sequence) Accept(v Visitor)         { v.VisitSequence(s) }

// Evaluation is a run of juxtaposed terms the downstream evaluator will
// combine. Terms are primitives, error values, Objects, or nested
// Sequences. An Evaluation always has at least one term.
type Evaluation struct {
	Pos   token.Position
	Terms []Node
}

func (e *Evaluation) Position() token.Position { return e.Pos }
func (e *Evaluation) Accept(v Visitor)         { v.VisitEvaluation(e) }

// Object is a symbol reference that may own zero or more parameter-list
// Sequences (Kind == SeqParameterList) followed by at most one definition
// body: either a *Definition (from '=') or a *Sequence with
// Kind == SeqDefinitionBody (from '{ }').
type Object struct {
	Pos      token.Position
	Symbol   string
	Children []Node
}

func (o *Object) Position() token.Position { return o.Pos }
func (o *Object) Accept(v Visitor)         { v.VisitObject(o) }

// Parameters returns this Object's parameter-list children, in order.
func (o *Object) Parameters() []*Sequence {
	var params []*Sequence
	for _, c := range o.Children {
		if s, ok := c.(*Sequence); ok && s.Kind == SeqParameterList {
			params = append(params, s)
		}
	}
	return params
}

// DefinitionBody returns the '='-introduced Definition attached to this
// Object, or nil if there isn't one.
func (o *Object) DefinitionBody() *Definition {
	for _, c := range o.Children {
		if d, ok := c.(*Definition); ok {
			return d
		}
	}
	return nil
}

// DefinitionSequence returns the '{ }'-introduced Sequence attached to
// this Object, or nil if there isn't one.
func (o *Object) DefinitionSequence() *Sequence {
	for _, c := range o.Children {
		if s, ok := c.(*Sequence); ok && s.Kind == SeqDefinitionBody {
			return s
		}
	}
	return nil
}

// Definition is a '='-introduced body attached to an Object; its content
// is a single Evaluation.
type Definition struct {
	Pos  token.Position
	Body *Evaluation
}

func (d *Definition) Position() token.Position { return d.Pos }
func (d *Definition) Accept(v Visitor)         { v.VisitDefinition(d) }

// NullLiteral is the 'null' keyword.
type NullLiteral struct {
	Pos token.Position
}

func (n *NullLiteral) Position() token.Position { return n.Pos }
func (n *NullLiteral) Accept(v Visitor)         { v.VisitNull(n) }

// BoolLiteral is the 'true'/'false' keywords.
type BoolLiteral struct {
	Pos   token.Position
	Value bool
}

func (b *BoolLiteral) Position() token.Position { return b.Pos }
func (b *BoolLiteral) Accept(v Visitor)         { v.VisitBool(b) }

// IntegerLiteral is a decimal, hex, octal, or binary integer literal.
type IntegerLiteral struct {
	Pos   token.Position
	Value int64
}

func (i *IntegerLiteral) Position() token.Position { return i.Pos }
func (i *IntegerLiteral) Accept(v Visitor)         { v.VisitInteger(i) }

// RealLiteral is a decimal literal with a fractional part and/or exponent.
type RealLiteral struct {
	Pos   token.Position
	Value float64
}

func (r *RealLiteral) Position() token.Position { return r.Pos }
func (r *RealLiteral) Accept(v Visitor)         { v.VisitReal(r) }

// StringLiteral carries the body text between the two ' delimiters,
// verbatim: no escape-sequence processing is performed at this layer.
type StringLiteral struct {
	Pos   token.Position
	Value string
}

func (s *StringLiteral) Position() token.Position { return s.Pos }
func (s *StringLiteral) Accept(v Visitor)         { v.VisitString(s) }

// UserError carries the body text between the two ` delimiters.
type UserError struct {
	Pos   token.Position
	Value string
}

func (u *UserError) Position() token.Position { return u.Pos }
func (u *UserError) Accept(v Visitor)         { v.VisitUserError(u) }

// SyntaxError is an in-band error node inserted wherever the tokenizer or
// parser detected something it could not classify or reconcile. Message is
// the rendered human-readable description; Phase and Code mirror the
// diagnostics.Phase/diagnostics.ErrorCode that produced it (kept as plain
// strings here so this package doesn't need to import diagnostics) and let
// a caller reconstruct a structured diagnostics.DiagnosticError without
// re-deriving the code from the message text.
type SyntaxError struct {
	Pos     token.Position
	Phase   string
	Code    string
	Message string
}

func (s *SyntaxError) Position() token.Position { return s.Pos }
func (s *SyntaxError) Accept(v Visitor)         { v.VisitSyntaxError(s) }
