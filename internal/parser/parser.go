// Package parser turns a positioned token stream into a tree rooted at an
// ast.Module. Parse is total: structural problems are inlined as
// ast.SyntaxError nodes rather than returned as errors, and the function
// always reaches a completed Module.
//
// The algorithm is a single explicit stack of structural frames (Module,
// Sequence, Object, Definition, Evaluation). Before each token is
// dispatched, an implicit-closings pass runs to a fixed point: a dangling
// Object is popped once the token can no longer extend it, and a
// separator/closing token pops the current Evaluation (and, if exposed
// underneath it, a Definition). Dispatch then opens, extends, or closes
// frames according to the token's kind. At end of input the stack is
// drained down to the Module frame; any Sequence still open synthesises a
// SyntaxError child before it closes, while Evaluation/Object/Definition
// frames close silently.
package parser

import (
	"fmt"

	"github.com/ketdev/jiffle/internal/ast"
	"github.com/ketdev/jiffle/internal/diagnostics"
	"github.com/ketdev/jiffle/internal/token"
)

type frameKind int

const (
	frameModule frameKind = iota
	frameSequence
	frameObject
	frameDefinition
	frameEvaluation
)

// frame is the mutable build-up state for one open structural node. pos is
// the node's position so far; posSet distinguishes "not yet given a
// position" (Evaluation, before its first term) from "already anchored at
// an opening token" (Sequence/Object/Definition) so the first attach
// either seeds pos or only extends its length.
type frame struct {
	kind     frameKind
	pos      token.Position
	posSet   bool
	seqKind  ast.SequenceKind
	explicit bool
	symbol   string
	children []ast.Node
}

func newEvaluationFrame() *frame {
	return &frame{kind: frameEvaluation}
}

func newSequenceFrame(kind ast.SequenceKind, openPos token.Position) *frame {
	return &frame{kind: frameSequence, seqKind: kind, pos: openPos, posSet: true}
}

func newObjectFrame(pos token.Position, symbol string) *frame {
	return &frame{kind: frameObject, pos: pos, posSet: true, symbol: symbol}
}

func newDefinitionFrame(pos token.Position) *frame {
	return &frame{kind: frameDefinition, pos: pos, posSet: true}
}

// extend grows f's position so its end covers pos's end, seeding f.pos
// outright the first time (an Evaluation has no opening token of its own,
// so its position starts at its first term).
func (f *frame) extend(pos token.Position) {
	if !f.posSet {
		f.pos = pos
		f.posSet = true
		return
	}
	end := pos.Ch + pos.Len
	if end > f.pos.Ch+f.pos.Len {
		f.pos.Len = end - f.pos.Ch
	}
}

// addChild appends node as a direct child and extends f's position to
// cover it.
func (f *frame) addChild(node ast.Node) {
	f.children = append(f.children, node)
	f.extend(node.Position())
}

// build converts the frame's accumulated state into the final tree node.
// It returns nil for an Evaluation that never received a term — those are
// dropped rather than attached, so empty Evaluations are never created.
func (f *frame) build() ast.Node {
	switch f.kind {
	case frameSequence:
		return &ast.Sequence{Pos: f.pos, Kind: f.seqKind, Explicit: f.explicit, Items: f.children}
	case frameObject:
		return &ast.Object{Pos: f.pos, Symbol: f.symbol, Children: f.children}
	case frameDefinition:
		var body *ast.Evaluation
		if len(f.children) > 0 {
			body, _ = f.children[0].(*ast.Evaluation)
		}
		return &ast.Definition{Pos: f.pos, Body: body}
	case frameEvaluation:
		if len(f.children) == 0 {
			return nil
		}
		return &ast.Evaluation{Pos: f.pos, Terms: f.children}
	default:
		return nil
	}
}

// Parse converts tokens into a tree rooted at a Module. source is used
// only to recover the line/column of the synthetic end-of-input position
// (tokens themselves already carry ln/col); it is not otherwise consulted.
func Parse(tokens []token.Token, source string) *ast.Module {
	p := &parser{stack: []*frame{{kind: frameModule}}}
	for _, tok := range tokens {
		p.applyImplicitClosings(tok)
		p.dispatch(tok)
	}
	p.drainAtEOF(tokens, source)

	root := p.stack[0]
	return &ast.Module{
		Pos:      modulePosition(tokens),
		Explicit: root.explicit,
		Items:    root.children,
	}
}

type parser struct {
	stack []*frame
}

func (p *parser) top() *frame { return p.stack[len(p.stack)-1] }

func (p *parser) push(f *frame) { p.stack = append(p.stack, f) }

// pop removes the top frame, builds its node, and attaches it (if any) to
// the frame now exposed beneath it.
func (p *parser) pop() {
	f := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	node := f.build()
	if node == nil {
		return
	}
	p.top().addChild(node)
}

// closesCurrentGroup reports whether kind is one of the tokens that ends a
// term group: an explicit/implicit separator or a closing bracket.
func closesCurrentGroup(kind token.Kind) bool {
	switch kind {
	case token.Separator, token.SeparatorImplicit, token.SequenceEnd, token.DefinitionEnd, token.ParameterEnd:
		return true
	default:
		return false
	}
}

// extendsObject reports whether kind is one of the tokens that may extend
// a dangling Object (a parameter list, a definition body, or '=').
func extendsObject(kind token.Kind) bool {
	switch kind {
	case token.Definition, token.DefinitionStart, token.ParameterStart:
		return true
	default:
		return false
	}
}

func (p *parser) applyImplicitClosings(tok token.Token) {
	for {
		acted := false
		if p.top().kind == frameObject && !extendsObject(tok.Kind) {
			p.pop()
			acted = true
			continue
		}
		if closesCurrentGroup(tok.Kind) {
			switch p.top().kind {
			case frameEvaluation, frameDefinition:
				p.pop()
				acted = true
				continue
			}
		}
		if !acted {
			return
		}
	}
}

// ensureEvaluation opens an Evaluation frame to receive the upcoming term
// if one isn't already open.
func (p *parser) ensureEvaluation() {
	if p.top().kind != frameEvaluation {
		p.push(newEvaluationFrame())
	}
}

// ensureObjectFor opens an anonymous Object (inside an Evaluation) to
// attach a parameter list or definition body to, when the preceding token
// wasn't itself a symbol.
func (p *parser) ensureObjectFor(pos token.Position) {
	if p.top().kind == frameObject {
		return
	}
	p.ensureEvaluation()
	p.push(newObjectFrame(pos, ""))
}

func (p *parser) addTerm(node ast.Node) {
	p.ensureEvaluation()
	p.top().addChild(node)
}

// syntaxErrorNode builds the in-band tree node for a diagnostic, stamping
// it with the same phase/code diagnostics.New would record, so a later
// diagnostics.Collect pass can recover a structured DiagnosticError without
// re-parsing the message text.
func syntaxErrorNode(phase diagnostics.Phase, code diagnostics.ErrorCode, pos token.Position, args ...interface{}) *ast.SyntaxError {
	d := diagnostics.New(phase, code, pos, args...)
	return &ast.SyntaxError{Pos: pos, Phase: string(d.Phase), Code: string(d.Code), Message: d.Message}
}

func (p *parser) emitErrorTerm(pos token.Position, code diagnostics.ErrorCode) {
	p.addTerm(syntaxErrorNode(diagnostics.PhaseParser, code, pos))
}

// closeBracket extends the open frame's position with the closing token
// (whose span belongs to the frame) and pops it.
func (p *parser) closeBracket(tok token.Token) {
	p.top().extend(tok.Pos)
	p.pop()
}

func (p *parser) dispatch(tok token.Token) {
	switch tok.Kind {
	case token.Comment:
		// Ignored: opens and closes nothing.

	case token.Null:
		p.addTerm(&ast.NullLiteral{Pos: tok.Pos})

	case token.True:
		p.addTerm(&ast.BoolLiteral{Pos: tok.Pos, Value: true})

	case token.False:
		p.addTerm(&ast.BoolLiteral{Pos: tok.Pos, Value: false})

	case token.Integer:
		p.addTerm(&ast.IntegerLiteral{Pos: tok.Pos, Value: tok.Literal.(int64)})

	case token.Real:
		p.addTerm(&ast.RealLiteral{Pos: tok.Pos, Value: tok.Literal.(float64)})

	case token.String:
		p.addTerm(&ast.StringLiteral{Pos: tok.Pos, Value: tok.Literal.(string)})

	case token.UserError:
		p.addTerm(&ast.UserError{Pos: tok.Pos, Value: tok.Literal.(string)})

	case token.SyntaxError:
		p.addTerm(syntaxErrorNode(diagnostics.PhaseLexer, diagnostics.ErrL001, tok.Pos, tok.Lexeme))

	case token.Symbol:
		p.ensureEvaluation()
		p.push(newObjectFrame(tok.Pos, tok.Lexeme))

	case token.SequenceStart:
		p.ensureEvaluation()
		p.push(newSequenceFrame(ast.SeqDefault, tok.Pos))

	case token.SequenceEnd:
		if p.top().kind == frameSequence && p.top().seqKind == ast.SeqDefault {
			p.closeBracket(tok)
		} else {
			p.emitErrorTerm(tok.Pos, diagnostics.ErrP001)
		}

	case token.ParameterStart:
		p.ensureObjectFor(tok.Pos)
		p.push(newSequenceFrame(ast.SeqParameterList, tok.Pos))

	case token.ParameterEnd:
		if p.top().kind == frameSequence && p.top().seqKind == ast.SeqParameterList {
			p.closeBracket(tok)
		} else {
			p.emitErrorTerm(tok.Pos, diagnostics.ErrP002)
		}

	case token.Definition:
		if p.top().kind == frameObject {
			p.push(newDefinitionFrame(tok.Pos))
			p.push(newEvaluationFrame())
		} else {
			p.emitErrorTerm(tok.Pos, diagnostics.ErrP004)
		}

	case token.DefinitionStart:
		p.ensureObjectFor(tok.Pos)
		p.push(newSequenceFrame(ast.SeqDefinitionBody, tok.Pos))

	case token.DefinitionEnd:
		if p.top().kind == frameSequence && p.top().seqKind == ast.SeqDefinitionBody {
			p.closeBracket(tok)
			if p.top().kind == frameObject {
				p.pop()
			}
		} else {
			p.emitErrorTerm(tok.Pos, diagnostics.ErrP003)
		}

	case token.Separator:
		p.top().explicit = true

	case token.SeparatorImplicit:
		// Acts as a separator with no further effect; the implicit-closings
		// pass already closed the preceding term group.

	default:
		panic(fmt.Sprintf("parser: unhandled token kind %v", tok.Kind))
	}
}

// drainAtEOF closes every frame still open above the Module. A Sequence
// variant requires a closing token it never received, so it gets a
// synthetic SyntaxError child recording that before it closes; Evaluation,
// Object, and Definition frames have no required closing token and close
// silently.
func (p *parser) drainAtEOF(tokens []token.Token, source string) {
	eofPos := eofPosition(tokens, source)
	for len(p.stack) > 1 {
		f := p.top()
		switch f.kind {
		case frameEvaluation, frameObject, frameDefinition:
		default:
			f.addChild(syntaxErrorNode(diagnostics.PhaseParser, diagnostics.ErrP005, eofPos))
		}
		p.pop()
	}
}

// eofPosition is a zero-length position just past the last token
// consumed, or the origin if there were no tokens at all.
func eofPosition(tokens []token.Token, source string) token.Position {
	if len(tokens) == 0 {
		return token.Position{}
	}
	last := tokens[len(tokens)-1]
	ch := last.Pos.End()
	ln, col := lineColAt(source, ch)
	return token.Position{Ch: ch, Len: 0, Ln: ln, Col: col}
}

func lineColAt(source string, ch int) (ln, col int) {
	lastNewline := -1
	for i := 0; i < ch && i < len(source); i++ {
		if source[i] == '\n' {
			ln++
			lastNewline = i
		}
	}
	return ln, ch - (lastNewline + 1)
}

// modulePosition mirrors the reference structurizer: the Module's length
// is the offset just past the last token, independent of which tokens
// became tree children (a trailing comment still extends it, even though
// comments are never attached). Empty input yields the zero position.
func modulePosition(tokens []token.Token) token.Position {
	if len(tokens) == 0 {
		return token.Position{}
	}
	return token.Position{Ch: 0, Len: tokens[len(tokens)-1].Pos.End(), Ln: 0, Col: 0}
}
