// Package token defines the lexical tokens produced by the lexer and
// consumed by the parser, plus the Position record attached to every
// token and every tree node.
package token

import "fmt"

// Position is a four-field source span: byte offset, byte length, and the
// 0-based line/column of the first byte. ln/col are derived by the lexer
// from newline counting; the parser only extends Len of existing
// positions, and computes ln/col itself only for the synthetic
// end-of-input position.
type Position struct {
	Ch  int // byte offset from the start of the source
	Len int // byte length of the span
	Ln  int // 0-based line
	Col int // 0-based column within the line
}

// End returns the offset one past the last byte covered by the position.
func (p Position) End() int {
	return p.Ch + p.Len
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Ln, p.Col)
}

// Kind identifies the lexical category of a Token.
type Kind string

const (
	// Comment spans '#' through the character preceding the newline.
	Comment Kind = "Comment"

	// Keywords, recognised only when they form a whole identifier.
	Null  Kind = "Null"
	True  Kind = "True"
	False Kind = "False"

	// Symbol is an identifier that is not one of the keywords above.
	Symbol Kind = "Symbol"

	// Integer and Real carry a parsed literal value (int64 / float64).
	Integer Kind = "Integer"
	Real    Kind = "Real"

	// String spans the two ' delimiters; Literal holds the body text.
	String Kind = "String"

	// UserError spans the two ` delimiters; Literal holds the body text.
	UserError Kind = "UserError"

	// SyntaxError covers an unclassified or malformed run of input.
	SyntaxError Kind = "SyntaxError"

	// Particles.
	Separator         Kind = "Separator"         // ,
	SeparatorImplicit Kind = "SeparatorImplicit" // \n
	SequenceStart     Kind = "SequenceStart"     // (
	SequenceEnd       Kind = "SequenceEnd"       // )
	Definition        Kind = "Definition"        // =
	DefinitionStart   Kind = "DefinitionStart"   // {
	DefinitionEnd     Kind = "DefinitionEnd"     // }
	ParameterStart    Kind = "ParameterStart"    // [
	ParameterEnd      Kind = "ParameterEnd"      // ]
)

// Token is a single lexical unit with its source position. Literal carries
// the parsed value for kinds that have one:
//
//	Integer    -> int64
//	Real       -> float64
//	String     -> string (body, delimiters stripped)
//	UserError  -> string (body, delimiters stripped)
//	Symbol     -> string (the identifier text)
//
// All other kinds leave Literal nil.
type Token struct {
	Kind    Kind
	Pos     Position
	Lexeme  string
	Literal interface{}
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Pos, t.Kind, t.Lexeme)
}
