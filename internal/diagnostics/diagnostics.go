// Package diagnostics gives the in-band SyntaxError values produced by the
// lexer and parser a stable phase/code/message shape, so a caller walking
// the tree sees the same structured triple regardless of which layer
// detected the problem.
package diagnostics

import (
	"fmt"

	"github.com/ketdev/jiffle/internal/token"
)

// Phase identifies which stage of the pipeline detected a problem.
type Phase string

const (
	PhaseLexer  Phase = "lexer"
	PhaseParser Phase = "parser"

	// PhaseUser tags UserError tree nodes when they're collected alongside
	// genuine lexer/parser diagnostics: the source author raised these
	// deliberately, but a caller walking ctx.Errors still wants to see them.
	PhaseUser Phase = "user"
)

type ErrorCode string

const (
	// ErrL001 covers any byte run the lexer could not classify into a
	// particle, keyword, identifier, number, string, or user-error marker.
	ErrL001 ErrorCode = "L001"

	// ErrP001-ErrP004 are the structural "closing token without a matching
	// opener" errors, one per bracket flavour plus the bare '='.
	ErrP001 ErrorCode = "P001" // no matching opening parenthesis
	ErrP002 ErrorCode = "P002" // no matching opening bracket
	ErrP003 ErrorCode = "P003" // no matching opening curly bracket
	ErrP004 ErrorCode = "P004" // '=' without a preceding symbol

	// ErrP005 covers a structural node still open at end of input.
	ErrP005 ErrorCode = "P005"

	// ErrU001 wraps a `...` user-error literal encountered while collecting
	// diagnostics; it's not itself a syntax problem, just surfaced on the
	// same Errors channel so a caller doesn't have to walk the tree twice.
	ErrU001 ErrorCode = "U001"
)

var templates = map[ErrorCode]string{
	ErrL001: "unrecognised input %q",
	ErrP001: "no matching opening parenthesis",
	ErrP002: "no matching opening bracket",
	ErrP003: "no matching opening curly bracket",
	ErrP004: "symbol missing",
	ErrP005: "missing closing parenthesis",
	ErrU001: "user error: %s",
}

// Message formats the template registered for code with args. An unknown
// code formats as its own string rather than panicking — diagnostics
// formatting must never be a second source of failure.
func Message(code ErrorCode, args ...interface{}) string {
	tmpl, ok := templates[code]
	if !ok {
		return string(code)
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// DiagnosticError is the structured counterpart of an in-band SyntaxError
// node: same phase/code/position/message, usable by callers that want to
// collect or report errors without re-walking the tree.
type DiagnosticError struct {
	Phase   Phase
	Code    ErrorCode
	Pos     token.Position
	Message string
}

func (e *DiagnosticError) Error() string {
	return fmt.Sprintf("[%s] error at %s [%s]: %s", e.Phase, e.Pos, e.Code, e.Message)
}

// New builds a DiagnosticError, formatting Message from code's template.
func New(phase Phase, code ErrorCode, pos token.Position, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Phase: phase, Code: code, Pos: pos, Message: Message(code, args...)}
}
