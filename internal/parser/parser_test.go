package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ketdev/jiffle/internal/ast"
	"github.com/ketdev/jiffle/internal/lexer"
	"github.com/ketdev/jiffle/internal/parser"
	"github.com/ketdev/jiffle/internal/token"
)

func parse(src string) *ast.Module {
	return parser.Parse(lexer.Tokenize(src), src)
}

// E1
func TestParseEmptyInput(t *testing.T) {
	m := parse("")
	assert.Equal(t, token.Position{}, m.Pos)
	assert.Empty(t, m.Items)
	assert.False(t, m.Explicit)
}

// E2
func TestParseCommentOnlyModuleHasNoChildrenButCoversTheComment(t *testing.T) {
	m := parse("# hello comment")
	assert.Empty(t, m.Items)
	assert.Equal(t, 15, m.Pos.Len)
}

// E3
func TestParseScenarioE3(t *testing.T) {
	m := parse("null true false 123456 123456.0 'hello world!' foo `err` 0x # comment")
	require.Len(t, m.Items, 1)
	eval, ok := m.Items[0].(*ast.Evaluation)
	require.True(t, ok)
	require.Len(t, eval.Terms, 9)

	_, ok = eval.Terms[0].(*ast.NullLiteral)
	assert.True(t, ok, "term 0 should be Null")

	b, ok := eval.Terms[1].(*ast.BoolLiteral)
	require.True(t, ok, "term 1 should be Bool")
	assert.True(t, b.Value)

	b, ok = eval.Terms[2].(*ast.BoolLiteral)
	require.True(t, ok, "term 2 should be Bool")
	assert.False(t, b.Value)

	i, ok := eval.Terms[3].(*ast.IntegerLiteral)
	require.True(t, ok, "term 3 should be Integer")
	assert.Equal(t, int64(123456), i.Value)

	r, ok := eval.Terms[4].(*ast.RealLiteral)
	require.True(t, ok, "term 4 should be Real")
	assert.InDelta(t, 123456.0, r.Value, 1e-9)

	s, ok := eval.Terms[5].(*ast.StringLiteral)
	require.True(t, ok, "term 5 should be String")
	assert.Equal(t, "hello world!", s.Value)

	o, ok := eval.Terms[6].(*ast.Object)
	require.True(t, ok, "term 6 should be Object")
	assert.Equal(t, "foo", o.Symbol)
	assert.Empty(t, o.Children)

	u, ok := eval.Terms[7].(*ast.UserError)
	require.True(t, ok, "term 7 should be UserError")
	assert.Equal(t, "err", u.Value)

	_, ok = eval.Terms[8].(*ast.SyntaxError)
	assert.True(t, ok, "term 8 should be SyntaxError")

	assert.Equal(t, 69, m.Pos.Len)
}

// E4
func TestParseScenarioE4(t *testing.T) {
	m := parse("1,2,a b,`ok`")
	assert.True(t, m.Explicit)
	require.Len(t, m.Items, 4)

	eval0 := m.Items[0].(*ast.Evaluation)
	require.Len(t, eval0.Terms, 1)
	assert.Equal(t, int64(1), eval0.Terms[0].(*ast.IntegerLiteral).Value)

	eval1 := m.Items[1].(*ast.Evaluation)
	require.Len(t, eval1.Terms, 1)
	assert.Equal(t, int64(2), eval1.Terms[0].(*ast.IntegerLiteral).Value)

	eval2 := m.Items[2].(*ast.Evaluation)
	require.Len(t, eval2.Terms, 2)
	assert.Equal(t, "a", eval2.Terms[0].(*ast.Object).Symbol)
	assert.Equal(t, "b", eval2.Terms[1].(*ast.Object).Symbol)

	eval3 := m.Items[3].(*ast.Evaluation)
	require.Len(t, eval3.Terms, 1)
	assert.Equal(t, "ok", eval3.Terms[0].(*ast.UserError).Value)
}

// E5
func TestParseScenarioE5(t *testing.T) {
	m := parse("1(2)3")
	require.Len(t, m.Items, 1)
	eval := m.Items[0].(*ast.Evaluation)
	require.Len(t, eval.Terms, 3)

	assert.Equal(t, int64(1), eval.Terms[0].(*ast.IntegerLiteral).Value)

	seq := eval.Terms[1].(*ast.Sequence)
	assert.Equal(t, ast.SeqDefault, seq.Kind)
	require.Len(t, seq.Items, 1)
	innerEval := seq.Items[0].(*ast.Evaluation)
	require.Len(t, innerEval.Terms, 1)
	assert.Equal(t, int64(2), innerEval.Terms[0].(*ast.IntegerLiteral).Value)

	assert.Equal(t, int64(3), eval.Terms[2].(*ast.IntegerLiteral).Value)
}

// E6
func TestParseScenarioE6(t *testing.T) {
	m := parse("f[x]=x")
	require.Len(t, m.Items, 1)
	eval := m.Items[0].(*ast.Evaluation)
	require.Len(t, eval.Terms, 1)

	obj := eval.Terms[0].(*ast.Object)
	assert.Equal(t, "f", obj.Symbol)
	require.Len(t, obj.Children, 2)

	params := obj.Parameters()
	require.Len(t, params, 1)
	paramEval := params[0].Items[0].(*ast.Evaluation)
	assert.Equal(t, "x", paramEval.Terms[0].(*ast.Object).Symbol)

	def := obj.DefinitionBody()
	require.NotNil(t, def)
	require.NotNil(t, def.Body)
	assert.Equal(t, "x", def.Body.Terms[0].(*ast.Object).Symbol)
}

// E7: "a ( b" keeps "a" and the unclosed Sequence as two terms of the SAME
// top-level Evaluation — an opening '(' never closes a dangling Evaluation
// the way a separator or closing bracket does.
func TestParseScenarioE7(t *testing.T) {
	m := parse("a ( b")
	require.Len(t, m.Items, 1)

	eval := m.Items[0].(*ast.Evaluation)
	require.Len(t, eval.Terms, 2)
	assert.Equal(t, "a", eval.Terms[0].(*ast.Object).Symbol)

	seq := eval.Terms[1].(*ast.Sequence)
	assert.Equal(t, ast.SeqDefault, seq.Kind)
	require.Len(t, seq.Items, 2)

	innerEval := seq.Items[0].(*ast.Evaluation)
	assert.Equal(t, "b", innerEval.Terms[0].(*ast.Object).Symbol)

	syntaxErr := seq.Items[1].(*ast.SyntaxError)
	assert.Equal(t, "missing closing parenthesis", syntaxErr.Message)
}

// E8
func TestParseScenarioE8(t *testing.T) {
	m := parse("f{3,4},5")
	assert.True(t, m.Explicit)
	require.Len(t, m.Items, 2)

	eval0 := m.Items[0].(*ast.Evaluation)
	require.Len(t, eval0.Terms, 1)
	obj := eval0.Terms[0].(*ast.Object)
	assert.Equal(t, "f", obj.Symbol)

	defSeq := obj.DefinitionSequence()
	require.NotNil(t, defSeq)
	assert.True(t, defSeq.Explicit)
	require.Len(t, defSeq.Items, 2)
	assert.Equal(t, int64(3), defSeq.Items[0].(*ast.Evaluation).Terms[0].(*ast.IntegerLiteral).Value)
	assert.Equal(t, int64(4), defSeq.Items[1].(*ast.Evaluation).Terms[0].(*ast.IntegerLiteral).Value)

	eval1 := m.Items[1].(*ast.Evaluation)
	assert.Equal(t, int64(5), eval1.Terms[0].(*ast.IntegerLiteral).Value)
}

// A stray closing bracket, unlike an opening one, does close the dangling
// Evaluation — "a" and "b" end up in separate top-level Evaluations.
func TestParseStrayClosingBracketSplitsEvaluation(t *testing.T) {
	m := parse("a ) b")
	require.Len(t, m.Items, 2)

	eval0 := m.Items[0].(*ast.Evaluation)
	require.Len(t, eval0.Terms, 1)
	assert.Equal(t, "a", eval0.Terms[0].(*ast.Object).Symbol)

	eval1 := m.Items[1].(*ast.Evaluation)
	require.Len(t, eval1.Terms, 2)
	serr := eval1.Terms[0].(*ast.SyntaxError)
	assert.Equal(t, "no matching opening parenthesis", serr.Message)
	assert.Equal(t, "b", eval1.Terms[1].(*ast.Object).Symbol)
}

func TestParseEmptyParensProduceEmptySequence(t *testing.T) {
	m := parse("()")
	eval := m.Items[0].(*ast.Evaluation)
	seq := eval.Terms[0].(*ast.Sequence)
	assert.Empty(t, seq.Items)
}

func TestParseStrayClosingBracketEmitsSyntaxError(t *testing.T) {
	m := parse("]")
	eval := m.Items[0].(*ast.Evaluation)
	serr := eval.Terms[0].(*ast.SyntaxError)
	assert.Equal(t, "no matching opening bracket", serr.Message)
}

func TestParseStrayCurlyEmitsSyntaxError(t *testing.T) {
	m := parse("}")
	eval := m.Items[0].(*ast.Evaluation)
	serr := eval.Terms[0].(*ast.SyntaxError)
	assert.Equal(t, "no matching opening curly bracket", serr.Message)
}

func TestParseDefinitionWithoutSymbolEmitsSyntaxError(t *testing.T) {
	m := parse("=1")
	eval := m.Items[0].(*ast.Evaluation)
	serr := eval.Terms[0].(*ast.SyntaxError)
	assert.Equal(t, "symbol missing", serr.Message)
}

func TestParseDoubleParameterListsAndDefinition(t *testing.T) {
	m := parse("f[x][y]=z")
	eval := m.Items[0].(*ast.Evaluation)
	obj := eval.Terms[0].(*ast.Object)
	require.Len(t, obj.Children, 3)
	assert.Len(t, obj.Parameters(), 2)
	require.NotNil(t, obj.DefinitionBody())
}

func TestModulePositionCoversFullInput(t *testing.T) {
	src := "foo(1, 2)\nbar = 'x'"
	m := parse(src)
	assert.Equal(t, len(src), m.Pos.End())
}

func TestParseNeverPanics(t *testing.T) {
	inputs := []string{
		"", "(", ")", "]", "}", "[", "=", "{", ",", "\n",
		"f(", "f[", "f{", "a(b(c(d", "'", "`", "0x", "1e",
	}
	for _, in := range inputs {
		in := in
		assert.NotPanics(t, func() { parse(in) }, in)
	}
}
