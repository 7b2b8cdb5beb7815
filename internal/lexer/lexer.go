// Package lexer turns a source string into an ordered stream of positioned
// tokens. Tokenize is total: every input produces a token stream, with
// malformed or unrecognised runs surfacing as token.SyntaxError rather than
// an error return.
package lexer

import (
	"math"
	"strconv"

	"github.com/ketdev/jiffle/internal/token"
)

// particles is consulted twice: once to emit a particle token directly, and
// once by the fallback scanner to decide where an unclassified run ends.
var particles = map[byte]token.Kind{
	',':  token.Separator,
	'\n': token.SeparatorImplicit,
	'(':  token.SequenceStart,
	')':  token.SequenceEnd,
	'=':  token.Definition,
	'{':  token.DefinitionStart,
	'}':  token.DefinitionEnd,
	'[':  token.ParameterStart,
	']':  token.ParameterEnd,
}

var keywords = map[string]token.Kind{
	"null":  token.Null,
	"true":  token.True,
	"false": token.False,
}

// Tokenize converts source into a sequence of tokens. It never panics and
// never blocks; it runs in time linear in len(source).
func Tokenize(source string) []token.Token {
	l := &lexer{src: source}
	var out []token.Token
	for {
		l.skipWhitespace()
		if l.pos >= len(l.src) {
			return out
		}
		out = append(out, l.scanToken())
	}
}

type lexer struct {
	src string
	pos int
	ln  int
	col int
}

func (l *lexer) here() token.Position {
	return token.Position{Ch: l.pos, Ln: l.ln, Col: l.col}
}

// advance consumes exactly one byte, updating line/column bookkeeping.
// Newlines are counted wherever they occur, including inside string and
// user-error bodies, so that position invariants hold even for literals
// that span multiple lines.
func (l *lexer) advance() {
	if l.src[l.pos] == '\n' {
		l.ln++
		l.col = 0
	} else {
		l.col++
	}
	l.pos++
}

func (l *lexer) peek(offset int) byte {
	i := l.pos + offset
	if i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

func (l *lexer) skipWhitespace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\v', '\f', '\r':
			l.advance()
		default:
			return
		}
	}
}

// startsToken reports whether b begins a particle, comment, identifier,
// number, string, or user-error literal — the set of "legal" starts the
// fallback SyntaxError scan stops at.
func startsToken(b byte) bool {
	if _, ok := particles[b]; ok {
		return true
	}
	switch {
	case b == '#', b == '\'', b == '`':
		return true
	case isLetter(b), isDigit(b):
		return true
	}
	return false
}

func isLetter(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isDigitBase(b byte, base int) bool {
	switch base {
	case 2:
		return b == '0' || b == '1'
	case 8:
		return b >= '0' && b <= '7'
	case 16:
		return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
	default:
		return isDigit(b)
	}
}

func (l *lexer) scanToken() token.Token {
	start := l.here()
	b := l.src[l.pos]

	if kind, ok := particles[b]; ok {
		l.advance()
		return l.finish(kind, start)
	}
	if b == '#' {
		return l.scanComment(start)
	}
	if isLetter(b) {
		return l.scanIdentifier(start)
	}
	if isDigit(b) {
		return l.scanNumber(start)
	}
	if b == '\'' {
		return l.scanDelimited(start, '\'', token.String)
	}
	if b == '`' {
		return l.scanDelimited(start, '`', token.UserError)
	}
	return l.scanSyntaxError(start)
}

func (l *lexer) finish(kind token.Kind, start token.Position) token.Token {
	pos := start
	pos.Len = l.pos - start.Ch
	return token.Token{Kind: kind, Pos: pos, Lexeme: l.src[start.Ch:l.pos]}
}

func (l *lexer) scanComment(start token.Position) token.Token {
	l.advance() // '#'
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.advance()
	}
	return l.finish(token.Comment, start)
}

func (l *lexer) scanIdentifier(start token.Position) token.Token {
	for l.pos < len(l.src) && (isLetter(l.src[l.pos]) || isDigit(l.src[l.pos])) {
		l.advance()
	}
	text := l.src[start.Ch:l.pos]
	if kind, ok := keywords[text]; ok {
		return l.finish(kind, start)
	}
	tok := l.finish(token.Symbol, start)
	tok.Literal = text
	return tok
}

// scanNumber implements spec.md §4.1 step 5: optional 0x/0o/0b base prefix
// (with a mandatory digit after the prefix, else the whole prefix run is a
// SyntaxError), a maximal digit run in the detected base, and — base 10
// only — an optional fractional part and optional exponent.
func (l *lexer) scanNumber(start token.Position) token.Token {
	base := 10
	if l.src[l.pos] == '0' {
		switch l.peek(1) {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
	}

	if base != 10 {
		if !isDigitBase(l.peek(2), base) {
			// Prefix without a following digit: the prefix itself is the
			// entire malformed token.
			l.advance() // '0'
			l.advance() // x/o/b
			return l.finish(token.SyntaxError, start)
		}
		l.advance() // '0'
		l.advance() // x/o/b
	}

	digitsStart := l.pos
	for l.pos < len(l.src) && isDigitBase(l.src[l.pos], base) {
		l.advance()
	}

	isReal := false
	if base == 10 {
		if l.pos < len(l.src) && l.src[l.pos] == '.' {
			isReal = true
			l.advance()
			for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
				l.advance()
			}
		}
		if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
			mark := l.pos
			markLn, markCol := l.ln, l.col
			l.advance() // e/E
			if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
				l.advance()
			}
			digitsAfterExp := l.pos
			for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
				l.advance()
			}
			if l.pos == digitsAfterExp {
				// No digits followed e/E[+-]: the exponent marker was not
				// really one, back off and leave it for the next token.
				l.pos, l.ln, l.col = mark, markLn, markCol
			} else {
				isReal = true
			}
		}
	}

	lexeme := l.src[start.Ch:l.pos]
	if isReal {
		val, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			val = 0
		}
		tok := l.finish(token.Real, start)
		tok.Literal = val
		return tok
	}

	digits := l.src[digitsStart:l.pos]
	val, err := strconv.ParseUint(digits, base, 64)
	var signed int64
	switch {
	case err != nil, val > math.MaxInt64:
		signed = math.MaxInt64
	default:
		signed = int64(val)
	}
	tok := l.finish(token.Integer, start)
	tok.Literal = signed
	return tok
}

func (l *lexer) scanDelimited(start token.Position, delim byte, kind token.Kind) token.Token {
	l.advance() // opening delimiter
	bodyStart := l.pos
	for l.pos < len(l.src) && l.src[l.pos] != delim {
		l.advance()
	}
	if l.pos >= len(l.src) {
		return l.finish(token.SyntaxError, start)
	}
	body := l.src[bodyStart:l.pos]
	l.advance() // closing delimiter
	tok := l.finish(kind, start)
	tok.Literal = body
	return tok
}

func (l *lexer) scanSyntaxError(start token.Position) token.Token {
	for l.pos < len(l.src) && !startsToken(l.src[l.pos]) {
		l.advance()
	}
	if l.pos == start.Ch {
		// Guarantee forward progress for a byte that reaches this branch
		// yet still fails startsToken (can't happen given scanToken's
		// cases, but keeps the scanner total under future changes).
		l.advance()
	}
	return l.finish(token.SyntaxError, start)
}
