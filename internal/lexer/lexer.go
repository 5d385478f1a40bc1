// Package lexer turns BRS source text into a span-tagged token stream.
//
// The scanner is rune-oriented (spans are counted in code points, not
// bytes) and advances via a small read/peek pair, the same shape as the
// teacher's character scanner, generalized to BRS's simpler lexical
// alphabet: keywords, multi-character operators, decimal numbers,
// identifiers, and a handful of single-character punctuation tokens.
//
// The tokenizer never fails outright: unrecognized input is folded into
// an Err token and scanning continues, matching spec.md §4.1's failure
// semantics.
package lexer

import (
	"strings"
	"unicode"

	"github.com/brslang/brsc/internal/token"
)

// Lexer scans a single BRS source file into tokens.
type Lexer struct {
	input []rune
	pos   int
	line  int
	col   int

	// callActive/callDepth implement the "parenthesis handler" of
	// spec.md §4.1: after emitting Exit or Print, the next '(' is a
	// call bracket rather than a grouping operator.
	callActive bool
	callDepth  int
}

// New creates a Lexer over source. Carriage returns are stripped, per
// spec.md §6's "carriage returns are stripped" input contract.
func New(source string) *Lexer {
	stripped := strings.ReplaceAll(source, "\r", "")
	return &Lexer{input: []rune(stripped), line: 0, col: 0}
}

// Tokenize scans the whole input and returns the ordered token stream,
// including Whitespace and Newline tokens (spec.md §3 invariant 2: they
// are present in the tokenizer's output and stripped later, by the
// parser's line-partitioning step, not here).
func Tokenize(source string) []token.Token {
	l := New(source)
	var out []token.Token
	for {
		tok, ok := l.next()
		if !ok {
			break
		}
		out = append(out, tok)
	}
	return out
}

func (l *Lexer) peek() (rune, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	return l.input[l.pos], true
}

func (l *Lexer) peekAt(offset int) (rune, bool) {
	idx := l.pos + offset
	if idx >= len(l.input) {
		return 0, false
	}
	return l.input[idx], true
}

// emit builds a Span of the given width starting at the current column,
// advances the column by that width, and returns the span.
func (l *Lexer) emit(width int) token.Span {
	sp := token.NewSpan(l.line, l.col, width)
	l.col += width
	return sp
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return unicode.IsLetter(r)
}

func isAlnum(r rune) bool {
	return isAlpha(r) || isDigit(r)
}

var twoCharOperators = map[string]token.OperatorKind{
	"**": token.Exponent,
	"//": token.Divide,
	"&&": token.And,
	"||": token.Or,
	"^|": token.Xor,
	"!!": token.Not,
}

// next scans and returns the single next token. The boolean result is
// false once the input is exhausted.
func (l *Lexer) next() (token.Token, bool) {
	ch, ok := l.peek()
	if !ok {
		return token.Token{}, false
	}

	switch {
	case ch == '\n':
		return l.scanNewline(), true
	case ch == ' ':
		return l.scanWhitespace(), true
	case isDigit(ch):
		return l.scanNumberOrError(), true
	case isAlpha(ch):
		return l.scanWordOrKeyword(), true
	}

	if pair, has := l.peekPair(); has {
		op := twoCharOperators[pair]
		l.pos += 2
		return token.Token{Kind: token.Operator, Op: op, Span: l.emit(2)}, true
	}

	if tok, handled := l.scanSingleChar(ch); handled {
		return tok, true
	}

	// Unrecognized code point: fold into a one-rune Err token and move
	// on, per spec.md §4.1 step 5's "residual buffer flushed as Err".
	l.pos++
	return token.Token{Kind: token.Err, Span: l.emit(1)}, true
}

func (l *Lexer) peekPair() (string, bool) {
	a, ok := l.peek()
	if !ok {
		return "", false
	}
	b, ok := l.peekAt(1)
	if !ok {
		return "", false
	}
	pair := string([]rune{a, b})
	_, known := twoCharOperators[pair]
	return pair, known
}

func (l *Lexer) scanNewline() token.Token {
	l.pos++
	sp := l.emit(1)
	l.line++
	l.col = 0
	l.callActive = false
	l.callDepth = 0
	return token.Token{Kind: token.Newline, Span: sp}
}

// scanWhitespace coalesces a run of consecutive spaces into a single
// Whitespace token, per spec.md §9's resolution of the "open question"
// about whitespace coalescing.
func (l *Lexer) scanWhitespace() token.Token {
	start := l.pos
	for {
		ch, ok := l.peek()
		if !ok || ch != ' ' {
			break
		}
		l.pos++
	}
	width := l.pos - start
	return token.Token{Kind: token.Whitespace, Span: l.emit(width)}
}

// scanNumberOrError consumes a maximal run of alphanumeric runes
// starting at a digit. A pure-digit run is a Number; if any alphabetic
// rune appears in the run it is an Err token (spec.md §4.1 step 2: "an
// error (starts with digit but contains alphabetics)").
func (l *Lexer) scanNumberOrError() token.Token {
	start := l.pos
	hasAlpha := false
	for {
		ch, ok := l.peek()
		if !ok || !isAlnum(ch) {
			break
		}
		if isAlpha(ch) {
			hasAlpha = true
		}
		l.pos++
	}
	text := string(l.input[start:l.pos])
	width := l.pos - start
	sp := l.emit(width)
	if hasAlpha {
		return token.Token{Kind: token.Err, Span: sp, Literal: text}
	}
	return token.Token{Kind: token.Number, Literal: text, Span: sp}
}

var keywordKinds = map[string]token.Kind{
	"exit":  token.Exit,
	"print": token.Print,
}

// scanWordOrKeyword consumes a maximal alphanumeric run starting at an
// alphabetic rune, per spec.md §3's identifier rule, and classifies it
// against the fixed keyword/boolean lexeme set from spec.md §4.1 step 1.
func (l *Lexer) scanWordOrKeyword() token.Token {
	start := l.pos
	for {
		ch, ok := l.peek()
		if !ok || !isAlnum(ch) {
			break
		}
		l.pos++
	}
	word := string(l.input[start:l.pos])
	width := l.pos - start
	sp := l.emit(width)

	switch word {
	case "exit", "print":
		l.callActive = true
		l.callDepth = 0
		return token.Token{Kind: keywordKinds[word], Span: sp}
	case "true":
		return token.Token{Kind: token.Boolean, BoolValue: true, Span: sp}
	case "false":
		return token.Token{Kind: token.Boolean, BoolValue: false, Span: sp}
	default:
		return token.Token{Kind: token.Id, Name: word, Span: sp}
	}
}

// scanSingleChar matches the fixed one-character lexeme set from
// spec.md §4.1 step 3, dispatching '(' and ')' through the call-bracket
// handler (see parenHandler below).
func (l *Lexer) scanSingleChar(ch rune) (token.Token, bool) {
	switch ch {
	case '(':
		l.pos++
		return l.parenHandler(true), true
	case ')':
		l.pos++
		return l.parenHandler(false), true
	case '{':
		l.pos++
		return token.Token{Kind: token.OpenCurlyBracket, Span: l.emit(1)}, true
	case '}':
		l.pos++
		return token.Token{Kind: token.ClosedCurlyBracket, Span: l.emit(1)}, true
	case '=':
		l.pos++
		return token.Token{Kind: token.Equals, Span: l.emit(1)}, true
	case '+':
		l.pos++
		return token.Token{Kind: token.Operator, Op: token.Plus, Span: l.emit(1)}, true
	case '-':
		l.pos++
		return token.Token{Kind: token.Operator, Op: token.Minus, Span: l.emit(1)}, true
	case '%':
		l.pos++
		return token.Token{Kind: token.Operator, Op: token.Modulo, Span: l.emit(1)}, true
	case '*':
		l.pos++
		return token.Token{Kind: token.Operator, Op: token.Multiply, Span: l.emit(1)}, true
	default:
		return token.Token{}, false
	}
}

// parenHandler is the "dedicated sub-component" of spec.md §4.1 that
// discriminates a function-call bracket (`exit(` / `print(`) from an
// ordinary grouping bracket inside an expression. open is true for '('
// and false for ')'.
func (l *Lexer) parenHandler(open bool) token.Token {
	if !l.callActive {
		if open {
			return token.Token{Kind: token.Operator, Op: token.OpBracketOpen, Span: l.emit(1)}
		}
		return token.Token{Kind: token.Operator, Op: token.OpBracketClosed, Span: l.emit(1)}
	}

	if open {
		if l.callDepth == 0 {
			l.callDepth = 1
			return token.Token{Kind: token.OpenBracket, Span: l.emit(1)}
		}
		l.callDepth++
		return token.Token{Kind: token.Operator, Op: token.OpBracketOpen, Span: l.emit(1)}
	}

	// Closing bracket.
	if l.callDepth <= 1 {
		l.callActive = false
		l.callDepth = 0
		return token.Token{Kind: token.ClosedBracket, Span: l.emit(1)}
	}
	l.callDepth--
	return token.Token{Kind: token.Operator, Op: token.OpBracketClosed, Span: l.emit(1)}
}
