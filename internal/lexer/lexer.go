// Package lexer converts a line of calculator input into a token tree.
//
// The lexer never stops at the first problem. Bad characters and malformed
// numerals are reported and skipped, and bracket groups are closed as well as
// possible, so the parser always receives the tokens that could be recovered.
package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"

	"github.com/risor-io/ratcalc/diagnostics"
	"github.com/risor-io/ratcalc/internal/token"
	"github.com/risor-io/ratcalc/span"
)

// tokenStarts describes what may begin a token, for unexpected-character errors.
var tokenStarts = []string{"identifier", "number", "operator", "'('", "'{'"}

// Lexer holds the scanning state for one input.
type Lexer struct {
	input  string
	source span.SourceID
	pos    int
	end    int
	errs   *multierror.Error
}

// New returns a Lexer for input. All spans it produces refer to source.
func New(input string, source span.SourceID) *Lexer {
	return &Lexer{input: input, source: source}
}

// Lex tokenizes input. The returned error, if any, aggregates every problem
// found; the tokens are still usable.
func Lex(input string, source span.SourceID) ([]token.Token, error) {
	return New(input, source).Lex()
}

// group is a bracketed region whose closing delimiter has not been seen yet.
type group struct {
	typ      token.Type
	open     byte
	closing  byte
	start    int
	children []token.Token
}

// Lex tokenizes the whole input. Open groups are kept on an explicit stack,
// so nesting depth is bounded only by memory; the parser enforces the
// nesting limit.
func (l *Lexer) Lex() ([]token.Token, error) {
	var tokens []token.Token
	var stack []*group
	emit := func(tok token.Token) {
		if n := len(stack); n > 0 {
			stack[n-1].children = append(stack[n-1].children, tok)
			return
		}
		tokens = append(tokens, tok)
	}
	for {
		l.skipTrivia()
		if l.eof() {
			break
		}
		c := l.input[l.pos]
		switch {
		case c == '(' || c == '{':
			typ, _ := token.GroupFor(c)
			open, closing := typ.Delimiters()
			stack = append(stack, &group{typ: typ, open: open, closing: closing, start: l.pos})
			l.pos++
		case c == ')' || c == '}':
			if len(stack) == 0 {
				l.addError(&diagnostics.Custom{
					Msg:     fmt.Sprintf("unmatched closing delimiter '%c'", c),
					Span:    l.spanFrom(l.pos, l.pos+1),
					ErrCode: diagnostics.E1007,
				})
				l.pos++
				continue
			}
			g := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			l.pos++
			if c != g.closing {
				l.addError(&diagnostics.UnclosedDelimiter{
					Delimiter: string(g.open),
					Expected:  string(g.closing),
					Found:     fmt.Sprintf("'%c'", c),
					Open:      l.spanFrom(g.start, g.start+1),
					Span:      l.spanFrom(l.pos-1, l.pos),
				})
			}
			emit(g.token(l.source, l.input[l.pos-1:l.pos], l.pos))
		default:
			if tok, ok := l.simple(); ok {
				emit(tok)
			}
		}
	}

	// Close what is still open, innermost first. An unclosed group ends
	// just after its last token.
	for len(stack) > 0 {
		g := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		end := g.start + 1
		if n := len(g.children); n > 0 {
			end = g.children[n-1].Span.End
		}
		l.addError(&diagnostics.UnclosedDelimiter{
			Delimiter: string(g.open),
			Expected:  string(g.closing),
			Open:      l.spanFrom(g.start, g.start+1),
			Span:      span.Point(l.source, end),
		})
		emit(g.token(l.source, "", end))
	}

	if n := len(tokens); n > 0 {
		l.end = tokens[n-1].Span.End
	}
	return tokens, l.errs.ErrorOrNil()
}

// End returns the empty span just after the last token, or at offset 0 when
// there were no tokens. Trailing whitespace and comments are not included.
// It is valid once Lex has returned.
func (l *Lexer) End() span.Span {
	return span.Point(l.source, l.end)
}

func (g *group) token(source span.SourceID, closer string, end int) token.Token {
	return token.Token{
		Type:     g.typ,
		Literal:  closer,
		Children: g.children,
		Span:     span.New(source, g.start, end),
	}
}

// simple lexes one non-group token. It returns false when the text at the
// current position could not be turned into a token; an error has then been
// recorded and the offending text skipped.
func (l *Lexer) simple() (token.Token, bool) {
	start := l.pos
	c := l.input[l.pos]
	switch {
	case isLetter(c):
		for !l.eof() && isIdentChar(l.input[l.pos]) {
			l.pos++
		}
		lit := l.input[start:l.pos]
		return token.Token{
			Type:    token.LookupIdentifier(lit),
			Literal: lit,
			Span:    l.spanFrom(start, l.pos),
		}, true
	case isDigit(c):
		return l.number()
	}
	switch typ := token.Type(string(c)); typ {
	case token.PLUS, token.MINUS, token.ASTERISK, token.SLASH, token.ASSIGN:
		l.pos++
		return token.Token{Type: typ, Literal: string(c), Span: l.spanFrom(start, l.pos)}, true
	}
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	l.addError(&diagnostics.ExpectedFound{
		Expected: tokenStarts,
		Found:    fmt.Sprintf("%q", r),
		Span:     l.spanFrom(start, l.pos),
		ErrCode:  diagnostics.E1002,
	})
	return token.Token{}, false
}

// number lexes a numeric literal with an optional radix prefix and an
// optional fractional part in the same radix.
func (l *Lexer) number() (token.Token, bool) {
	start := l.pos
	radix := token.Decimal
	if l.input[l.pos] == '0' && l.pos+1 < len(l.input) {
		if r, ok := token.RadixForPrefix(l.input[l.pos+1]); ok {
			radix = r
			l.pos += 2
		}
	}

	integer := l.digits(radix)
	if integer == "" {
		return l.badNumber(radix, fmt.Sprintf("expected %s digit after '%s'", radix, radix.Prefix()))
	}
	num := &token.Number{Integer: integer, Radix: radix}
	if !l.eof() && l.input[l.pos] == '.' {
		l.pos++
		num.HasFraction = true
		num.Fraction = l.digits(radix)
		if num.Fraction == "" {
			return l.badNumber(radix, fmt.Sprintf("expected %s digit after '.'", radix))
		}
	}
	if !l.eof() && isIdentChar(l.input[l.pos]) {
		return l.badNumber(radix, "")
	}
	return token.Token{
		Type:    token.NUMBER,
		Literal: l.input[start:l.pos],
		Number:  num,
		Span:    l.spanFrom(start, l.pos),
	}, true
}

// badNumber reports a malformed literal at the current position and skips
// the rest of it. An empty message reports the current byte as an invalid
// digit for the radix.
func (l *Lexer) badNumber(radix token.Radix, message string) (token.Token, bool) {
	at := span.Point(l.source, l.pos)
	if !l.eof() {
		at = l.spanFrom(l.pos, l.pos+1)
		if isIdentChar(l.input[l.pos]) {
			message = fmt.Sprintf("invalid digit '%c' in %s literal", l.input[l.pos], radix)
		}
	}
	l.addError(&diagnostics.Custom{Msg: message, Span: at, ErrCode: diagnostics.E1008})
	for !l.eof() && (isIdentChar(l.input[l.pos]) || l.input[l.pos] == '.') {
		l.pos++
	}
	return token.Token{}, false
}

func (l *Lexer) digits(radix token.Radix) string {
	start := l.pos
	for !l.eof() && radix.IsDigit(l.input[l.pos]) {
		l.pos++
	}
	return l.input[start:l.pos]
}

// skipTrivia consumes whitespace and // line comments.
func (l *Lexer) skipTrivia() {
	for !l.eof() {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		switch {
		case unicode.IsSpace(r):
			l.pos += size
		case r == '/' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '/':
			for !l.eof() && l.input[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

func (l *Lexer) eof() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) spanFrom(start, end int) span.Span {
	return span.New(l.source, start, end)
}

func (l *Lexer) addError(err error) {
	l.errs = multierror.Append(l.errs, err)
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || isDigit(c)
}
