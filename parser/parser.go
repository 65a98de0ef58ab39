// Package parser builds the AST for one line of calculator input.
//
// The parser consumes the token tree produced by the lexer. Parenthesized
// groups arrive already matched, so the contents of a group are parsed as a
// separate token sequence whose end is the group's closing delimiter.
// Expressions are parsed by precedence climbing over the precedence table.
package parser

import (
	"github.com/hashicorp/go-multierror"

	"github.com/risor-io/ratcalc/ast"
	"github.com/risor-io/ratcalc/intern"
	"github.com/risor-io/ratcalc/internal/token"
	"github.com/risor-io/ratcalc/span"
)

// DefaultMaxDepth is the default maximum nesting depth of parentheses.
const DefaultMaxDepth = 256

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithMaxDepth sets the maximum nesting depth of parentheses. This prevents
// stack overflow on deeply nested input.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// sequence is one flat run of tokens: the whole line or the inside of a group.
type sequence struct {
	tokens []token.Token
	pos    int

	// end is where the sequence stops: the caller-supplied end of input at
	// top level, or the closing delimiter of a group.
	end span.Span

	// found describes end for errors; empty means end of input.
	found string
}

// Parser object
type Parser struct {
	names *intern.Interner

	// the token sequence being read
	cur *sequence

	// errors collected for this line
	errs []error

	// Current and maximum parenthesis nesting depth
	depth    int
	maxDepth int
}

// New returns a Parser for tokens. eoi is the empty span just after the
// last byte of input. Identifiers are interned into names.
func New(tokens []token.Token, eoi span.Span, names *intern.Interner, options ...Option) *Parser {
	p := &Parser{
		names:    names,
		cur:      &sequence{tokens: tokens, end: eoi},
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Parse is shorthand for creating a Parser and calling Parse on it.
func Parse(tokens []token.Token, eoi span.Span, names *intern.Interner, options ...Option) (ast.Stmt, error) {
	return New(tokens, eoi, names, options...).Parse()
}

// Parse returns the statement on the line. If any syntax error was found
// the statement is nil and the error aggregates every problem, in source
// order.
func (p *Parser) Parse() (ast.Stmt, error) {
	stmt := p.parseStatement()
	if stmt != nil && len(p.errs) == 0 {
		if _, ok := p.peek(); ok {
			p.expected(p.continuations(stmt)...)
		}
	}
	if len(p.errs) > 0 {
		return nil, &multierror.Error{Errors: p.errs}
	}
	return stmt, nil
}

// continuations lists what could have followed a complete statement.
func (p *Parser) continuations(stmt ast.Stmt) []string {
	var out []string
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		if _, ok := s.X.(*ast.Variable); ok {
			out = append(out, quote(string(token.ASSIGN)))
		}
		out = append(out, infixOps...)
	case *ast.Assign, *ast.SetPrecision:
		out = append(out, infixOps...)
	}
	return append(out, p.endDescription())
}

// endDescription describes the end of the current sequence as an expected
// item.
func (p *Parser) endDescription() string {
	if p.cur.found == "" {
		return "end of input"
	}
	return p.cur.found
}

// peek returns the current token without consuming it.
func (p *Parser) peek() (token.Token, bool) {
	if p.cur.pos >= len(p.cur.tokens) {
		return token.Token{}, false
	}
	return p.cur.tokens[p.cur.pos], true
}

// peekAt reports whether the token n places ahead has the given type.
func (p *Parser) peekAt(n int, t token.Type) bool {
	i := p.cur.pos + n
	return i < len(p.cur.tokens) && p.cur.tokens[i].Type == t
}

// next consumes and returns the current token.
func (p *Parser) next() token.Token {
	tok := p.cur.tokens[p.cur.pos]
	p.cur.pos++
	return tok
}

// newIdent interns the identifier held by tok.
func (p *Parser) newIdent(tok token.Token) *ast.Ident {
	return &ast.Ident{Sym: p.names.Intern(tok.Literal), Name: tok.Literal, NameSpan: tok.Span}
}
