package parser

import (
	"github.com/risor-io/ratcalc/ast"
	"github.com/risor-io/ratcalc/internal/token"
)

// parseExpression parses a full expression. It returns nil if an error was
// recorded.
func (p *Parser) parseExpression() ast.Expr {
	return p.parseBinary(LOWEST)
}

// parseBinary parses a chain of infix operators binding tighter than
// precedence. Operators of equal precedence fold to the left, so
// "a / b / c" is "(a / b) / c".
func (p *Parser) parseBinary(precedence int) ast.Expr {
	left := p.parseUnary()
	if left == nil {
		return nil
	}
	for {
		tok, ok := p.peek()
		if !ok {
			return left
		}
		opPrecedence, isInfix := precedences[tok.Type]
		if !isInfix || opPrecedence <= precedence {
			return left
		}
		p.next()
		right := p.parseBinary(opPrecedence)
		if right == nil {
			return nil
		}
		left = &ast.Binary{X: left, Op: binaryOps[tok.Type], OpSpan: tok.Span, Y: right}
	}
}

// parseUnary parses zero or more prefix operators followed by an operand.
// The operators apply right to left, so "- - x" is "-(-(x))".
func (p *Parser) parseUnary() ast.Expr {
	var ops []token.Token
	for {
		tok, ok := p.peek()
		if !ok {
			break
		}
		if _, isPrefix := prefixOps[tok.Type]; !isPrefix {
			break
		}
		ops = append(ops, p.next())
	}
	x := p.parseOperand()
	if x == nil {
		return nil
	}
	for i := len(ops) - 1; i >= 0; i-- {
		x = &ast.Unary{Op: prefixOps[ops[i].Type], OpSpan: ops[i].Span, X: x}
	}
	return x
}

// parseOperand parses a number, a variable or a parenthesized expression.
func (p *Parser) parseOperand() ast.Expr {
	tok, ok := p.peek()
	if !ok {
		p.expected(operandStarts...)
		return nil
	}
	switch tok.Type {
	case token.NUMBER:
		p.next()
		return &ast.Number{Value: tok.Number.Rat(), Literal: tok.Literal, ValueSpan: tok.Span}
	case token.IDENT:
		p.next()
		return &ast.Variable{Name: p.newIdent(tok)}
	case token.PARENS:
		p.next()
		return p.parseGroup(tok)
	}
	p.expected(operandStarts...)
	return nil
}

// parseGroup parses the contents of a parenthesized group as an expression
// that must use every token in the group. Errors inside the group are
// recorded and parsing resumes after it.
func (p *Parser) parseGroup(group token.Token) ast.Expr {
	if p.depth >= p.maxDepth {
		p.tooDeep(group)
		return nil
	}
	outer := p.cur
	inner := &sequence{tokens: group.Children, end: group.Closer()}
	if group.Literal != "" {
		inner.found = quote(group.Literal)
	}
	p.cur = inner
	p.depth++
	defer func() {
		p.depth--
		p.cur = outer
	}()

	errCount := len(p.errs)
	x := p.parseExpression()
	if x != nil {
		if _, ok := p.peek(); ok {
			p.expected(append(append([]string{}, infixOps...), p.endDescription())...)
			x = nil
		}
	}
	if x == nil {
		if len(p.errs) > errCount && !p.lastErrorTooDeep(errCount) {
			return &ast.BadExpr{Extent: group.Span}
		}
		return nil
	}
	return &ast.Paren{Group: group.Span, X: x}
}

// lastErrorTooDeep reports whether the errors since errCount include a
// nesting error. Such errors abort the whole statement instead of the group.
func (p *Parser) lastErrorTooDeep(errCount int) bool {
	for _, err := range p.errs[errCount:] {
		if isTooDeep(err) {
			return true
		}
	}
	return false
}
