// Package ast defines the abstract syntax tree for calculator input.
//
// Every node records the span of source text it was parsed from. For any
// node with children, that span is the union of the spans of its children
// and of the operator or keyword tokens that belong to it.
package ast

import "github.com/risor-io/ratcalc/span"

// Node represents a portion of the syntax tree.
type Node interface {
	// Span returns the source range covered by the node.
	Span() span.Span

	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string
}

// Stmt represents a statement node. Exactly one statement is parsed from
// each line of input.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression node. Expressions evaluate to a value
// and may be embedded within other expressions.
type Expr interface {
	Node
	exprNode()
}

// BadExpr stands in for an operand that contained syntax errors. The parser
// uses it to keep going after an error inside parentheses so that later
// errors on the same line are still found. A statement containing a BadExpr
// is never returned to callers.
type BadExpr struct {
	Extent span.Span
}

func (x *BadExpr) exprNode() {}

func (x *BadExpr) Span() span.Span { return x.Extent }
func (x *BadExpr) String() string  { return "<bad expression>" }
