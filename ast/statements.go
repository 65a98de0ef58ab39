package ast

import "github.com/risor-io/ratcalc/span"

// ExprStmt is an expression evaluated for its value.
type ExprStmt struct {
	X Expr
}

func (s *ExprStmt) stmtNode() {}

func (s *ExprStmt) Span() span.Span { return s.X.Span() }
func (s *ExprStmt) String() string  { return s.X.String() }

// Assign binds the value of an expression to a name, e.g. "x = 1 / 3".
type Assign struct {
	Name   *Ident
	Equals span.Span // position of "="
	Value  Expr
}

func (s *Assign) stmtNode() {}

func (s *Assign) Span() span.Span { return span.Union(s.Name.Span(), s.Value.Span()) }
func (s *Assign) String() string  { return s.Name.String() + " = " + s.Value.String() }

// SetPrecision sets the number of significant digits used for display,
// e.g. "precision 20".
type SetPrecision struct {
	Keyword span.Span
	Value   Expr
}

func (s *SetPrecision) stmtNode() {}

func (s *SetPrecision) Span() span.Span { return span.Union(s.Keyword, s.Value.Span()) }
func (s *SetPrecision) String() string  { return "precision " + s.Value.String() }

// FullPrecision switches display to exact, unrounded output.
type FullPrecision struct {
	Keyword span.Span
}

func (s *FullPrecision) stmtNode() {}

func (s *FullPrecision) Span() span.Span { return s.Keyword }
func (s *FullPrecision) String() string  { return "fullprecision" }

// Help prints a usage summary.
type Help struct {
	Keyword span.Span
}

func (s *Help) stmtNode() {}

func (s *Help) Span() span.Span { return s.Keyword }
func (s *Help) String() string  { return "help" }

// Exit ends the session.
type Exit struct {
	Keyword span.Span
}

func (s *Exit) stmtNode() {}

func (s *Exit) Span() span.Span { return s.Keyword }
func (s *Exit) String() string  { return "exit" }

// Vars lists every bound variable.
type Vars struct {
	Keyword span.Span
}

func (s *Vars) stmtNode() {}

func (s *Vars) Span() span.Span { return s.Keyword }
func (s *Vars) String() string  { return "vars" }
