// Package ratcalc is an interactive calculator over exact rational numbers.
//
// A Session runs one line at a time through the lexer, the parser and the
// evaluator. Errors from every stage are collected rather than stopping at
// the first stage that fails, so one line can report lex and parse errors
// together. Each line is registered in the session's source registry under
// its own SourceID so that diagnostics can be rendered against it later.
//
//	s := ratcalc.New()
//	out := s.Run("<stdin>", "x = 1 / 3")
//	out = s.Run("<stdin>", "x * 3")
//	fmt.Println(s.Format(out.Value)) // 1
package ratcalc

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/risor-io/ratcalc/ast"
	"github.com/risor-io/ratcalc/diagnostics"
	"github.com/risor-io/ratcalc/eval"
	"github.com/risor-io/ratcalc/intern"
	"github.com/risor-io/ratcalc/internal/lexer"
	"github.com/risor-io/ratcalc/parser"
	"github.com/risor-io/ratcalc/span"
	"github.com/risor-io/ratcalc/value"
)

// Outcome is the result of running one line.
type Outcome struct {
	// Source identifies the line in the session's source registry.
	Source span.SourceID

	// Statement is the parsed statement, or nil if parsing failed or the
	// line was blank.
	Statement ast.Stmt

	// Value is the value to display, if any.
	Value value.Value

	// Exit is set when the line asked to end the session.
	Exit bool

	// Err aggregates every error reported for the line.
	Err error

	// Diagnostics holds one entry per error in Err, in the order found.
	Diagnostics []*diagnostics.Diagnostic
}

// Failed reports whether any stage reported an error.
func (o *Outcome) Failed() bool {
	return o.Err != nil
}

// Session holds the variables, display settings and source text of one
// calculator session. It is not safe for concurrent use.
type Session struct {
	opts    *options
	names   *intern.Interner
	sources *span.Sources
	eval    *eval.Evaluator
	log     zerolog.Logger
}

// New returns a Session configured by opts.
func New(opts ...Option) *Session {
	o := collectOptions(opts...)
	names := intern.New()
	s := &Session{
		opts:    o,
		names:   names,
		sources: span.NewSources(),
		eval:    eval.New(names, o.evalOpts()...),
		log:     o.logger,
	}
	for _, v := range o.vars {
		s.eval.Define(v.name, v.value)
	}
	return s
}

// Sources returns the registry holding the text of every line run so far.
func (s *Session) Sources() *span.Sources {
	return s.sources
}

// Display returns the current display configuration.
func (s *Session) Display() value.Display {
	return s.eval.Display()
}

// Format renders v with the current display configuration.
func (s *Session) Format(v value.Value) string {
	return s.eval.Format(v)
}

// Define binds name to v, replacing any previous value.
func (s *Session) Define(name string, v value.Number) {
	s.eval.Define(name, v)
}

// Vars returns every variable sorted by name.
func (s *Session) Vars() []eval.Binding {
	return s.eval.Vars()
}

// Run lexes, parses and evaluates one line. name labels the line in
// diagnostics, e.g. "<stdin>" or a file name.
//
// Lex errors do not stop parsing; whatever tokens were recovered are
// parsed. The statement is evaluated only if parsing produced one. A blank
// line produces an empty Outcome.
func (s *Session) Run(name, line string) *Outcome {
	return s.RunAt(name, 1, line)
}

// RunAt is like Run for a line taken from a larger document, where lineno
// is its 1-based line number. Diagnostics then locate into the document.
func (s *Session) RunAt(name string, lineno int, line string) *Outcome {
	id := s.sources.AddAt(name, line, lineno)
	out := &Outcome{Source: id}
	log := s.log.With().Int("source", int(id)).Logger()

	var errs *multierror.Error
	l := lexer.New(line, id)
	tokens, err := l.Lex()
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	log.Debug().Int("tokens", len(tokens)).Err(err).Msg("lexed")

	if len(tokens) > 0 {
		stmt, err := parser.Parse(tokens, l.End(), s.names, s.opts.parserOpts()...)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		out.Statement = stmt
	} else if err == nil {
		return out
	}

	if out.Statement != nil {
		if ev := log.Debug(); ev.Enabled() {
			nodes, refs := shape(out.Statement)
			ev.Str("statement", statementKind(out.Statement)).
				Int("nodes", nodes).
				Strs("refs", refs).
				Msg("parsed")
		}
		res, err := s.eval.Eval(out.Statement)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		out.Value = res.Value
		out.Exit = res.Exit
	}

	out.Err = errs.ErrorOrNil()
	out.Diagnostics = diagnostics.Collect(out.Err)
	if out.Err != nil {
		log.Debug().Int("errors", len(out.Diagnostics)).Msg("line failed")
	}
	return out
}

// shape summarizes stmt for debug logs: its node count and the variables it
// reads, in source order.
func shape(stmt ast.Stmt) (nodes int, refs []string) {
	for range ast.Preorder(stmt) {
		nodes++
	}
	ast.Inspect(stmt, func(n ast.Node) bool {
		if v, ok := n.(*ast.Variable); ok {
			refs = append(refs, v.Name.Name)
		}
		return true
	})
	return nodes, refs
}

func statementKind(stmt ast.Stmt) string {
	switch stmt.(type) {
	case *ast.ExprStmt:
		return "expression"
	case *ast.Assign:
		return "assign"
	case *ast.SetPrecision:
		return "precision"
	case *ast.FullPrecision:
		return "fullprecision"
	case *ast.Help:
		return "help"
	case *ast.Exit:
		return "exit"
	case *ast.Vars:
		return "vars"
	}
	return fmt.Sprintf("%T", stmt)
}

// Eval evaluates a single line in a new session and returns its value. It
// is a shorthand for creating a Session and calling Run once.
func Eval(line string, opts ...Option) (value.Value, error) {
	out := New(opts...).Run("<input>", line)
	if out.Err != nil {
		return nil, out.Err
	}
	return out.Value, nil
}
