// Package eval evaluates parsed statements against a session's variables and
// display settings.
//
// An Evaluator is not safe for concurrent use. A statement that fails leaves
// the variables and the display settings exactly as they were.
package eval

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/risor-io/ratcalc/ast"
	"github.com/risor-io/ratcalc/diagnostics"
	"github.com/risor-io/ratcalc/intern"
	"github.com/risor-io/ratcalc/value"
)

// Result is the outcome of evaluating one statement.
type Result struct {
	// Value is the value to display, or nil if the statement produced none.
	Value value.Value

	// Exit is set when the session should end.
	Exit bool
}

// Binding is one variable and its value.
type Binding struct {
	Name  string
	Value value.Number
}

// Evaluator holds the state of a calculator session.
type Evaluator struct {
	names   *intern.Interner
	env     map[intern.Symbol]value.Number
	display value.Display

	out   io.Writer
	msgs  io.Writer
	log   zerolog.Logger
	color bool
}

// New returns an Evaluator with no variables. Identifiers in evaluated
// statements must have been interned into names.
func New(names *intern.Interner, options ...Option) *Evaluator {
	e := &Evaluator{
		names:   names,
		env:     map[intern.Symbol]value.Number{},
		display: value.DefaultDisplay(),
		out:     io.Discard,
		msgs:    io.Discard,
		log:     zerolog.Nop(),
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

// Display returns the current display configuration.
func (e *Evaluator) Display() value.Display {
	return e.display
}

// Format renders v with the current display configuration.
func (e *Evaluator) Format(v value.Value) string {
	return v.Format(e.display)
}

// Define binds name to v, replacing any previous binding.
func (e *Evaluator) Define(name string, v value.Number) {
	e.bind(e.names.Intern(name), name, v)
}

// Lookup returns the value bound to name.
func (e *Evaluator) Lookup(name string) (value.Number, bool) {
	sym, ok := e.names.Lookup(name)
	if !ok {
		return value.Number{}, false
	}
	v, ok := e.env[sym]
	return v, ok
}

// Vars returns every binding sorted by name.
func (e *Evaluator) Vars() []Binding {
	vars := make([]Binding, 0, len(e.env))
	for sym, v := range e.env {
		vars = append(vars, Binding{Name: e.names.Resolve(sym), Value: v})
	}
	sort.Slice(vars, func(i, j int) bool {
		return vars[i].Name < vars[j].Name
	})
	return vars
}

func (e *Evaluator) bind(sym intern.Symbol, name string, v value.Number) {
	e.env[sym] = v
	e.log.Debug().Str("name", name).Str("value", v.Exact()).Msg("variable bound")
}

// Eval evaluates one statement.
func (e *Evaluator) Eval(stmt ast.Stmt) (Result, error) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		v, err := e.evalExpr(s.X)
		if err != nil {
			return Result{}, err
		}
		return Result{Value: v}, nil
	case *ast.Assign:
		v, err := e.evalExpr(s.Value)
		if err != nil {
			return Result{}, err
		}
		e.bind(s.Name.Sym, s.Name.Name, v)
		return Result{}, nil
	case *ast.SetPrecision:
		return Result{}, e.setPrecision(s)
	case *ast.FullPrecision:
		e.display = e.display.WithFull()
		e.log.Debug().Msg("using full precision")
		fmt.Fprintln(e.msgs, "Using full precision")
		return Result{}, nil
	case *ast.Help:
		fmt.Fprint(e.out, helpText)
		return Result{}, nil
	case *ast.Exit:
		fmt.Fprintln(e.msgs, "Exiting...")
		return Result{Exit: true}, nil
	case *ast.Vars:
		e.printVars()
		return Result{}, nil
	}
	return Result{}, fmt.Errorf("cannot evaluate statement %s", stmt)
}

func (e *Evaluator) setPrecision(s *ast.SetPrecision) error {
	v, err := e.evalExpr(s.Value)
	if err != nil {
		return err
	}
	if v.IsZero() {
		return &diagnostics.PrecisionZero{Span: s.Value.Span()}
	}
	text := v.Exact()
	digits, err := strconv.ParseUint(text, 10, 16)
	if err != nil {
		return &diagnostics.InvalidPrecision{Value: text, Span: s.Value.Span(), Err: err}
	}
	e.display = e.display.WithDigits(int(digits))
	e.log.Debug().Uint64("digits", digits).Msg("precision set")
	fmt.Fprintf(e.msgs, "Set precision to: %d\n", digits)
	return nil
}

func (e *Evaluator) printVars() {
	nameColor := color.New(color.FgBlue)
	exactColor := color.New(color.FgHiBlack)
	if e.color {
		nameColor.EnableColor()
		exactColor.EnableColor()
	} else {
		nameColor.DisableColor()
		exactColor.DisableColor()
	}
	for _, b := range e.Vars() {
		fmt.Fprintf(e.out, "%s = %s %s\n",
			nameColor.Sprint(b.Name),
			b.Value.Format(e.display),
			exactColor.Sprintf("(%s)", b.Value.Exact()))
	}
}
