// Package diagnostics turns lexer, parser and evaluator errors into a single
// renderer-agnostic record.
//
// Every error kind produced by the pipeline implements Diag. Report converts
// one Diag into a Diagnostic and Collect flattens an aggregated error into
// the list of Diagnostics for a line. This package owns no presentation
// logic; see the render package for that.
package diagnostics

import (
	"errors"

	"github.com/hashicorp/go-multierror"

	"github.com/risor-io/ratcalc/span"
)

// Severity indicates the severity level of a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return "unknown"
	}
}

// LabelStyle distinguishes the span an error is about from supporting context.
type LabelStyle int

const (
	Primary LabelStyle = iota
	Secondary
)

func (s LabelStyle) String() string {
	if s == Secondary {
		return "secondary"
	}
	return "primary"
}

// Label attaches an optional message to a span of source.
type Label struct {
	Style   LabelStyle
	Message string // may be empty
	Span    span.Span
}

// PrimaryLabel returns a primary label.
func PrimaryLabel(message string, sp span.Span) Label {
	return Label{Style: Primary, Message: message, Span: sp}
}

// SecondaryLabel returns a secondary label.
func SecondaryLabel(message string, sp span.Span) Label {
	return Label{Style: Secondary, Message: message, Span: sp}
}

// Diag is implemented by every error the pipeline reports.
type Diag interface {
	error
	Code() ErrorCode
	Message() string
	Labels() []Label
	Notes() []string
	Severity() Severity
}

// Diagnostic is the record handed to a renderer. It is built once per error
// and not modified afterwards.
type Diagnostic struct {
	Severity Severity
	Code     ErrorCode
	Message  string
	Labels   []Label
	Notes    []string
}

// Primary returns the first primary label, if any.
func (d *Diagnostic) Primary() (Label, bool) {
	for _, l := range d.Labels {
		if l.Style == Primary {
			return l, true
		}
	}
	return Label{}, false
}

// Report builds the Diagnostic for d.
func Report(d Diag) *Diagnostic {
	return &Diagnostic{
		Severity: d.Severity(),
		Code:     d.Code(),
		Message:  d.Message(),
		Labels:   d.Labels(),
		Notes:    d.Notes(),
	}
}

// Collect converts err into diagnostics. Aggregated errors are flattened in
// order. Errors that carry no source information become span-less
// diagnostics so that nothing is silently dropped.
func Collect(err error) []*Diagnostic {
	if err == nil {
		return nil
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		var out []*Diagnostic
		for _, e := range merr.Errors {
			out = append(out, Collect(e)...)
		}
		return out
	}
	var d Diag
	if errors.As(err, &d) {
		return []*Diagnostic{Report(d)}
	}
	return []*Diagnostic{{
		Severity: SeverityError,
		Message:  err.Error(),
	}}
}
