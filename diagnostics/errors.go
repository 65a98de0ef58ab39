package diagnostics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/risor-io/ratcalc/span"
)

// EndOfInput is the description used when the input ran out.
const EndOfInput = "end of input"

func errorString(code ErrorCode, message string, sp span.Span) string {
	return fmt.Sprintf("%s error: %s (%s)", code.Category(), message, sp)
}

func describeFound(found string) string {
	if found == "" {
		return EndOfInput
	}
	return found
}

// ExpectedFound reports that the grammar could not continue: one of Expected
// was required but Found was seen. An empty Found means the input ended.
type ExpectedFound struct {
	Expected []string
	Found    string
	Span     span.Span
	ErrCode  ErrorCode // defaults to E1001
}

func (e *ExpectedFound) Code() ErrorCode {
	if e.ErrCode == "" {
		return E1001
	}
	return e.ErrCode
}

func (e *ExpectedFound) Message() string {
	found := describeFound(e.Found)
	switch len(e.Expected) {
	case 0:
		return fmt.Sprintf("unexpected %s", found)
	case 1:
		return fmt.Sprintf("expected %s, but found %s", e.Expected[0], found)
	}
	return fmt.Sprintf("expected one of %s, but found %s", strings.Join(e.Expected, ", "), found)
}

func (e *ExpectedFound) Labels() []Label {
	return []Label{PrimaryLabel("found "+describeFound(e.Found), e.Span)}
}

func (e *ExpectedFound) Notes() []string    { return nil }
func (e *ExpectedFound) Severity() Severity { return SeverityError }

func (e *ExpectedFound) Error() string {
	return errorString(e.Code(), e.Message(), e.Span)
}

// Custom is a free-form syntax error.
type Custom struct {
	Msg     string
	Span    span.Span
	ErrCode ErrorCode // defaults to E1003
}

func (e *Custom) Code() ErrorCode {
	if e.ErrCode == "" {
		return E1003
	}
	return e.ErrCode
}

func (e *Custom) Message() string    { return e.Msg }
func (e *Custom) Labels() []Label    { return []Label{PrimaryLabel("", e.Span)} }
func (e *Custom) Notes() []string    { return nil }
func (e *Custom) Severity() Severity { return SeverityError }

func (e *Custom) Error() string {
	return errorString(e.Code(), e.Msg, e.Span)
}

// UnclosedDelimiter reports a bracket group whose closing delimiter never
// arrived. Span marks where the closer was expected (the end of input or a
// mismatched closer) and Open marks the opening delimiter.
type UnclosedDelimiter struct {
	Delimiter string // the opening delimiter, e.g. "("
	Expected  string // the closing delimiter, e.g. ")"
	Found     string // empty at end of input
	Open      span.Span
	Span      span.Span
}

func (e *UnclosedDelimiter) Code() ErrorCode { return E1007 }

func (e *UnclosedDelimiter) Message() string {
	return fmt.Sprintf("unclosed delimiter '%s'", e.Delimiter)
}

func (e *UnclosedDelimiter) Labels() []Label {
	return []Label{
		PrimaryLabel(fmt.Sprintf("expected '%s', found %s", e.Expected, describeFound(e.Found)), e.Span),
		SecondaryLabel("unclosed delimiter", e.Open),
	}
}

func (e *UnclosedDelimiter) Notes() []string    { return nil }
func (e *UnclosedDelimiter) Severity() Severity { return SeverityError }

func (e *UnclosedDelimiter) Error() string {
	return errorString(e.Code(), e.Message(), e.Span)
}

// UndefinedVariable reports a reference to a name with no binding.
type UndefinedVariable struct {
	Name        string
	Span        span.Span
	Suggestions []Suggestion
}

func (e *UndefinedVariable) Code() ErrorCode { return E3001 }

func (e *UndefinedVariable) Message() string {
	return fmt.Sprintf("undefined variable '%s'", e.Name)
}

func (e *UndefinedVariable) Labels() []Label {
	return []Label{PrimaryLabel("not defined", e.Span)}
}

func (e *UndefinedVariable) Notes() []string {
	notes := []string{fmt.Sprintf("define it first with `%s = <expr>`", e.Name)}
	if hint := FormatSuggestions(e.Suggestions); hint != "" {
		notes = append(notes, hint)
	}
	return notes
}

func (e *UndefinedVariable) Severity() Severity { return SeverityError }

func (e *UndefinedVariable) Error() string {
	return errorString(e.Code(), e.Message(), e.Span)
}

// PrecisionZero reports an attempt to round to zero significant digits.
type PrecisionZero struct {
	Span span.Span
}

func (e *PrecisionZero) Code() ErrorCode { return E3003 }
func (e *PrecisionZero) Message() string { return "precision must be nonzero" }

func (e *PrecisionZero) Labels() []Label {
	return []Label{PrimaryLabel("this evaluates to zero", e.Span)}
}

func (e *PrecisionZero) Notes() []string {
	return []string{"use `fullprecision` to disable rounding"}
}

func (e *PrecisionZero) Severity() Severity { return SeverityError }

func (e *PrecisionZero) Error() string {
	return errorString(e.Code(), e.Message(), e.Span)
}

// InvalidPrecision reports a precision value that is not a natural number.
// Err holds the underlying parse failure.
type InvalidPrecision struct {
	Value string // the exact form of the rejected value
	Span  span.Span
	Err   error
}

func (e *InvalidPrecision) Code() ErrorCode { return E3004 }
func (e *InvalidPrecision) Message() string { return "invalid precision" }

func (e *InvalidPrecision) Labels() []Label {
	if errors.Is(e.Err, strconv.ErrRange) {
		return []Label{PrimaryLabel(fmt.Sprintf("%s is too large", e.Value), e.Span)}
	}
	return []Label{PrimaryLabel(fmt.Sprintf("%s is not a natural number", e.Value), e.Span)}
}

func (e *InvalidPrecision) Notes() []string {
	if e.Err == nil {
		return nil
	}
	return []string{e.Err.Error()}
}

func (e *InvalidPrecision) Severity() Severity { return SeverityError }

func (e *InvalidPrecision) Error() string {
	return errorString(e.Code(), e.Message(), e.Span)
}

func (e *InvalidPrecision) Unwrap() error { return e.Err }

// DivisionByZero reports a division whose divisor evaluated to exact zero.
type DivisionByZero struct {
	Span    span.Span // the whole division
	Divisor span.Span
	Err     error
}

func (e *DivisionByZero) Code() ErrorCode { return E3002 }
func (e *DivisionByZero) Message() string { return "division by zero" }

func (e *DivisionByZero) Labels() []Label {
	return []Label{
		PrimaryLabel("this evaluates to zero", e.Divisor),
		SecondaryLabel("in this division", e.Span),
	}
}

func (e *DivisionByZero) Notes() []string    { return nil }
func (e *DivisionByZero) Severity() Severity { return SeverityError }

func (e *DivisionByZero) Error() string {
	return errorString(e.Code(), e.Message(), e.Span)
}

func (e *DivisionByZero) Unwrap() error { return e.Err }
