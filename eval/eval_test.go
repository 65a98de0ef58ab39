package eval

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risor-io/ratcalc/diagnostics"
	"github.com/risor-io/ratcalc/intern"
	"github.com/risor-io/ratcalc/internal/lexer"
	"github.com/risor-io/ratcalc/parser"
	"github.com/risor-io/ratcalc/span"
	"github.com/risor-io/ratcalc/value"
)

type harness struct {
	t     *testing.T
	names *intern.Interner
	eval  *Evaluator
	out   *bytes.Buffer
	msgs  *bytes.Buffer
}

func newHarness(t *testing.T, options ...Option) *harness {
	h := &harness{t: t, names: intern.New(), out: &bytes.Buffer{}, msgs: &bytes.Buffer{}}
	options = append([]Option{WithOutput(h.out), WithMessages(h.msgs)}, options...)
	h.eval = New(h.names, options...)
	return h
}

func (h *harness) run(input string) (Result, error) {
	h.t.Helper()
	l := lexer.New(input, 0)
	tokens, err := l.Lex()
	require.NoError(h.t, err, input)
	stmt, err := parser.Parse(tokens, l.End(), h.names)
	require.NoError(h.t, err, input)
	return h.eval.Eval(stmt)
}

// show evaluates input and returns its displayed value.
func (h *harness) show(input string) string {
	h.t.Helper()
	res, err := h.run(input)
	require.NoError(h.t, err, input)
	require.NotNil(h.t, res.Value, input)
	return h.eval.Format(res.Value)
}

func (h *harness) fail(input string) error {
	h.t.Helper()
	res, err := h.run(input)
	require.Error(h.t, err, input)
	assert.Nil(h.t, res.Value)
	return err
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2 + 3 * 4", "14"},
		{"(2 + 3) * 4", "20"},
		{"- - 5", "5"},
		{"-5", "-5"},
		{"10 - 2 - 3", "5"},
		{"2 / 4", "0.5"},
		{"1 / 3 * 3", "1"},
		{"0.1 + 0.2", "0.3"},
		{"0x10 + 0b10 + 0o10", "26"},
		{"0x0.8", "0.5"},
		{"100 / 8 / 5", "2.5"},
		{"-(2 - 5) * 2", "6"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			h := newHarness(t)
			assert.Equal(t, tt.expected, h.show(tt.input))
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	h := newHarness(t)
	err := h.fail("10 / (3 - 3)")

	assert.True(t, errors.Is(err, value.ErrDivisionByZero))
	var div *diagnostics.DivisionByZero
	require.True(t, errors.As(err, &div))
	assert.Equal(t, span.New(0, 0, 12), div.Span)
	assert.Equal(t, span.New(0, 5, 12), div.Divisor)
	assert.Equal(t, diagnostics.E3002, div.Code())
}

func TestAssignThenReference(t *testing.T) {
	h := newHarness(t)
	res, err := h.run("x = 7")
	require.NoError(t, err)
	assert.Nil(t, res.Value)
	assert.False(t, res.Exit)
	assert.Equal(t, "14", h.show("x * 2"))

	_, err = h.run("x = x + 1")
	require.NoError(t, err)
	assert.Equal(t, "8", h.show("x"))
}

func TestUndefinedVariable(t *testing.T) {
	h := newHarness(t)
	err := h.fail("1 + y * 2")

	var undef *diagnostics.UndefinedVariable
	require.True(t, errors.As(err, &undef))
	assert.Equal(t, "y", undef.Name)
	assert.Equal(t, span.New(0, 4, 5), undef.Span)
	assert.Empty(t, undef.Suggestions)
	assert.Equal(t, []string{"define it first with `y = <expr>`"}, undef.Notes())
}

func TestUndefinedVariableSuggestions(t *testing.T) {
	h := newHarness(t)
	h.eval.Define("total", value.FromInt(3))
	h.eval.Define("other", value.FromInt(4))

	err := h.fail("totl")
	var undef *diagnostics.UndefinedVariable
	require.True(t, errors.As(err, &undef))
	require.Len(t, undef.Suggestions, 1)
	assert.Equal(t, "total", undef.Suggestions[0].Value)
	assert.Contains(t, undef.Notes(), "did you mean 'total'?")
}

func TestPrecision(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, "0.3333333333333333", h.show("1/3"))

	_, err := h.run("precision 3")
	require.NoError(t, err)
	assert.Equal(t, "0.333", h.show("1/3"))
	assert.Equal(t, 3, h.eval.Display().Digits)
	assert.Equal(t, "Set precision to: 3\n", h.msgs.String())

	_, err = h.run("fullprecision")
	require.NoError(t, err)
	assert.Equal(t, "0.[3]", h.show("1/3"))
	assert.True(t, h.eval.Display().Full)
	assert.Contains(t, h.msgs.String(), "Using full precision\n")

	_, err = h.run("precision 2 * 2")
	require.NoError(t, err)
	assert.Equal(t, "0.6667", h.show("2/3"))
}

func TestPrecisionZero(t *testing.T) {
	h := newHarness(t)
	err := h.fail("precision 2 - 2")

	var zero *diagnostics.PrecisionZero
	require.True(t, errors.As(err, &zero))
	assert.Equal(t, span.New(0, 10, 15), zero.Span)
	assert.Equal(t, "precision must be nonzero", zero.Message())
	assert.Equal(t, value.DefaultDigits, h.eval.Display().Digits)
}

func TestInvalidPrecision(t *testing.T) {
	tests := []struct {
		input string
		value string
		err   error
	}{
		{"precision 5/2", "5/2", strconv.ErrSyntax},
		{"precision 0.5", "1/2", strconv.ErrSyntax},
		{"precision -3", "-3", strconv.ErrSyntax},
		{"precision 70000", "70000", strconv.ErrRange},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			h := newHarness(t)
			err := h.fail(tt.input)

			var invalid *diagnostics.InvalidPrecision
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.value, invalid.Value)
			assert.Equal(t, span.New(0, 10, len(tt.input)), invalid.Span)

			var numErr *strconv.NumError
			require.True(t, errors.As(err, &numErr))
			assert.True(t, errors.Is(err, tt.err))
			assert.Equal(t, value.DefaultDigits, h.eval.Display().Digits)
			assert.Empty(t, h.msgs.String())
		})
	}
}

func TestFailedStatementLeavesStateUnchanged(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("x = 1")
	require.NoError(t, err)
	_, err = h.run("precision 3")
	require.NoError(t, err)

	h.fail("x = 1 / 0")
	h.fail("x = undefined")
	h.fail("precision 1 / 0")
	h.fail("precision 0")
	h.fail("precision 1/2")

	assert.Equal(t, "1", h.show("x"))
	assert.Equal(t, 3, h.eval.Display().Digits)
	assert.Len(t, h.eval.Vars(), 1)
}

func TestVarsSortedByName(t *testing.T) {
	h := newHarness(t)
	for _, line := range []string{"zeta = 1/3", "alpha = 2", "mid = 0.5", "beta = -1"} {
		_, err := h.run(line)
		require.NoError(t, err)
	}
	res, err := h.run("vars")
	require.NoError(t, err)
	assert.Nil(t, res.Value)

	expected := strings.Join([]string{
		"alpha = 2 (2)",
		"beta = -1 (-1)",
		"mid = 0.5 (1/2)",
		"zeta = 0.3333333333333333 (1/3)",
	}, "\n") + "\n"
	assert.Equal(t, expected, h.out.String())

	var names []string
	for _, b := range h.eval.Vars() {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"alpha", "beta", "mid", "zeta"}, names)
}

func TestVarsColor(t *testing.T) {
	h := newHarness(t, WithColor(true))
	h.eval.Define("x", value.FromInt(1))
	_, err := h.run("vars")
	require.NoError(t, err)
	assert.Contains(t, h.out.String(), "\x1b[")
	assert.Contains(t, h.out.String(), "x")
}

func TestHelp(t *testing.T) {
	h := newHarness(t)
	res, err := h.run("help")
	require.NoError(t, err)
	assert.Nil(t, res.Value)
	assert.False(t, res.Exit)
	assert.Contains(t, h.out.String(), "precision <p>")
	assert.Contains(t, h.out.String(), "fullprecision")
	assert.Empty(t, h.msgs.String())
}

func TestExit(t *testing.T) {
	h := newHarness(t)
	res, err := h.run("exit")
	require.NoError(t, err)
	assert.True(t, res.Exit)
	assert.Nil(t, res.Value)
	assert.Equal(t, "Exiting...\n", h.msgs.String())
}

func TestDefineAndLookup(t *testing.T) {
	h := newHarness(t)
	_, ok := h.eval.Lookup("pi")
	assert.False(t, ok)

	h.eval.Define("pi", value.FromFrac(355, 113))
	v, ok := h.eval.Lookup("pi")
	require.True(t, ok)
	assert.Equal(t, "355/113", v.Exact())
	assert.Equal(t, "710/113", h.exact("pi * 2"))
}

// exact evaluates input and returns the exact form of its value.
func (h *harness) exact(input string) string {
	h.t.Helper()
	res, err := h.run(input)
	require.NoError(h.t, err)
	return res.Value.Exact()
}

func TestWithDisplay(t *testing.T) {
	h := newHarness(t, WithDisplay(value.DefaultDisplay().WithFull()))
	assert.Equal(t, "0.1[6]", h.show("1/6"))
}
