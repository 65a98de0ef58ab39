package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risor-io/ratcalc/diagnostics"
	"github.com/risor-io/ratcalc/span"
)

func TestFormatUndefinedVariable(t *testing.T) {
	sources := span.NewSources()
	id := sources.Add("<stdin>", "x + y")
	d := diagnostics.Report(&diagnostics.UndefinedVariable{Name: "y", Span: span.New(id, 4, 5)})

	expected := strings.Join([]string{
		"error[E3001]: undefined variable 'y'",
		"  --> <stdin>:1:5",
		"   |",
		" 1 | x + y",
		"   |     ^ not defined",
		"   = note: define it first with `y = <expr>`",
		"",
	}, "\n")
	assert.Equal(t, expected, NewText(nil, sources, false).Format(d))
}

func TestFormatSecondaryLabel(t *testing.T) {
	sources := span.NewSources()
	id := sources.Add("<stdin>", "1 / (2 - 2)")
	d := diagnostics.Report(&diagnostics.DivisionByZero{
		Span:    span.New(id, 0, 11),
		Divisor: span.New(id, 4, 11),
	})

	expected := strings.Join([]string{
		"error[E3002]: division by zero",
		"  --> <stdin>:1:5",
		"   |",
		" 1 | 1 / (2 - 2)",
		"   |     ^^^^^^^ this evaluates to zero",
		"   | ----------- in this division",
		"",
	}, "\n")
	assert.Equal(t, expected, NewText(nil, sources, false).Format(d))
}

func TestFormatEndOfInput(t *testing.T) {
	sources := span.NewSources()
	id := sources.Add("calc.txt", "(1 + 2")
	d := diagnostics.Report(&diagnostics.UnclosedDelimiter{
		Delimiter: "(",
		Expected:  ")",
		Open:      span.New(id, 0, 1),
		Span:      span.Point(id, 6),
	})

	out := NewText(nil, sources, false).Format(d)
	assert.Contains(t, out, "error[E1007]: unclosed delimiter '('\n")
	assert.Contains(t, out, "  --> calc.txt:1:7\n")
	assert.Contains(t, out, "   |       ^ expected ')', found end of input\n")
	assert.Contains(t, out, "   | - unclosed delimiter\n")
	// Both labels sit on one line, so the source is shown once.
	assert.Equal(t, 1, strings.Count(out, " 1 | (1 + 2"))
}

func TestFormatWideCharacters(t *testing.T) {
	sources := span.NewSources()
	id := sources.Add("<stdin>", "ü + $")
	d := diagnostics.Report(&diagnostics.ExpectedFound{
		Expected: []string{"number"},
		Found:    "'$'",
		Span:     span.New(id, 5, 6),
	})
	out := NewText(nil, sources, false).Format(d)
	assert.Contains(t, out, "   |     ^ found '$'\n")
	assert.Contains(t, out, "  --> <stdin>:1:6\n")
}

func TestFormatWithoutLabels(t *testing.T) {
	d := diagnostics.Collect(errors.New("boom"))
	require.Len(t, d, 1)
	out := NewText(nil, span.NewSources(), false).Format(d[0])
	assert.Equal(t, "error: boom\n", out)
}

func TestFormatUnknownSource(t *testing.T) {
	d := diagnostics.Report(&diagnostics.Custom{Msg: "bad", Span: span.New(9, 0, 1)})
	out := NewText(nil, span.NewSources(), false).Format(d)
	assert.Equal(t, "error[E1003]: bad\n", out)
}

func TestFormatGutterGrowsWithLineNumber(t *testing.T) {
	sources := span.NewSources()
	text := strings.Repeat("\n", 120) + "oops"
	id := sources.Add("big.txt", text)
	d := diagnostics.Report(&diagnostics.Custom{Msg: "bad", Span: span.New(id, 120, 124)})
	out := NewText(nil, sources, false).Format(d)
	assert.Contains(t, out, "   --> big.txt:121:1\n")
	assert.Contains(t, out, "121 | oops\n")
	assert.Contains(t, out, "    | ^^^^\n")
}

func TestRenderAll(t *testing.T) {
	sources := span.NewSources()
	id := sources.Add("<stdin>", "1 $ #")
	ds := []*diagnostics.Diagnostic{
		diagnostics.Report(&diagnostics.ExpectedFound{Found: "'$'", Span: span.New(id, 2, 3), ErrCode: diagnostics.E1002}),
		diagnostics.Report(&diagnostics.ExpectedFound{Found: "'#'", Span: span.New(id, 4, 5), ErrCode: diagnostics.E1002}),
	}
	var buf bytes.Buffer
	require.NoError(t, NewText(&buf, sources, false).RenderAll(ds))
	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "error[E1002]: unexpected"))
	assert.True(t, strings.HasSuffix(out, "\nfound 2 errors\n"))

	buf.Reset()
	require.NoError(t, NewText(&buf, sources, false).RenderAll(ds[:1]))
	assert.NotContains(t, buf.String(), " errors\n")

	buf.Reset()
	require.NoError(t, NewText(&buf, sources, false).RenderAll(nil))
	assert.Empty(t, buf.String())
}

func TestColor(t *testing.T) {
	sources := span.NewSources()
	id := sources.Add("<stdin>", "y")
	d := diagnostics.Report(&diagnostics.UndefinedVariable{Name: "y", Span: span.New(id, 0, 1)})

	colored := NewText(nil, sources, true).Format(d)
	plain := NewText(nil, sources, false).Format(d)
	assert.Contains(t, colored, "\x1b[")
	assert.NotContains(t, plain, "\x1b[")
}

func TestFormatDocumentLine(t *testing.T) {
	sources := span.NewSources()
	id := sources.AddAt("calc.txt", "x + y", 12)
	d := diagnostics.Report(&diagnostics.UndefinedVariable{Name: "y", Span: span.New(id, 4, 5)})
	out := NewText(nil, sources, false).Format(d)
	assert.Contains(t, out, "  --> calc.txt:12:5\n")
	assert.Contains(t, out, "12 | x + y\n")
}
