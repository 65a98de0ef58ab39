// Package render presents diagnostics to people and tools.
//
// Text writes the compiler-style terminal layout used by the REPL and the
// check command. ToLSP converts a diagnostic into Language Server Protocol
// wire types for editors.
package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/risor-io/ratcalc/diagnostics"
	"github.com/risor-io/ratcalc/span"
)

// Text formats diagnostics with the offending source line and markers under
// each labeled span: '^' for the primary label and '-' for secondary ones.
type Text struct {
	// Writer receives the rendered output.
	Writer io.Writer

	// Sources resolves spans back to source text. Labels whose source is
	// unknown are omitted from the output.
	Sources *span.Sources

	// Color enables ANSI color codes in output.
	Color bool
}

// NewText returns a Text renderer.
func NewText(w io.Writer, sources *span.Sources, useColor bool) *Text {
	return &Text{Writer: w, Sources: sources, Color: useColor}
}

type palette struct {
	severity  *color.Color
	code      *color.Color
	location  *color.Color
	gutter    *color.Color
	primary   *color.Color
	secondary *color.Color
	note      *color.Color
}

func (t *Text) palette(sev diagnostics.Severity) palette {
	accent := color.FgHiRed
	switch sev {
	case diagnostics.SeverityWarning:
		accent = color.FgHiYellow
	case diagnostics.SeverityNote:
		accent = color.FgHiBlue
	}
	p := palette{
		severity:  color.New(accent, color.Bold),
		code:      color.New(color.FgHiBlack),
		location:  color.New(color.FgCyan),
		gutter:    color.New(color.FgHiBlack),
		primary:   color.New(accent),
		secondary: color.New(color.FgHiBlue),
		note:      color.New(color.FgHiBlue),
	}
	for _, c := range []*color.Color{p.severity, p.code, p.location, p.gutter, p.primary, p.secondary, p.note} {
		if t.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// mark is one label positioned on a source line, measured in terminal cells.
type mark struct {
	pad     int
	width   int
	style   diagnostics.LabelStyle
	message string
}

type sourceLine struct {
	source span.SourceID
	number int
	text   string
	marks  []mark
}

// Render writes one diagnostic.
func (t *Text) Render(d *diagnostics.Diagnostic) error {
	_, err := io.WriteString(t.Writer, t.Format(d))
	return err
}

// RenderAll writes each diagnostic separated by a blank line. When there is
// more than one, a summary line follows.
func (t *Text) RenderAll(ds []*diagnostics.Diagnostic) error {
	_, err := io.WriteString(t.Writer, t.FormatAll(ds))
	return err
}

// FormatAll is the string form of RenderAll.
func (t *Text) FormatAll(ds []*diagnostics.Diagnostic) string {
	switch len(ds) {
	case 0:
		return ""
	case 1:
		return t.Format(ds[0])
	}
	var b strings.Builder
	for i, d := range ds {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(t.Format(d))
	}
	b.WriteString("\n")
	b.WriteString(t.palette(diagnostics.SeverityError).severity.Sprintf("found %d errors", len(ds)))
	b.WriteString("\n")
	return b.String()
}

// Format returns the rendered text of one diagnostic.
func (t *Text) Format(d *diagnostics.Diagnostic) string {
	var b strings.Builder
	p := t.palette(d.Severity)
	lines := t.sourceLines(d)
	width := gutterWidth(lines)

	t.writeHeader(&b, d, p)
	t.writeLocation(&b, d, p, width)
	t.writeSource(&b, lines, p, width)
	for _, note := range d.Notes {
		b.WriteString(p.gutter.Sprint(strings.Repeat(" ", width) + " = "))
		b.WriteString(p.note.Sprint("note: "))
		b.WriteString(note)
		b.WriteString("\n")
	}
	return b.String()
}

func (t *Text) writeHeader(b *strings.Builder, d *diagnostics.Diagnostic, p palette) {
	b.WriteString(p.severity.Sprint(d.Severity.String()))
	if d.Code != "" {
		b.WriteString(p.code.Sprintf("[%s]", d.Code))
	}
	b.WriteString(p.severity.Sprint(": "))
	b.WriteString(d.Message)
	b.WriteString("\n")
}

func (t *Text) writeLocation(b *strings.Builder, d *diagnostics.Diagnostic, p palette, width int) {
	label, ok := d.Primary()
	if !ok {
		if len(d.Labels) == 0 {
			return
		}
		label = d.Labels[0]
	}
	if t.Sources == nil {
		return
	}
	loc, err := t.Sources.Locate(label.Span.Source, label.Span.Start)
	if err != nil {
		return
	}
	b.WriteString(strings.Repeat(" ", width))
	b.WriteString(p.location.Sprint("-->"))
	b.WriteString(" ")
	b.WriteString(p.location.Sprintf("%s:%d:%d", t.Sources.Name(label.Span.Source), loc.Line, loc.Column))
	b.WriteString("\n")
}

func (t *Text) writeSource(b *strings.Builder, lines []*sourceLine, p palette, width int) {
	if len(lines) == 0 {
		return
	}
	padding := strings.Repeat(" ", width)
	b.WriteString(p.gutter.Sprint(padding + " |"))
	b.WriteString("\n")
	for _, line := range lines {
		b.WriteString(p.gutter.Sprint(fmt.Sprintf("%*d", width, line.number) + " | "))
		b.WriteString(line.text)
		b.WriteString("\n")
		for _, m := range line.marks {
			c, ch := p.primary, "^"
			if m.style == diagnostics.Secondary {
				c, ch = p.secondary, "-"
			}
			b.WriteString(p.gutter.Sprint(padding + " | "))
			b.WriteString(strings.Repeat(" ", m.pad))
			b.WriteString(c.Sprint(strings.Repeat(ch, m.width)))
			if m.message != "" {
				b.WriteString(" ")
				b.WriteString(c.Sprint(m.message))
			}
			b.WriteString("\n")
		}
	}
}

// sourceLines groups the labels of d by the line they start on. Lines are
// ordered by position and primary marks come before secondary ones.
func (t *Text) sourceLines(d *diagnostics.Diagnostic) []*sourceLine {
	if t.Sources == nil {
		return nil
	}
	var lines []*sourceLine
	find := func(src span.SourceID, number int) *sourceLine {
		for _, l := range lines {
			if l.source == src && l.number == number {
				return l
			}
		}
		return nil
	}
	for _, label := range d.Labels {
		sp := label.Span
		loc, err := t.Sources.Locate(sp.Source, sp.Start)
		if err != nil {
			continue
		}
		line := find(sp.Source, loc.Line)
		if line == nil {
			line = &sourceLine{source: sp.Source, number: loc.Line, text: loc.LineText}
			lines = append(lines, line)
		}
		col := loc.Column - 1
		end := min(col+sp.Len(), len(loc.LineText))
		line.marks = append(line.marks, mark{
			pad:     runewidth.StringWidth(loc.LineText[:col]),
			width:   max(1, runewidth.StringWidth(loc.LineText[col:max(col, end)])),
			style:   label.Style,
			message: label.Message,
		})
	}
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].source != lines[j].source {
			return lines[i].source < lines[j].source
		}
		return lines[i].number < lines[j].number
	})
	for _, l := range lines {
		sort.SliceStable(l.marks, func(i, j int) bool {
			return l.marks[i].style < l.marks[j].style
		})
	}
	return lines
}

func gutterWidth(lines []*sourceLine) int {
	width := 2
	for _, l := range lines {
		width = max(width, len(strconv.Itoa(l.number)))
	}
	return width
}
