package render

import (
	"path/filepath"
	"strings"
	"unicode/utf16"

	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"

	"github.com/risor-io/ratcalc/diagnostics"
	"github.com/risor-io/ratcalc/span"
)

// LSPSource is reported as the origin of every LSP diagnostic.
const LSPSource = "ratcalc"

// ToLSP converts d into an LSP diagnostic. Line numbers come from the
// source registry, so sources added with AddAt land on their document line.
// The primary label becomes the range and secondary labels become related
// information. Character offsets are counted in UTF-16 code units. A
// diagnostic without a resolvable primary label is placed at the start of
// the document.
func ToLSP(d *diagnostics.Diagnostic, sources *span.Sources) protocol.Diagnostic {
	out := protocol.Diagnostic{
		Severity: lspSeverity(d.Severity),
		Source:   LSPSource,
		Message:  lspMessage(d),
	}
	if d.Code != "" {
		out.Code = string(d.Code)
	}
	if primary, ok := d.Primary(); ok {
		if r, ok := lspRange(sources, primary.Span); ok {
			out.Range = r
		}
	}
	for _, label := range d.Labels {
		if label.Style != diagnostics.Secondary {
			continue
		}
		r, ok := lspRange(sources, label.Span)
		if !ok {
			continue
		}
		msg := label.Message
		if msg == "" {
			msg = d.Message
		}
		out.RelatedInformation = append(out.RelatedInformation, protocol.DiagnosticRelatedInformation{
			Location: protocol.Location{URI: DocumentURI(sources.Name(label.Span.Source)), Range: r},
			Message:  msg,
		})
	}
	return out
}

// DocumentURI returns the file URI for a source name. Names that are not
// file paths, such as "<stdin>", are returned unchanged.
func DocumentURI(name string) protocol.DocumentURI {
	if name == "" || strings.HasPrefix(name, "<") || strings.Contains(name, "://") {
		return protocol.DocumentURI(name)
	}
	if abs, err := filepath.Abs(name); err == nil {
		name = abs
	}
	path := filepath.ToSlash(name)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return protocol.DocumentURI("file://" + path)
}

func lspSeverity(s diagnostics.Severity) protocol.DiagnosticSeverity {
	switch s {
	case diagnostics.SeverityWarning:
		return protocol.SeverityWarning
	case diagnostics.SeverityNote:
		return protocol.SeverityInformation
	}
	return protocol.SeverityError
}

// lspMessage folds label-free context into the message, since LSP clients
// show only the message and related information.
func lspMessage(d *diagnostics.Diagnostic) string {
	var b strings.Builder
	b.WriteString(d.Message)
	if primary, ok := d.Primary(); ok && primary.Message != "" {
		b.WriteString(": ")
		b.WriteString(primary.Message)
	}
	for _, note := range d.Notes {
		b.WriteString("\nnote: ")
		b.WriteString(note)
	}
	return b.String()
}

func lspRange(sources *span.Sources, sp span.Span) (protocol.Range, bool) {
	if sources == nil {
		return protocol.Range{}, false
	}
	start, err := sources.Locate(sp.Source, sp.Start)
	if err != nil {
		return protocol.Range{}, false
	}
	end, err := sources.Locate(sp.Source, sp.End)
	if err != nil {
		return protocol.Range{}, false
	}
	return protocol.Range{
		Start: position(start.Line-1, utf16Len(start.LineText[:start.Column-1])),
		End:   position(end.Line-1, utf16Len(end.LineText[:end.Column-1])),
	}, true
}

func position(line, character int) protocol.Position {
	return protocol.Position{Line: uint32(line), Character: uint32(character)}
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
