package span

import (
	"fmt"
	"strings"
	"sync"
)

// Sources stores the text of every submitted input so that renderers can
// slice out context for a span long after the line was processed.
// Sources are append-only: an ID handed out by Add stays valid for the life
// of the registry.
type Sources struct {
	mu    sync.RWMutex
	names []string
	texts []string
	lines []int // line number of the first line of each text
}

// NewSources returns an empty registry.
func NewSources() *Sources {
	return &Sources{}
}

// Add records a new source and returns its identifier.
func (s *Sources) Add(name, text string) SourceID {
	return s.AddAt(name, text, 1)
}

// AddAt records a new source whose first line is line number first of a
// larger document, such as one line of a file.
func (s *Sources) AddAt(name, text string, first int) SourceID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names = append(s.names, name)
	s.texts = append(s.texts, text)
	s.lines = append(s.lines, max(first, 1))
	return SourceID(len(s.texts) - 1)
}

// Len returns the number of registered sources.
func (s *Sources) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.texts)
}

// Text returns the full text of the given source.
func (s *Sources) Text(id SourceID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if int(id) < 0 || int(id) >= len(s.texts) {
		return "", fmt.Errorf("unknown source id %d", id)
	}
	return s.texts[id], nil
}

// Name returns the display name of the given source.
func (s *Sources) Name(id SourceID) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if int(id) < 0 || int(id) >= len(s.names) {
		return ""
	}
	return s.names[id]
}

// Slice returns the text covered by sp. Offsets are clamped to the source.
func (s *Sources) Slice(sp Span) (string, error) {
	text, err := s.Text(sp.Source)
	if err != nil {
		return "", err
	}
	start := clamp(sp.Start, 0, len(text))
	end := clamp(sp.End, start, len(text))
	return text[start:end], nil
}

// Location is a resolved 1-indexed line and column within a source, along
// with the text of that line.
type Location struct {
	Line     int
	Column   int
	LineText string
}

// Locate resolves a byte offset into a line and column. Columns count bytes.
// Line numbers start at the first line given to AddAt.
func (s *Sources) Locate(id SourceID, offset int) (Location, error) {
	text, err := s.Text(id)
	if err != nil {
		return Location{}, err
	}
	s.mu.RLock()
	first := s.lines[id]
	s.mu.RUnlock()
	offset = clamp(offset, 0, len(text))
	lineStart := strings.LastIndexByte(text[:offset], '\n') + 1
	lineEnd := strings.IndexByte(text[offset:], '\n')
	if lineEnd < 0 {
		lineEnd = len(text)
	} else {
		lineEnd += offset
	}
	return Location{
		Line:     strings.Count(text[:lineStart], "\n") + first,
		Column:   offset - lineStart + 1,
		LineText: text[lineStart:lineEnd],
	}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
