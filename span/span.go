// Package span identifies byte ranges within submitted lines of input.
//
// Every token, AST node and diagnostic carries a Span so that errors can be
// traced back to the exact source text that produced them.
package span

import "fmt"

// SourceID identifies one unit of input, typically one submitted line.
type SourceID int

// Span is a half-open byte range [Start, End) within a single source.
type Span struct {
	Start  int      // byte offset of the first byte
	End    int      // byte offset immediately after the last byte
	Source SourceID // the source the offsets point into
}

// New returns the span [start, end) in the given source. If end is before
// start, the two offsets are swapped so that Start <= End always holds.
func New(src SourceID, start, end int) Span {
	if end < start {
		start, end = end, start
	}
	return Span{Start: start, End: end, Source: src}
}

// Zero returns the empty span at offset 0 of the given source.
func Zero(src SourceID) Span {
	return Span{Source: src}
}

// Point returns the empty span positioned at offset.
func Point(src SourceID, offset int) Span {
	return Span{Start: offset, End: offset, Source: src}
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return s.Source == other.Source && s.Start <= other.Start && other.End <= s.End
}

// Union returns the smallest span that covers both s and other.
// Both spans must belong to the same source.
func (s Span) Union(other Span) Span {
	return Union(s, other)
}

// Union returns the smallest span that covers both a and b. The result keeps
// the source of a; callers never mix sources within one line.
func Union(a, b Span) Span {
	return Span{
		Start:  min(a.Start, b.Start),
		End:    max(a.End, b.End),
		Source: a.Source,
	}
}

// String returns the span as "start..end".
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
