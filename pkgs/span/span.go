// Package span defines the byte-accurate source range used throughout
// lexcore: every token, diagnostic label, and recovery error anchors to one.
package span

import "fmt"

// SourceID identifies a file registered with a source map. The zero value
// is never assigned by a well-behaved source map and is reserved for
// spans that have no backing file.
type SourceID int

// Span is a half-open byte range [Start, End) within the file identified by
// SourceID. End-of-file is represented by the empty span (id, n, n).
type Span struct {
	SourceID SourceID
	Start    int
	End      int
}

// New builds a span, panicking if the invariant 0 <= start <= end is
// violated — this is a programmer error, never a runtime/user condition.
func New(id SourceID, start, end int) Span {
	if start < 0 || end < start {
		panic(fmt.Sprintf("span: invalid range [%d, %d)", start, end))
	}
	return Span{SourceID: id, Start: start, End: end}
}

// Empty reports whether the span covers zero bytes (the EOF sentinel; the
// scanner never selects a zero-length rule match).
func (s Span) Empty() bool { return s.Start == s.End }

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Contains reports whether byte offset b falls within [Start, End).
func (s Span) Contains(b int) bool { return b >= s.Start && b < s.End }

// String renders the span as "id:start..end" for debug output.
func (s Span) String() string {
	return fmt.Sprintf("%d:%d..%d", s.SourceID, s.Start, s.End)
}
