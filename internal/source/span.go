package source

import "fmt"

// Span is a location in the original source: a 1-based line number plus a
// half-open byte-column range within that line. A span never crosses a line
// boundary; multi-line replacements are out of scope for the whole tool.
type Span struct {
	Line int
	Cols Range
}

func (s Span) CoversLine(line int) bool {
	return s.Line == line
}

func (s Span) Empty() bool {
	return s.Cols.Empty()
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.Line, s.Cols.Start, s.Cols.End)
}
