package doc

import (
	"strings"

	"prosecheck/internal/source"
)

// TrimmedLiteral is one documentation line with its comment marker removed.
// Text is the content after the marker; Offset is the byte column where that
// content starts within the original source line, so column coordinates can
// be shifted back into line-local space.
type TrimmedLiteral struct {
	Line   int    // 1-based source line number
	Offset int    // byte column of Text within the source line
	Text   string // content after the marker, no trailing newline
	Raw    string // the full source line, kept for rendering context
}

// LiteralSet is one contiguous documentation block of a single file. Its
// literals joined by "\n" form the raw text handed to the markdown overlay;
// LinearRangeToSpans translates ranges over that joined text back to
// line-local source spans.
type LiteralSet struct {
	Path     string
	Literals []TrimmedLiteral
}

// String returns the concatenated raw documentation text.
func (ls *LiteralSet) String() string {
	var b strings.Builder
	for i, lit := range ls.Literals {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(lit.Text)
	}
	return b.String()
}

// LineText returns the full source line for a 1-based line number, or "".
func (ls *LiteralSet) LineText(line int) string {
	for _, lit := range ls.Literals {
		if lit.Line == line {
			return lit.Raw
		}
	}
	return ""
}

// LinearRangeToSpans maps a half-open byte range over the joined text to
// source spans. A range crossing a literal boundary yields one span per
// touched literal; the single "\n" separator byte between literals belongs
// to no literal and is never part of a span.
func (ls *LiteralSet) LinearRangeToSpans(r source.Range) []source.Span {
	spans := make([]source.Span, 0, 2)
	base := 0
	for _, lit := range ls.Literals {
		end := base + len(lit.Text)
		start := r.Start
		if start < base {
			start = base
		}
		stop := r.End
		if stop > end {
			stop = end
		}
		if start < stop {
			spans = append(spans, source.Span{
				Line: lit.Line,
				Cols: source.Range{
					Start: start - base + lit.Offset,
					End:   stop - base + lit.Offset,
				},
			})
		}
		base = end + 1 // skip the separator newline
		if base > r.End {
			break
		}
	}
	return spans
}
