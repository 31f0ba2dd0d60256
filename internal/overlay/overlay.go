// Package overlay projects markdown-formatted documentation into plain
// prose while keeping an exact byte mapping back to the raw text, so that
// checkers can run on clean prose and still report source locations.
package overlay

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"prosecheck/internal/doc"
	"prosecheck/internal/source"
	"prosecheck/internal/trace"
)

// entry pairs a range in the plain buffer with the raw-text range it was
// copied from. Both ranges always have equal length: the plain bytes are a
// verbatim copy of the raw bytes.
type entry struct {
	plain source.Range
	raw   source.Range
}

// PlainOverlay is the transient plain-prose projection of one literal set.
// It borrows the literal set read-only and owns the derived buffer and
// mapping; it lives for a single checker pass and is discarded afterwards.
type PlainOverlay struct {
	raw     *doc.LiteralSet
	plain   []byte
	mapping []entry
}

// EraseMarkdown parses the literal set's joined text as markdown and builds
// the plain projection. Parsing never fails hard; unmappable constructs are
// skipped and logged.
func EraseMarkdown(ls *doc.LiteralSet) *PlainOverlay {
	po := &PlainOverlay{
		raw:     ls,
		plain:   make([]byte, 0, 256),
		mapping: make([]entry, 0, 32),
	}
	po.extract([]byte(ls.String()))
	return po
}

// Plain returns the projected prose fed to checkers.
func (po *PlainOverlay) Plain() string {
	return string(po.plain)
}

// Mapping returns the number of plain→raw mapping entries.
func (po *PlainOverlay) Mapping() int {
	return len(po.mapping)
}

// track copies raw[r] verbatim into the plain buffer and records the
// mapping entry for it.
func (po *PlainOverlay) track(raw []byte, r source.Range) {
	if r.Empty() {
		return
	}
	p := source.Range{Start: len(po.plain), End: len(po.plain) + r.Len()}
	po.plain = append(po.plain, raw[r.Start:r.End]...)
	po.mapping = append(po.mapping, entry{plain: p, raw: r})
}

// newlines appends n synthetic newline bytes. They separate prose blocks in
// the projection but are attributable to no source location, so no mapping
// entry is recorded and they can never be reported as an error site.
func (po *PlainOverlay) newlines(n int) {
	for i := 0; i < n; i++ {
		po.plain = append(po.plain, '\n')
	}
}

func (po *PlainOverlay) extract(raw []byte) {
	root := goldmark.DefaultParser().Parse(text.NewReader(raw))

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			// code is excluded entirely: not copied, not mapped
			if entering {
				return ast.WalkSkipChildren, nil
			}
		case *ast.CodeSpan, *ast.HTMLBlock, *ast.RawHTML:
			// out of scope for prose checking
			if entering {
				return ast.WalkSkipChildren, nil
			}
		case *ast.Heading:
			if !entering {
				po.newlines(2)
			}
		case *ast.Paragraph:
			if !entering {
				po.newlines(2)
			}
		case *ast.TextBlock:
			// tight list items and similar paragraph-less blocks
			if !entering {
				po.newlines(1)
			}
		case *ast.ThematicBreak:
			if !entering {
				po.newlines(1)
			}
		case *ast.Text:
			if entering {
				seg := node.Segment
				po.track(raw, source.Range{Start: seg.Start, End: seg.Stop})
				if node.HardLineBreak() {
					po.newlines(2)
				} else if node.SoftLineBreak() {
					po.newlines(1)
				}
			}
		case *ast.Link:
			if !entering && len(node.Title) > 0 {
				// the title attribute carries no source segment; mapping it
				// to the whole link range would break the verbatim-copy
				// invariant, so it is skipped
				trace.Debugf("dropping unmappable link title %q", node.Title)
			}
		case *ast.Image:
			if !entering && len(node.Title) > 0 {
				trace.Debugf("dropping unmappable image title %q", node.Title)
			}
		case *ast.String:
			if entering {
				trace.Debugf("dropping generated string %q without source segment", node.Value)
			}
		}
		return ast.WalkContinue, nil
	})

	po.trimTrailingNewlines()
}

// trimTrailingNewlines removes the synthetic newlines the block handlers
// leave at the very end of the buffer. If trimming cuts into the plain
// range of the last mapping entry, that entry is clamped to the new buffer
// length, never shrunk below its own start and never deleted.
func (po *PlainOverlay) trimTrailingNewlines() {
	n := len(po.plain)
	for n > 0 && po.plain[n-1] == '\n' {
		n--
	}
	po.plain = po.plain[:n]
	if len(po.mapping) == 0 {
		return
	}
	last := &po.mapping[len(po.mapping)-1]
	if last.plain.End > n {
		last.plain.End = n
		if last.plain.End < last.plain.Start {
			last.plain.End = last.plain.Start
		}
	}
}

// Resolve translates a range over the plain buffer into source spans.
//
// Mapping entries are scanned in order; an entry matches when it fully
// contains the queried range. Strict containment is deliberate: it never
// attributes an issue to raw bytes outside the queried prose. For each match
// the query is shifted into raw coordinates and delegated to the literal
// set; results are concatenated in mapping order. A match whose shifted
// range comes out empty is dropped and logged, never propagated: one
// unmappable region must not abort a whole check pass.
func (po *PlainOverlay) Resolve(plainRange source.Range) []source.Span {
	spans := make([]source.Span, 0, 2)
	for _, e := range po.mapping {
		if !e.plain.Contains(plainRange) {
			continue
		}
		offset := e.raw.Start - e.plain.Start
		if e.raw.End-e.plain.End != offset {
			// a length mismatch means the mapping itself is corrupt;
			// recovering would mis-locate issues in the wrong file region
			panic(fmt.Sprintf(
				"overlay: inconsistent mapping entry plain=%v raw=%v for query %v",
				e.plain, e.raw, plainRange,
			))
		}
		extracted := source.Range{
			Start: plainRange.Start + offset,
			End:   min(e.raw.End, plainRange.End+offset),
		}
		if extracted.Empty() {
			trace.Warnf("overlay: translated range %v is empty, dropped", extracted)
			continue
		}
		spans = append(spans, po.raw.LinearRangeToSpans(extracted)...)
	}
	return spans
}
