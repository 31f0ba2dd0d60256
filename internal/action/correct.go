package action

import (
	"bufio"
	"fmt"
	"io"

	"prosecheck/internal/suggest"
	"prosecheck/internal/trace"
)

// ValidateBandAids checks the contract the patch engine relies on: edits
// sorted ascending by (line, column start) and column ranges on one line
// mutually non-overlapping. The engine would silently drop an edit whose
// line has already been passed, so violations are rejected up front.
func ValidateBandAids(bandaids []suggest.BandAid) error {
	for i := 1; i < len(bandaids); i++ {
		prev, cur := bandaids[i-1], bandaids[i]
		if cur.Span.Line < prev.Span.Line {
			return fmt.Errorf("edit %s is ordered after edit %s on a later line", cur.Span, prev.Span)
		}
		if cur.Span.Line == prev.Span.Line && cur.Span.Cols.Start < prev.Span.Cols.End {
			return fmt.Errorf("edits %s and %s overlap on line %d", prev.Span, cur.Span, cur.Span.Line)
		}
	}
	for _, b := range bandaids {
		if b.Span.Line < 1 {
			return fmt.Errorf("edit %s targets an invalid line", b.Span)
		}
		if b.Span.Cols.Start > b.Span.Cols.End {
			return fmt.Errorf("edit %s has an inverted column range", b.Span)
		}
	}
	return nil
}

// correctLines applies the sorted bandaids to the source lines in one
// forward pass and writes the corrected content to sink.
//
// Replacements on one line are applied left to right at their original
// column coordinates; positions are never re-based after an earlier
// replacement changes the line length. That only works because the caller
// guarantees sorted, non-overlapping spans, the contract ValidateBandAids
// enforces. Every untouched line is emitted byte-identical, and the output
// has exactly one trailing newline per input line.
func correctLines(bandaids []suggest.BandAid, lines *bufio.Scanner, sink io.Writer) error {
	cursor := 0
	next := func() *suggest.BandAid {
		if cursor < len(bandaids) {
			return &bandaids[cursor]
		}
		return nil
	}

	lineNumber := 0
	for lines.Scan() {
		lineNumber++
		content := lines.Text()

		nxt := next()
		if nxt == nil || !nxt.Span.CoversLine(lineNumber) {
			if _, err := io.WriteString(sink, content); err != nil {
				return err
			}
			if _, err := io.WriteString(sink, "\n"); err != nil {
				return err
			}
			continue
		}

		remainder := 0
		for nxt != nil && nxt.Span.CoversLine(lineNumber) {
			cols := nxt.Span.Cols
			if cols.Start > len(content) || cols.End > len(content) {
				return fmt.Errorf("edit %s exceeds line %d length %d", nxt.Span, lineNumber, len(content))
			}
			if cols.Start > remainder {
				if _, err := io.WriteString(sink, content[remainder:cols.Start]); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(sink, nxt.Replacement); err != nil {
				return err
			}
			remainder = cols.End
			cursor++
			nxt = next()
		}
		if remainder < len(content) {
			if _, err := io.WriteString(sink, content[remainder:]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(sink, "\n"); err != nil {
			return err
		}
	}
	if err := lines.Err(); err != nil {
		return err
	}
	if cursor < len(bandaids) {
		trace.Warnf("%d edits target lines beyond the end of the file and were not applied", len(bandaids)-cursor)
	}
	return nil
}
