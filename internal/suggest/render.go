package suggest

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

var (
	headColor    = color.New(color.FgRed, color.Bold)
	pathColor    = color.New(color.FgCyan)
	caretColor   = color.New(color.FgYellow, color.Bold)
	replaceColor = color.New(color.FgGreen)
)

// Render writes one suggestion in the usual compiler-diagnostic shape:
//
//	path:line:col: origin: message
//	   |
//	 N | the offending source line
//	   |        ^^^^^
//	   = replacements: a, b, c
func Render(w io.Writer, path string, s Suggestion) {
	fmt.Fprintf(w, "%s: %s\n",
		headColor.Sprintf("%s", s.Origin),
		s.Message,
	)
	fmt.Fprintf(w, "  --> %s\n", pathColor.Sprintf("%s:%d:%d", path, s.Span.Line, s.Span.Cols.Start))

	if s.Context != "" {
		gutter := fmt.Sprintf("%4d", s.Span.Line)
		pad := strings.Repeat(" ", len(gutter))
		fmt.Fprintf(w, "%s |\n", pad)
		fmt.Fprintf(w, "%s | %s\n", gutter, s.Context)

		start, end := s.Span.Cols.Start, s.Span.Cols.End
		if start > len(s.Context) {
			start = len(s.Context)
		}
		if end > len(s.Context) {
			end = len(s.Context)
		}
		lead := runewidth.StringWidth(s.Context[:start])
		width := runewidth.StringWidth(s.Context[start:end])
		if width == 0 {
			width = 1
		}
		fmt.Fprintf(w, "%s | %s%s\n", pad,
			strings.Repeat(" ", lead),
			caretColor.Sprint(strings.Repeat("^", width)),
		)
	}

	if len(s.Candidates) > 0 {
		fmt.Fprintf(w, "   = replacements: %s\n",
			replaceColor.Sprint(strings.Join(s.Candidates, ", ")))
	}
	fmt.Fprintln(w)
}
