package checker

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"prosecheck/internal/source"
)

// boundaryBlacklist is the fixed punctuation set that, together with
// whitespace, separates words. Hyphenated words split at the hyphen.
const boundaryBlacklist = "\";:,.?!#(){}[]-\n\r/`"

func isBoundary(c rune) bool {
	return unicode.IsSpace(c) || strings.ContainsRune(boundaryBlacklist, c)
}

// Tokenize splits plain text into ordered, non-overlapping half-open byte
// ranges, one per word. Single forward scan, no backtracking; zero-length
// tokens are never emitted.
func Tokenize(s string) []source.Range {
	tokens := make([]source.Range, 0, 32)
	started := false
	start := 0
	for idx, c := range s {
		if isBoundary(c) {
			if started {
				tokens = append(tokens, source.Range{Start: start, End: idx})
			}
			started = false
		} else if !started {
			start = idx
			started = true
		}
	}
	if started {
		// flush the in-progress token; its exclusive end is the start of
		// the final scalar plus that scalar's byte length
		_, size := utf8.DecodeLastRuneInString(s)
		tokens = append(tokens, source.Range{Start: start, End: len(s) - size + size})
	}
	return tokens
}
