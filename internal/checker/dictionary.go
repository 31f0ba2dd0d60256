package checker

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"prosecheck/internal/config"
	"prosecheck/internal/doc"
	"prosecheck/internal/overlay"
	"prosecheck/internal/suggest"
)

//go:embed words.txt
var embeddedWords string

// maxCandidates caps the replacement list offered per unknown word.
const maxCandidates = 5

// DictionaryChecker flags words that are absent from its word list and
// offers nearby dictionary words as candidates.
type DictionaryChecker struct {
	words map[string]struct{}
}

// NewDictionary builds the backend from the embedded word list plus any
// configured extra lists (one word per line, '#' comments allowed).
func NewDictionary(cfg config.Dictionary) (*DictionaryChecker, error) {
	d := &DictionaryChecker{words: make(map[string]struct{}, 4096)}
	d.addWords(strings.NewReader(embeddedWords))
	for _, path := range cfg.WordLists {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open word list %q: %w", path, err)
		}
		d.addWords(f)
		f.Close()
	}
	return d, nil
}

func (d *DictionaryChecker) addWords(r io.Reader) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		word := strings.TrimSpace(sc.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		d.words[normalizeWord(word)] = struct{}{}
	}
}

// normalizeWord folds a token into lookup form: NFC, lowercase.
func normalizeWord(word string) string {
	return strings.ToLower(norm.NFC.String(word))
}

func (d *DictionaryChecker) Known(word string) bool {
	_, ok := d.words[normalizeWord(word)]
	return ok
}

func (d *DictionaryChecker) Name() string { return "dictionary" }

func (d *DictionaryChecker) Check(docs *doc.Documentation) (*suggest.SuggestionSet, error) {
	set := suggest.NewSuggestionSet()
	for _, path := range docs.Paths() {
		for _, ls := range docs.Sets(path) {
			po := overlay.EraseMarkdown(ls)
			plain := po.Plain()
			for _, tok := range Tokenize(plain) {
				word := plain[tok.Start:tok.End]
				if !checkable(word) || d.Known(word) {
					continue
				}
				candidates := d.candidates(word)
				for _, span := range po.Resolve(tok) {
					set.Add(path, suggest.Suggestion{
						Span:       span,
						Context:    ls.LineText(span.Line),
						Origin:     d.Name(),
						Message:    fmt.Sprintf("unknown word %q", word),
						Candidates: candidates,
					})
				}
			}
		}
	}
	return set, nil
}

// checkable filters tokens that are not prose words: single letters,
// numbers, identifiers with digits or punctuation.
func checkable(word string) bool {
	if utf8.RuneCountInString(word) < 2 {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) && r != '\'' {
			return false
		}
	}
	return true
}

// candidates returns up to maxCandidates dictionary words within edit
// distance 2 of word, closest first, ties broken alphabetically.
func (d *DictionaryChecker) candidates(word string) []string {
	w := normalizeWord(word)
	type scored struct {
		word string
		dist int
	}
	found := make([]scored, 0, 16)
	for cand := range d.words {
		delta := len(cand) - len(w)
		if delta < -2 || delta > 2 {
			continue
		}
		dist := boundedLevenshtein(w, cand, 2)
		if dist < 0 {
			continue
		}
		found = append(found, scored{word: cand, dist: dist})
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].dist != found[j].dist {
			return found[i].dist < found[j].dist
		}
		return found[i].word < found[j].word
	})
	if len(found) > maxCandidates {
		found = found[:maxCandidates]
	}
	out := make([]string, len(found))
	for i, s := range found {
		out[i] = s.word
	}
	return out
}

// boundedLevenshtein returns the edit distance between a and b, or -1 when
// it exceeds maxDist.
func boundedLevenshtein(a, b string, maxDist int) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		rowMin := cur[0]
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, min(cur[j-1]+1, prev[j-1]+cost))
			if cur[j] < rowMin {
				rowMin = cur[j]
			}
		}
		if rowMin > maxDist {
			return -1
		}
		prev, cur = cur, prev
	}
	if prev[len(rb)] > maxDist {
		return -1
	}
	return prev[len(rb)]
}
