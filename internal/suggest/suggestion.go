// Package suggest holds the data model shared between checker backends,
// the interactive picker, and the patch engine.
package suggest

import (
	"prosecheck/internal/source"
)

// Suggestion is one detected prose issue: a source span plus an ordered,
// possibly empty list of candidate replacement strings.
type Suggestion struct {
	Span       source.Span
	Context    string // the full source line, for rendering
	Origin     string // name of the backend that produced it
	Message    string
	Candidates []string
}

// SuggestionSet maps file paths to their ordered suggestions, preserving
// the order paths were first seen in.
//
// Backends must produce suggestions for one file in ascending,
// non-overlapping (line, column) order; downstream consumers trust this
// precondition and do not re-verify it.
type SuggestionSet struct {
	order []string
	m     map[string][]Suggestion
}

func NewSuggestionSet() *SuggestionSet {
	return &SuggestionSet{m: make(map[string][]Suggestion)}
}

func (s *SuggestionSet) Add(path string, sug Suggestion) {
	if _, ok := s.m[path]; !ok {
		s.order = append(s.order, path)
	}
	s.m[path] = append(s.m[path], sug)
}

// Join merges other into s additively: insertion order is preserved and
// nothing is deduplicated.
func (s *SuggestionSet) Join(other *SuggestionSet) {
	if other == nil {
		return
	}
	for _, path := range other.order {
		for _, sug := range other.m[path] {
			s.Add(path, sug)
		}
	}
}

// Paths returns file paths in first-seen order.
func (s *SuggestionSet) Paths() []string {
	return s.order
}

func (s *SuggestionSet) For(path string) []Suggestion {
	return s.m[path]
}

// Count returns the total number of suggestions across all files.
func (s *SuggestionSet) Count() int {
	n := 0
	for _, sugs := range s.m {
		n += len(sugs)
	}
	return n
}
