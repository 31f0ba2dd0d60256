package suggest

import (
	"fmt"

	"prosecheck/internal/source"
)

// BandAid is one approved edit: a source span plus the literal replacement
// text. BandAids are only ever created from a suggestion's span, paired with
// one of its candidates or with user-typed text.
type BandAid struct {
	Span        source.Span
	Replacement string
}

// FromCandidate builds a bandaid from the idx-th candidate of a suggestion.
func FromCandidate(s Suggestion, idx int) (BandAid, error) {
	if idx < 0 || idx >= len(s.Candidates) {
		return BandAid{}, fmt.Errorf("candidate index %d out of range (have %d)", idx, len(s.Candidates))
	}
	return BandAid{Span: s.Span, Replacement: s.Candidates[idx]}, nil
}

// FromCustom builds a bandaid from user-typed text, which may be empty.
func FromCustom(s Suggestion, replacement string) BandAid {
	return BandAid{Span: s.Span, Replacement: replacement}
}

// UserPicked accumulates the bandaids approved during an interactive
// session, keyed by file path in first-seen order. It grows monotonically
// over a session and is consumed exactly once when changes are written.
type UserPicked struct {
	order    []string
	bandaids map[string][]BandAid
}

func NewUserPicked() *UserPicked {
	return &UserPicked{bandaids: make(map[string][]BandAid)}
}

func (u *UserPicked) Add(path string, b BandAid) {
	if _, ok := u.bandaids[path]; !ok {
		u.order = append(u.order, path)
	}
	u.bandaids[path] = append(u.bandaids[path], b)
}

// Paths returns file paths in first-seen order.
func (u *UserPicked) Paths() []string {
	return u.order
}

// Take removes and returns the bandaids recorded for path.
func (u *UserPicked) Take(path string) []BandAid {
	b := u.bandaids[path]
	delete(u.bandaids, path)
	return b
}

func (u *UserPicked) For(path string) []BandAid {
	return u.bandaids[path]
}

// Count returns the total number of approved edits across all files.
func (u *UserPicked) Count() int {
	n := 0
	for _, b := range u.bandaids {
		n += len(b)
	}
	return n
}
