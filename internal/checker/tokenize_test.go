package checker

import (
	"strings"
	"testing"
)

func TestTokenizeReference(t *testing.T) {
	const text = "With markdown removed, for sure."
	want := []string{"With", "markdown", "removed", "for", "sure"}

	ranges := Tokenize(text)
	if len(ranges) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(ranges), len(want))
	}
	for i, r := range ranges {
		if got := text[r.Start:r.End]; got != want[i] {
			t.Errorf("token %d = %q, want %q", i, got, want[i])
		}
	}
}

func TestTokenizeProperties(t *testing.T) {
	inputs := []string{
		"",
		"word",
		"  leading and trailing  ",
		"hyphen-ated words/paths and (parens) [brackets] {braces}",
		"line one\r\nline two",
		"trailing word at end-of-input",
		"ünïcode wörds",
		"multi\nline\ninput",
	}
	for _, text := range inputs {
		prev := 0
		for i, r := range Tokenize(text) {
			if r.Start >= r.End {
				t.Fatalf("%q: token %d empty: %v", text, i, r)
			}
			if r.Start < prev {
				t.Fatalf("%q: token %d overlaps or regresses: %v", text, i, r)
			}
			tok := text[r.Start:r.End]
			if strings.ContainsAny(tok, boundaryBlacklist+" \t") {
				t.Fatalf("%q: token %q contains boundary characters", text, tok)
			}
			prev = r.End
		}
	}
}

func TestTokenizeFlushesFinalMultibyteRune(t *testing.T) {
	const text = "café"
	ranges := Tokenize(text)
	if len(ranges) != 1 {
		t.Fatalf("got %d tokens", len(ranges))
	}
	if got := text[ranges[0].Start:ranges[0].End]; got != "café" {
		t.Fatalf("token = %q", got)
	}
	if ranges[0].End != len(text) {
		t.Fatalf("end = %d, want %d", ranges[0].End, len(text))
	}
}
