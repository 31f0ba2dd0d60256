package overlay

import (
	"strings"
	"testing"

	"prosecheck/internal/doc"
	"prosecheck/internal/source"
)

// setFromMarkdown wraps raw markdown lines into a literal set the way a
// whole markdown file is gathered: one literal per line, offset zero.
func setFromMarkdown(text string) *doc.LiteralSet {
	ls := &doc.LiteralSet{Path: "sample.md"}
	for i, line := range strings.Split(text, "\n") {
		ls.Literals = append(ls.Literals, doc.TrimmedLiteral{
			Line: i + 1,
			Text: line,
			Raw:  line,
		})
	}
	return ls
}

const structuralMarkdown = "# Title number 1\n" +
	"\n" +
	"## Title number 2\n" +
	"\n" +
	"```rust\n" +
	"let x = 777;\n" +
	"let y = 111;\n" +
	"let z = x/y;\n" +
	"assert_eq!(z,7);\n" +
	"```\n" +
	"\n" +
	"### Title number 3\n" +
	"\n" +
	"Some **extra** _formatting_ if __anticipated__ or _*not*_ or\n" +
	"maybe not at all.\n" +
	"\n" +
	"\n" +
	"Extra ~pagaph~ _paragraph_.\n" +
	"\n" +
	"---\n" +
	"\n" +
	"And a line, or a **rule**.\n"

const structuralPlain = "Title number 1\n" +
	"\n" +
	"Title number 2\n" +
	"\n" +
	"Title number 3\n" +
	"\n" +
	"Some extra formatting if anticipated or not or\n" +
	"maybe not at all.\n" +
	"\n" +
	"Extra ~pagaph~ paragraph.\n" +
	"\n" +
	"\n" +
	"And a line, or a rule."

func TestEraseMarkdownStructural(t *testing.T) {
	po := EraseMarkdown(setFromMarkdown(structuralMarkdown))

	if got := po.Plain(); got != structuralPlain {
		t.Fatalf("plain projection mismatch:\ngot:  %q\nwant: %q", got, structuralPlain)
	}
	if got := po.Mapping(); got != 19 {
		t.Fatalf("mapping length = %d, want 19", got)
	}
}

func TestEraseMarkdownLeadingSpace(t *testing.T) {
	po := EraseMarkdown(setFromMarkdown("  Some __underlined__ **bold** text."))

	if got := po.Plain(); got != "Some underlined bold text." {
		t.Fatalf("plain = %q", got)
	}
	if got := po.Mapping(); got != 5 {
		t.Fatalf("mapping length = %d, want 5", got)
	}
}

// Every mapping entry must be a verbatim copy: the plain slice and the raw
// slice it points back to are byte-identical.
func TestMappingRoundTrip(t *testing.T) {
	for _, md := range []string{
		structuralMarkdown,
		"  Some __underlined__ **bold** text.",
		"plain text, [a link](http://example.com) and `code`.",
		"line one\nline two\n\nnew paragraph",
	} {
		ls := setFromMarkdown(md)
		po := EraseMarkdown(ls)
		raw := ls.String()
		plain := po.Plain()
		for _, e := range po.mapping {
			if e.plain.Len() != e.raw.Len() {
				t.Fatalf("entry %v -> %v has unequal lengths", e.plain, e.raw)
			}
			if plain[e.plain.Start:e.plain.End] != raw[e.raw.Start:e.raw.End] {
				t.Fatalf("entry %v -> %v is not verbatim: %q vs %q",
					e.plain, e.raw,
					plain[e.plain.Start:e.plain.End], raw[e.raw.Start:e.raw.End])
			}
		}
	}
}

func TestResolveSimpleWord(t *testing.T) {
	ls := setFromMarkdown("Some **extra** text.")
	po := EraseMarkdown(ls)

	plain := po.Plain() // "Some extra text."
	start := strings.Index(plain, "extra")
	if start < 0 {
		t.Fatalf("fixture drifted: %q", plain)
	}
	spans := po.Resolve(source.Range{Start: start, End: start + len("extra")})
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	raw := ls.String()
	got := raw[spans[0].Cols.Start:spans[0].Cols.End]
	if spans[0].Line != 1 || got != "extra" {
		t.Fatalf("span %v points at %q", spans[0], got)
	}
}

// A query that overlaps two mapping entries without being contained in
// either must resolve to nothing. Under an interval-overlap interpretation
// of the containment check this would return two spans.
func TestResolveStrictContainment(t *testing.T) {
	ls := setFromMarkdown("a **b** c")
	po := EraseMarkdown(ls)

	if plain := po.Plain(); plain != "a b c" {
		t.Fatalf("fixture drifted: %q", plain)
	}
	// "a b" crosses the boundary between the "a " entry and the "b" entry
	if spans := po.Resolve(source.Range{Start: 0, End: 3}); len(spans) != 0 {
		t.Fatalf("overlapping query resolved to %v, want none", spans)
	}
	// fully inside one entry still works
	if spans := po.Resolve(source.Range{Start: 2, End: 3}); len(spans) != 1 {
		t.Fatalf("contained query resolved to %v, want one span", spans)
	}
}

// Synthetic newlines carry no mapping entry and must never resolve.
func TestResolveSyntheticNewline(t *testing.T) {
	po := EraseMarkdown(setFromMarkdown("first paragraph\n\nsecond paragraph"))
	plain := po.Plain()
	idx := strings.IndexByte(plain, '\n')
	if idx < 0 {
		t.Fatalf("fixture drifted: %q", plain)
	}
	if spans := po.Resolve(source.Range{Start: idx, End: idx + 1}); len(spans) != 0 {
		t.Fatalf("synthetic newline resolved to %v", spans)
	}
}

func TestResolveAcrossLiteralLines(t *testing.T) {
	// one doc-comment block spanning two source lines
	ls := &doc.LiteralSet{
		Path: "lib.rs",
		Literals: []doc.TrimmedLiteral{
			{Line: 10, Offset: 3, Text: " first paragraph line one", Raw: "/// first paragraph line one"},
			{Line: 11, Offset: 3, Text: " and line two.", Raw: "/// and line two."},
		},
	}
	po := EraseMarkdown(ls)
	plain := po.Plain()
	start := strings.Index(plain, "two")
	if start < 0 {
		t.Fatalf("fixture drifted: %q", plain)
	}
	spans := po.Resolve(source.Range{Start: start, End: start + 3})
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Line != 11 {
		t.Fatalf("span line = %d, want 11", spans[0].Line)
	}
	raw := ls.LineText(11)
	if got := raw[spans[0].Cols.Start:spans[0].Cols.End]; got != "two" {
		t.Fatalf("span points at %q", got)
	}
}
