package doc

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"prosecheck/internal/trace"
)

// DefaultMarkers are the doc-comment prefixes scanned in source files.
var DefaultMarkers = []string{"///", "//!"}

// sourceExts limits which files a directory walk scans for doc comments.
// Explicitly named files are always scanned, whatever their extension.
var sourceExts = map[string]bool{
	".rs": true, ".go": true, ".c": true, ".h": true,
	".cc": true, ".cpp": true, ".hpp": true,
	".js": true, ".ts": true, ".py": true,
}

// Documentation maps file paths to their documentation blocks, preserving
// the order paths were first seen in.
type Documentation struct {
	order []string
	sets  map[string][]*LiteralSet
}

func NewDocumentation() *Documentation {
	return &Documentation{sets: make(map[string][]*LiteralSet)}
}

func (d *Documentation) Add(path string, ls *LiteralSet) {
	if _, ok := d.sets[path]; !ok {
		d.order = append(d.order, path)
	}
	d.sets[path] = append(d.sets[path], ls)
}

// Paths returns file paths in first-seen order.
func (d *Documentation) Paths() []string {
	return d.order
}

func (d *Documentation) Sets(path string) []*LiteralSet {
	return d.sets[path]
}

// Gather collects documentation from the given files and directories.
// Markdown files contribute their whole content as one block; other files
// contribute one block per run of consecutive marker-prefixed lines.
// Unreadable entries are logged and skipped, never fatal to the run.
func Gather(paths []string, markers []string) (*Documentation, error) {
	if len(markers) == 0 {
		markers = DefaultMarkers
	}
	docs := NewDocumentation()
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %q: %w", path, err)
		}
		if !info.IsDir() {
			if err := gatherFile(docs, path, markers); err != nil {
				return nil, err
			}
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				trace.Warnf("skipping %s: %v", p, err)
				return nil
			}
			name := d.Name()
			if d.IsDir() {
				if p != path && strings.HasPrefix(name, ".") {
					return fs.SkipDir
				}
				return nil
			}
			if strings.HasPrefix(name, ".") {
				return nil
			}
			ext := filepath.Ext(name)
			if ext != ".md" && !sourceExts[ext] {
				return nil
			}
			return gatherFile(docs, p, markers)
		})
		if err != nil {
			return nil, err
		}
	}
	return docs, nil
}

func gatherFile(docs *Documentation, path string, markers []string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	if filepath.Ext(path) == ".md" {
		ls, err := scanMarkdown(path, f)
		if err != nil {
			return err
		}
		if len(ls.Literals) > 0 {
			docs.Add(path, ls)
		}
		return nil
	}

	sets, err := scanSource(path, f, markers)
	if err != nil {
		return err
	}
	for _, ls := range sets {
		docs.Add(path, ls)
	}
	return nil
}

// scanMarkdown turns an entire markdown file into a single literal set,
// one literal per line with offset zero.
func scanMarkdown(path string, f *os.File) (*LiteralSet, error) {
	ls := &LiteralSet{Path: path}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		ls.Literals = append(ls.Literals, TrimmedLiteral{
			Line: line,
			Text: text,
			Raw:  text,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return ls, nil
}

// scanSource groups consecutive marker-prefixed lines into literal sets.
func scanSource(path string, f *os.File, markers []string) ([]*LiteralSet, error) {
	var sets []*LiteralSet
	var cur *LiteralSet

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Text()
		lit, ok := trimMarker(raw, line, markers)
		if !ok {
			if cur != nil {
				sets = append(sets, cur)
				cur = nil
			}
			continue
		}
		if cur == nil {
			cur = &LiteralSet{Path: path}
		}
		cur.Literals = append(cur.Literals, lit)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	if cur != nil {
		sets = append(sets, cur)
	}
	return sets, nil
}

func trimMarker(raw string, line int, markers []string) (TrimmedLiteral, bool) {
	indent := len(raw) - len(strings.TrimLeft(raw, " \t"))
	rest := raw[indent:]
	for _, m := range markers {
		if strings.HasPrefix(rest, m) {
			// "////" is a thematic divider in several styles, not prose
			if strings.HasPrefix(rest, m+"/") {
				return TrimmedLiteral{}, false
			}
			off := indent + len(m)
			return TrimmedLiteral{
				Line:   line,
				Offset: off,
				Text:   raw[off:],
				Raw:    raw,
			}, true
		}
	}
	return TrimmedLiteral{}, false
}
