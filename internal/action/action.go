// Package action executes the selected run mode: report suggestions,
// interactively curate them, and write approved edits back to disk.
package action

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"prosecheck/internal/suggest"
	"prosecheck/internal/trace"
)

// Mode selects what happens with the collected suggestions.
type Mode uint8

const (
	// Check reports all suggestions and fails when any exist.
	Check Mode = iota
	// Fix would apply fixes without interaction; declared but not built.
	Fix
	// Interactive lets the user pick replacements, then writes them.
	Interactive
)

// ErrIssuesFound marks the non-zero outcome of a check run.
var ErrIssuesFound = errors.New("prose issues found")

// ErrNotImplemented is returned by Fix mode. Fix must fail loudly, never
// act as a silent no-op.
var ErrNotImplemented = errors.New("unsupervised fixing is not implemented yet")

// tempName is the scratch file corrected content is staged in before the
// atomic rename over the original.
const tempName = ".spellcheck.tmp"

// RunCheck renders every suggestion and returns an error carrying the
// issue count when any were found.
func RunCheck(set *suggest.SuggestionSet) error {
	count := 0
	for _, path := range set.Paths() {
		for _, s := range set.For(path) {
			suggest.Render(os.Stderr, path, s)
			count++
		}
	}
	if count > 0 {
		return fmt.Errorf("found %d potential prose issues: %w", count, ErrIssuesFound)
	}
	return nil
}

// WriteChanges consumes the picked edits and rewrites every affected file.
// The picks must not be reused afterwards; applying them twice would
// corrupt the files. An I/O failure is fatal to its own file only; the
// remaining files are still written, and the first error is returned.
func WriteChanges(picked *suggest.UserPicked) error {
	if picked.Count() == 0 {
		trace.Infof("no edits to apply")
		return nil
	}
	var firstErr error
	for _, path := range picked.Paths() {
		bandaids := picked.Take(path)
		if err := correctFile(path, bandaids); err != nil {
			trace.Errorf("%v", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// correctFile rewrites one file with its approved edits. The corrected
// content is staged in a temporary file in the working directory and then
// renamed over the canonicalized original path, so the file is either fully
// replaced or left untouched.
func correctFile(path string, bandaids []suggest.BandAid) error {
	if err := ValidateBandAids(bandaids); err != nil {
		return fmt.Errorf("refusing to patch %q: %w", path, err)
	}

	canonical, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to canonicalize %q: %w", path, err)
	}
	if resolved, err := filepath.EvalSymlinks(canonical); err == nil {
		canonical = resolved
	}

	ro, err := os.Open(canonical)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer ro.Close()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}
	tmp := filepath.Join(cwd, tempName)
	wr, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", tmp, err)
	}

	writer := bufio.NewWriterSize(wr, 1024)
	scanner := bufio.NewScanner(ro)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if err := correctLines(bandaids, scanner, writer); err != nil {
		wr.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to correct %q: %w", path, err)
	}
	if err := writer.Flush(); err != nil {
		wr.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to flush %q: %w", tmp, err)
	}
	if err := wr.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, canonical); err != nil {
		return fmt.Errorf("failed to replace %q: %w", path, err)
	}
	trace.Infof("wrote %d edits to %s", len(bandaids), path)
	return nil
}
