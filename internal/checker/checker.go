// Package checker runs the enabled spell/grammar backends over gathered
// documentation and merges their findings.
package checker

import (
	"prosecheck/internal/config"
	"prosecheck/internal/doc"
	"prosecheck/internal/suggest"
	"prosecheck/internal/trace"
)

// Checker is one spell/grammar backend. Implementations must produce
// suggestions for each file in ascending, non-overlapping (line, column)
// order; consumers rely on that without re-verifying it.
type Checker interface {
	Name() string
	Check(docs *doc.Documentation) (*suggest.SuggestionSet, error)
}

// Enabled builds the backends selected by configuration, in a fixed order.
// A backend that fails to construct is logged and left out.
func Enabled(cfg *config.Config) []Checker {
	checkers := make([]Checker, 0, 2)
	if cfg.Dictionary.Enabled {
		d, err := NewDictionary(cfg.Dictionary)
		if err != nil {
			trace.Warnf("dictionary backend unavailable: %v", err)
		} else {
			checkers = append(checkers, d)
		}
	}
	if cfg.LanguageTool.Enabled {
		var cache *Cache
		if cfg.Cache.Enabled {
			c, err := OpenCache("prosecheck")
			if err != nil {
				trace.Warnf("result cache unavailable: %v", err)
			} else {
				cache = c
			}
		}
		checkers = append(checkers, NewLanguageTool(cfg.LanguageTool, cache))
	}
	return checkers
}

// Run executes every enabled backend sequentially and merges the results
// additively.
func Run(docs *doc.Documentation, cfg *config.Config) *suggest.SuggestionSet {
	return RunCheckers(docs, Enabled(cfg))
}

// RunCheckers runs the given backends in order. A failing backend is logged
// and excluded; it never aborts the run or suppresses the other backends'
// findings.
func RunCheckers(docs *doc.Documentation, checkers []Checker) *suggest.SuggestionSet {
	collective := suggest.NewSuggestionSet()
	for _, c := range checkers {
		trace.Infof("running %s checks", c.Name())
		set, err := c.Check(docs)
		if err != nil {
			trace.Warnf("backend %s failed and is excluded from this run: %v", c.Name(), err)
			continue
		}
		collective.Join(set)
	}
	return collective
}
