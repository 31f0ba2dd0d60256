// Package config loads the prosecheck.toml configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const fileName = "prosecheck.toml"

// Config selects which checker backends run and how.
type Config struct {
	// Markers are the doc-comment prefixes scanned in source files.
	Markers []string `toml:"markers"`

	Dictionary   Dictionary   `toml:"dictionary"`
	LanguageTool LanguageTool `toml:"languagetool"`
	Cache        Cache        `toml:"cache"`
}

// Dictionary configures the built-in word-list backend.
type Dictionary struct {
	Enabled bool `toml:"enabled"`
	// WordLists are extra word-list files merged into the embedded list,
	// one word per line.
	WordLists []string `toml:"wordlists"`
}

// LanguageTool configures the HTTP grammar backend.
type LanguageTool struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url"`
	Language string `toml:"language"`
}

// Cache configures the on-disk cache of backend results.
type Cache struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Dictionary: Dictionary{Enabled: true},
		LanguageTool: LanguageTool{
			Enabled:  false,
			URL:      "http://127.0.0.1:8010",
			Language: "en-US",
		},
		Cache: Cache{Enabled: true},
	}
}

// Find walks upward from startDir looking for prosecheck.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, fileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads and decodes a configuration file. Fields absent from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", path, err)
	}
	return cfg, nil
}

// Discover loads an explicit config path, or searches upward from the
// working directory, or falls back to defaults.
func Discover(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(".")
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
