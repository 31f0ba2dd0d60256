package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if !cfg.Dictionary.Enabled {
		t.Fatal("dictionary backend must be enabled by default")
	}
	if cfg.LanguageTool.Enabled {
		t.Fatal("languagetool backend must be disabled by default")
	}
	if cfg.LanguageTool.Language != "en-US" {
		t.Fatalf("language = %q", cfg.LanguageTool.Language)
	}
	if !cfg.Cache.Enabled {
		t.Fatal("cache must be enabled by default")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prosecheck.toml")
	content := `
markers = ["//!"]

[dictionary]
enabled = false

[languagetool]
enabled = true
url = "http://lt.example:8081"
language = "en-GB"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dictionary.Enabled {
		t.Fatal("dictionary should be disabled")
	}
	if !cfg.LanguageTool.Enabled || cfg.LanguageTool.URL != "http://lt.example:8081" {
		t.Fatalf("languagetool = %+v", cfg.LanguageTool)
	}
	if cfg.LanguageTool.Language != "en-GB" {
		t.Fatalf("language = %q", cfg.LanguageTool.Language)
	}
	if len(cfg.Markers) != 1 || cfg.Markers[0] != "//!" {
		t.Fatalf("markers = %v", cfg.Markers)
	}
	// untouched section keeps its default
	if !cfg.Cache.Enabled {
		t.Fatal("cache default lost on load")
	}
}

func TestFindWalksUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, "prosecheck.toml")
	if err := os.WriteFile(want, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	got, ok, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !ok || got != want {
		t.Fatalf("Find = %q, %v", got, ok)
	}
}
