package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRenderVersionPretty(t *testing.T) {
	info := versionInfo{Version: "1.2.3", GitCommit: "abc123", BuildDate: "2026-01-01"}

	var b strings.Builder
	renderVersionPretty(&b, info, versionOptions{showHash: true, showDate: true})
	out := b.String()

	for _, want := range []string{"prosecheck 1.2.3", "commit: abc123", "built:  2026-01-01"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q:\n%s", want, out)
		}
	}

	b.Reset()
	renderVersionPretty(&b, info, versionOptions{})
	if !strings.Contains(b.String(), "--full") {
		t.Error("bare pretty output should hint at the metadata flags")
	}
}

func TestRenderVersionJSON(t *testing.T) {
	info := versionInfo{Version: "1.2.3", GitCommit: "abc123"}

	var b strings.Builder
	if err := renderVersionJSON(&b, info, versionOptions{showHash: true}); err != nil {
		t.Fatalf("renderVersionJSON: %v", err)
	}

	var payload versionPayload
	if err := json.Unmarshal([]byte(b.String()), &payload); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if payload.Tool != "prosecheck" || payload.Version != "1.2.3" || payload.GitCommit != "abc123" {
		t.Fatalf("payload = %+v", payload)
	}
	if payload.BuildDate != "" {
		t.Fatalf("build date rendered without --date: %+v", payload)
	}
}

func TestCollectVersionInfoFallsBackToDev(t *testing.T) {
	info := collectVersionInfo()
	if info.Version == "" {
		t.Error("collectVersionInfo must never return an empty version")
	}
}
