package trace

import (
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"error", LevelError, false},
		{"warn", LevelWarn, false},
		{"info", LevelInfo, false},
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{"verbose", LevelOff, true},
		{"", LevelOff, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var b strings.Builder
	SetOutput(&b)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(LevelWarn)
	})

	SetLevel(LevelWarn)
	Debugf("hidden")
	Warnf("shown %d", 1)

	out := b.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "prosecheck: [warn] shown 1") {
		t.Errorf("warn message missing or malformed: %q", out)
	}
}
