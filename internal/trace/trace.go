// Package trace provides the leveled stderr logger used across prosecheck.
//
// Dropped ranges, excluded backends and other recovered anomalies are
// reported here instead of aborting a check pass. Verbosity is selected
// once at startup via SetLevel, typically from the --log-level flag.
package trace

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu    sync.Mutex
	level = LevelWarn
	out   io.Writer = os.Stderr
)

// SetLevel selects the global verbosity.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Enabled reports whether messages at l would be written.
func Enabled(l Level) bool {
	mu.Lock()
	defer mu.Unlock()
	return l <= level && level != LevelOff
}

func emit(l Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if l > level || level == LevelOff {
		return
	}
	fmt.Fprintf(out, "prosecheck: [%s] %s\n", l, fmt.Sprintf(format, args...))
}

func Errorf(format string, args ...any) { emit(LevelError, format, args...) }
func Warnf(format string, args ...any)  { emit(LevelWarn, format, args...) }
func Infof(format string, args ...any)  { emit(LevelInfo, format, args...) }
func Debugf(format string, args ...any) { emit(LevelDebug, format, args...) }
