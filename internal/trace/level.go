package trace

import "fmt"

// Level controls logging verbosity.
type Level uint8

const (
	// LevelOff disables all output.
	LevelOff   Level = iota // no logging
	LevelError              // unrecoverable per-file problems
	LevelWarn               // dropped ranges, excluded backends
	LevelInfo               // per-pass progress
	LevelDebug              // everything including mapping entries
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "off", "OFF":
		return LevelOff, nil
	case "error", "ERROR":
		return LevelError, nil
	case "warn", "WARN":
		return LevelWarn, nil
	case "info", "INFO":
		return LevelInfo, nil
	case "debug", "DEBUG":
		return LevelDebug, nil
	default:
		return LevelOff, fmt.Errorf("unknown log level %q", s)
	}
}
