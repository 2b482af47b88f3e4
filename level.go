package toollog

import (
	"errors"
	"fmt"
	"strings"
)

// Level is the ordered severity of a log record. Higher values are more
// severe. A handler drops records below its own level, and a [Session]
// drops records below the session threshold before any handler sees them.
type Level int

const (
	// LevelAll passes every record. It is the session baseline after
	// [Session.Init] and not a level records are logged at.
	LevelAll Level = 0
	// LevelDebug is diagnostic output.
	LevelDebug Level = 10
	// LevelInfo is routine progress output.
	LevelInfo Level = 20
	// LevelWarning indicates something surprising but recoverable.
	LevelWarning Level = 30
	// LevelError indicates a failure of the current operation.
	LevelError Level = 40
	// LevelCritical indicates a failure the script cannot continue past.
	LevelCritical Level = 50
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLevel indicates an unrecognized log level string.
	ErrUnknownLevel = errors.New("unknown log level")
)

// String returns the canonical lower-case name of the level.
func (l Level) String() string {
	switch l {
	case LevelAll:
		return "all"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelCritical:
		return "critical"
	}

	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel parses a log level string and returns the corresponding
// [Level].
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "critical":
		return LevelCritical, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
}

// AllLevelStrings returns the canonical level names, least severe first.
func AllLevelStrings() []string {
	return []string{"debug", "info", "warning", "error", "critical"}
}
