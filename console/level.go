package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrLevelRange is returned for numeric levels outside 0-7.
	ErrLevelRange = errors.New("log level can only be set between 0 and 7 (inclusive)")
	// ErrUnknownLevel is returned for level names that do not exist.
	ErrUnknownLevel = errors.New("unknown log level")
)

// Level is a message severity, ordered from least to most severe.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelNotice
	LevelWarning
	LevelError
	LevelCritical
	LevelAlert
	LevelEmergency
)

var levelNames = [...]string{
	LevelDebug:     "debug",
	LevelInfo:      "info",
	LevelNotice:    "notice",
	LevelWarning:   "warning",
	LevelError:     "error",
	LevelCritical:  "critical",
	LevelAlert:     "alert",
	LevelEmergency: "emergency",
}

// Levels returns every level from debug to emergency.
func Levels() []Level {
	levels := make([]Level, 0, len(levelNames))
	for l := LevelDebug; l <= LevelEmergency; l++ {
		levels = append(levels, l)
	}
	return levels
}

// Valid reports whether l is one of the eight defined levels.
func (l Level) Valid() bool {
	return l >= LevelDebug && l <= LevelEmergency
}

func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrLevelRange, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel accepts a level name ("warning", "warn", "INFO") or its
// number ("0" through "7").
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if n, err := strconv.Atoi(s); err == nil {
		if !Level(n).Valid() {
			return LevelDebug, fmt.Errorf("%w: %d", ErrLevelRange, n)
		}
		return Level(n), nil
	}

	switch s {
	case "warn":
		return LevelWarning, nil
	case "crit":
		return LevelCritical, nil
	case "emerg":
		return LevelEmergency, nil
	}

	for l, name := range levelNames {
		if name == s {
			return Level(l), nil
		}
	}

	return LevelDebug, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
