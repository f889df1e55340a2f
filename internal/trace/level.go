package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota // no tracing
	LevelError               // only error points
	LevelPhase               // driver + pass boundaries
	LevelDetail              // per-file events
	LevelDebug               // everything including single literals
)

// levelInfo: имя уровня и самый мелкий scope, который он пропускает.
// Ноль значит "ни один scope", только точки с ошибкой (см. admit).
var levelInfo = [...]struct {
	name   string
	finest Scope
}{
	LevelOff:    {"off", 0},
	LevelError:  {"error", 0},
	LevelPhase:  {"phase", ScopePass},
	LevelDetail: {"detail", ScopeFile},
	LevelDebug:  {"debug", ScopeLiteral},
}

func (l Level) String() string {
	if int(l) < len(levelInfo) {
		return levelInfo[l].name
	}
	return "unknown"
}

// ParseLevel converts a string to a Level. An empty string is off.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return LevelOff, nil
	}
	for l, info := range levelInfo {
		if info.name == name {
			return Level(l), nil // #nosec G115 -- len(levelInfo) fits uint8
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|phase|detail|debug)", s)
}

// ShouldEmit reports whether events of scope pass at this level.
// Only debug reaches ScopeLiteral: a literal event per decoded string is
// too much for anything coarser.
func (l Level) ShouldEmit(scope Scope) bool {
	if int(l) >= len(levelInfo) {
		return false
	}
	return scope != 0 && scope <= levelInfo[l].finest
}
