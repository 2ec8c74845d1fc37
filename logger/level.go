package logger

import (
	"log/slog"
	"strings"
)

// levelOff is above every level a Logger emits.
const levelOff = slog.Level(99)

var levelNames = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"err":     slog.LevelError,
	"error":   slog.LevelError,
	"off":     levelOff,
	"none":    levelOff,
}

// Level is the minimum level of every Logger in the process.
var Level = &levelVar{}

type levelVar struct {
	v slog.LevelVar
}

// Enabled reports whether records at lvl are written.
func (l *levelVar) Enabled(lvl slog.Level) bool { return lvl >= l.v.Level() }

// Set changes the minimum level.
func (l *levelVar) Set(lvl slog.Level) { l.v.Set(lvl) }

// Get returns the minimum level.
func (l *levelVar) Get() slog.Level { return l.v.Level() }

// SetByName sets the level from a name such as "debug" or "off" and reports
// whether the name was known. Unknown names leave the level unchanged.
func (l *levelVar) SetByName(name string) bool {
	lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if ok {
		l.v.Set(lvl)
	}
	return ok
}
