// Package logger is a thin leveled wrapper around log/slog.
//
// Terminals get a colored tint handler, everything else gets slog's text handler.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/mattn/go-isatty"
)

// Logger logs printf-style messages, attributing each record to the code
// that called the Logger method.
type Logger struct {
	sl *slog.Logger
}

// New returns a Logger writing to stderr.
func New() *Logger {
	return newLogger(os.Stderr, isatty.IsTerminal(os.Stderr.Fd()))
}

// NewWriter returns a Logger writing plain text to w.
func NewWriter(w io.Writer) *Logger {
	return newLogger(w, false)
}

func newLogger(w io.Writer, terminal bool) *Logger {
	return &Logger{sl: slog.New(newHandler(w, terminal))}
}

// With returns a Logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	if l.isNil() {
		return nil
	}
	return &Logger{sl: l.sl.With(args...)}
}

// Slog exposes the underlying slog.Logger, for APIs that take one or a
// handler. A nil Logger yields one that discards everything.
func (l *Logger) Slog() *slog.Logger {
	if l.isNil() {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l.sl
}

// Error logs at error level.
func (l *Logger) Error(a ...any) { l.log(slog.LevelError, fmt.Sprint(a...)) }

// Warning logs at warn level.
func (l *Logger) Warning(a ...any) { l.log(slog.LevelWarn, fmt.Sprint(a...)) }

// Info logs at info level.
func (l *Logger) Info(a ...any) { l.log(slog.LevelInfo, fmt.Sprint(a...)) }

// Debug logs at debug level.
func (l *Logger) Debug(a ...any) { l.log(slog.LevelDebug, fmt.Sprint(a...)) }

// Errorf formats and logs at error level.
func (l *Logger) Errorf(format string, a ...any) { l.log(slog.LevelError, fmt.Sprintf(format, a...)) }

// Warningf formats and logs at warn level.
func (l *Logger) Warningf(format string, a ...any) { l.log(slog.LevelWarn, fmt.Sprintf(format, a...)) }

// Infof formats and logs at info level.
func (l *Logger) Infof(format string, a ...any) { l.log(slog.LevelInfo, fmt.Sprintf(format, a...)) }

// Debugf formats and logs at debug level.
func (l *Logger) Debugf(format string, a ...any) { l.log(slog.LevelDebug, fmt.Sprintf(format, a...)) }

// log must be called directly by an exported method so the caller frame is
// at a fixed depth.
func (l *Logger) log(level slog.Level, msg string) {
	if l.isNil() {
		return
	}
	ctx := context.Background()
	if !l.sl.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	// skip Callers, log and the exported method
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	_ = l.sl.Handler().Handle(ctx, r)
}

func (l *Logger) isNil() bool { return l == nil || l.sl == nil }
