package logger

import (
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/lmittmann/tint"
)

// newHandler writes colored records without timestamps to terminals and
// logfmt text with lowercase levels everywhere else.
func newHandler(w io.Writer, terminal bool) slog.Handler {
	if !terminal {
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:       &Level.v,
			ReplaceAttr: plainAttr,
		})
	}
	return tint.NewHandler(w, &tint.Options{
		NoColor:     runtime.GOOS == "windows",
		AddSource:   true,
		Level:       &Level.v,
		ReplaceAttr: terminalAttr,
	})
}

func plainAttr(_ []string, a slog.Attr) slog.Attr {
	if lvl, ok := a.Value.Any().(slog.Level); ok && a.Key == slog.LevelKey {
		return slog.String(a.Key, strings.ToLower(lvl.String()))
	}
	return a
}

func terminalAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		return slog.Attr{}
	case slog.SourceKey:
		// source lines are noise unless debugging
		if !Level.Enabled(slog.LevelDebug) {
			return slog.Attr{}
		}
	}
	return a
}
