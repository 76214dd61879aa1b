// Package logging builds the colored slog logger shared by the CLI and the
// dev backend.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
)

// New returns a logger writing colored records at level or above to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	opts := *slogcolor.DefaultOptions
	opts.Level = level
	opts.MsgColor = color.New(color.FgMagenta)
	opts.SrcFileMode = slogcolor.Nop
	return slog.New(slogcolor.NewHandler(w, &opts))
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
