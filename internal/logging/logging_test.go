package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"hrtrack/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range cases {
		if got := logging.ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelWarn)

	logger.Info("quiet")
	logger.Warn("loud", "k", "v")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("info record should be filtered, got %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Fatalf("warn record missing, got %q", out)
	}
}
