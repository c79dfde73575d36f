package prism

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() = nil")
	}
	if l.Enabled(nil, slog.LevelError) {
		t.Error("default logger enabled at error level, want silent")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	Logger().Debug("probe", "k", 1)
	if buf.Len() == 0 {
		t.Error("configured logger produced no output")
	}

	// nil restores the silent default.
	SetLogger(nil)
	if Logger().Enabled(nil, slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}
