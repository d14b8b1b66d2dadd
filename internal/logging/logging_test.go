package logging

import (
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleHandlerRendersAttrsInOrder(t *testing.T) {
	var buf strings.Builder
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	logger = logger.With(slog.String(FieldComponent, "reconciler"))
	logger.Info("icon staged", slog.String(FieldStyle, "solid"), slog.Int("width", 512))

	line := buf.String()
	if !strings.Contains(line, "INFO icon staged") {
		t.Fatalf("unexpected line: %q", line)
	}
	componentIdx := strings.Index(line, "component=reconciler")
	styleIdx := strings.Index(line, "style=solid")
	if componentIdx == -1 || styleIdx == -1 || componentIdx > styleIdx {
		t.Fatalf("expected component before style: %q", line)
	}
	if !strings.Contains(line, "width=512") {
		t.Fatalf("missing width attr: %q", line)
	}
}

func TestConsoleHandlerQuotesValuesWithSpaces(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(newConsoleHandler(&buf, new(slog.LevelVar)))

	logger.Warn("skipped", slog.String("reason", "no usable body"))

	if !strings.Contains(buf.String(), `reason="no usable body"`) {
		t.Fatalf("expected quoted value: %q", buf.String())
	}
}

func TestConsoleHandlerHonorsLevel(t *testing.T) {
	var buf strings.Builder
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("dropped")
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("expected nop logger to be disabled")
	}
}
