package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}

	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLogger_TextOutput(t *testing.T) {
	var buf bytes.Buffer

	log := NewLoggerWithWriter("info", &buf, false)
	log.Debug("hidden")
	log.With("file", "1.json").Info("processed")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written at info level: %s", out)
	}

	if !strings.Contains(out, "msg=processed") || !strings.Contains(out, "file=1.json") {
		t.Errorf("unexpected text output: %s", out)
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer

	log := NewLoggerWithWriter("debug", &buf, true)
	log.Debug("skipped file", "reason", "empty")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}

	if entry["msg"] != "skipped file" || entry["reason"] != "empty" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic.
	Discard().Error("dropped")
}
