package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T, cfg Config) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	cfg.Writer = &buf
	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return logger, &buf
}

func TestLoggerJSONOutput(t *testing.T) {
	logger, buf := newTestLogger(t, Config{Level: "info", Format: "json"})
	logger.Info("dataset parsed", "mass", 60, "records", 12)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["msg"] != "dataset parsed" {
		t.Errorf("msg = %v, want %q", entry["msg"], "dataset parsed")
	}
	if entry["mass"] != float64(60) {
		t.Errorf("mass = %v, want 60", entry["mass"])
	}
	if entry["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", entry["level"])
	}
}

func TestLoggerTextOutput(t *testing.T) {
	logger, buf := newTestLogger(t, Config{Level: "info", Format: "text"})
	logger.Warn("parse failed", "line", 7)

	out := buf.String()
	if !strings.Contains(out, "parse failed") || !strings.Contains(out, "line=7") {
		t.Errorf("text output = %q, want message and fields", out)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(t, Config{Level: "warn", Format: "json"})
	logger.Debug("dropped")
	logger.Info("dropped too")
	if buf.Len() != 0 {
		t.Errorf("output = %q, want debug and info suppressed at warn level", buf.String())
	}
	logger.Error("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Error("error message missing at warn level")
	}
}

func TestLoggerWith(t *testing.T) {
	logger, buf := newTestLogger(t, Config{Level: "info", Format: "json"})
	logger.With("component", "parser").Info("started")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["component"] != "parser" {
		t.Errorf("component = %v, want %q", entry["component"], "parser")
	}
}

func TestLoggerContextFields(t *testing.T) {
	logger, buf := newTestLogger(t, Config{Level: "info", Format: "json"})

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithNuclide(ctx, "60CO")
	ctx = WithMass(ctx, 60)
	logger.InfoContext(ctx, "lookup")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["request_id"] != "req-1" {
		t.Errorf("request_id = %v, want %q", entry["request_id"], "req-1")
	}
	if entry["nuclide"] != "60CO" {
		t.Errorf("nuclide = %v, want %q", entry["nuclide"], "60CO")
	}
	if entry["mass"] != float64(60) {
		t.Errorf("mass = %v, want 60", entry["mass"])
	}
}

func TestLoggerWithContext(t *testing.T) {
	logger, buf := newTestLogger(t, Config{Level: "info", Format: "json"})

	ctx := WithDataset(context.Background(), "ADOPTED LEVELS")
	logger.WithContext(ctx).Info("cached")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["dataset"] != "ADOPTED LEVELS" {
		t.Errorf("dataset = %v, want %q", entry["dataset"], "ADOPTED LEVELS")
	}

	// An empty context returns the logger unchanged.
	if got := logger.WithContext(context.Background()); got != logger {
		t.Error("WithContext(empty) returned a new logger")
	}
}

func TestNewInvalidConfig(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("New(bad level) error = nil, want error")
	}
	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Error("New(bad format) error = nil, want error")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"debug", false},
		{"INFO", false},
		{"warning", false},
		{"error", false},
		{"", false},
		{"trace", true},
	}
	for _, tt := range tests {
		if _, err := parseLevel(tt.in); (err != nil) != tt.wantErr {
			t.Errorf("parseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestDiscard(t *testing.T) {
	// The discard logger must be safe to use without panicking.
	logger := Discard()
	logger.Info("nobody hears this", "key", "value")
	logger.Error("nor this")
}
