package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	now := time.Now()
	logger.Info("loaded store", "path", "/p/.nem.toml", "entries", 3)

	output := buf.String()
	for _, want := range []string{"INFO", "loaded store", "path=/p/.nem.toml", "entries=3"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %q", want, output)
		}
	}
	if !strings.Contains(output, now.Format(time.Kitchen)) {
		t.Errorf("expected kitchen time in output, got: %q", output)
	}
	if strings.Count(output, "\n") != 1 {
		t.Errorf("expected a single line, got: %q", output)
	}
}

func TestHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).With("store", "near").WithGroup("entry")

	logger.Info("relabeled", "code", "e1")

	output := buf.String()
	if !strings.Contains(output, "store=near") {
		t.Errorf("expected common attribute in output, got: %q", output)
	}
	if !strings.Contains(output, "entry.code=e1") {
		t.Errorf("expected grouped attribute in output, got: %q", output)
	}
}

func TestHandler_Enabled(t *testing.T) {
	h := NewHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	ctx := t.Context()
	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("expected Info level to be disabled when min level is Warn")
	}
	if !h.Enabled(ctx, slog.LevelWarn) {
		t.Error("expected Warn level to be enabled")
	}
}

func TestHandler_TraceLabel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))

	logger.Log(t.Context(), LevelTrace, "checking directory")

	if !strings.Contains(buf.String(), "TRACE") {
		t.Errorf("expected TRACE label, got: %q", buf.String())
	}
}

func TestHandler_ErrorValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil))

	logger.Warn("skipping store file", "error", errors.New("record 1: missing code"))

	if !strings.Contains(buf.String(), "error=record 1: missing code") {
		t.Errorf("expected error text, got: %q", buf.String())
	}
}

func TestHandler_Redaction(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil))

	logger.Info("dispatching", "command", "curl -H ghp_secrettoken https://example.com", "api_token", "hunter22")

	output := buf.String()
	if strings.Contains(output, "ghp_secrettoken") {
		t.Error("token inside command should be masked")
	}
	if !strings.Contains(output, "****oken") {
		t.Errorf("expected masked token, got: %q", output)
	}
	if !strings.Contains(output, "api_token=****er22") {
		t.Errorf("expected masked api_token, got: %q", output)
	}
	if !strings.Contains(output, "https://example.com") {
		t.Errorf("non-secret words should survive, got: %q", output)
	}
}

func TestRedact(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"echo hi", "echo hi"},
		{"gh auth ghp_abcdef", "gh auth ****cdef"},
		{"aws AKIA", "aws ********"},
	}
	for _, tt := range tests {
		if got := Redact(tt.in); got != tt.want {
			t.Errorf("Redact(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
