package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected slog.Level
	}{
		{name: "debug lowercase", input: "debug", expected: slog.LevelDebug},
		{name: "info uppercase", input: "INFO", expected: slog.LevelInfo},
		{name: "warn", input: "warn", expected: slog.LevelWarn},
		{name: "warning alias", input: "warning", expected: slog.LevelWarn},
		{name: "error mixed case", input: "Error", expected: slog.LevelError},
		{name: "whitespace trimmed", input: "  debug  ", expected: slog.LevelDebug},
		{name: "unknown defaults to info", input: "verbose", expected: slog.LevelInfo},
		{name: "empty defaults to info", input: "", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewStructuredLogger(t *testing.T) {
	logger := NewStructuredLogger("test", "v0.0.1", "debug")
	if logger == nil {
		t.Fatal("expected logger, got nil")
	}
	if !logger.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("expected debug level to be enabled")
	}

	logger = NewStructuredLogger("test", "v0.0.1", "error")
	if logger.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("expected info level to be disabled at error level")
	}
}
