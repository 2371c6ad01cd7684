package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerSetup(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		shown bool
	}{
		{"debug level", LevelDebug, true},
		{"info level", LevelInfo, true},
		{"warn level", LevelWarn, false},
		{"error level", LevelError, false},
	}

	for _, format := range []string{"text", "json", "console"} {
		for _, tt := range tests {
			t.Run(format+"/"+tt.name, func(t *testing.T) {
				var buf bytes.Buffer
				Setup(&Config{
					Level:  tt.level,
					Format: format,
					Output: &buf,
				})

				Info("test message")

				if tt.shown {
					assert.Contains(t, buf.String(), "test message")
				} else {
					assert.NotContains(t, buf.String(), "test message")
				}
			})
		}
	}
}

func TestLoggerSetup_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	Setup(&Config{
		Level:  LevelDebug,
		Format: "console",
		Output: &buf,
	})

	Warn("Render failed", "rows", 2)
	Error("Bad input", "file", "rows.yaml")

	out := buf.String()
	assert.Contains(t, out, "[WARNING  ] Render failed rows=2\n")
	assert.Contains(t, out, "[ERROR    ] Bad input file=rows.yaml\n")
	assert.NotContains(t, out, "\x1b[", "colors are off unless requested")
}

func TestParseLevelFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"WARN", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"ERROR", LevelError},
		{"invalid", LevelInfo}, // should default to info
		{"", LevelInfo},        // should default to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevelFromString(tt.input))
		})
	}
}
