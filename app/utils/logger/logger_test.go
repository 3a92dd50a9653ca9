package logger

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "valid info level", level: "info"},
		{name: "valid debug level", level: "debug"},
		{name: "valid warn level", level: "warn"},
		{name: "valid error level", level: "error"},
		{name: "invalid level", level: "invalid", wantErr: true},
		{name: "empty level", level: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.level)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, logger)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, logger)
			}
		})
	}
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	logger.Info("test message", "key", "value")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key")
	assert.Contains(t, output, "value")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input     string
		expected  slog.Level
		wantError bool
	}{
		{input: "debug", expected: slog.LevelDebug},
		{input: "info", expected: slog.LevelInfo},
		{input: "warn", expected: slog.LevelWarn},
		{input: "warning", expected: slog.LevelWarn},
		{input: "error", expected: slog.LevelError},
		{input: "DEBUG", expected: slog.LevelDebug},
		{input: "invalid", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := parseLogLevel(tt.input)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, level)
			}
		})
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer

	baseLogger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	componentLogger := WithComponent(baseLogger, "test-component")
	componentLogger.Info("test message")

	output := buf.String()
	assert.Contains(t, output, "test-component")
	assert.Contains(t, output, "component")
}

func TestLogDuration(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	start := time.Now().Add(-100 * time.Millisecond)
	LogDuration(logger, start, "test operation", "result", "success")

	output := buf.String()
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, "test operation")
	assert.Contains(t, output, "duration_ms")
}
