package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLogLevel(tt.input))
		})
	}
}

func TestLoggerTextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutputs(LevelInfo, NewConsoleOutput(&buf, FormatText))

	logger.Debug("hidden")
	logger.Named("config").Warn("regenerated", F("path", "/tmp/config.json"), F("bytes", 3))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] config: regenerated bytes=3 path=/tmp/config.json")
}

func TestLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutputs(LevelDebug, NewConsoleOutput(&buf, FormatJSON))

	logger.With(F("frame", 7)).Info("composed")

	var entry LogEntry
	require.NoError(t, sonic.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "composed", entry.Message)
	assert.EqualValues(t, 7, entry.Fields["frame"])
}

func TestNewLoggerRequiresDestination(t *testing.T) {
	_, err := NewLogger("info", "", false)
	assert.Error(t, err)
}

func TestNewLoggerCreatesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "overlay.log")

	logger, err := NewLogger("info", path, false)
	require.NoError(t, err)
	logger.Info("started")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] started")
}

func TestGlobalLoggerIsSafeBeforeInit(t *testing.T) {
	SetLogger(nil)
	assert.NotPanics(t, func() {
		LogInfo("nobody listening")
		LogWarnf("still %s", "nobody")
	})
}

func TestSetLoggerRoutesGlobalCalls(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewLoggerWithOutputs(LevelDebug, NewConsoleOutput(&buf, FormatText)))
	defer CloseLogger()

	LogDebugf("frame %d", 3)
	assert.Contains(t, buf.String(), "[DEBUG] frame 3")
}
