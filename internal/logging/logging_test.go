package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, NewDefaultConfig().Validate())
}

func TestValidate(t *testing.T) {
	assert.Error(t, Config{Level: "loud", Format: FormatJSON}.Validate())
	assert.Error(t, Config{Level: "info", Format: "xml"}.Validate())
	assert.NoError(t, Config{Level: "debug", Format: FormatJSON}.Validate())
}

func TestNewWithSinkJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithSink(Config{Level: "info", Format: FormatJSON}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("solved", zap.Int("day", 3))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "solved", entry["msg"])
	assert.Equal(t, float64(3), entry["day"])
	assert.Contains(t, entry, "ts")
}

func TestNewWithSinkConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithSink(NewDefaultConfig(), zapcore.AddSync(&buf))
	require.NoError(t, err)

	logger.Warn("no input", zap.String("path", "inputs/day03.txt"))
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "inputs/day03.txt")
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{Level: "info", Format: "yaml"})
	assert.Error(t, err)
}
