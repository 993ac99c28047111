package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewStructuredLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	logger.Info("hello", slog.String("dataset", "players.csv"))

	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "players.csv", entry["dataset"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestNewStructuredLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelWarn)

	logger.Info("suppressed")
	assert.Zero(t, buf.Len())

	logger.Warn("emitted")
	assert.NotZero(t, buf.Len())
}

func TestLogErrorIncludesErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogError(logger, "load failed", errors.New("boom"), slog.String("dataset", "players.csv"))

	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "load failed", entry["msg"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "players.csv", entry["dataset"])
	assert.Equal(t, "ERROR", entry["level"])
}

func TestLogErrorHandlesNilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		LogError(nil, "no logger", errors.New("boom"))
	})
}

func TestLogOperationSkipsZeroDuration(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogOperation(logger, "dataset loaded",
		slog.Duration("duration", 0),
		slog.Int("records", 3))

	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "dataset loaded", entry["msg"])
	assert.NotContains(t, entry, "duration")
	assert.EqualValues(t, 3, entry["records"])
}

func TestLogHTTPRequestFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogHTTPRequest(logger, "GET", "/api/players.json", 200, 1.25)

	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "http_request", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/players.json", entry["path"])
	assert.EqualValues(t, 200, entry["status"])
	assert.InDelta(t, 1.25, entry["duration_ms"], 1e-9)
}

func TestWithLoggerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}
