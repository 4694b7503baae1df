package observability

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

func TestRunContext_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "prod", slog.LevelInfo)
	rc := NewRunContextWithID(logger, "run-1", "resolve")

	rc.Debug("hidden")
	rc.Info("resolved", slog.Int(LogFieldRecords, 3))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "resolved", entry["msg"])
	assert.Equal(t, "run-1", entry[LogFieldRunID])
	assert.Equal(t, "resolve", entry[LogFieldCommand])
	assert.Equal(t, float64(3), entry[LogFieldRecords])
}

func TestRunContext_Error(t *testing.T) {
	var buf bytes.Buffer
	rc := NewRunContextWithID(NewLogger(&buf, "prod", slog.LevelInfo), "run-2", "extract")
	rc.Error("failed", errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "boom", entry["error"])
}

func TestNewRunContext(t *testing.T) {
	rc := NewRunContext(nil, "speak")
	assert.Len(t, rc.RunID, 36)
	assert.NotNil(t, rc.Logger)
	assert.GreaterOrEqual(t, rc.DurationMs(), int64(0))
}

func TestLoggerFrom(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, fallback, LoggerFrom(context.Background(), fallback))

	var buf bytes.Buffer
	rc := NewRunContextWithID(NewLogger(&buf, "dev", slog.LevelDebug), "run-3", "generate")
	ctx := WithRunContext(context.Background(), rc)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, rc, got)

	LoggerFrom(ctx, fallback).Debug("step")
	assert.Contains(t, buf.String(), "run_id=run-3")
	assert.Contains(t, buf.String(), "command=generate")
}
