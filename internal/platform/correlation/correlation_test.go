package correlation

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunID_IsUUID(t *testing.T) {
	_, err := uuid.Parse(NewRunID())
	require.NoError(t, err)
}

func TestNewRunID_Unique(t *testing.T) {
	ids := make(map[string]struct{}, 100)
	for range 100 {
		ids[NewRunID()] = struct{}{}
	}
	assert.Len(t, ids, 100)
}

func TestRunID_Roundtrip(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-1")
	id, ok := RunID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "run-1", id)
}

func TestRunID_MissingOrEmpty(t *testing.T) {
	_, ok := RunID(context.Background())
	assert.False(t, ok)

	_, ok = RunID(WithRunID(context.Background(), ""))
	assert.False(t, ok)
}

func TestStage_Roundtrip(t *testing.T) {
	ctx := WithStage(context.Background(), "score")
	stage, ok := Stage(ctx)
	assert.True(t, ok)
	assert.Equal(t, "score", stage)
}

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	inner := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewHandler(inner))
}

func TestHandler_AddsRunAndStage(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	ctx := WithStage(WithRunID(context.Background(), "run-42"), "filter")
	logger.InfoContext(ctx, "Rows filtered", "kept", 3)

	output := buf.String()
	assert.Contains(t, output, "run_id=run-42")
	assert.Contains(t, output, "stage=filter")
	assert.Contains(t, output, "kept=3")
}

func TestHandler_NothingAddedWhenMissing(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	logger.InfoContext(context.Background(), "plain")

	output := buf.String()
	assert.NotContains(t, output, "run_id")
	assert.NotContains(t, output, "stage=")
}

func TestHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf).With("component", "loader").WithGroup("csv")

	ctx := WithRunID(context.Background(), "run-7")
	logger.InfoContext(ctx, "Loaded", "rows", 12)

	output := buf.String()
	assert.Contains(t, output, "component=loader")
	assert.Contains(t, output, "csv.rows=12")
	assert.Contains(t, output, "run_id=run-7")
}
