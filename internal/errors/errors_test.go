package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      *Error
		wantType ErrorType
		wantExit int
	}{
		{"input", InputError("cannot read dataset", cause), TypeInput, 2},
		{"external", ExternalError("lexicon download failed", cause), TypeExternal, 3},
		{"scoring", ScoringError("record has no text", cause), TypeScoring, 4},
		{"internal", InternalError("chart rendering failed", cause), TypeInternal, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantExit, tt.err.ExitCode())
			assert.Equal(t, cause, tt.err.Cause)
			assert.NotNil(t, tt.err.Context)
			assert.Contains(t, tt.err.Error(), string(tt.wantType))
			assert.Contains(t, tt.err.Error(), "boom")
		})
	}
}

func TestError_WithoutCause(t *testing.T) {
	err := InputError("dataset is empty", nil)
	assert.Equal(t, "input: dataset is empty", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestError_UnknownTypeExitCode(t *testing.T) {
	err := &Error{Type: "mystery", Message: "x"}
	assert.Equal(t, 1, err.ExitCode())
}

func TestError_UnwrapSupportsIs(t *testing.T) {
	sentinel := errors.New("lexicon unavailable")
	err := ExternalError("provisioning failed", fmt.Errorf("fetch: %w", sentinel))

	assert.ErrorIs(t, err, sentinel)
}

func TestWithContext_Chainable(t *testing.T) {
	err := InputError("bad row", nil).
		WithContext("row", 12).
		WithField("column", "Likes")

	assert.Equal(t, 12, err.Context["row"])
	assert.Equal(t, "Likes", err.Context["column"])
}

func TestWithContext_NilMap(t *testing.T) {
	err := &Error{Type: TypeInput, Message: "x"}
	err.WithContext("k", "v")
	assert.Equal(t, "v", err.Context["k"])
}

func TestLogAttrs_SortedContext(t *testing.T) {
	err := ScoringError("cannot score", nil).WithField("row", 3).WithField("column", "Tweets")

	attrs := err.LogAttrs()
	require.Len(t, attrs, 6)
	assert.Equal(t, "error", attrs[0])
	assert.Equal(t, "error_type", attrs[2])
	assert.Equal(t, "scoring", attrs[3])
	column, ok := attrs[4].(slog.Attr)
	require.True(t, ok)
	assert.Equal(t, "column", column.Key)
	assert.Equal(t, "Tweets", column.Value.String())
	row, ok := attrs[5].(slog.Attr)
	require.True(t, ok)
	assert.Equal(t, "row", row.Key)
	assert.Equal(t, int64(3), row.Value.Int64())
}

func TestAsStructuredError(t *testing.T) {
	assert.Nil(t, AsStructuredError(nil))

	structured := InputError("bad", nil)
	assert.Same(t, structured, AsStructuredError(structured))

	wrapped := fmt.Errorf("load: %w", structured)
	assert.Same(t, structured, AsStructuredError(wrapped))

	plain := errors.New("plain")
	converted := AsStructuredError(plain)
	assert.Equal(t, TypeInternal, converted.Type)
	assert.ErrorIs(t, converted, plain)
}
