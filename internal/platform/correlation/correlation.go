package correlation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

type (
	runKey   struct{}
	stageKey struct{}
)

// NewRunID returns a fresh identifier for one pipeline run.
func NewRunID() string {
	return uuid.NewString()
}

// WithRunID returns a new context carrying the given run ID.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runKey{}, id)
}

// RunID extracts the run ID from ctx, returning ("", false) if not present.
func RunID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runKey{}).(string)
	return id, ok && id != ""
}

// WithStage returns a new context tagged with the pipeline stage currently executing.
func WithStage(ctx context.Context, stage string) context.Context {
	return context.WithValue(ctx, stageKey{}, stage)
}

// Stage extracts the stage name from ctx.
func Stage(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(stageKey{}).(string)
	return s, ok && s != ""
}

// Handler wraps an existing slog.Handler and adds "run_id" and "stage"
// attributes when the context carries them.
type Handler struct {
	inner slog.Handler
}

// NewHandler creates a run-aware handler wrapping the given handler.
func NewHandler(inner slog.Handler) *Handler {
	return &Handler{inner: inner}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := RunID(ctx); ok {
		r.AddAttrs(slog.String("run_id", id))
	}
	if stage, ok := Stage(ctx); ok {
		r.AddAttrs(slog.String("stage", stage))
	}
	if err := h.inner.Handle(ctx, r); err != nil {
		return fmt.Errorf("correlation handler: %w", err)
	}
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{inner: h.inner.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{inner: h.inner.WithGroup(name)}
}
