package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	runIDKey  ctxKey = "run_id"
	taskIDKey ctxKey = "task_id"
)

// WithRunID stores the batch run ID in the context.
func WithRunID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromCtx extracts the batch run ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func RunIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(runIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithTaskID stores the zero-based task index of a batch item in the context.
func WithTaskID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, taskIDKey, id)
}

// TaskIDFromCtx extracts the task index from the context.
// Returns 0 and false if absent or of the wrong type.
func TaskIDFromCtx(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(taskIDKey).(int)
	if !ok {
		return 0, false
	}
	return id, true
}
