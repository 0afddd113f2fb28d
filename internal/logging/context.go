package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Standard field names shared by every component.
const (
	FieldComponent     = "component"
	FieldCorrelationID = "correlation_id"
	FieldError         = "error"
	FieldEventType     = "event_type"
	FieldInput         = "input"
	FieldOutput        = "output"
	FieldFormat        = "format"
	FieldLanguages     = "languages"
	FieldKeys          = "keys"
	FieldBytes         = "bytes"
	FieldDuration      = "duration"
)

type runIDKey struct{}

// NewRunID returns a fresh correlation identifier.
func NewRunID() string {
	return uuid.NewString()
}

// WithRunID stores id on ctx. An empty id generates a new one.
func WithRunID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if id == "" {
		id = NewRunID()
	}
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the correlation identifier stored on ctx.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// WithContext returns logger annotated with the fields carried by ctx.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if id, ok := RunIDFromContext(ctx); ok {
		return logger.With(slog.String(FieldCorrelationID, id))
	}
	return logger
}
