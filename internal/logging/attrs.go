package logging

import (
	"context"
	"log/slog"
	"time"
)

// Attr aliases slog.Attr so callers can import logging without slog.
type Attr = slog.Attr

// String constructs a string attribute.
func String(key, value string) Attr { return slog.String(key, value) }

// Int constructs an integer attribute.
func Int(key string, value int) Attr { return slog.Int(key, value) }

// Bool constructs a boolean attribute.
func Bool(key string, value bool) Attr { return slog.Bool(key, value) }

// Duration constructs a duration attribute.
func Duration(key string, value time.Duration) Attr { return slog.Duration(key, value) }

// Strings constructs an attribute holding a string slice.
func Strings(key string, values []string) Attr {
	return slog.Any(key, append([]string(nil), values...))
}

// Error constructs an error attribute under the standard error key.
func Error(err error) Attr {
	if err == nil {
		return slog.String(FieldError, "")
	}
	return slog.String(FieldError, err.Error())
}

// NewNop returns a logger that discards all output.
func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}

// NewComponentLogger returns a child logger tagged with component.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if component == "" {
		return logger
	}
	return logger.With(slog.String(FieldComponent, component))
}

// NoopHandler drops every record.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h NoopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h NoopHandler) WithGroup(string) slog.Handler           { return h }
