// Package logging assembles structured slog loggers and formatting helpers used
// across dictpivot.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so every log line of one conversion
// carries the same correlation ID. The package also provides a no-op logger
// for tests and wiring code that cannot fail.
//
// Documents are written to stdout, so loggers built from configuration write
// to stderr unless told otherwise.
package logging
