// Package observability provides production-grade observability features
// for refexpand: structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// The core expander stays free of instrumentation; wrap it with
// Instrument to get per-expansion logging, metrics, and spans.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds expansion context to a logger.
// Returns a new logger with the expand_id field attached.
func EnrichLogger(logger *slog.Logger, expandID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("expand_id", expandID))
}

// LogExpandStart logs the start of a template expansion.
func LogExpandStart(logger *slog.Logger, expandID string, templateBytes int) {
	if logger == nil {
		return
	}
	logger.Debug("expansion starting",
		slog.String("expand_id", expandID),
		slog.Int("template_bytes", templateBytes),
	)
}

// LogExpandComplete logs successful expansion completion.
func LogExpandComplete(logger *slog.Logger, expandID string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("expansion completed",
		slog.String("expand_id", expandID),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogExpandError logs expansion failure.
func LogExpandError(logger *slog.Logger, expandID string, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("expansion failed",
		slog.String("expand_id", expandID),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in
// milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
