// Package observe provides opt-in observability for translator query
// traffic: structured logging via slog, metrics and tracing via
// OpenTelemetry. The translator core stays pure; wrap a translator with
// Instrumented (or call the helpers directly) at the application boundary.
// All features have no-op implementations when disabled.
package observe

import (
	"log/slog"
	"time"
)

// EnrichLogger adds query context to a logger.
// Returns a new logger with query_id and kind fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "q-123", "SEQUENCE")
//	enriched.Debug("translating") // includes query_id, kind
func EnrichLogger(logger *slog.Logger, queryID, kind string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("query_id", queryID),
		slog.String("kind", kind),
	)
}

// LogQueryStart logs the start of a translation query.
func LogQueryStart(logger *slog.Logger, queryID, op string, inputs int) {
	if logger == nil {
		return
	}
	logger.Debug("query starting",
		slog.String("query_id", queryID),
		slog.String("op", op),
		slog.Int("inputs", inputs),
	)
}

// LogQueryComplete logs query completion with the result count.
func LogQueryComplete(logger *slog.Logger, queryID, op string, results int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("query completed",
		slog.String("query_id", queryID),
		slog.String("op", op),
		slog.Int("results", results),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogQueryMiss logs a query that produced no results. A miss is a normal
// outcome, so this logs at debug level.
func LogQueryMiss(logger *slog.Logger, queryID, op string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("query matched nothing",
		slog.String("query_id", queryID),
		slog.String("op", op),
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
