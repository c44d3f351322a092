package observe

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records translator query metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordQuery records one All/First call with its duration and result
	// count. op is "all" or "first"; kind is the translator's kind tag.
	RecordQuery(ctx context.Context, op, kind string, duration time.Duration, results int)

	// RecordCacheLookup records a cache hit or miss for a rule set.
	RecordCacheLookup(ctx context.Context, set string, hit bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	queries      metric.Int64Counter
	queryLatency metric.Float64Histogram
	queryResults metric.Int64Histogram
	queryMisses  metric.Int64Counter
	cacheHits    metric.Int64Counter
	cacheMisses  metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("translator")

	queries, err := meter.Int64Counter("translator.queries",
		metric.WithDescription("Number of translation queries"),
	)
	if err != nil {
		return nil, err
	}

	queryLatency, err := meter.Float64Histogram("translator.query.latency_ms",
		metric.WithDescription("Translation query latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	queryResults, err := meter.Int64Histogram("translator.query.results",
		metric.WithDescription("Derived values produced per query"),
	)
	if err != nil {
		return nil, err
	}

	queryMisses, err := meter.Int64Counter("translator.query.misses",
		metric.WithDescription("Number of queries that matched nothing"),
	)
	if err != nil {
		return nil, err
	}

	cacheHits, err := meter.Int64Counter("translator.cache.hits",
		metric.WithDescription("Number of cache hits"),
	)
	if err != nil {
		return nil, err
	}

	cacheMisses, err := meter.Int64Counter("translator.cache.misses",
		metric.WithDescription("Number of cache misses"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		queries:      queries,
		queryLatency: queryLatency,
		queryResults: queryResults,
		queryMisses:  queryMisses,
		cacheHits:    cacheHits,
		cacheMisses:  cacheMisses,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordQuery records one translation query.
func (m *otelMetrics) RecordQuery(ctx context.Context, op, kind string, duration time.Duration, results int) {
	attrs := []attribute.KeyValue{
		attribute.String("op", op),
		attribute.String("kind", kind),
	}

	m.queries.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.queryLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	m.queryResults.Record(ctx, int64(results), metric.WithAttributes(attrs...))

	if results == 0 {
		m.queryMisses.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordCacheLookup records a cache hit or miss.
func (m *otelMetrics) RecordCacheLookup(ctx context.Context, set string, hit bool) {
	attrs := []attribute.KeyValue{
		attribute.String("set", set),
	}
	if hit {
		m.cacheHits.Add(ctx, 1, metric.WithAttributes(attrs...))
	} else {
		m.cacheMisses.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}
