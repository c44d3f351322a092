package observe

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/translator/pkg/translator"
)

// Instrumented wraps a translator with logging, metrics, and tracing.
// Every All/First call gets a fresh query ID; the derivation surface
// (Keys, Values, Prepend, Append) passes through untouched, so an
// Instrumented translator composes like any other.
type Instrumented struct {
	t       translator.Translator
	logger  *slog.Logger
	metrics MetricsRecorder
	spans   SpanManager
	ctx     context.Context
}

// Compile-time interface check.
var _ translator.Translator = (*Instrumented)(nil)

// InstrumentedOption configures an Instrumented translator.
type InstrumentedOption func(*Instrumented)

// WithLogger sets the logger for query start/complete events.
// A nil logger disables logging.
func WithLogger(logger *slog.Logger) InstrumentedOption {
	return func(i *Instrumented) {
		i.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m MetricsRecorder) InstrumentedOption {
	return func(i *Instrumented) {
		i.metrics = m
	}
}

// WithSpans sets the span manager for per-query trace spans.
func WithSpans(s SpanManager) InstrumentedOption {
	return func(i *Instrumented) {
		i.spans = s
	}
}

// WithContext sets the context used for metrics and spans. The query
// surface itself takes no context, so the wrapper carries one.
func WithContext(ctx context.Context) InstrumentedOption {
	return func(i *Instrumented) {
		i.ctx = ctx
	}
}

// NewInstrumented wraps t with observability. With no options, every
// signal is a no-op.
func NewInstrumented(t translator.Translator, opts ...InstrumentedOption) *Instrumented {
	i := &Instrumented{
		t:       t,
		metrics: NoopMetrics{},
		spans:   NoopSpanManager{},
		ctx:     context.Background(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Underlying returns the wrapped translator.
func (i *Instrumented) Underlying() translator.Translator { return i.t }

// Kind implements Translator.
func (i *Instrumented) Kind() translator.Kind { return i.t.Kind() }

// All implements Translator, recording the query.
func (i *Instrumented) All(input any, opts ...translator.QueryOption) []any {
	queryID := uuid.NewString()
	kind := i.t.Kind().String()

	LogQueryStart(i.logger, queryID, "all", inputCount(input))
	_, span := i.spans.StartQuerySpan(i.ctx, "all", kind, queryID)

	start := time.Now()
	results := i.t.All(input, opts...)
	elapsed := time.Since(start)

	i.spans.EndSpanWithError(span, nil)
	i.metrics.RecordQuery(i.ctx, "all", kind, elapsed, len(results))

	durationMs := float64(elapsed.Milliseconds())
	if len(results) == 0 {
		LogQueryMiss(i.logger, queryID, "all", durationMs)
	} else {
		LogQueryComplete(i.logger, queryID, "all", len(results), durationMs)
	}
	return results
}

// First implements Translator, recording the query.
func (i *Instrumented) First(input any, opts ...translator.QueryOption) (any, bool) {
	queryID := uuid.NewString()
	kind := i.t.Kind().String()

	LogQueryStart(i.logger, queryID, "first", inputCount(input))
	_, span := i.spans.StartQuerySpan(i.ctx, "first", kind, queryID)

	start := time.Now()
	v, ok := i.t.First(input, opts...)
	elapsed := time.Since(start)

	i.spans.EndSpanWithError(span, nil)

	results := 0
	if ok {
		results = 1
	}
	i.metrics.RecordQuery(i.ctx, "first", kind, elapsed, results)

	durationMs := float64(elapsed.Milliseconds())
	if ok {
		LogQueryComplete(i.logger, queryID, "first", 1, durationMs)
	} else {
		LogQueryMiss(i.logger, queryID, "first", durationMs)
	}
	return v, ok
}

// Keys implements Translator.
func (i *Instrumented) Keys() []any { return i.t.Keys() }

// Values implements Translator.
func (i *Instrumented) Values() []any { return i.t.Values() }

// Prepend implements Translator. The composed translator is not
// instrumented; re-wrap it if needed.
func (i *Instrumented) Prepend(other translator.Translator) translator.Translator {
	return i.t.Prepend(other)
}

// Append implements Translator. The composed translator is not
// instrumented; re-wrap it if needed.
func (i *Instrumented) Append(other translator.Translator) translator.Translator {
	return i.t.Append(other)
}

// inputCount reports how many input strings a query carries, without
// validating them. Validation stays with the wrapped translator.
func inputCount(input any) int {
	switch v := input.(type) {
	case string:
		return 1
	case []string:
		return len(v)
	case []any:
		return len(v)
	default:
		return 0
	}
}
