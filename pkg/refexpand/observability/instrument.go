package observability

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/refexpand/pkg/refexpand"
)

// Expander is the expansion surface Instrument wraps. *refexpand.Expander
// satisfies it.
type Expander interface {
	Expand(caps refexpand.Captures, template string) (string, error)
	ExpandTo(dst io.Writer, caps refexpand.Captures, template string) error
}

// Instrumented decorates an expander with logging, metrics, and tracing.
// The wrapped expander stays pure; all instrumentation lives here.
//
// Each call is tagged with a generated expand ID that appears in log
// fields and span attributes, so individual expansions can be correlated
// across signals.
type Instrumented struct {
	exp     Expander
	logger  *slog.Logger
	metrics MetricsRecorder
	spans   SpanManager
}

// Option configures an Instrumented expander.
type Option func(*Instrumented)

// WithLogger enables structured logging for each expansion.
// A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Instrumented) {
		i.logger = logger
	}
}

// WithMetrics enables OTel metrics recording.
func WithMetrics(enabled bool) Option {
	return func(i *Instrumented) {
		if enabled {
			i.metrics = NewMetricsRecorder()
		} else {
			i.metrics = NoopMetrics{}
		}
	}
}

// WithTracing enables OTel span creation per expansion.
func WithTracing(enabled bool) Option {
	return func(i *Instrumented) {
		if enabled {
			i.spans = NewSpanManager()
		} else {
			i.spans = NoopSpanManager{}
		}
	}
}

// WithMetricsRecorder installs a specific recorder, bypassing the global
// OTel provider. Useful for testing.
func WithMetricsRecorder(m MetricsRecorder) Option {
	return func(i *Instrumented) {
		i.metrics = m
	}
}

// WithSpanManager installs a specific span manager, bypassing the global
// OTel provider. Useful for testing.
func WithSpanManager(sm SpanManager) Option {
	return func(i *Instrumented) {
		i.spans = sm
	}
}

// Instrument wraps an expander with the requested observability features.
// With no options, every feature is a no-op.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//	inst := observability.Instrument(refexpand.Default(),
//	    observability.WithLogger(logger),
//	    observability.WithMetrics(true),
//	    observability.WithTracing(true),
//	)
//	result, err := inst.Expand(ctx, caps, "Hello ${name}")
func Instrument(exp Expander, opts ...Option) *Instrumented {
	i := &Instrumented{
		exp:     exp,
		metrics: NoopMetrics{},
		spans:   NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Expand expands the template with logging, metrics, and tracing around
// the call.
func (i *Instrumented) Expand(ctx context.Context, caps refexpand.Captures, template string) (string, error) {
	finish := i.begin(ctx, template)
	result, err := i.exp.Expand(caps, template)
	finish(err)
	return result, err
}

// ExpandTo expands the template into dst with logging, metrics, and
// tracing around the call.
func (i *Instrumented) ExpandTo(ctx context.Context, dst io.Writer, caps refexpand.Captures, template string) error {
	finish := i.begin(ctx, template)
	err := i.exp.ExpandTo(dst, caps, template)
	finish(err)
	return err
}

// begin starts the per-call span, log record, and timer.
// The returned function completes all three.
func (i *Instrumented) begin(ctx context.Context, template string) func(error) {
	expandID := uuid.NewString()
	start := time.Now()

	_, span := i.spans.StartExpandSpan(ctx, expandID, len(template))
	LogExpandStart(i.logger, expandID, len(template))

	return func(err error) {
		elapsed := time.Since(start)
		durationMs := float64(elapsed.Milliseconds())

		i.spans.EndSpanWithError(span, err)
		i.metrics.RecordExpansion(ctx, len(template), elapsed, err)
		if err != nil {
			LogExpandError(i.logger, expandID, err, durationMs)
		} else {
			LogExpandComplete(i.logger, expandID, durationMs)
		}
	}
}
