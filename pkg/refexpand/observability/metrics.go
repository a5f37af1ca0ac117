package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records expansion metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordExpansion records a completed expansion with its duration,
	// template size, and error status.
	RecordExpansion(ctx context.Context, templateBytes int, duration time.Duration, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	expansions    metric.Int64Counter
	latency       metric.Float64Histogram
	errors        metric.Int64Counter
	templateBytes metric.Int64Histogram
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
	meter := otel.Meter("refexpand")

	expansions, err := meter.Int64Counter("refexpand.expansions",
		metric.WithDescription("Number of template expansions"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("refexpand.latency_ms",
		metric.WithDescription("Expansion latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	errCounter, err := meter.Int64Counter("refexpand.errors",
		metric.WithDescription("Number of expansion errors"),
	)
	if err != nil {
		return nil, err
	}

	templateBytes, err := meter.Int64Histogram("refexpand.template.bytes",
		metric.WithDescription("Template size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		expansions:    expansions,
		latency:       latency,
		errors:        errCounter,
		templateBytes: templateBytes,
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

// RecordExpansion records a completed expansion.
func (m *otelMetrics) RecordExpansion(ctx context.Context, templateBytes int, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.Bool("success", err == nil),
	}

	m.expansions.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.latency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	m.templateBytes.Record(ctx, int64(templateBytes))

	if err != nil {
		m.errors.Add(ctx, 1)
	}
}
