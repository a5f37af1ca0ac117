package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetrics(t *testing.T) {
	var m MetricsRecorder = NoopMetrics{}

	assert.NotPanics(t, func() {
		m.RecordExpansion(context.Background(), 10, time.Millisecond, nil)
		m.RecordExpansion(context.Background(), 0, 0, errors.New("boom"))
		m.RecordExpansion(nil, 0, 0, nil) //nolint:staticcheck // nil context must not panic
	})
}

func TestNoopSpanManager(t *testing.T) {
	var sm SpanManager = NoopSpanManager{}
	ctx := context.Background()

	gotCtx, span := sm.StartExpandSpan(ctx, "exp-1", 10)
	assert.Equal(t, ctx, gotCtx) // Context unchanged
	assert.NotNil(t, span)
	assert.False(t, span.IsRecording())

	assert.NotPanics(t, func() {
		sm.EndSpanWithError(span, errors.New("boom"))
		sm.EndSpanWithError(nil, nil)
		sm.AddSpanEvent(ctx, "event", attribute.String("k", "v"))
	})
}
