package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The global OTel meter provider defaults to a no-op, so these tests
// exercise the recording paths without asserting on exported values.

func TestNewMetricsRecorder(t *testing.T) {
	m := NewMetricsRecorder()
	require.NotNil(t, m)

	// Lazy initialization returns the same instance.
	m2 := NewMetricsRecorder()
	assert.Equal(t, m, m2)
}

func TestRecordExpansion(t *testing.T) {
	m := NewMetricsRecorder()
	ctx := context.Background()

	assert.NotPanics(t, func() {
		m.RecordExpansion(ctx, 128, 3*time.Millisecond, nil)
		m.RecordExpansion(ctx, 0, 0, errors.New("boom"))
	})
}

func TestNewOtelMetrics(t *testing.T) {
	m, err := newOtelMetrics()
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.NotNil(t, m.expansions)
	assert.NotNil(t, m.latency)
	assert.NotNil(t, m.errors)
	assert.NotNil(t, m.templateBytes)
}
