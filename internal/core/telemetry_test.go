// AngelaMos | 2026
// telemetry_test.go

package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbangreen-dev/plantstore/internal/config"
)

func TestTraceIDFromContext(t *testing.T) {
	t.Run("no span", func(t *testing.T) {
		assert.Empty(t, TraceIDFromContext(context.Background()))
	})

	t.Run("recorded span", func(t *testing.T) {
		tel, err := NewTelemetry(context.Background(),
			config.OtelConfig{ServiceName: "plantstore-test"},
			config.AppConfig{})
		require.NoError(t, err)

		ctx, span := tel.Tracer.Start(context.Background(), "request")
		defer span.End()

		assert.Equal(t,
			span.SpanContext().TraceID().String(),
			TraceIDFromContext(ctx))
	})
}
