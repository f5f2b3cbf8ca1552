package oteladapters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/outcome"
)

type spawnMonster struct {
	Kind string
}

func (spawnMonster) CommandType() string { return "SpawnMonster" }

func spawnModule() dispatch.Module {
	return dispatch.ModuleFunc(func(b *dispatch.Builder) error {
		dispatch.RegisterCommandHandler[spawnMonster](b, dispatch.CommandHandlerFunc[spawnMonster](
			func(_ context.Context, command spawnMonster) (outcome.Outcome, error) {
				if command.Kind == "" {
					return outcome.Failure("monster kind is required"), nil
				}

				return outcome.Success(), nil
			}))

		return nil
	})
}

func commandBus(t *testing.T, options ...dispatch.Option) *dispatch.CommandBus {
	t.Helper()

	registry, err := dispatch.Build(spawnModule())
	require.NoError(t, err)

	bus, err := dispatch.NewCommandBus(registry, options...)
	require.NoError(t, err)

	return bus
}

func spanAttribute(span tracetest.SpanStub, key string) (string, bool) {
	for _, attr := range span.Attributes {
		if attr.Key == attribute.Key(key) {
			return attr.Value.AsString(), true
		}
	}

	return "", false
}

func assertSpanHasAttribute(t *testing.T, span tracetest.SpanStub, key, expectedValue string) {
	t.Helper()

	value, found := spanAttribute(span, key)
	assert.True(t, found, "span should have attribute %s", key)
	assert.Equal(t, expectedValue, value)
}

func findMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) metricdata.Metrics {
	t.Helper()

	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			if m.Name == name {
				return m
			}
		}
	}

	t.Fatalf("metric %s not found", name)

	return metricdata.Metrics{}
}
