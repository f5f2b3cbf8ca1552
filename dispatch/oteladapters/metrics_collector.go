package oteladapters

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
)

// MetricsCollector implements dispatch.ContextualMetricsCollector with an OpenTelemetry meter:
//   - RecordDuration -> Float64Histogram in seconds
//   - IncrementCounter -> Int64Counter
//   - RecordValue -> Float64Gauge
//
// Instruments are created on first use and cached by name. It is safe for concurrent use.
type MetricsCollector struct {
	meter      metric.Meter
	mu         sync.Mutex
	histograms map[string]metric.Float64Histogram
	counters   map[string]metric.Int64Counter
	gauges     map[string]metric.Float64Gauge
}

// NewMetricsCollector creates a MetricsCollector.
// The meter should be created from your OpenTelemetry MeterProvider.
func NewMetricsCollector(meter metric.Meter) *MetricsCollector {
	return &MetricsCollector{
		meter:      meter,
		histograms: make(map[string]metric.Float64Histogram),
		counters:   make(map[string]metric.Int64Counter),
		gauges:     make(map[string]metric.Float64Gauge),
	}
}

// RecordDuration implements dispatch.MetricsCollector.
func (m *MetricsCollector) RecordDuration(name string, duration time.Duration, labels map[string]string) {
	m.RecordDurationContext(context.Background(), name, duration, labels)
}

// RecordDurationContext implements dispatch.ContextualMetricsCollector.
func (m *MetricsCollector) RecordDurationContext(
	ctx context.Context,
	name string,
	duration time.Duration,
	labels map[string]string,
) {
	histogram, err := instrument(m, m.histograms, name, func() (metric.Float64Histogram, error) {
		return m.meter.Float64Histogram(name, metric.WithDescription("Dispatch duration"), metric.WithUnit("s"))
	})
	if err != nil {
		return
	}

	histogram.Record(ctx, duration.Seconds(), metric.WithAttributes(toAttributes(labels)...))
}

// IncrementCounter implements dispatch.MetricsCollector.
func (m *MetricsCollector) IncrementCounter(name string, labels map[string]string) {
	m.IncrementCounterContext(context.Background(), name, labels)
}

// IncrementCounterContext implements dispatch.ContextualMetricsCollector.
func (m *MetricsCollector) IncrementCounterContext(ctx context.Context, name string, labels map[string]string) {
	counter, err := instrument(m, m.counters, name, func() (metric.Int64Counter, error) {
		return m.meter.Int64Counter(name, metric.WithDescription("Dispatch counter"))
	})
	if err != nil {
		return
	}

	counter.Add(ctx, 1, metric.WithAttributes(toAttributes(labels)...))
}

// RecordValue implements dispatch.MetricsCollector.
func (m *MetricsCollector) RecordValue(name string, value float64, labels map[string]string) {
	m.RecordValueContext(context.Background(), name, value, labels)
}

// RecordValueContext implements dispatch.ContextualMetricsCollector.
func (m *MetricsCollector) RecordValueContext(ctx context.Context, name string, value float64, labels map[string]string) {
	gauge, err := instrument(m, m.gauges, name, func() (metric.Float64Gauge, error) {
		return m.meter.Float64Gauge(name, metric.WithDescription("Dispatch current value"))
	})
	if err != nil {
		return
	}

	gauge.Record(ctx, value, metric.WithAttributes(toAttributes(labels)...))
}

// instrument returns the cached instrument for name or creates and caches it.
// A creation error is returned, so the measurement is dropped and creation is retried next time.
func instrument[I any](m *MetricsCollector, cache map[string]I, name string, create func() (I, error)) (I, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := cache[name]; ok {
		return existing, nil
	}

	created, err := create()
	if err != nil {
		return created, err
	}

	cache[name] = created

	return created, nil
}

var _ dispatch.ContextualMetricsCollector = (*MetricsCollector)(nil)
