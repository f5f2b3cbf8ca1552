package testdoubles

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
)

// MetricsCollectorSpy is a ContextualMetricsCollector implementation that captures metrics calls for testing.
type MetricsCollectorSpy struct {
	durationRecords []SpyDurationRecord
	counterRecords  []SpyCounterRecord
	valueRecords    []SpyValueRecord
	mu              sync.Mutex
	recordCalls     bool
}

// SpyDurationRecord represents a recorded duration metric call.
type SpyDurationRecord struct {
	Metric   string
	Duration time.Duration
	Labels   map[string]string
	Context  context.Context
}

// SpyCounterRecord represents a recorded counter increment call.
type SpyCounterRecord struct {
	Metric  string
	Labels  map[string]string
	Context context.Context
}

// SpyValueRecord represents a recorded value metric call.
type SpyValueRecord struct {
	Metric  string
	Value   float64
	Labels  map[string]string
	Context context.Context
}

// NewMetricsCollectorSpy creates a new MetricsCollectorSpy.
// Set recordCalls to true to capture all metrics calls for inspection in tests.
func NewMetricsCollectorSpy(recordCalls bool) *MetricsCollectorSpy {
	return &MetricsCollectorSpy{recordCalls: recordCalls}
}

// RecordDuration implements the MetricsCollector interface.
func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.RecordDurationContext(nil, metric, duration, labels) //nolint:staticcheck // nil marks a call without context
}

// IncrementCounter implements the MetricsCollector interface.
func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.IncrementCounterContext(nil, metric, labels) //nolint:staticcheck // nil marks a call without context
}

// RecordValue implements the MetricsCollector interface.
func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.RecordValueContext(nil, metric, value, labels) //nolint:staticcheck // nil marks a call without context
}

// RecordDurationContext implements the ContextualMetricsCollector interface.
func (s *MetricsCollectorSpy) RecordDurationContext(
	ctx context.Context,
	metric string,
	duration time.Duration,
	labels map[string]string,
) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.durationRecords = append(s.durationRecords, SpyDurationRecord{
		Metric:   metric,
		Duration: duration,
		Labels:   maps.Clone(labels),
		Context:  ctx,
	})
}

// IncrementCounterContext implements the ContextualMetricsCollector interface.
func (s *MetricsCollectorSpy) IncrementCounterContext(ctx context.Context, metric string, labels map[string]string) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.counterRecords = append(s.counterRecords, SpyCounterRecord{
		Metric:  metric,
		Labels:  maps.Clone(labels),
		Context: ctx,
	})
}

// RecordValueContext implements the ContextualMetricsCollector interface.
func (s *MetricsCollectorSpy) RecordValueContext(
	ctx context.Context,
	metric string,
	value float64,
	labels map[string]string,
) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.valueRecords = append(s.valueRecords, SpyValueRecord{
		Metric:  metric,
		Value:   value,
		Labels:  maps.Clone(labels),
		Context: ctx,
	})
}

// GetDurationRecords returns a copy of all captured duration records.
func (s *MetricsCollectorSpy) GetDurationRecords() []SpyDurationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.durationRecords)
}

// GetCounterRecords returns a copy of all captured counter records.
func (s *MetricsCollectorSpy) GetCounterRecords() []SpyCounterRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.counterRecords)
}

// GetValueRecords returns a copy of all captured value records.
func (s *MetricsCollectorSpy) GetValueRecords() []SpyValueRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.valueRecords)
}

// Reset clears all captured metric records.
func (s *MetricsCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durationRecords = s.durationRecords[:0]
	s.counterRecords = s.counterRecords[:0]
	s.valueRecords = s.valueRecords[:0]
}

// MetricRecordMatcher provides a fluent interface for checking metric records.
type MetricRecordMatcher struct {
	candidates []map[string]string
}

// HasDurationRecordForMetric starts a fluent chain to check the duration records of a metric.
func (s *MetricsCollectorSpy) HasDurationRecordForMetric(metric string) *MetricRecordMatcher {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &MetricRecordMatcher{}
	for _, record := range s.durationRecords {
		if record.Metric == metric {
			m.candidates = append(m.candidates, record.Labels)
		}
	}

	return m
}

// HasCounterRecordForMetric starts a fluent chain to check the counter records of a metric.
func (s *MetricsCollectorSpy) HasCounterRecordForMetric(metric string) *MetricRecordMatcher {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &MetricRecordMatcher{}
	for _, record := range s.counterRecords {
		if record.Metric == metric {
			m.candidates = append(m.candidates, record.Labels)
		}
	}

	return m
}

// WithStatus keeps only records with the specified status label.
func (m *MetricRecordMatcher) WithStatus(status string) *MetricRecordMatcher {
	return m.WithLabel(dispatch.LogAttrStatus, status)
}

// WithRequestType keeps only records with the specified request_type label.
func (m *MetricRecordMatcher) WithRequestType(requestType string) *MetricRecordMatcher {
	return m.WithLabel(dispatch.LogAttrRequestType, requestType)
}

// WithLabel keeps only records with the specified label value.
func (m *MetricRecordMatcher) WithLabel(key, value string) *MetricRecordMatcher {
	m.candidates = slices.DeleteFunc(m.candidates, func(labels map[string]string) bool {
		v, exists := labels[key]
		return !exists || v != value
	})

	return m
}

// Assert returns true if at least one record met all conditions in the fluent chain.
func (m *MetricRecordMatcher) Assert() bool {
	return len(m.candidates) > 0
}

// CountDurationRecordsForMetric counts how many duration records exist for a specific metric.
func (s *MetricsCollectorSpy) CountDurationRecordsForMetric(metric string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, record := range s.durationRecords {
		if record.Metric == metric {
			count++
		}
	}

	return count
}

// CountCounterRecordsForMetric counts how many counter records exist for a specific metric.
func (s *MetricsCollectorSpy) CountCounterRecordsForMetric(metric string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, record := range s.counterRecords {
		if record.Metric == metric {
			count++
		}
	}

	return count
}

var _ dispatch.ContextualMetricsCollector = (*MetricsCollectorSpy)(nil)
