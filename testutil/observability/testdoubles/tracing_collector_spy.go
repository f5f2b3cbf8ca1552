package testdoubles

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
)

// SpySpanContext is the SpanContext handed out by TracingCollectorSpy.
type SpySpanContext struct {
	status     string
	attributes map[string]string
	mu         sync.Mutex
}

// SetStatus implements the SpanContext interface for testing.
func (c *SpySpanContext) SetStatus(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = status
}

// AddAttribute implements the SpanContext interface for testing.
func (c *SpySpanContext) AddAttribute(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.attributes == nil {
		c.attributes = make(map[string]string)
	}
	c.attributes[key] = value
}

// GetStatus returns the current status of the span.
func (c *SpySpanContext) GetStatus() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// GetAttributes returns a copy of all attributes added to the span.
func (c *SpySpanContext) GetAttributes() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.attributes)
}

// spySpanKey marks contexts returned by StartSpan so nesting can be verified.
type spySpanKey struct{}

// ParentSpan returns the span a context was started from, or nil.
func ParentSpan(ctx context.Context) *SpySpanContext {
	span, _ := ctx.Value(spySpanKey{}).(*SpySpanContext)
	return span
}

// TracingCollectorSpy is a TracingCollector implementation that captures tracing calls for testing.
type TracingCollectorSpy struct {
	spanRecords []SpySpanRecord
	mu          sync.Mutex
	recordCalls bool
}

// SpySpanRecord represents a recorded span.
type SpySpanRecord struct {
	Name            string
	StartAttributes map[string]string
	Status          string
	EndAttributes   map[string]string
	Finished        bool
	Parent          *SpySpanContext
	SpanContext     *SpySpanContext
}

// NewTracingCollectorSpy creates a new TracingCollectorSpy.
// Set recordCalls to true to capture all tracing calls for inspection in tests.
func NewTracingCollectorSpy(recordCalls bool) *TracingCollectorSpy {
	return &TracingCollectorSpy{recordCalls: recordCalls}
}

// StartSpan implements the TracingCollector interface for testing.
func (s *TracingCollectorSpy) StartSpan(
	ctx context.Context,
	name string,
	attrs map[string]string,
) (context.Context, dispatch.SpanContext) {
	if !s.recordCalls {
		return ctx, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	spanCtx := &SpySpanContext{}
	s.spanRecords = append(s.spanRecords, SpySpanRecord{
		Name:            name,
		StartAttributes: maps.Clone(attrs),
		Parent:          ParentSpan(ctx),
		SpanContext:     spanCtx,
	})

	return context.WithValue(ctx, spySpanKey{}, spanCtx), spanCtx
}

// FinishSpan implements the TracingCollector interface for testing.
func (s *TracingCollectorSpy) FinishSpan(spanCtx dispatch.SpanContext, status string, attrs map[string]string) {
	if !s.recordCalls || spanCtx == nil {
		return
	}

	spySpan, ok := spanCtx.(*SpySpanContext)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.spanRecords {
		if s.spanRecords[i].SpanContext == spySpan {
			s.spanRecords[i].Status = status
			s.spanRecords[i].EndAttributes = maps.Clone(attrs)
			s.spanRecords[i].Finished = true
			break
		}
	}
}

// GetSpanRecords returns a copy of all captured span records in start order.
func (s *TracingCollectorSpy) GetSpanRecords() []SpySpanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.spanRecords)
}

// GetSpanRecordCount returns the number of captured span records.
func (s *TracingCollectorSpy) GetSpanRecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.spanRecords)
}

// Reset clears all captured span records.
func (s *TracingCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.spanRecords = s.spanRecords[:0]
}

// SpanRecordMatcher provides a fluent interface for checking span records.
type SpanRecordMatcher struct {
	candidates []SpySpanRecord
}

// HasSpanRecordForName starts a fluent chain to check the span records of a name.
func (s *TracingCollectorSpy) HasSpanRecordForName(name string) *SpanRecordMatcher {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &SpanRecordMatcher{}
	for _, record := range s.spanRecords {
		if record.Name == name {
			m.candidates = append(m.candidates, record)
		}
	}

	return m
}

// WithStatus keeps only finished spans with the specified status.
func (m *SpanRecordMatcher) WithStatus(status string) *SpanRecordMatcher {
	m.candidates = slices.DeleteFunc(m.candidates, func(r SpySpanRecord) bool {
		return !r.Finished || r.Status != status
	})

	return m
}

// WithStartAttribute keeps only spans started with the specified attribute.
func (m *SpanRecordMatcher) WithStartAttribute(key, value string) *SpanRecordMatcher {
	m.candidates = slices.DeleteFunc(m.candidates, func(r SpySpanRecord) bool {
		v, exists := r.StartAttributes[key]
		return !exists || v != value
	})

	return m
}

// WithEndAttribute keeps only spans finished with the specified attribute.
func (m *SpanRecordMatcher) WithEndAttribute(key, value string) *SpanRecordMatcher {
	m.candidates = slices.DeleteFunc(m.candidates, func(r SpySpanRecord) bool {
		v, exists := r.EndAttributes[key]
		return !exists || v != value
	})

	return m
}

// Assert returns true if at least one span met all conditions in the fluent chain.
func (m *SpanRecordMatcher) Assert() bool {
	return len(m.candidates) > 0
}

var _ dispatch.TracingCollector = (*TracingCollectorSpy)(nil)
