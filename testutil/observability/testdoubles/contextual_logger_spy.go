package testdoubles

import (
	"context"
	"slices"
	"sync"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
)

// ContextualLoggerSpy is a ContextualLogger implementation that captures contextual logging calls for testing.
type ContextualLoggerSpy struct {
	records     []SpyContextualLogRecord
	mu          sync.Mutex
	recordCalls bool
}

// SpyContextualLogRecord represents a recorded contextual log call.
type SpyContextualLogRecord struct {
	Level   string
	Message string
	Args    []any
	Context context.Context
}

// Attr returns the value following key in the record's args, or nil if the key is absent.
func (r SpyContextualLogRecord) Attr(key string) any {
	for i := 0; i+1 < len(r.Args); i += 2 {
		if k, ok := r.Args[i].(string); ok && k == key {
			return r.Args[i+1]
		}
	}

	return nil
}

// NewContextualLoggerSpy creates a new ContextualLoggerSpy instance.
func NewContextualLoggerSpy(recordCalls bool) *ContextualLoggerSpy {
	return &ContextualLoggerSpy{recordCalls: recordCalls}
}

// DebugContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) DebugContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "debug", msg, args)
}

// InfoContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) InfoContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "info", msg, args)
}

// WarnContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) WarnContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "warn", msg, args)
}

// ErrorContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) ErrorContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "error", msg, args)
}

func (s *ContextualLoggerSpy) record(ctx context.Context, level, msg string, args []any) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyContextualLogRecord{
		Level:   level,
		Message: msg,
		Args:    slices.Clone(args),
		Context: ctx,
	})
}

// Reset clears all recorded log calls.
func (s *ContextualLoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = s.records[:0]
}

// GetRecords returns a copy of all log records in call order.
func (s *ContextualLoggerSpy) GetRecords() []SpyContextualLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.records)
}

// GetRecordsForLevel returns a copy of all log records of the given level.
func (s *ContextualLoggerSpy) GetRecordsForLevel(level string) []SpyContextualLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matching []SpyContextualLogRecord
	for _, record := range s.records {
		if record.Level == level {
			matching = append(matching, record)
		}
	}

	return matching
}

// GetTotalRecordCount returns the total number of log records across all levels.
func (s *ContextualLoggerSpy) GetTotalRecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// HasLog checks if a log with the specified level and message exists.
func (s *ContextualLoggerSpy) HasLog(level, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.ContainsFunc(s.records, func(r SpyContextualLogRecord) bool {
		return r.Level == level && r.Message == message
	})
}

// HasInfoLog checks if an info log with the specified message exists.
func (s *ContextualLoggerSpy) HasInfoLog(message string) bool {
	return s.HasLog("info", message)
}

// HasWarnLog checks if a warn log with the specified message exists.
func (s *ContextualLoggerSpy) HasWarnLog(message string) bool {
	return s.HasLog("warn", message)
}

// HasErrorLog checks if an error log with the specified message exists.
func (s *ContextualLoggerSpy) HasErrorLog(message string) bool {
	return s.HasLog("error", message)
}

var _ dispatch.ContextualLogger = (*ContextualLoggerSpy)(nil)
