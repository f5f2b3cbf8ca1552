package testdoubles

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"sync"
)

// LogHandlerSpy is a slog.Handler implementation that captures log records for testing.
type LogHandlerSpy struct {
	records     *[]slog.Record
	attrs       []slog.Attr
	mu          *sync.Mutex
	logToStdout bool
}

// NewLogHandlerSpy creates a new LogHandlerSpy.
// Switchable to log to stdout, which can be useful for debugging tests by seeing the actual log output.
func NewLogHandlerSpy(logToStdout bool) *LogHandlerSpy {
	return &LogHandlerSpy{
		records:     &[]slog.Record{},
		mu:          &sync.Mutex{},
		logToStdout: logToStdout,
	}
}

// Handle implements slog.Handler.
func (s *LogHandlerSpy) Handle(ctx context.Context, record slog.Record) error {
	if len(s.attrs) > 0 {
		record = record.Clone()
		record.AddAttrs(s.attrs...)
	}

	s.mu.Lock()
	*s.records = append(*s.records, record)
	s.mu.Unlock()

	if s.logToStdout {
		_ = slog.NewJSONHandler(os.Stdout, nil).Handle(ctx, record)
	}

	return nil
}

// Enabled implements slog.Handler. All levels are enabled.
func (s *LogHandlerSpy) Enabled(context.Context, slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler. The returned handler shares the captured records.
func (s *LogHandlerSpy) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *s
	clone.attrs = append(slices.Clone(s.attrs), attrs...)

	return &clone
}

// WithGroup implements slog.Handler. Groups are not tracked.
func (s *LogHandlerSpy) WithGroup(string) slog.Handler {
	return s
}

// GetRecords returns a copy of all captured log records.
func (s *LogHandlerSpy) GetRecords() []slog.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(*s.records)
}

// HasRecord checks if a record with the specified level and message exists.
func (s *LogHandlerSpy) HasRecord(level slog.Level, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.ContainsFunc(*s.records, func(r slog.Record) bool {
		return r.Level == level && r.Message == message
	})
}

// RecordAttrs returns the attributes of a record as a map.
func RecordAttrs(record slog.Record) map[string]any {
	attrs := make(map[string]any, record.NumAttrs())
	record.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	return attrs
}
