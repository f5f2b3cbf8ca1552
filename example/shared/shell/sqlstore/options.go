package sqlstore

// Logger interface for SQL query logging, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Option defines a functional option for configuring Store.
type Option func(*Store) error

// WithTablePrefix sets the prefix prepended to all table names. An empty prefix is allowed.
func WithTablePrefix(prefix string) Option {
	return func(s *Store) error {
		for _, r := range prefix {
			if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
				return ErrInvalidTablePrefix
			}
		}

		s.tablePrefix = prefix

		return nil
	}
}

// WithLogger sets the logger for the Store.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL statements with execution timing (development use)
// Info level: Concurrency conflicts
// Warn level: Non-critical issues like cleanup failures
// Error level: Critical failures that cause operation failures.
func WithLogger(logger Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}
